package weekly

import (
	"errors"
	"time"

	"github.com/2beens/fitcoach/internal/checkins/score"
)

// Collection is the canonical store collection of weekly check-ins.
const Collection = "checkins"

var (
	ErrCheckinNotFound          = errors.New("check-in not found")
	ErrNotOwner                 = errors.New("check-in belongs to another user")
	ErrAlreadySubmittedThisWeek = errors.New("weekly check-in already submitted this week")
)

// CheckinRecord is one weekly check-in. FinalScore is computed once from the ratings
// when the record is created or its ratings are edited, and is never recomputed on read.
type CheckinRecord struct {
	ID                string    `json:"id"`
	UserID            string    `json:"userId"`
	Date              time.Time `json:"date"`
	Name              string    `json:"name"`
	Weight            float64   `json:"weight"`
	ImageURL          string    `json:"imageUrl,omitempty"`
	BiggestWin        string    `json:"biggestWin,omitempty"`
	Issues            string    `json:"issues,omitempty"`
	ExtraCoachRequest string    `json:"extraCoachRequest,omitempty"`
	score.Ratings
	FinalScore float64    `json:"finalScore"`
	EditedAt   *time.Time `json:"editedAt,omitempty"`
}

func (c CheckinRecord) CheckinDate() time.Time {
	return c.Date
}

// Submission is what a client sends for a new weekly check-in.
type Submission struct {
	Name              string  `json:"name"`
	Weight            float64 `json:"weight"`
	ImageURL          string  `json:"imageUrl"`
	BiggestWin        string  `json:"biggestWin"`
	Issues            string  `json:"issues"`
	ExtraCoachRequest string  `json:"extraCoachRequest"`
	score.Ratings
}

// Patch holds the fields of an edit; nil fields are left untouched.
type Patch struct {
	Name              *string  `json:"name"`
	Weight            *float64 `json:"weight"`
	ImageURL          *string  `json:"imageUrl"`
	BiggestWin        *string  `json:"biggestWin"`
	Issues            *string  `json:"issues"`
	ExtraCoachRequest *string  `json:"extraCoachRequest"`
	// ratings are edited as a set, a partial set is rejected by the handler
	*score.Ratings
}

// Apply writes the patch onto c and restamps the final score when the ratings changed.
func (p Patch) Apply(c *CheckinRecord) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Weight != nil {
		c.Weight = *p.Weight
	}
	if p.ImageURL != nil {
		c.ImageURL = *p.ImageURL
	}
	if p.BiggestWin != nil {
		c.BiggestWin = *p.BiggestWin
	}
	if p.Issues != nil {
		c.Issues = *p.Issues
	}
	if p.ExtraCoachRequest != nil {
		c.ExtraCoachRequest = *p.ExtraCoachRequest
	}
	if p.Ratings != nil && *p.Ratings != c.Ratings {
		c.Ratings = *p.Ratings
		c.FinalScore = score.Compute(c.Ratings)
	}
}

func Dates(records []CheckinRecord) []time.Time {
	dates := make([]time.Time, 0, len(records))
	for _, r := range records {
		dates = append(dates, r.Date)
	}
	return dates
}
