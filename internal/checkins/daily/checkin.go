package daily

import (
	"errors"
	"time"

	"github.com/2beens/fitcoach/internal/goals"
)

// Collection is the store collection of daily check-ins.
const Collection = "dailyCheckins"

var (
	ErrCheckinNotFound       = errors.New("daily check-in not found")
	ErrNotOwner              = errors.New("daily check-in belongs to another user")
	ErrAlreadySubmittedToday = errors.New("daily check-in already submitted today")
	ErrNoPhotos              = errors.New("at least one photo is required")
	ErrNoGoals               = errors.New("at least one goal is required")
)

// GoalEntry is a point-in-time copy of a daily goal and whether it was hit.
type GoalEntry struct {
	GoalID    string `json:"goalId"`
	Name      string `json:"name"`
	Target    string `json:"target,omitempty"`
	Completed bool   `json:"completed"`
}

func EntriesFromGoals(gs []goals.Goal) []GoalEntry {
	entries := make([]GoalEntry, 0, len(gs))
	for _, g := range gs {
		entries = append(entries, GoalEntry{
			GoalID: g.ID,
			Name:   g.Name,
			Target: g.Target,
		})
	}
	return entries
}

type DailyCheckinRecord struct {
	ID             string      `json:"id"`
	UserID         string      `json:"userId"`
	Date           time.Time   `json:"date"`
	CompletedGoals []GoalEntry `json:"completedGoals"`
	Notes          string      `json:"notes,omitempty"`
	ImageURLs      []string    `json:"imageUrls"`
	Timestamp      time.Time   `json:"timestamp"`
	EditedAt       *time.Time  `json:"editedAt,omitempty"`
}

func (c DailyCheckinRecord) CheckinDate() time.Time {
	return c.Date
}

func Dates(records []DailyCheckinRecord) []time.Time {
	dates := make([]time.Time, 0, len(records))
	for _, r := range records {
		dates = append(dates, r.Date)
	}
	return dates
}

// Draft is a daily check-in being composed, not yet submitted.
type Draft struct {
	Goals     []GoalEntry `json:"completedGoals"`
	Notes     string      `json:"notes"`
	ImageURLs []string    `json:"imageUrls"`
}

// Validate checks the draft can be submitted; photos are checked first.
func (d Draft) Validate() error {
	if len(d.ImageURLs) == 0 {
		return ErrNoPhotos
	}
	if len(d.Goals) == 0 {
		return ErrNoGoals
	}
	return nil
}

// Patch is an edit of a submitted check-in. Nil fields are left untouched.
type Patch struct {
	Goals     []GoalEntry `json:"completedGoals"`
	Notes     *string     `json:"notes"`
	ImageURLs []string    `json:"imageUrls"`
}

// MergeGoals returns existing with the completion flags taken from incoming, followed by
// the incoming goals not present in existing. Existing goals are never dropped.
func MergeGoals(existing, incoming []GoalEntry) []GoalEntry {
	merged := make([]GoalEntry, len(existing), len(existing)+len(incoming))
	copy(merged, existing)

	index := make(map[string]int, len(merged))
	for i, g := range merged {
		index[g.GoalID] = i
	}

	for _, g := range incoming {
		if i, ok := index[g.GoalID]; ok {
			merged[i].Completed = g.Completed
			continue
		}
		index[g.GoalID] = len(merged)
		merged = append(merged, g)
	}
	return merged
}

// Apply edits c. Images may be replaced, but never with an empty list.
func (p Patch) Apply(c *DailyCheckinRecord) error {
	if p.ImageURLs != nil && len(p.ImageURLs) == 0 {
		return ErrNoPhotos
	}
	if p.ImageURLs != nil {
		c.ImageURLs = p.ImageURLs
	}
	if p.Notes != nil {
		c.Notes = *p.Notes
	}
	if len(p.Goals) > 0 {
		c.CompletedGoals = MergeGoals(c.CompletedGoals, p.Goals)
	}
	return nil
}
