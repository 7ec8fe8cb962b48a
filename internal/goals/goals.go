package goals

import (
	"errors"
	"time"
)

// Collection holds one goal set per user, keyed by user id.
const Collection = "dailyGoals"

var ErrGoalsNotSet = errors.New("daily goals not set")

// DailyGoalSet holds the targets a client works towards every day. It is always saved whole.
type DailyGoalSet struct {
	UserID    string    `json:"userId"`
	Calories  string    `json:"calories"`
	Steps     string    `json:"steps"`
	Protein   string    `json:"protein"`
	Training  string    `json:"training"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Goal struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Target string `json:"target"`
}

// Goals lists the set's goals in a fixed order, skipping the ones without a target.
func (s DailyGoalSet) Goals() []Goal {
	all := []Goal{
		{ID: "calories", Name: "Calories", Target: s.Calories},
		{ID: "steps", Name: "Steps", Target: s.Steps},
		{ID: "protein", Name: "Protein", Target: s.Protein},
		{ID: "training", Name: "Training", Target: s.Training},
	}

	goals := make([]Goal, 0, len(all))
	for _, g := range all {
		if g.Target != "" {
			goals = append(goals, g)
		}
	}
	return goals
}
