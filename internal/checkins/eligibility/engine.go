package eligibility

import (
	"fmt"
	"time"
)

// CanSubmitWeekly is true iff none of the dates falls in the calendar week of now.
func CanSubmitWeekly(now time.Time, dates []time.Time) bool {
	return !HasCompletedWeeklyThisWeek(now, dates)
}

// HasCompletedWeeklyThisWeek is true iff at least one date falls in the calendar week of now.
func HasCompletedWeeklyThisWeek(now time.Time, dates []time.Time) bool {
	for _, d := range dates {
		if SameWeek(now, d) {
			return true
		}
	}
	return false
}

// TimeUntilNextWeekly renders the time left in the current check-in week,
// e.g. "4d" on a Tuesday or "5h" late on Friday and Saturday.
func TimeUntilNextWeekly(now time.Time) string {
	var days int
	switch wd := Weekday1(now); wd {
	case 1:
		days = 6
	default:
		days = 7 - wd
	}

	if days > 1 {
		return fmt.Sprintf("%dd", days)
	}

	if days == 1 {
		midnight := StartOfDay(now).AddDate(0, 0, 1)
		return fmt.Sprintf("%dh", wholeHours(midnight.Sub(now))+1)
	}

	// saturday, the last day of the week
	endOfDay := StartOfDay(now).Add(23*time.Hour + 59*time.Minute + 59*time.Second)
	return fmt.Sprintf("%dh", wholeHours(endOfDay.Sub(now))+1)
}

// ShouldShowReminder is true when nothing was submitted this week and the reminder
// was not dismissed during this week. A dismissal from an earlier week does not count.
func ShouldShowReminder(now time.Time, dates []time.Time, dismissedAt *time.Time) bool {
	if HasCompletedWeeklyThisWeek(now, dates) {
		return false
	}
	if dismissedAt == nil {
		return true
	}
	return !SameWeek(now, *dismissedAt)
}

// CanSubmitDaily is true iff none of the dates falls on now's calendar day.
// Dates outside today are ignored, so an unfiltered history can be passed in.
func CanSubmitDaily(now time.Time, todaysDates []time.Time) bool {
	for _, d := range todaysDates {
		if InDay(now, d) {
			return false
		}
	}
	return true
}

// Status bundles every eligibility flag for one user at one instant.
type Status struct {
	Now             time.Time `json:"now"`
	WeekStart       time.Time `json:"weekStart"`
	WeekEnd         time.Time `json:"weekEnd"`
	CanSubmitWeekly bool      `json:"canSubmitWeekly"`
	CompletedWeekly bool      `json:"completedWeekly"`
	NextWeekly      string    `json:"nextWeekly"`
	ShowReminder    bool      `json:"showReminder"`
	CanSubmitDaily  bool      `json:"canSubmitDaily"`
}

func NewStatus(now time.Time, weeklyDates, dailyDates []time.Time, dismissedAt *time.Time) Status {
	completed := HasCompletedWeeklyThisWeek(now, weeklyDates)
	return Status{
		Now:             now,
		WeekStart:       StartOfWeek(now),
		WeekEnd:         EndOfWeek(now),
		CanSubmitWeekly: !completed,
		CompletedWeekly: completed,
		NextWeekly:      TimeUntilNextWeekly(now),
		ShowReminder:    ShouldShowReminder(now, weeklyDates, dismissedAt),
		CanSubmitDaily:  CanSubmitDaily(now, dailyDates),
	}
}

func wholeHours(d time.Duration) int {
	if d < 0 {
		return 0
	}
	return int(d / time.Hour)
}
