package calendar

import (
	"fmt"
	"time"
)

type View string

const (
	ViewMonth View = "month"
	ViewWeek  View = "week"
	ViewDay   View = "day"
)

func (v View) Valid() bool {
	switch v {
	case ViewMonth, ViewWeek, ViewDay:
		return true
	}
	return false
}

type NavAction string

const (
	NavPrevious NavAction = "PREVIOUS"
	NavNext     NavAction = "NEXT"
	NavToday    NavAction = "TODAY"
)

// Navigation is the calendar's view window state. View and date together
// fully determine the visible window; every method is a pure function of
// (state, input) returning the new state.
type Navigation struct {
	CurrentDate time.Time `json:"current_date"`
	CurrentView View      `json:"current_view"`
}

func NewNavigation(now time.Time) Navigation {
	return Navigation{CurrentDate: now, CurrentView: ViewMonth}
}

// Navigate applies PREVIOUS/NEXT/TODAY. The step size depends on the current
// view at the time of the action: month steps to the same day of the
// adjacent month, week by seven days, day by one day.
func (n Navigation) Navigate(action NavAction, now time.Time) Navigation {
	switch action {
	case NavToday:
		n.CurrentDate = now
	case NavPrevious:
		n.CurrentDate = n.step(-1)
	case NavNext:
		n.CurrentDate = n.step(1)
	}
	return n
}

func (n Navigation) step(direction int) time.Time {
	switch n.CurrentView {
	case ViewMonth:
		return n.CurrentDate.AddDate(0, direction, 0)
	case ViewWeek:
		return n.CurrentDate.AddDate(0, 0, 7*direction)
	default:
		return n.CurrentDate.AddDate(0, 0, direction)
	}
}

// WithView switches the view without touching the date, so past navigation
// steps are never retroactively reinterpreted.
func (n Navigation) WithView(view View) Navigation {
	n.CurrentView = view
	return n
}

// WeekStart returns the Sunday beginning the week of the current date.
func (n Navigation) WeekStart() time.Time {
	return n.CurrentDate.AddDate(0, 0, -int(n.CurrentDate.Weekday()))
}

// Header renders the human-readable window label for the current state.
func (n Navigation) Header() string {
	switch n.CurrentView {
	case ViewDay:
		return n.CurrentDate.Format("Monday, January 2, 2006")
	case ViewWeek:
		return "Week of " + n.WeekStart().Format("Jan 2, 2006")
	default:
		return n.CurrentDate.Format("January 2006")
	}
}

// WeekRange renders the Sunday-through-Saturday span of the current week.
func (n Navigation) WeekRange() string {
	start := n.WeekStart()
	end := start.AddDate(0, 0, 6)
	return fmt.Sprintf("%s - %s", start.Format("Jan 2"), end.Format("Jan 2, 2006"))
}
