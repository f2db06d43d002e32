package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/vaishnav/edutech_backend_v1/internal/models"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// ParseSchedule combines a YYYY-MM-DD date and an optional HH:MM clock in loc.
func ParseSchedule(date, clock string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	date = strings.TrimSpace(date)
	clock = strings.TrimSpace(clock)
	if clock == "" {
		t, err := time.ParseInLocation(DateLayout, date, loc)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid date %q", date)
		}
		return t, nil
	}
	t, err := time.ParseInLocation(DateLayout+" "+ClockLayout, date+" "+clock, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date/time %q %q", date, clock)
	}
	return t, nil
}

// SameDay compares calendar dates in now's location.
func SameDay(target, now time.Time) bool {
	ty, tm, td := target.In(now.Location()).Date()
	ny, nm, nd := now.Date()
	return ty == ny && tm == nm && td == nd
}

// ClassifyAssignment: due today is live whatever the clock says, past due is
// overdue, anything later is live.
func ClassifyAssignment(due, now time.Time) models.AssignmentStatus {
	if SameDay(due, now) {
		return models.AssignmentLive
	}
	if due.Before(now) {
		return models.AssignmentOverdue
	}
	return models.AssignmentLive
}

// ClassifyEvent: today is live, past is completed, future is upcoming.
func ClassifyEvent(at, now time.Time) models.EventType {
	if SameDay(at, now) {
		return models.EventLive
	}
	if at.Before(now) {
		return models.EventCompleted
	}
	return models.EventUpcoming
}

// FormatClock renders "14:30" as "2:30 PM". Unparsable input is returned as is.
func FormatClock(clock string) string {
	if clock == "" {
		return ""
	}
	t, err := time.Parse(ClockLayout, clock)
	if err != nil {
		return clock
	}
	return t.Format("3:04 PM")
}
