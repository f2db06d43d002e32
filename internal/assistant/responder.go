package assistant

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/vaishnav/edutech_backend_v1/internal/models"
)

// Context is the student data the assistant answers from.
type Context struct {
	AttendanceStats  models.AttendanceStats   `json:"attendance_stats"`
	RecentAttendance []models.AttendanceRecord `json:"recent_attendance"`
	Assignments      []models.Assignment       `json:"assignments"`
	Events           []models.Event            `json:"events"`
	Profile          models.StudentProfile     `json:"profile"`
}

type category int

const (
	categoryGeneral category = iota
	categoryMarks
	categoryAttendance
	categoryAssignments
	categoryEvents
)

var (
	examPattern    = regexp.MustCompile(`cia\s*(\d)`)
	subjectPattern = regexp.MustCompile(`(mathematics|math|physics|chemistry|english|history|biology)`)
)

const genericReply = "I am here to help you with your school activities! You can ask about your marks, attendance, assignments, or upcoming events."

// classify picks the first matching keyword category.
func classify(msg string) category {
	switch {
	case containsAny(msg, "mark", "score", "grade", "result", "cia"):
		return categoryMarks
	case containsAny(msg, "attendance", "absent", "present", "late"):
		return categoryAttendance
	case containsAny(msg, "assignment", "homework"):
		return categoryAssignments
	case containsAny(msg, "event", "certificate"):
		return categoryEvents
	}
	return categoryGeneral
}

// Respond answers query from ctx without any network access.
func Respond(query string, ctx Context) string {
	msg := strings.ToLower(query)
	switch classify(msg) {
	case categoryMarks:
		return marksReply(msg, ctx.Profile)
	case categoryAttendance:
		return attendanceReply(ctx)
	case categoryAssignments:
		return assignmentReply(ctx.Assignments)
	case categoryEvents:
		return eventReply(ctx.Events)
	}
	return genericReply
}

func marksReply(msg string, p models.StudentProfile) string {
	if m := examPattern.FindStringSubmatch(msg); m != nil {
		label := "CIA " + m[1]
		for _, exam := range p.CIAExams {
			if !strings.EqualFold(exam.Exam, label) {
				continue
			}
			lines := make([]string, 0, len(exam.Marks)+1)
			lines = append(lines, fmt.Sprintf("%s (%d) marks:", exam.Exam, exam.Year))
			for _, mk := range exam.Marks {
				lines = append(lines, fmt.Sprintf("- %s: %d/%d", mk.Subject, mk.Score, mk.Max))
			}
			return strings.Join(lines, "\n")
		}
		return fmt.Sprintf("No marks found for %s.", label)
	}

	if m := subjectPattern.FindStringSubmatch(msg); m != nil {
		subject := m[1]
		var lines []string
		for _, exam := range p.CIAExams {
			for _, mk := range exam.Marks {
				if strings.Contains(strings.ToLower(mk.Subject), subject) {
					lines = append(lines, fmt.Sprintf("%s (%d): %d/%d", exam.Exam, exam.Year, mk.Score, mk.Max))
					break
				}
			}
		}
		if len(lines) == 0 {
			return fmt.Sprintf("No marks found for %s.", subject)
		}
		return fmt.Sprintf("Your marks in %s:\n%s", subject, strings.Join(lines, "\n"))
	}

	if len(p.AcademicHistory) == 0 {
		return "No marks or grade data found."
	}
	lines := []string{"Your academic grade history:"}
	for _, h := range p.AcademicHistory {
		lines = append(lines, fmt.Sprintf("%s: %s (%s)", h.Year, h.Grade, h.Remarks))
	}
	return strings.Join(lines, "\n")
}

func attendanceReply(ctx Context) string {
	st := ctx.AttendanceStats
	recent := ctx.RecentAttendance
	if len(recent) > 3 {
		recent = recent[:3]
	}
	parts := make([]string, 0, len(recent))
	for _, r := range recent {
		parts = append(parts, fmt.Sprintf("%s - %s: %s", r.Date, r.Subject, r.Status))
	}
	return fmt.Sprintf("Your attendance is %d%%. You have been present for %d out of %d days. Recent attendance: %s",
		st.AttendancePercentage, st.PresentDays, st.TotalDays, strings.Join(parts, "; "))
}

func assignmentReply(assignments []models.Assignment) string {
	var pending []models.Assignment
	for _, a := range assignments {
		if a.Pending() {
			pending = append(pending, a)
		}
	}
	if len(pending) == 0 {
		return "You have no pending assignments!"
	}
	return fmt.Sprintf("You have %d pending assignments. Next due: %s (Due: %s).", len(pending), pending[0].Title, pending[0].DueDate)
}

func eventReply(events []models.Event) string {
	var parts []string
	for _, e := range events {
		if e.Upcoming() {
			parts = append(parts, fmt.Sprintf("%s on %s", e.Title, e.Date))
		}
	}
	if len(parts) == 0 {
		return "There are no upcoming events."
	}
	return "Upcoming events: " + strings.Join(parts, "; ")
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
