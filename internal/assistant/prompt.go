package assistant

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/vaishnav/edutech_backend_v1/internal/models"
)

// BuildPrompt embeds the profile plus the data relevant to the question's category.
func BuildPrompt(query string, ctx Context) string {
	var b strings.Builder
	b.WriteString("Student Data:\nProfile: ")
	b.WriteString(mustJSON(ctx.Profile))
	b.WriteString("\n")

	switch classify(strings.ToLower(query)) {
	case categoryMarks:
		b.WriteString("CIA Exam Marks:\n")
		b.WriteString(formatExams(ctx.Profile.CIAExams))
		b.WriteString("\n")
	case categoryAttendance:
		fmt.Fprintf(&b, "Attendance: %s\nRecent Attendance: %s\n", mustJSON(ctx.AttendanceStats), mustJSON(ctx.RecentAttendance))
	case categoryAssignments:
		fmt.Fprintf(&b, "Assignments: %s\n", mustJSON(ctx.Assignments))
	case categoryEvents:
		fmt.Fprintf(&b, "Events: %s\n", mustJSON(ctx.Events))
	}

	fmt.Fprintf(&b, "\nUser question: \"%s\"\n", query)
	b.WriteString("Answer the question using the data above. If the question is not about the data, answer as a helpful school assistant.")
	return b.String()
}

func formatExams(exams []models.CIAExam) string {
	blocks := make([]string, 0, len(exams))
	for _, e := range exams {
		lines := []string{fmt.Sprintf("%s (%d):", e.Exam, e.Year)}
		for _, m := range e.Marks {
			lines = append(lines, fmt.Sprintf("  - %s: %d/%d", m.Subject, m.Score, m.Max))
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	return strings.Join(blocks, "\n")
}

// mustJSON never fails for the plain model structs passed here.
func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}
