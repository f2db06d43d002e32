package models

type AdminStats struct {
	TotalStudents     int     `json:"total_students"`
	TotalTeachers     int     `json:"total_teachers"`
	TotalClasses      int     `json:"total_classes"`
	AverageAttendance float64 `json:"average_attendance"`
}

type StudentSummary struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Class      string `json:"class"`
	Attendance int    `json:"attendance"`
	Grade      string `json:"grade"`
	Status     string `json:"status"`
}

type Activity struct {
	ID     int    `json:"id"`
	Action string `json:"action"`
	User   string `json:"user"`
	Time   string `json:"time"`
	Type   string `json:"type"`
}
