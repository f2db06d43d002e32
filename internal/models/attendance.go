package models

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
)

// AttendanceStats carries a precomputed percentage; it is not derived from records.
type AttendanceStats struct {
	TotalDays            int `json:"total_days"`
	PresentDays          int `json:"present_days"`
	AbsentDays           int `json:"absent_days"`
	AttendancePercentage int `json:"attendance_percentage"`
}

type AttendanceRecord struct {
	ID      int              `json:"id"`
	Date    string           `json:"date"`
	Subject string           `json:"subject"`
	Status  AttendanceStatus `json:"status"`
	Time    string           `json:"time"`
}

type MissedClass struct {
	ID       int    `json:"id"`
	Date     string `json:"date"`
	Subject  string `json:"subject"`
	Reason   string `json:"reason"`
	Duration string `json:"duration"`
}
