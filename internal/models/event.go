package models

type EventType string

const (
	EventLive      EventType = "live"
	EventCompleted EventType = "completed"
	EventUpcoming  EventType = "upcoming"
)

type EventStatus string

const (
	EventOpen      EventStatus = "open"
	EventClosed    EventStatus = "closed"
	EventCancelled EventStatus = "cancelled"
)

func (s EventStatus) Valid() bool {
	switch s {
	case EventOpen, EventClosed, EventCancelled:
		return true
	}
	return false
}

type Event struct {
	ID              int         `json:"id"`
	Title           string      `json:"title"`
	Description     string      `json:"description"`
	Date            string      `json:"date"`
	Time            string      `json:"time"`
	Location        string      `json:"location"`
	Type            EventType   `json:"type"`
	Participants    int         `json:"participants"`
	MaxParticipants *int        `json:"max_participants,omitempty"`
	Status          EventStatus `json:"status"`
}

// Upcoming is true for events that have not finished yet.
func (e Event) Upcoming() bool {
	return e.Type == EventUpcoming || e.Type == EventLive
}

type CertificateStatus string

const (
	CertificateIssued  CertificateStatus = "issued"
	CertificatePending CertificateStatus = "pending"
	CertificateDraft   CertificateStatus = "draft"
)

type Certificate struct {
	ID              int               `json:"id"`
	EventID         int               `json:"event_id"`
	EventTitle      string            `json:"event_title"`
	StudentName     string            `json:"student_name"`
	IssueDate       string            `json:"issue_date"`
	CertificateType string            `json:"certificate_type"`
	Status          CertificateStatus `json:"status"`
}
