package database

import "github.com/vaishnav/edutech_backend_v1/internal/models"

func intPtr(v int) *int { return &v }

// Seed replaces every collection with the demo school data.
func Seed(s *Store) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.attendanceStats = models.AttendanceStats{TotalDays: 180, PresentDays: 171, AbsentDays: 9, AttendancePercentage: 95}
	s.recentAttendance = []models.AttendanceRecord{
		{ID: 1, Date: "2024-01-15", Subject: "Mathematics", Status: models.AttendancePresent, Time: "09:00 AM"},
		{ID: 2, Date: "2024-01-15", Subject: "Physics", Status: models.AttendancePresent, Time: "10:30 AM"},
		{ID: 3, Date: "2024-01-15", Subject: "Chemistry", Status: models.AttendanceLate, Time: "12:15 PM"},
		{ID: 4, Date: "2024-01-14", Subject: "English", Status: models.AttendancePresent, Time: "09:00 AM"},
		{ID: 5, Date: "2024-01-14", Subject: "History", Status: models.AttendanceAbsent, Time: "11:00 AM"},
		{ID: 6, Date: "2024-01-14", Subject: "Biology", Status: models.AttendancePresent, Time: "02:00 PM"},
		{ID: 7, Date: "2024-01-13", Subject: "Mathematics", Status: models.AttendancePresent, Time: "09:00 AM"},
		{ID: 8, Date: "2024-01-13", Subject: "Physics", Status: models.AttendancePresent, Time: "10:30 AM"},
	}
	s.missedClasses = []models.MissedClass{
		{ID: 1, Date: "2024-01-14", Subject: "History", Reason: "Medical appointment", Duration: "1 hour"},
		{ID: 2, Date: "2024-01-10", Subject: "Chemistry", Reason: "Family emergency", Duration: "1 hour"},
		{ID: 3, Date: "2024-01-08", Subject: "English", Reason: "Sick leave", Duration: "1 hour"},
		{ID: 4, Date: "2024-01-05", Subject: "Biology", Reason: "Transportation issue", Duration: "1 hour"},
		{ID: 5, Date: "2024-01-03", Subject: "Mathematics", Reason: "Personal reasons", Duration: "1 hour"},
	}

	s.assignments = []models.Assignment{
		{ID: 1, Title: "Mathematics Problem Set 1", Description: "Solve the given algebraic equations and show your working steps clearly.", Subject: "Mathematics", DueDate: "2024-02-20", DueTime: "23:59", Status: models.AssignmentLive, TotalMarks: 50, Submissions: 25, MaxSubmissions: intPtr(30), CreatedBy: "Dr. Smith", CreatedDate: "2024-02-10"},
		{ID: 2, Title: "Physics Lab Report", Description: "Write a comprehensive report on the pendulum experiment conducted in class.", Subject: "Physics", DueDate: "2024-02-25", DueTime: "17:00", Status: models.AssignmentLive, TotalMarks: 75, Submissions: 18, MaxSubmissions: intPtr(30), CreatedBy: "Prof. Johnson", CreatedDate: "2024-02-12"},
		{ID: 3, Title: "English Essay - Climate Change", Description: "Write a 1000-word essay on the impact of climate change on global ecosystems.", Subject: "English", DueDate: "2024-02-15", DueTime: "23:59", Status: models.AssignmentCompleted, TotalMarks: 100, Submissions: 28, MaxSubmissions: intPtr(30), CreatedBy: "Ms. Davis", CreatedDate: "2024-02-01"},
		{ID: 4, Title: "Chemistry Molecular Structure", Description: "Draw and explain the molecular structures of given organic compounds.", Subject: "Chemistry", DueDate: "2024-02-10", DueTime: "15:00", Status: models.AssignmentOverdue, TotalMarks: 60, Submissions: 22, MaxSubmissions: intPtr(30), CreatedBy: "Dr. Wilson", CreatedDate: "2024-01-28"},
		{ID: 5, Title: "History Timeline Project", Description: "Create a detailed timeline of World War II events with analysis.", Subject: "History", DueDate: "2024-03-01", DueTime: "23:59", Status: models.AssignmentLive, TotalMarks: 80, Submissions: 12, MaxSubmissions: intPtr(30), CreatedBy: "Mr. Brown", CreatedDate: "2024-02-14"},
	}
	s.submissions = []models.Submission{
		{ID: 1, AssignmentID: 1, StudentName: "John Doe", StudentID: "STU001", SubmissionDate: "2024-02-18", SubmissionTime: "14:30", FileName: "math_assignment_john.pdf", Status: models.SubmissionGraded, Marks: intPtr(45), Feedback: "Excellent work! Clear explanations and correct solutions."},
		{ID: 2, AssignmentID: 1, StudentName: "Jane Smith", StudentID: "STU002", SubmissionDate: "2024-02-19", SubmissionTime: "16:45", FileName: "math_solutions_jane.pdf", Status: models.SubmissionGraded, Marks: intPtr(42), Feedback: "Good work, but some steps could be clearer."},
		{ID: 3, AssignmentID: 2, StudentName: "Mike Johnson", StudentID: "STU003", SubmissionDate: "2024-02-20", SubmissionTime: "10:15", FileName: "physics_lab_mike.docx", Status: models.SubmissionSubmitted},
		{ID: 4, AssignmentID: 3, StudentName: "Sarah Wilson", StudentID: "STU004", SubmissionDate: "2024-02-14", SubmissionTime: "20:30", FileName: "climate_essay_sarah.pdf", Status: models.SubmissionGraded, Marks: intPtr(88), Feedback: "Well-researched and well-written essay. Great analysis!"},
	}

	s.events = []models.Event{
		{ID: 1, Title: "Science Fair 2024", Description: "Annual science exhibition showcasing student projects and innovations.", Date: "2024-02-15", Time: "09:00", Location: "Main Auditorium", Type: models.EventLive, Participants: 150, MaxParticipants: intPtr(200), Status: models.EventOpen},
		{ID: 2, Title: "Sports Day", Description: "Inter-house sports competition with various athletic events.", Date: "2024-02-20", Time: "08:00", Location: "Sports Ground", Type: models.EventUpcoming, Participants: 89, MaxParticipants: intPtr(300), Status: models.EventOpen},
		{ID: 3, Title: "Cultural Festival", Description: "Celebration of arts, music, and cultural diversity.", Date: "2024-01-30", Time: "18:00", Location: "School Campus", Type: models.EventCompleted, Participants: 245, Status: models.EventClosed},
		{ID: 4, Title: "Math Olympiad", Description: "Regional mathematics competition for talented students.", Date: "2024-02-25", Time: "10:00", Location: "Computer Lab", Type: models.EventUpcoming, Participants: 45, MaxParticipants: intPtr(50), Status: models.EventOpen},
		{ID: 5, Title: "Parent-Teacher Meeting", Description: "Quarterly meeting to discuss student progress.", Date: "2024-01-25", Time: "14:00", Location: "Classrooms", Type: models.EventCompleted, Participants: 180, Status: models.EventClosed},
	}
	s.certificates = []models.Certificate{
		{ID: 1, EventID: 3, EventTitle: "Cultural Festival", StudentName: "John Doe", IssueDate: "2024-02-01", CertificateType: "Participation", Status: models.CertificateIssued},
		{ID: 2, EventID: 3, EventTitle: "Cultural Festival", StudentName: "Jane Smith", IssueDate: "2024-02-01", CertificateType: "Excellence", Status: models.CertificateIssued},
		{ID: 3, EventID: 5, EventTitle: "Parent-Teacher Meeting", StudentName: "Mike Johnson", IssueDate: "2024-01-26", CertificateType: "Attendance", Status: models.CertificatePending},
		{ID: 4, EventID: 1, EventTitle: "Science Fair 2024", StudentName: "Sarah Wilson", IssueDate: "", CertificateType: "Achievement", Status: models.CertificateDraft},
	}

	s.profile = models.StudentProfile{
		ID:         "STU001",
		Name:       "John Doe",
		DOB:        "2007-05-14",
		Gender:     "Male",
		Class:      "10-A",
		RollNumber: 12,
		Email:      "john.doe@student.school.edu",
		Phone:      "+1-555-123-4567",
		Address: models.Address{
			Line1: "123 Main Street", City: "Springfield", State: "Illinois", Zip: "62704", Country: "USA",
		},
		Guardian: models.Guardian{
			Name: "Jane Doe", Relation: "Mother", Phone: "+1-555-987-6543", Email: "jane.doe@parentmail.com",
		},
		AcademicHistory: []models.GradeRecord{
			{Year: "2023", Grade: "A", Remarks: "Excellent performance in all subjects."},
			{Year: "2022", Grade: "A-", Remarks: "Strong in Math and Science, needs improvement in English."},
			{Year: "2021", Grade: "B+", Remarks: "Good overall, participated in Science Fair."},
		},
		Extracurriculars: []models.Extracurricular{
			{Activity: "Basketball Team", Role: "Player", Years: "2022-2024"},
			{Activity: "Science Club", Role: "President", Years: "2023-2024"},
			{Activity: "Math Olympiad", Role: "Participant", Years: "2024"},
		},
		Certificates: []models.Award{
			{Title: "Science Fair Winner", Year: 2023},
			{Title: "Math Olympiad Finalist", Year: 2024},
			{Title: "Perfect Attendance", Year: 2022},
		},
		CIAExams: []models.CIAExam{
			{Exam: "CIA 1", Year: 2024, Marks: []models.ExamMark{
				{Subject: "Mathematics", Score: 48, Max: 50},
				{Subject: "Physics", Score: 44, Max: 50},
				{Subject: "Chemistry", Score: 46, Max: 50},
				{Subject: "English", Score: 42, Max: 50},
				{Subject: "History", Score: 40, Max: 50},
			}},
			{Exam: "CIA 2", Year: 2024, Marks: []models.ExamMark{
				{Subject: "Mathematics", Score: 45, Max: 50},
				{Subject: "Physics", Score: 47, Max: 50},
				{Subject: "Chemistry", Score: 43, Max: 50},
				{Subject: "English", Score: 41, Max: 50},
				{Subject: "History", Score: 39, Max: 50},
			}},
			{Exam: "CIA 3", Year: 2024, Marks: []models.ExamMark{
				{Subject: "Mathematics", Score: 49, Max: 50},
				{Subject: "Physics", Score: 46, Max: 50},
				{Subject: "Chemistry", Score: 48, Max: 50},
				{Subject: "English", Score: 44, Max: 50},
				{Subject: "History", Score: 42, Max: 50},
			}},
		},
	}

	s.adminStats = models.AdminStats{TotalStudents: 1247, TotalTeachers: 89, TotalClasses: 156, AverageAttendance: 94.2}
	s.recentStudents = []models.StudentSummary{
		{ID: 1, Name: "John Doe", Class: "10-A", Attendance: 95, Grade: "A", Status: "Active"},
		{ID: 2, Name: "Jane Smith", Class: "10-B", Attendance: 88, Grade: "B+", Status: "Active"},
		{ID: 3, Name: "Mike Johnson", Class: "9-A", Attendance: 92, Grade: "A-", Status: "Active"},
		{ID: 4, Name: "Sarah Wilson", Class: "11-C", Attendance: 97, Grade: "A+", Status: "Active"},
		{ID: 5, Name: "David Brown", Class: "10-A", Attendance: 85, Grade: "B", Status: "Warning"},
	}
	s.activities = []models.Activity{
		{ID: 1, Action: "New student enrolled", User: "John Doe", Time: "2 hours ago", Type: "enrollment"},
		{ID: 2, Action: "Assignment submitted", User: "Jane Smith", Time: "4 hours ago", Type: "assignment"},
		{ID: 3, Action: "Attendance marked", User: "Class 10-A", Time: "6 hours ago", Type: "attendance"},
		{ID: 4, Action: "Grade updated", User: "Mike Johnson", Time: "8 hours ago", Type: "grade"},
		{ID: 5, Action: "Event scheduled", User: "Science Fair", Time: "1 day ago", Type: "event"},
	}
	s.uploads = nil
}
