package models

type Address struct {
	Line1   string `json:"line1"`
	Line2   string `json:"line2"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

type Guardian struct {
	Name     string `json:"name"`
	Relation string `json:"relation"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}

type GradeRecord struct {
	Year    string `json:"year"`
	Grade   string `json:"grade"`
	Remarks string `json:"remarks"`
}

type Extracurricular struct {
	Activity string `json:"activity"`
	Role     string `json:"role"`
	Years    string `json:"years"`
}

type Award struct {
	Title string `json:"title"`
	Year  int    `json:"year"`
}

type ExamMark struct {
	Subject string `json:"subject"`
	Score   int    `json:"score"`
	Max     int    `json:"max"`
}

// CIAExam is one Continuous Internal Assessment with per-subject scores.
type CIAExam struct {
	Exam  string     `json:"exam"`
	Year  int        `json:"year"`
	Marks []ExamMark `json:"marks"`
}

type StudentProfile struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	DOB              string            `json:"dob"`
	Gender           string            `json:"gender"`
	Class            string            `json:"class"`
	RollNumber       int               `json:"roll_number"`
	Email            string            `json:"email"`
	Phone            string            `json:"phone"`
	Address          Address           `json:"address"`
	Guardian         Guardian          `json:"guardian"`
	AcademicHistory  []GradeRecord     `json:"academic_history"`
	Extracurriculars []Extracurricular `json:"extracurriculars"`
	Certificates     []Award           `json:"certificates"`
	CIAExams         []CIAExam         `json:"cia_exams"`
}

// LatestGrade returns the grade of the first history entry, or "" when empty.
func (p StudentProfile) LatestGrade() string {
	if len(p.AcademicHistory) == 0 {
		return ""
	}
	return p.AcademicHistory[0].Grade
}
