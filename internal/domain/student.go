package domain

// UserInfo is the identity derived from the current session token.
type UserInfo struct {
	StudentID  string
	Name       string
	Email      string
	Department string
}

type PersonalInfo struct {
	Name             string
	Email            string
	Phone            string
	DateOfBirth      string
	Gender           string
	BloodGroup       string
	Address          string
	GuardianName     string
	GuardianPhone    string
	GuardianRelation string
}

type AcademicInfo struct {
	Program         string
	Department      string
	Batch           string
	CurrentSemester string
	CreditCompleted float64
	TotalCredits    float64
	CGPA            string
	Status          string
}

type PaymentInfo struct {
	TotalPayable float64
	TotalPaid    float64
	TotalDue     float64
	Status       string
}

type PaymentRecord struct {
	Date        string
	Description string
	Amount      float64
	Method      string
}

type Semester struct {
	ID   string
	Name string
}
