package application

import "github.com/latifur-rahman/campus-portal-cli/internal/domain"

// Profile is the combined personal and academic view of the logged-in
// student.
type Profile struct {
	StudentID string
	Personal  domain.PersonalInfo
	Academic  domain.AcademicInfo
}
