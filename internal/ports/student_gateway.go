package ports

import (
	"context"

	"github.com/latifur-rahman/campus-portal-cli/internal/domain"
)

// StudentGateway exposes the backend's per-student read endpoints. The
// session's student ID is the only ID callers pass; authorization beyond
// attaching it is the backend's responsibility.
type StudentGateway interface {
	PersonalInfo(ctx context.Context, studentID string) (domain.PersonalInfo, error)
	AcademicInfo(ctx context.Context, studentID string) (domain.AcademicInfo, error)
	PaymentInfo(ctx context.Context, studentID string) (domain.PaymentInfo, error)
	PaymentHistory(ctx context.Context, studentID string) ([]domain.PaymentRecord, error)
	Semesters(ctx context.Context, studentID string) ([]domain.Semester, error)
	SemesterResult(ctx context.Context, studentID, semesterID string) ([]domain.CourseRecord, error)
}
