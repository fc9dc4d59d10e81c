package application

import (
	"context"
	"fmt"

	"github.com/latifur-rahman/campus-portal-cli/internal/domain"
	"github.com/latifur-rahman/campus-portal-cli/internal/ports"
)

// StudentService fetches a student's records through the gateway and
// assembles display-ready aggregates. All calls act on the logged-in
// student; the session is the sole source of the ID.
type StudentService struct {
	gateway ports.StudentGateway
	auth    *AuthService
}

func NewStudentService(gateway ports.StudentGateway, auth *AuthService) *StudentService {
	return &StudentService{gateway: gateway, auth: auth}
}

func (s *StudentService) Profile(ctx context.Context) (Profile, error) {
	user, err := s.auth.CurrentUser(ctx)
	if err != nil {
		return Profile{}, err
	}

	personal, err := s.gateway.PersonalInfo(ctx, user.StudentID)
	if err != nil {
		return Profile{}, fmt.Errorf("fetch personal info: %w", err)
	}

	academic, err := s.gateway.AcademicInfo(ctx, user.StudentID)
	if err != nil {
		return Profile{}, fmt.Errorf("fetch academic info: %w", err)
	}

	return Profile{StudentID: user.StudentID, Personal: personal, Academic: academic}, nil
}

func (s *StudentService) Payments(ctx context.Context) (domain.PaymentInfo, error) {
	user, err := s.auth.CurrentUser(ctx)
	if err != nil {
		return domain.PaymentInfo{}, err
	}

	info, err := s.gateway.PaymentInfo(ctx, user.StudentID)
	if err != nil {
		return domain.PaymentInfo{}, fmt.Errorf("fetch payment info: %w", err)
	}

	return info, nil
}

func (s *StudentService) PaymentHistory(ctx context.Context) ([]domain.PaymentRecord, error) {
	user, err := s.auth.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.gateway.PaymentHistory(ctx, user.StudentID)
	if err != nil {
		return nil, fmt.Errorf("fetch payment history: %w", err)
	}

	return records, nil
}

func (s *StudentService) Semesters(ctx context.Context) ([]domain.Semester, error) {
	user, err := s.auth.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	semesters, err := s.gateway.Semesters(ctx, user.StudentID)
	if err != nil {
		return nil, fmt.Errorf("fetch semesters: %w", err)
	}

	return semesters, nil
}

// SemesterResult aggregates one semester's courses. An empty semesterID
// selects the first available semester, matching the portal's auto-select.
func (s *StudentService) SemesterResult(ctx context.Context, semesterID string) (domain.ResultAggregate, error) {
	user, err := s.auth.CurrentUser(ctx)
	if err != nil {
		return domain.ResultAggregate{}, err
	}

	semesters, err := s.gateway.Semesters(ctx, user.StudentID)
	if err != nil {
		return domain.ResultAggregate{}, fmt.Errorf("fetch semesters: %w", err)
	}

	label := ""
	if semesterID == "" {
		if len(semesters) == 0 {
			return domain.ResultAggregate{}, fmt.Errorf("no semesters available")
		}
		semesterID = semesters[0].ID
	}
	for _, semester := range semesters {
		if semester.ID == semesterID {
			label = semester.Name
			break
		}
	}
	if label == "" {
		label = "Semester " + semesterID
	}

	courses, err := s.gateway.SemesterResult(ctx, user.StudentID, semesterID)
	if err != nil {
		return domain.ResultAggregate{}, fmt.Errorf("fetch semester result: %w", err)
	}

	return domain.BuildResultAggregate(user.StudentID, label, courses), nil
}
