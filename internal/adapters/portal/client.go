package portal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/ecodeclub/ekit/slice"
	"github.com/latifur-rahman/campus-portal-cli/internal/domain"
	"github.com/latifur-rahman/campus-portal-cli/internal/ports"
)

// Doer performs an HTTP request on behalf of the client. In production it
// is the auth service, which attaches the session header and handles the
// single 401 refresh retry.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the student endpoints of the portal backend.
type Client struct {
	baseURL string
	doer    Doer
}

var _ ports.StudentGateway = (*Client)(nil)

func NewClient(baseURL string, doer Doer) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), doer: doer}
}

type personalSchema struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	DateOfBirth      string `json:"date_of_birth"`
	Gender           string `json:"gender"`
	BloodGroup       string `json:"blood_group"`
	Address          string `json:"address"`
	GuardianName     string `json:"guardian_name"`
	GuardianPhone    string `json:"guardian_phone"`
	GuardianRelation string `json:"guardian_relation"`
}

type academicSchema struct {
	Program         string  `json:"program"`
	Department      string  `json:"department"`
	Batch           string  `json:"batch"`
	CurrentSemester string  `json:"current_semester"`
	CreditCompleted float64 `json:"credit_completed"`
	TotalCredits    float64 `json:"total_credits"`
	CGPA            float64 `json:"cgpa"`
	AcademicStatus  string  `json:"academic_status"`
}

type paymentSchema struct {
	TotalPayable  float64 `json:"total_payable"`
	TotalPaid     float64 `json:"total_paid"`
	TotalDue      float64 `json:"total_due"`
	PaymentStatus string  `json:"payment_status"`
}

type paymentRecordSchema struct {
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Method      string  `json:"method"`
}

type semesterSchema struct {
	ID   json.Number `json:"id"`
	Name string      `json:"name"`
}

type courseSchema struct {
	CourseCode  string  `json:"course_code"`
	CourseTitle string  `json:"course_title"`
	Credit      float64 `json:"credit"`
	Grade       string  `json:"grade"`
	GradePoint  float64 `json:"grade_point"`
}

func (c *Client) PersonalInfo(ctx context.Context, studentID string) (domain.PersonalInfo, error) {
	var schema personalSchema
	if err := c.getObject(ctx, c.studentPath(studentID, "personal"), &schema); err != nil {
		return domain.PersonalInfo{}, err
	}

	return domain.PersonalInfo{
		Name:             schema.Name,
		Email:            schema.Email,
		Phone:            schema.Phone,
		DateOfBirth:      schema.DateOfBirth,
		Gender:           schema.Gender,
		BloodGroup:       schema.BloodGroup,
		Address:          schema.Address,
		GuardianName:     schema.GuardianName,
		GuardianPhone:    schema.GuardianPhone,
		GuardianRelation: schema.GuardianRelation,
	}, nil
}

func (c *Client) AcademicInfo(ctx context.Context, studentID string) (domain.AcademicInfo, error) {
	var schema academicSchema
	if err := c.getObject(ctx, c.studentPath(studentID, "academic"), &schema); err != nil {
		return domain.AcademicInfo{}, err
	}

	return domain.AcademicInfo{
		Program:         schema.Program,
		Department:      schema.Department,
		Batch:           schema.Batch,
		CurrentSemester: schema.CurrentSemester,
		CreditCompleted: schema.CreditCompleted,
		TotalCredits:    schema.TotalCredits,
		CGPA:            fmt.Sprintf("%.2f", schema.CGPA),
		Status:          schema.AcademicStatus,
	}, nil
}

func (c *Client) PaymentInfo(ctx context.Context, studentID string) (domain.PaymentInfo, error) {
	var schema paymentSchema
	if err := c.getObject(ctx, c.studentPath(studentID, "payments"), &schema); err != nil {
		return domain.PaymentInfo{}, err
	}

	return domain.PaymentInfo{
		TotalPayable: schema.TotalPayable,
		TotalPaid:    schema.TotalPaid,
		TotalDue:     schema.TotalDue,
		Status:       schema.PaymentStatus,
	}, nil
}

func (c *Client) PaymentHistory(ctx context.Context, studentID string) ([]domain.PaymentRecord, error) {
	rows, err := getList[paymentRecordSchema](ctx, c, c.studentPath(studentID, "payments/history"))
	if err != nil {
		return nil, err
	}

	return slice.Map(rows, func(idx int, src paymentRecordSchema) domain.PaymentRecord {
		return domain.PaymentRecord{
			Date:        src.Date,
			Description: src.Description,
			Amount:      src.Amount,
			Method:      src.Method,
		}
	}), nil
}

func (c *Client) Semesters(ctx context.Context, studentID string) ([]domain.Semester, error) {
	rows, err := getList[semesterSchema](ctx, c, c.studentPath(studentID, "semesters"))
	if err != nil {
		return nil, err
	}

	return slice.Map(rows, func(idx int, src semesterSchema) domain.Semester {
		return domain.Semester{ID: src.ID.String(), Name: src.Name}
	}), nil
}

func (c *Client) SemesterResult(ctx context.Context, studentID, semesterID string) ([]domain.CourseRecord, error) {
	path := c.studentPath(studentID, "semesters/"+url.PathEscape(semesterID)+"/results")
	rows, err := getList[courseSchema](ctx, c, path)
	if err != nil {
		return nil, err
	}

	return slice.Map(rows, func(idx int, src courseSchema) domain.CourseRecord {
		return domain.CourseRecord{
			Code:       src.CourseCode,
			Title:      src.CourseTitle,
			Credit:     src.Credit,
			Grade:      domain.Grade(src.Grade),
			GradePoint: src.GradePoint,
		}
	}), nil
}

func (c *Client) studentPath(studentID, suffix string) string {
	return "/students/" + url.PathEscape(studentID) + "/" + suffix
}

func (c *Client) getObject(ctx context.Context, path string, out any) error {
	payload, err := c.get(ctx, path)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}

	return nil
}

// getList tolerates the backend returning either a single object or an
// array; a lone object is normalized into a one-element list.
func getList[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	payload, err := c.get(ctx, path)
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var many []T
		if err := json.Unmarshal(trimmed, &many); err != nil {
			return nil, fmt.Errorf("decode %s response: %w", path, err)
		}
		return many, nil
	}

	var one T
	if err := json.Unmarshal(trimmed, &one); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", path, err)
	}

	return []T{one}, nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("create %s request: %w", path, err)
	}
	request.Header.Set("Accept", "application/json")

	response, err := c.doer.Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", path, err)
	}
	if response.StatusCode < 200 || response.StatusCode > 299 {
		return nil, &domain.BackendError{
			StatusCode: response.StatusCode,
			Message:    errorMessage(payload, fmt.Sprintf("request failed: %d", response.StatusCode)),
		}
	}

	return payload, nil
}
