package domain

import (
	"fmt"
	"math"
	"strconv"
)

// ResultAggregate is the display-ready semester result derived from a set
// of course records. It has no identity of its own and is recomputed on
// every fetch.
type ResultAggregate struct {
	StudentID   string
	Semester    string
	Courses     []CourseRecord
	TotalCredit float64
	SGPA        string
}

// ComputeSGPA returns the credit-weighted mean of grade points, formatted
// to two decimal places. Empty input and all-zero-credit input both yield
// "0.00" instead of dividing by zero.
func ComputeSGPA(courses []CourseRecord) string {
	if len(courses) == 0 {
		return "0.00"
	}

	var totalPoints, totalCredits float64
	for _, course := range courses {
		totalPoints += course.GradePoint * course.Credit
		totalCredits += course.Credit
	}
	if totalCredits == 0 {
		return "0.00"
	}

	return formatPoint(totalPoints / totalCredits)
}

// BuildResultAggregate assigns 1-based serials in input order, sums credits
// and computes the SGPA. No course is dropped, deduplicated or re-sorted.
func BuildResultAggregate(studentID, semesterLabel string, courses []CourseRecord) ResultAggregate {
	records := make([]CourseRecord, len(courses))
	var totalCredit float64
	for i, course := range courses {
		course.Serial = i + 1
		records[i] = course
		totalCredit += course.Credit
	}

	return ResultAggregate{
		StudentID:   studentID,
		Semester:    semesterLabel,
		Courses:     records,
		TotalCredit: totalCredit,
		SGPA:        ComputeSGPA(records),
	}
}

// SGPAStanding labels an SGPA for display, per the grading scale remarks.
func SGPAStanding(sgpa string) string {
	value, err := strconv.ParseFloat(sgpa, 64)
	if err != nil {
		return "Unknown"
	}

	switch {
	case value >= 3.75:
		return "Excellent"
	case value >= 3.50:
		return "Very Good"
	case value >= 3.25:
		return "Good"
	case value >= 3.00:
		return "Satisfactory"
	case value >= 2.00:
		return "Pass"
	default:
		return "Needs Improvement"
	}
}

func formatPoint(value float64) string {
	rounded := math.Round(value*100) / 100
	return fmt.Sprintf("%.2f", rounded)
}
