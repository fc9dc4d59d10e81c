package result

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/latifur-rahman/campus-portal-cli/internal/domain"
)

type RenderOptions struct {
	// ShowStanding appends the SGPA standing label to the footer.
	ShowStanding bool
}

func renderView(aggregate domain.ResultAggregate, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render(fmt.Sprintf("Result of %s", aggregate.Semester)),
		s.header.Render(fmt.Sprintf("student: %s    courses: %d", aggregate.StudentID, len(aggregate.Courses))),
	}

	if len(aggregate.Courses) == 0 {
		lines = append(lines, s.empty.Render("No course records for this semester."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	titleWidth := len("Course Title")
	for _, course := range aggregate.Courses {
		if len(course.Title) > titleWidth {
			titleWidth = len(course.Title)
		}
	}

	head := fmt.Sprintf("%3s  %-12s  %-*s  %6s  %5s  %11s",
		"SL", "Course Code", titleWidth, "Course Title", "Credit", "Grade", "Grade Point")
	lines = append(lines, s.columnHead.Render(head))

	for i, course := range aggregate.Courses {
		rowStyle := s.row
		if i%2 == 1 {
			rowStyle = s.rowAlt
		}

		left := rowStyle.Render(fmt.Sprintf("%3d  %-12s  %-*s  %6.2f  ",
			course.Serial, course.Code, titleWidth, course.Title, course.Credit))
		grade := s.gradeStyle(domain.ClassifyGrade(course.Grade)).Render(fmt.Sprintf("%5s", course.Grade))
		right := rowStyle.Render(fmt.Sprintf("  %11.2f", course.GradePoint))

		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, left, grade, right))
	}

	footer := s.footer.Render(fmt.Sprintf("Total Credit: %.2f    SGPA: ", aggregate.TotalCredit)) +
		s.sgpa.Render(aggregate.SGPA)
	if opts.ShowStanding {
		footer += s.standing.Render(fmt.Sprintf(" (%s)", domain.SGPAStanding(aggregate.SGPA)))
	}
	lines = append(lines, footer)

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// RenderGradingScale prints the static grading reference table.
func RenderGradingScale() string {
	s := newStyles()

	lines := []string{
		s.title.Render("UGC Uniform Grading System"),
		s.columnHead.Render(fmt.Sprintf("%-9s  %-5s  %-11s  %s", "Marks (%)", "Grade", "Grade Point", "Remarks")),
	}

	for _, row := range domain.GradingScale {
		grade := s.gradeStyle(domain.ClassifyGrade(row.Grade)).Render(fmt.Sprintf("%-5s", row.Grade))
		line := lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.row.Render(fmt.Sprintf("%-9s  ", row.Marks)),
			grade,
			s.row.Render(fmt.Sprintf("  %-11s  %s", row.GradePoint, row.Remarks)),
		)
		lines = append(lines, line)
	}

	lines = append(lines, s.standing.Render("Effective from Summer Semester 2007"))

	return strings.Join(lines, "\n")
}
