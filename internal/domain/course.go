package domain

type Grade string

const (
	GradeAPlus  Grade = "A+"
	GradeA      Grade = "A"
	GradeAMinus Grade = "A-"
	GradeBPlus  Grade = "B+"
	GradeB      Grade = "B"
	GradeBMinus Grade = "B-"
	GradeCPlus  Grade = "C+"
	GradeC      Grade = "C"
	GradeD      Grade = "D"
	GradeF      Grade = "F"
)

// GradeBand groups letter grades for display coloring.
type GradeBand string

const (
	BandA       GradeBand = "a"
	BandB       GradeBand = "b"
	BandC       GradeBand = "c"
	BandD       GradeBand = "d"
	BandF       GradeBand = "f"
	BandUnknown GradeBand = "unknown"
)

// ClassifyGrade is total: any string outside the grading scale maps to
// BandUnknown rather than failing.
func ClassifyGrade(grade Grade) GradeBand {
	switch grade {
	case GradeAPlus, GradeA, GradeAMinus:
		return BandA
	case GradeBPlus, GradeB, GradeBMinus:
		return BandB
	case GradeCPlus, GradeC:
		return BandC
	case GradeD:
		return BandD
	case GradeF:
		return BandF
	default:
		return BandUnknown
	}
}

// CourseRecord is one graded course entry of a semester result.
// Serial is the 1-based display position assigned in input order.
type CourseRecord struct {
	Serial     int
	Code       string
	Title      string
	Credit     float64
	Grade      Grade
	GradePoint float64
}

type GradingScaleRow struct {
	Marks      string
	Grade      Grade
	GradePoint string
	Remarks    string
}

// GradingScale is the UGC uniform grading system, effective from Summer
// Semester 2007.
var GradingScale = []GradingScaleRow{
	{Marks: "80-100", Grade: GradeAPlus, GradePoint: "4.00", Remarks: "Outstanding"},
	{Marks: "75-79", Grade: GradeA, GradePoint: "3.75", Remarks: "Excellent"},
	{Marks: "70-74", Grade: GradeAMinus, GradePoint: "3.50", Remarks: "Very Good"},
	{Marks: "65-69", Grade: GradeBPlus, GradePoint: "3.25", Remarks: "Good"},
	{Marks: "60-64", Grade: GradeB, GradePoint: "3.00", Remarks: "Satisfactory"},
	{Marks: "55-59", Grade: GradeBMinus, GradePoint: "2.75", Remarks: "Above Average"},
	{Marks: "50-54", Grade: GradeCPlus, GradePoint: "2.50", Remarks: "Average"},
	{Marks: "45-49", Grade: GradeC, GradePoint: "2.25", Remarks: "Below Average"},
	{Marks: "40-44", Grade: GradeD, GradePoint: "2.00", Remarks: "Pass"},
	{Marks: "00-39", Grade: GradeF, GradePoint: "0.00", Remarks: "Fail"},
}
