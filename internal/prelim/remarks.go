package prelim

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MaxExamScore is the highest prelim exam score a student can get.
const MaxExamScore = 100

type Category string

const (
	Unreachable Category = "unreachable"
	Secured     Category = "secured"
	Achievable  Category = "achievable"
)

type Target string

const (
	TargetPassing   Target = "passing"
	TargetExcellent Target = "excellent"
)

type Remark struct {
	Target   Target   `json:"target"`
	Grade    float64  `json:"grade"`
	Category Category `json:"category"`
	Required float64  `json:"required"`
	// Deficit is how many final-grade points the class standing leaves missing.
	Deficit float64 `json:"deficit"`
	Advice  string  `json:"advice,omitempty"`
	Message string  `json:"message"`
}

type RemarkSet struct {
	AutoFailed  bool     `json:"auto_failed"`
	AutoFail    string   `json:"auto_fail,omitempty"`
	Explanation string   `json:"explanation,omitempty"`
	Items       []Remark `json:"items,omitempty"`
}

// Get returns the remark for target, if present.
func (s RemarkSet) Get(t Target) (Remark, bool) {
	for _, r := range s.Items {
		if r.Target == t {
			return r, true
		}
	}
	return Remark{}, false
}

// Format renders v to two decimal places.
func Format(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// Short drops trailing zeros after rounding to two decimals: 30, 0.3, 12.5.
func Short(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

func percent(w float64) string {
	return Short(w*100) + "%"
}

// Classify applies cfg's boundaries to a required exam score.
func Classify(required float64, cfg Config) Category {
	switch {
	case required > MaxExamScore:
		return Unreachable
	case required < 0, cfg.SecuredInclusive && required == 0:
		return Secured
	default:
		return Achievable
	}
}

// Remarks explains res for the passing and excellent targets. An auto-failed
// result gets the fixed failure message instead.
func Remarks(res Result, cfg Config) RemarkSet {
	if res.AutoFailed {
		return RemarkSet{AutoFailed: true, AutoFail: autoFailMessage(res, cfg)}
	}
	set := RemarkSet{
		Explanation: fmt.Sprintf(
			"Final Grade = (Prelim Exam × %s) + (Class Standing × %s). With a Class Standing of %s, you already have %s points secured (%s × %s).",
			percent(cfg.PrelimExamWeight), percent(cfg.ClassStandingWeight),
			Format(res.ClassStanding), Format(res.PointsSecured),
			Format(res.ClassStanding), percent(cfg.ClassStandingWeight)),
	}
	set.Items = append(set.Items,
		remarkFor(TargetPassing, cfg.PassingGrade, res.RequiredForPassing, res, cfg),
		remarkFor(TargetExcellent, cfg.ExcellentGrade, res.RequiredForExcellent, res, cfg),
	)
	return set
}

func remarkFor(t Target, grade, required float64, res Result, cfg Config) Remark {
	r := Remark{
		Target:   t,
		Grade:    grade,
		Category: Classify(required, cfg),
		Required: required,
		Deficit:  grade - res.PointsSecured,
	}
	maxPoints := Short(MaxExamScore * cfg.PrelimExamWeight)
	deficit := Format(r.Deficit)
	g := Short(grade)

	switch {
	case r.Category == Unreachable && t == TargetPassing:
		if cfg.Advisory {
			r.Advice = advice(res.AttendanceScore, res.LabWorkAverage)
		}
		r.Message = fmt.Sprintf("Impossible. You need %s more points, but the Prelim Exam can only give you %s points maximum (%d × %s).",
			deficit, maxPoints, MaxExamScore, percent(cfg.PrelimExamWeight))
		if r.Advice != "" {
			r.Message += " " + r.Advice
		}
	case r.Category == Unreachable:
		r.Message = fmt.Sprintf("Not achievable. You would need %s more points, but the Prelim Exam can only provide %s points maximum.",
			deficit, maxPoints)
	case r.Category == Secured && t == TargetPassing:
		r.Message = fmt.Sprintf("You're already guaranteed to pass! Your %s points already reach %s. Even with 0 on the Prelim Exam, you'll pass.",
			Format(res.PointsSecured), g)
	case r.Category == Secured:
		r.Message = "Already guaranteed! You've achieved excellent standing."
	case t == TargetPassing:
		r.Message = fmt.Sprintf("You need %s more points to reach %s. Since the Prelim Exam is worth %s of your grade, you need to score %s/%d on the Prelim Exam (%s ÷ %s = %s).",
			deficit, g, percent(cfg.PrelimExamWeight), Format(required), MaxExamScore,
			deficit, Format(cfg.PrelimExamWeight), Format(required))
	default:
		r.Message = fmt.Sprintf("You need %s more points to reach %s. You must score %s/%d on the Prelim Exam.",
			deficit, g, Format(required), MaxExamScore)
	}
	return r
}

const adviceThreshold, strongThreshold = 80, 90

// advice points at the weaker component. Attendance is checked first, then
// lab work, then both together.
func advice(attendanceScore, labAverage float64) string {
	switch {
	case attendanceScore < adviceThreshold && labAverage >= strongThreshold:
		return "Focus on improving your attendance."
	case labAverage < adviceThreshold && attendanceScore >= strongThreshold:
		return "Focus on improving your lab work grades."
	case attendanceScore < adviceThreshold && labAverage < adviceThreshold:
		return "Focus on improving both attendance and lab work."
	default:
		return "Focus on improving attendance and lab work."
	}
}

func autoFailMessage(res Result, cfg Config) string {
	lines := []string{
		"AUTOMATIC FAILURE",
		"Classes held: " + Short(res.TotalClassesThatCount),
		"You attended: " + Short(res.Attendance),
		"Unexcused absences: " + Short(res.UnexcusedAbsences),
		fmt.Sprintf("Having %d or more unexcused absences results in automatic failure.", cfg.AutoFailThreshold),
	}
	if cfg.ExcusedAbsences {
		lines = append(lines, "Note: Excused absences do not count against you.")
	}
	return strings.Join(lines, "\n")
}
