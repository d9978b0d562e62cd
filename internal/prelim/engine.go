package prelim

import "fmt"

// Result is recomputed in full on every call; nothing is cached between calls.
// When AutoFailed is set only the attendance counts are meaningful.
type Result struct {
	Attendance            float64 `json:"attendance"`
	ExcusedAbsences       float64 `json:"excused_absences"`
	TotalClassesThatCount float64 `json:"total_classes_that_count"`
	UnexcusedAbsences     float64 `json:"unexcused_absences"`
	AutoFailed            bool    `json:"auto_failed"`

	Lab1 float64 `json:"lab1"`
	Lab2 float64 `json:"lab2"`
	Lab3 float64 `json:"lab3"`

	AttendanceScore float64 `json:"attendance_score"`
	LabWorkAverage  float64 `json:"lab_work_average"`
	ClassStanding   float64 `json:"class_standing"`
	// PointsSecured is the class standing's share of the final grade.
	PointsSecured        float64 `json:"points_secured"`
	RequiredForPassing   float64 `json:"required_for_passing"`
	RequiredForExcellent float64 `json:"required_for_excellent"`
}

// Compute derives the prelim exam scores needed for the passing and
// excellent grades. Rounding is left to presentation.
func Compute(v Validated, cfg Config) Result {
	in := v.in
	excused := in.ExcusedAbsences
	if !cfg.ExcusedAbsences {
		excused = 0
	}

	counted := float64(cfg.TotalClasses) - excused
	res := Result{
		Attendance:            in.Attendance,
		ExcusedAbsences:       excused,
		TotalClassesThatCount: counted,
		UnexcusedAbsences:     counted - in.Attendance,
		Lab1:                  in.Lab1,
		Lab2:                  in.Lab2,
		Lab3:                  in.Lab3,
	}

	if cfg.AutoFail && res.UnexcusedAbsences >= float64(cfg.AutoFailThreshold) {
		res.AutoFailed = true
		return res
	}

	// No counted classes means full attendance credit.
	res.AttendanceScore = 100
	if counted > 0 {
		res.AttendanceScore = in.Attendance / counted * 100
	}
	res.LabWorkAverage = LabAverage(in.Lab1, in.Lab2, in.Lab3)
	res.ClassStanding = res.AttendanceScore*cfg.AttendanceWeight + res.LabWorkAverage*cfg.LabWorkWeight
	res.PointsSecured = res.ClassStanding * cfg.ClassStandingWeight
	res.RequiredForPassing = cfg.RequiredFor(cfg.PassingGrade, res.ClassStanding)
	res.RequiredForExcellent = cfg.RequiredFor(cfg.ExcellentGrade, res.ClassStanding)
	return res
}

func LabAverage(lab1, lab2, lab3 float64) float64 {
	return (lab1 + lab2 + lab3) / 3
}

// Calculate validates in, computes the result and derives its remarks.
func Calculate(in Input, cfg Config) (Result, RemarkSet, error) {
	if err := cfg.Check(); err != nil {
		return Result{}, RemarkSet{}, fmt.Errorf("config %s: %w", cfg.Variant, err)
	}
	v, err := Validate(in, cfg)
	if err != nil {
		return Result{}, RemarkSet{}, err
	}
	res := Compute(v, cfg)
	return res, Remarks(res, cfg), nil
}
