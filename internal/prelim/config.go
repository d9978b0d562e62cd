// Package prelim works out the prelim exam score a student needs to pass or
// reach an excellent grade, from attendance and lab work.
package prelim

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

type Variant string

const (
	// VariantExcused models excused absences, verification and auto-fail (5 classes).
	VariantExcused Variant = "excused"
	// VariantStandard is the plain 15-class calculator.
	VariantStandard Variant = "standard"
)

var ErrUnknownVariant = errors.New("unknown variant")

// Config is fixed per deployment; callers never edit it at runtime.
type Config struct {
	Variant      Variant `json:"variant"`
	TotalClasses int     `json:"total_classes"`

	PrelimExamWeight    float64 `json:"prelim_exam_weight"`
	ClassStandingWeight float64 `json:"class_standing_weight"`
	AttendanceWeight    float64 `json:"attendance_weight"`
	LabWorkWeight       float64 `json:"lab_work_weight"`

	PassingGrade   float64 `json:"passing_grade"`
	ExcellentGrade float64 `json:"excellent_grade"`

	ExcusedAbsences   bool `json:"excused_absences"`
	AutoFail          bool `json:"auto_fail"`
	AutoFailThreshold int  `json:"auto_fail_threshold,omitempty"`

	// SecuredInclusive treats a required score of exactly 0 as already secured.
	SecuredInclusive bool `json:"secured_inclusive"`
	// Advisory adds improvement advice to an unreachable passing remark.
	Advisory bool `json:"advisory"`
}

func base() Config {
	return Config{
		PrelimExamWeight:    0.30,
		ClassStandingWeight: 0.70,
		AttendanceWeight:    0.40,
		LabWorkWeight:       0.60,
		PassingGrade:        75,
		ExcellentGrade:      100,
	}
}

// ExcusedConfig returns the five-class variant with excused absences and auto-fail.
func ExcusedConfig() Config {
	c := base()
	c.Variant = VariantExcused
	c.TotalClasses = 5
	c.ExcusedAbsences = true
	c.AutoFail = true
	c.AutoFailThreshold = 4
	c.SecuredInclusive = true
	c.Advisory = true
	return c
}

// StandardConfig returns the fifteen-class variant.
func StandardConfig() Config {
	c := base()
	c.Variant = VariantStandard
	c.TotalClasses = 15
	return c
}

func ConfigFor(v Variant) (Config, error) {
	var cfg Config
	switch Variant(strings.ToLower(strings.TrimSpace(string(v)))) {
	case VariantExcused:
		cfg = ExcusedConfig()
	case VariantStandard:
		cfg = StandardConfig()
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownVariant, v)
	}
	return cfg, cfg.Check()
}

// Variants lists every built-in config, excused first.
func Variants() []Config {
	return []Config{ExcusedConfig(), StandardConfig()}
}

const weightTolerance = 1e-9

// Check reports a config the engine cannot work with.
func (c Config) Check() error {
	if c.TotalClasses <= 0 {
		return fmt.Errorf("total classes must be positive, got %d", c.TotalClasses)
	}
	if c.PrelimExamWeight <= 0 {
		return fmt.Errorf("prelim exam weight must be positive, got %v", c.PrelimExamWeight)
	}
	if math.Abs(c.PrelimExamWeight+c.ClassStandingWeight-1) > weightTolerance {
		return fmt.Errorf("prelim exam and class standing weights must sum to 1, got %v", c.PrelimExamWeight+c.ClassStandingWeight)
	}
	if math.Abs(c.AttendanceWeight+c.LabWorkWeight-1) > weightTolerance {
		return fmt.Errorf("attendance and lab work weights must sum to 1, got %v", c.AttendanceWeight+c.LabWorkWeight)
	}
	if c.AutoFail && c.AutoFailThreshold < 1 {
		return fmt.Errorf("auto-fail threshold must be at least 1, got %d", c.AutoFailThreshold)
	}
	return nil
}

// FinalGrade is the forward formula the required scores invert.
func (c Config) FinalGrade(prelimExam, classStanding float64) float64 {
	return prelimExam*c.PrelimExamWeight + classStanding*c.ClassStandingWeight
}

// RequiredFor solves FinalGrade for the prelim exam score reaching target.
func (c Config) RequiredFor(target, classStanding float64) float64 {
	return (target - classStanding*c.ClassStandingWeight) / c.PrelimExamWeight
}
