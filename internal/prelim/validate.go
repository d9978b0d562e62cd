package prelim

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Input holds raw calculator values. NaN or an infinity marks a value that
// did not parse to a number.
type Input struct {
	Attendance      float64 `json:"attendance"`
	ExcusedAbsences float64 `json:"excused_absences"`
	Lab1            float64 `json:"lab1"`
	Lab2            float64 `json:"lab2"`
	Lab3            float64 `json:"lab3"`
	Verified        bool    `json:"verified"`
}

// RawInput is form-style input as typed by a user.
type RawInput struct {
	Attendance      string
	ExcusedAbsences string
	Lab1            string
	Lab2            string
	Lab3            string
	Verified        bool
}

// ParseInput converts text fields. An empty excused-absence field means 0;
// anything else that does not parse becomes NaN and fails validation.
func ParseInput(raw RawInput) Input {
	excused := 0.0
	if strings.TrimSpace(raw.ExcusedAbsences) != "" {
		excused = ParseNumber(raw.ExcusedAbsences)
	}
	return Input{
		Attendance:      ParseNumber(raw.Attendance),
		ExcusedAbsences: excused,
		Lab1:            ParseNumber(raw.Lab1),
		Lab2:            ParseNumber(raw.Lab2),
		Lab3:            ParseNumber(raw.Lab3),
		Verified:        raw.Verified,
	}
}

// ParseNumber returns NaN when s is not a number.
func ParseNumber(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

type ErrorCode string

const (
	CodeNotANumber           ErrorCode = "not_a_number"
	CodeOutOfRange           ErrorCode = "out_of_range"
	CodeAttendanceOverflow   ErrorCode = "attendance_overflow"
	CodeVerificationRequired ErrorCode = "verification_required"
)

// Field names reported in FieldError.
const (
	FieldAttendance      = "attendance"
	FieldExcusedAbsences = "excused_absences"
	FieldLab1            = "lab1"
	FieldLab2            = "lab2"
	FieldLab3            = "lab3"
	FieldVerified        = "verified"
)

type FieldError struct {
	Field   string    `json:"field"`
	Code    ErrorCode `json:"code"`
	Min     float64   `json:"min"`
	Max     float64   `json:"max"`
	Message string    `json:"message"`
}

func (e FieldError) Error() string { return e.Field + ": " + e.Message }

// ValidationError carries every violated field of one Validate call.
type ValidationError struct {
	Fields []FieldError `json:"errors"`
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Error())
	}
	return "invalid input: " + strings.Join(msgs, "; ")
}

// Has reports whether any field failed with code.
func (e *ValidationError) Has(code ErrorCode) bool {
	for _, f := range e.Fields {
		if f.Code == code {
			return true
		}
	}
	return false
}

// Validated is an Input that passed Validate for a given config.
type Validated struct {
	in Input
}

func (v Validated) Input() Input { return v.in }

// Validate bounds-checks in against cfg and collects all violations.
func Validate(in Input, cfg Config) (Validated, error) {
	var errs []FieldError
	total := float64(cfg.TotalClasses)

	attendanceOK := checkRange(&errs, FieldAttendance, in.Attendance, 0, total,
		fmt.Sprintf("attendance must be between 0 and %d", cfg.TotalClasses))

	excused := in.ExcusedAbsences
	var excusedOK bool
	if cfg.ExcusedAbsences {
		excusedOK = checkRange(&errs, FieldExcusedAbsences, excused, 0, total,
			fmt.Sprintf("excused absences must be between 0 and %d", cfg.TotalClasses))
	} else {
		excusedOK = checkRange(&errs, FieldExcusedAbsences, excused, 0, 0,
			"excused absences are not tracked for this calculator")
	}

	if attendanceOK && excusedOK && in.Attendance+excused > total {
		errs = append(errs, FieldError{
			Field:   FieldExcusedAbsences,
			Code:    CodeAttendanceOverflow,
			Max:     total,
			Message: fmt.Sprintf("attendance plus excused absences cannot exceed %d", cfg.TotalClasses),
		})
	}

	if cfg.ExcusedAbsences && excused > 0 && !in.Verified {
		errs = append(errs, FieldError{
			Field:   FieldVerified,
			Code:    CodeVerificationRequired,
			Message: "excused absences must be verified by the instructor",
		})
	}

	for _, lab := range []struct {
		field string
		v     float64
	}{{FieldLab1, in.Lab1}, {FieldLab2, in.Lab2}, {FieldLab3, in.Lab3}} {
		checkRange(&errs, lab.field, lab.v, 0, 100, "grade must be between 0 and 100")
	}

	if len(errs) > 0 {
		return Validated{}, &ValidationError{Fields: errs}
	}
	if !cfg.ExcusedAbsences {
		in.ExcusedAbsences = 0
	}
	return Validated{in: in}, nil
}

func checkRange(errs *[]FieldError, field string, v, lo, hi float64, msg string) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		*errs = append(*errs, FieldError{Field: field, Code: CodeNotANumber, Message: "please enter a valid number"})
		return false
	}
	if v < lo || v > hi {
		*errs = append(*errs, FieldError{Field: field, Code: CodeOutOfRange, Min: lo, Max: hi, Message: msg})
		return false
	}
	return true
}
