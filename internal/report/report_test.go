package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/m4tt143/Prog2-9302-AY225-TANCHINGCO/internal/prelim"
)

func run(t *testing.T, cfg prelim.Config, in prelim.Input) string {
	t.Helper()
	v, err := prelim.Validate(in, cfg)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	res := prelim.Compute(v, cfg)
	var buf bytes.Buffer
	if err := Write(&buf, cfg, res, prelim.Remarks(res, cfg)); err != nil {
		t.Fatalf("write: %v", err)
	}
	return buf.String()
}

func TestWrite_Standard(t *testing.T) {
	out := run(t, prelim.StandardConfig(), prelim.Input{Attendance: 12, Lab1: 85, Lab2: 90, Lab3: 80})

	for _, want := range []string{
		"INPUT SUMMARY",
		"Attendances:       12 / 15 (80.00%)",
		"Lab Work Average:  85.00",
		"Class Standing:    83.00",
		"To Pass (75):      56.33",
		"Excellent (100):   139.67",
		"[PASS] You need 16.90 more points to reach 75.",
		"[EXCELLENT] Not achievable.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}

func TestWrite_ExcusedShowsCountedClasses(t *testing.T) {
	out := run(t, prelim.ExcusedConfig(), prelim.Input{Attendance: 4, ExcusedAbsences: 1, Verified: true, Lab1: 90, Lab2: 90, Lab3: 90})
	if !strings.Contains(out, "4 / 4 (100.00%) | Excused: 1") {
		t.Errorf("unexpected attendance line:\n%s", out)
	}
}

func TestWrite_AutoFail(t *testing.T) {
	out := run(t, prelim.ExcusedConfig(), prelim.Input{Attendance: 0, Lab1: 100, Lab2: 100, Lab3: 100})
	if !strings.Contains(out, "AUTOMATIC FAILURE") || !strings.Contains(out, "Unexcused absences: 5") {
		t.Errorf("unexpected auto-fail output:\n%s", out)
	}
	if strings.Contains(out, "REQUIRED PRELIM EXAM SCORES") {
		t.Error("auto-fail output must not show required scores")
	}
}

func TestErrors(t *testing.T) {
	var buf bytes.Buffer
	Errors(&buf, &prelim.ValidationError{Fields: []prelim.FieldError{{Field: "lab2", Message: "grade must be between 0 and 100"}}})
	if got := buf.String(); got != "  x lab2: grade must be between 0 and 100\n" {
		t.Errorf("got %q", got)
	}
}
