package prelim

import (
	"strings"
	"testing"
)

func remark(t *testing.T, set RemarkSet, target Target) Remark {
	t.Helper()
	r, ok := set.Get(target)
	if !ok {
		t.Fatalf("no %s remark in %+v", target, set)
	}
	return r
}

func TestClassify_Boundaries(t *testing.T) {
	excused, standard := ExcusedConfig(), StandardConfig()
	cases := []struct {
		required float64
		cfg      Config
		want     Category
	}{
		{100.01, excused, Unreachable},
		{100, excused, Achievable},
		{0.01, excused, Achievable},
		{0, excused, Secured},
		{0, standard, Achievable},
		{-0.01, standard, Secured},
		{-0.01, excused, Secured},
		{250, standard, Unreachable},
	}
	for _, tc := range cases {
		if got := Classify(tc.required, tc.cfg); got != tc.want {
			t.Errorf("Classify(%v, %s) = %s, want %s", tc.required, tc.cfg.Variant, got, tc.want)
		}
	}
}

func TestRemarks_Achievable(t *testing.T) {
	cfg := ExcusedConfig()
	res := Compute(mustValidate(t, Input{Attendance: 4, ExcusedAbsences: 1, Verified: true, Lab1: 90, Lab2: 90, Lab3: 90}, cfg), cfg)
	set := Remarks(res, cfg)

	if set.AutoFailed {
		t.Fatal("unexpected auto-fail")
	}
	if !strings.Contains(set.Explanation, "65.80 points secured") {
		t.Errorf("explanation = %q", set.Explanation)
	}
	pass := remark(t, set, TargetPassing)
	if pass.Category != Achievable {
		t.Fatalf("passing category = %s", pass.Category)
	}
	if !strings.Contains(pass.Message, "30.67/100") || !strings.Contains(pass.Message, "9.20 more points") {
		t.Errorf("passing message = %q", pass.Message)
	}
	exc := remark(t, set, TargetExcellent)
	if exc.Category != Unreachable {
		t.Errorf("excellent category = %s (required %v)", exc.Category, exc.Required)
	}
	if exc.Advice != "" {
		t.Errorf("advice only belongs to the passing target, got %q", exc.Advice)
	}
}

func TestRemarks_UnreachableWithDeficit(t *testing.T) {
	cfg := StandardConfig()
	res := Compute(mustValidate(t, Input{}, cfg), cfg)
	set := Remarks(res, cfg)

	pass := remark(t, set, TargetPassing)
	if pass.Category != Unreachable {
		t.Fatalf("category = %s", pass.Category)
	}
	assertApprox(t, "Deficit", pass.Deficit, 75, 0)
	if !strings.Contains(pass.Message, "75.00 more points") || !strings.Contains(pass.Message, "30 points maximum") {
		t.Errorf("message = %q", pass.Message)
	}
	if pass.Advice != "" {
		t.Errorf("standard config gives no advice, got %q", pass.Advice)
	}
	exc := remark(t, set, TargetExcellent)
	if exc.Category != Unreachable || !strings.Contains(exc.Message, "Not achievable") {
		t.Errorf("excellent = %+v", exc)
	}
}

func TestRemarks_Advice(t *testing.T) {
	cfg := ExcusedConfig()
	cases := []struct {
		name            string
		attendance, lab float64
		want            string
	}{
		{"attendance", 50, 95, "Focus on improving your attendance."},
		{"lab", 95, 10, "Focus on improving your lab work grades."},
		{"both", 50, 10, "Focus on improving both attendance and lab work."},
		{"generic", 85, 85, "Focus on improving attendance and lab work."},
		{"attendance low lab middling", 50, 85, "Focus on improving attendance and lab work."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := Result{AttendanceScore: tc.attendance, LabWorkAverage: tc.lab, RequiredForPassing: 150, RequiredForExcellent: 200}
			pass := remark(t, Remarks(res, cfg), TargetPassing)
			if pass.Advice != tc.want {
				t.Errorf("advice = %q, want %q", pass.Advice, tc.want)
			}
			if !strings.HasSuffix(pass.Message, tc.want) {
				t.Errorf("message should end with advice: %q", pass.Message)
			}
		})
	}
}

func TestRemarks_SecuredBoundaryDiffersByVariant(t *testing.T) {
	res := Result{ClassStanding: 100, PointsSecured: 75, RequiredForPassing: 0, RequiredForExcellent: 0}

	excused := Remarks(res, ExcusedConfig())
	if r := remark(t, excused, TargetPassing); r.Category != Secured {
		t.Errorf("excused passing at 0 = %s, want secured", r.Category)
	}
	if r := remark(t, excused, TargetExcellent); r.Category != Secured {
		t.Errorf("excused excellent at 0 = %s, want secured", r.Category)
	}

	standard := Remarks(res, StandardConfig())
	if r := remark(t, standard, TargetPassing); r.Category != Achievable {
		t.Errorf("standard passing at 0 = %s, want achievable", r.Category)
	}
	if r := remark(t, standard, TargetExcellent); r.Category != Achievable {
		t.Errorf("standard excellent at 0 = %s, want achievable", r.Category)
	}
}

func TestRemarks_SecuredMessages(t *testing.T) {
	cfg := StandardConfig()
	res := Result{PointsSecured: 80, RequiredForPassing: -16.67, RequiredForExcellent: -1}
	set := Remarks(res, cfg)

	pass := remark(t, set, TargetPassing)
	if pass.Category != Secured || !strings.Contains(pass.Message, "already guaranteed to pass") {
		t.Errorf("passing = %+v", pass)
	}
	exc := remark(t, set, TargetExcellent)
	if exc.Category != Secured || !strings.Contains(exc.Message, "excellent standing") {
		t.Errorf("excellent = %+v", exc)
	}
}

func TestRemarks_AutoFailShortCircuits(t *testing.T) {
	cfg := ExcusedConfig()
	res := Compute(mustValidate(t, Input{Attendance: 1, Lab1: 50, Lab2: 50, Lab3: 50}, cfg), cfg)
	set := Remarks(res, cfg)

	if !set.AutoFailed {
		t.Fatal("expected auto-failed remark set")
	}
	if len(set.Items) != 0 || set.Explanation != "" {
		t.Errorf("auto-fail must not produce target remarks: %+v", set)
	}
	for _, want := range []string{"Classes held: 5", "You attended: 1", "Unexcused absences: 4", "4 or more unexcused absences"} {
		if !strings.Contains(set.AutoFail, want) {
			t.Errorf("auto-fail message missing %q:\n%s", want, set.AutoFail)
		}
	}
}
