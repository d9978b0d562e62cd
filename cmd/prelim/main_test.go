package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRun_Flags(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run([]string{"-variant", "standard", "-attendance", "12", "-lab1", "85", "-lab2", "90", "-lab3", "80"},
		strings.NewReader(""), &out, &errOut)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut.String())
	}
	if !strings.Contains(out.String(), "To Pass (75):      56.33") {
		t.Errorf("output:\n%s", out.String())
	}
}

func TestRun_FlagsInvalid(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run([]string{"-variant", "standard", "-attendance", "12", "-lab1", "200", "-lab2", "90", "-lab3", "80"},
		strings.NewReader(""), &out, &errOut)
	if code != 1 || !strings.Contains(errOut.String(), "lab1: grade must be between 0 and 100") {
		t.Errorf("exit %d, stderr %q", code, errOut.String())
	}
}

func TestRun_UnknownVariant(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := run([]string{"-variant", "weekly"}, strings.NewReader(""), &out, &errOut); code != 2 {
		t.Errorf("exit %d", code)
	}
}

func TestRun_InteractiveReprompts(t *testing.T) {
	// attendance, excused, lab1, lab2, lab3, then the two failing fields again
	stdin := strings.NewReader("abc\n\n95\n105\n88\n4\n90\n")
	var out, errOut bytes.Buffer
	code := run([]string{"-variant", "excused"}, stdin, &out, &errOut)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut.String())
	}
	s := out.String()
	for _, want := range []string{
		"Please fix the following:",
		"x attendance: please enter a valid number",
		"x lab2: grade must be between 0 and 100",
		"To Pass (75):      47.93",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("output missing %q:\n%s", want, s)
		}
	}
	if strings.Contains(s, "verified") {
		t.Error("no verification question expected without excused absences")
	}
}

func TestRun_InteractiveVerification(t *testing.T) {
	// one excused absence, declined verification, then re-entered as none
	stdin := strings.NewReader("3\n1\n90\n90\n90\nn\n0\n")
	var out, errOut bytes.Buffer
	if code := run([]string{"-variant", "excused"}, stdin, &out, &errOut); code != 0 {
		t.Fatalf("exit %d: %s", code, errOut.String())
	}
	if !strings.Contains(out.String(), "x verified: excused absences must be verified by the instructor") {
		t.Errorf("output:\n%s", out.String())
	}
}

func TestRun_InteractiveEOF(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := run([]string{"-variant", "standard"}, strings.NewReader("10\n"), &out, &errOut); code != 1 {
		t.Errorf("exit %d", code)
	}
}
