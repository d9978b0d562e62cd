// Package report renders a prelim calculation as plain text for terminals
// and tool output.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/m4tt143/Prog2-9302-AY225-TANCHINGCO/internal/prelim"
)

var (
	rule = strings.Repeat("═", 59)
	thin = strings.Repeat("─", 59)
)

// Header prints the program banner.
func Header(w io.Writer) {
	fmt.Fprintf(w, "\n%s\n%s\n%s\n\n", rule, center("PRELIM GRADE CALCULATOR"), rule)
}

// Write renders inputs, computed values, required scores and remarks.
func Write(w io.Writer, cfg prelim.Config, res prelim.Result, set prelim.RemarkSet) error {
	b := &strings.Builder{}
	fmt.Fprintf(b, "\n%s\n%s\n%s\n", rule, center("RESULTS"), rule)

	if set.AutoFailed {
		section(b, "AUTOMATIC FAILURE")
		for _, line := range strings.Split(set.AutoFail, "\n")[1:] {
			fmt.Fprintf(b, "  %s\n", line)
		}
		fmt.Fprintf(b, "%s\n", rule)
		_, err := io.WriteString(w, b.String())
		return err
	}

	section(b, "INPUT SUMMARY")
	if cfg.ExcusedAbsences {
		fmt.Fprintf(b, "  %-19s%s / %s (%s%%) | Excused: %s\n", "Attendances:",
			prelim.Short(res.Attendance), prelim.Short(res.TotalClassesThatCount), prelim.Format(res.AttendanceScore), prelim.Short(res.ExcusedAbsences))
	} else {
		fmt.Fprintf(b, "  %-19s%s / %d (%s%%)\n", "Attendances:",
			prelim.Short(res.Attendance), cfg.TotalClasses, prelim.Format(res.AttendanceScore))
	}
	fmt.Fprintf(b, "  %-19s%s\n", "Lab Work 1:", prelim.Format(res.Lab1))
	fmt.Fprintf(b, "  %-19s%s\n", "Lab Work 2:", prelim.Format(res.Lab2))
	fmt.Fprintf(b, "  %-19s%s\n", "Lab Work 3:", prelim.Format(res.Lab3))

	section(b, "COMPUTED VALUES")
	fmt.Fprintf(b, "  %-19s%s\n", "Lab Work Average:", prelim.Format(res.LabWorkAverage))
	fmt.Fprintf(b, "  %-19s%s\n", "Class Standing:", prelim.Format(res.ClassStanding))

	section(b, "REQUIRED PRELIM EXAM SCORES")
	fmt.Fprintf(b, "  %-19s%s\n", fmt.Sprintf("To Pass (%s):", prelim.Short(cfg.PassingGrade)), prelim.Format(res.RequiredForPassing))
	fmt.Fprintf(b, "  %-19s%s\n", fmt.Sprintf("Excellent (%s):", prelim.Short(cfg.ExcellentGrade)), prelim.Format(res.RequiredForExcellent))

	section(b, "REMARKS")
	if set.Explanation != "" {
		fmt.Fprintf(b, "  %s\n\n", set.Explanation)
	}
	for i, r := range set.Items {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(b, "  [%s] %s\n", label(r.Target), r.Message)
	}
	fmt.Fprintf(b, "%s\n", rule)

	_, err := io.WriteString(w, b.String())
	return err
}

// Errors lists validation failures one per line.
func Errors(w io.Writer, ve *prelim.ValidationError) {
	for _, f := range ve.Fields {
		fmt.Fprintf(w, "  x %s: %s\n", f.Field, f.Message)
	}
}

func section(b *strings.Builder, title string) {
	fmt.Fprintf(b, "\n%s\n%s\n", title, thin)
}

func center(s string) string {
	pad := (59 - len(s)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + s
}

func label(t prelim.Target) string {
	if t == prelim.TargetPassing {
		return "PASS"
	}
	return "EXCELLENT"
}
