package attendance

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
)

// Layouts used in exported files.
const (
	TimeLayout      = "2006-01-02 15:04:05"
	SummaryLayout   = "01/02/2006 15:04:05"
	exportStamp     = "20060102_150405"
	SummaryFilename = "attendance_summary.txt"
)

var ErrNothingToExport = errors.New("no records to export")

// ExportName is the file name of an export taken at now.
func ExportName(now time.Time) string {
	return "attendance_export_" + now.Format(exportStamp) + ".txt"
}

// WriteExport writes every entry as a numbered record block.
func WriteExport(w io.Writer, entries []Entry, now time.Time) error {
	if len(entries) == 0 {
		return ErrNothingToExport
	}
	b := &strings.Builder{}
	fmt.Fprintln(b, "ATTENDANCE RECORDS EXPORT")
	fmt.Fprintln(b, "Export Date: "+now.Format(TimeLayout))
	fmt.Fprintf(b, "Total Records: %d\n", len(entries))
	fmt.Fprintln(b, strings.Repeat("=", 60))
	fmt.Fprintln(b)
	for i, e := range entries {
		fmt.Fprintf(b, "Record #%d\n", i+1)
		fmt.Fprintf(b, "  Name: %s\n", e.Name)
		fmt.Fprintf(b, "  Course: %s\n", e.Course)
		fmt.Fprintf(b, "  Time: %s\n", e.TimeIn.Format(TimeLayout))
		fmt.Fprintf(b, "  Signature: %s\n", e.Signature)
		fmt.Fprintln(b)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Summary is the proof of presence handed out after a successful login.
type Summary struct {
	Username  string
	LoginTime time.Time
}

const summaryRule = "====================================="

// WriteSummary renders s as the downloadable attendance summary. The text has
// no leading or trailing whitespace.
func WriteSummary(w io.Writer, s Summary, generated time.Time) error {
	text := strings.Join([]string{
		summaryRule,
		"    ATTENDANCE SUMMARY",
		summaryRule,
		"",
		"Username: " + s.Username,
		"Login Time: " + s.LoginTime.Format(SummaryLayout),
		"Status: Present",
		"",
		summaryRule,
		"Generated on: " + generated.Format(SummaryLayout),
		summaryRule,
	}, "\n")
	_, err := io.WriteString(w, strings.TrimSpace(text))
	return err
}
