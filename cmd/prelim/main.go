// Command prelim is the console prelim grade calculator. Values missing from
// the flags are prompted for, and invalid ones are asked again.
//
// Usage:
//
//	prelim [-variant excused|standard] [-attendance N] [-excused N] [-verified] [-lab1 G] [-lab2 G] [-lab3 G]
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/m4tt143/Prog2-9302-AY225-TANCHINGCO/internal/config"
	"github.com/m4tt143/Prog2-9302-AY225-TANCHINGCO/internal/prelim"
	"github.com/m4tt143/Prog2-9302-AY225-TANCHINGCO/internal/report"
)

func main() {
	if err := config.LoadDotEnv(""); err != nil {
		fmt.Fprintf(os.Stderr, "prelim: %v\n", err)
		os.Exit(2)
	}
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("prelim", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var raw prelim.RawInput
	variant := fs.String("variant", config.FromEnv().PrelimVariant, "grading policy: excused or standard")
	fs.StringVar(&raw.Attendance, "attendance", "", "number of classes attended")
	fs.StringVar(&raw.ExcusedAbsences, "excused", "", "verified excused absences (excused variant)")
	fs.BoolVar(&raw.Verified, "verified", false, "excused absences were verified")
	fs.StringVar(&raw.Lab1, "lab1", "", "lab work 1 grade")
	fs.StringVar(&raw.Lab2, "lab2", "", "lab work 2 grade")
	fs.StringVar(&raw.Lab3, "lab3", "", "lab work 3 grade")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := prelim.ConfigFor(prelim.Variant(*variant))
	if err != nil {
		fmt.Fprintf(stderr, "prelim: %v %q\n", err, *variant)
		return 2
	}

	report.Header(stdout)
	fromFlags := raw.Attendance != "" && raw.Lab1 != "" && raw.Lab2 != "" && raw.Lab3 != ""

	var in prelim.Input
	if fromFlags {
		in = prelim.ParseInput(raw)
	} else {
		p := &prompter{sc: bufio.NewScanner(stdin), out: stdout}
		in, err = p.collect(cfg, raw)
		if err != nil {
			fmt.Fprintf(stderr, "prelim: %v\n", err)
			return 1
		}
	}

	res, set, err := prelim.Calculate(in, cfg)
	var ve *prelim.ValidationError
	if errors.As(err, &ve) {
		fmt.Fprintln(stderr, "Please fix the following:")
		report.Errors(stderr, ve)
		return 1
	}
	if err != nil {
		fmt.Fprintf(stderr, "prelim: %v\n", err)
		return 1
	}
	if err := report.Write(stdout, cfg, res, set); err != nil {
		fmt.Fprintf(stderr, "prelim: %v\n", err)
		return 1
	}
	return 0
}

type prompter struct {
	sc  *bufio.Scanner
	out io.Writer
}

type question struct {
	field  string
	prompt string
	value  *string
}

// collect asks for every empty value, then re-asks the fields that fail
// validation until the input is valid.
func (p *prompter) collect(cfg prelim.Config, raw prelim.RawInput) (prelim.Input, error) {
	questions := []question{
		{prelim.FieldAttendance, fmt.Sprintf("Enter number of attendances (0-%d): ", cfg.TotalClasses), &raw.Attendance},
	}
	if cfg.ExcusedAbsences {
		questions = append(questions, question{prelim.FieldExcusedAbsences,
			fmt.Sprintf("Enter excused absences (0-%d, blank for none): ", cfg.TotalClasses), &raw.ExcusedAbsences})
	}
	questions = append(questions,
		question{prelim.FieldLab1, "Enter Lab Work 1 grade (0-100): ", &raw.Lab1},
		question{prelim.FieldLab2, "Enter Lab Work 2 grade (0-100): ", &raw.Lab2},
		question{prelim.FieldLab3, "Enter Lab Work 3 grade (0-100): ", &raw.Lab3},
	)

	retry := map[string]bool{}
	for first := true; ; first = false {
		for _, q := range questions {
			if (first && *q.value == "") || retry[q.field] {
				line, err := p.ask(q.prompt)
				if err != nil {
					return prelim.Input{}, err
				}
				*q.value = line
			}
		}

		in := prelim.ParseInput(raw)
		if cfg.ExcusedAbsences && in.ExcusedAbsences > 0 && !raw.Verified {
			ans, err := p.ask("Have these absences been verified by the instructor? (y/n): ")
			if err != nil {
				return prelim.Input{}, err
			}
			raw.Verified = strings.HasPrefix(strings.ToLower(ans), "y")
			in.Verified = raw.Verified
		}

		_, err := prelim.Validate(in, cfg)
		var ve *prelim.ValidationError
		if !errors.As(err, &ve) {
			return in, err
		}
		fmt.Fprintln(p.out, "Please fix the following:")
		report.Errors(p.out, ve)
		retry = map[string]bool{}
		for _, f := range ve.Fields {
			switch f.Code {
			case prelim.CodeAttendanceOverflow:
				retry[prelim.FieldAttendance] = true
				retry[prelim.FieldExcusedAbsences] = true
			case prelim.CodeVerificationRequired:
				retry[prelim.FieldExcusedAbsences] = true
			default:
				retry[f.Field] = true
			}
		}
	}
}

func (p *prompter) ask(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.sc.Scan() {
		if err := p.sc.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	return strings.TrimSpace(p.sc.Text()), nil
}
