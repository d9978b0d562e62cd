package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/m4tt143/Prog2-9302-AY225-TANCHINGCO/internal/notify"
	"github.com/m4tt143/Prog2-9302-AY225-TANCHINGCO/internal/prelim"
)

const fieldPrelimExam = "prelim_exam"

// GET /prelim/variants
func VariantsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, prelim.Variants())
	}
}

// Numeric fields accept JSON numbers or numeric strings.
type computeRequest struct {
	Attendance      json.RawMessage `json:"attendance"`
	ExcusedAbsences json.RawMessage `json:"excused_absences"`
	Lab1            json.RawMessage `json:"lab1"`
	Lab2            json.RawMessage `json:"lab2"`
	Lab3            json.RawMessage `json:"lab3"`
	Verified        bool            `json:"verified"`
	PrelimExam      json.RawMessage `json:"prelim_exam"`
}

func (req computeRequest) input() prelim.Input {
	nan := math.NaN()
	return prelim.Input{
		Attendance:      numField(req.Attendance, nan),
		ExcusedAbsences: numField(req.ExcusedAbsences, 0),
		Lab1:            numField(req.Lab1, nan),
		Lab2:            numField(req.Lab2, nan),
		Lab3:            numField(req.Lab3, nan),
		Verified:        req.Verified,
	}
}

// numField returns def for a missing, null or blank value and NaN for
// anything that is not a number.
func numField(raw json.RawMessage, def float64) float64 {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return def
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return math.NaN()
		}
		if strings.TrimSpace(s) == "" {
			return def
		}
		return prelim.ParseNumber(s)
	}
	v, err := strconv.ParseFloat(string(raw), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

type projection struct {
	PrelimExam float64 `json:"prelim_exam"`
	FinalGrade float64 `json:"final_grade"`
	Passed     bool    `json:"passed"`
	Excellent  bool    `json:"excellent"`
}

type computeResponse struct {
	Variant    prelim.Variant   `json:"variant"`
	Result     prelim.Result    `json:"result"`
	Remarks    prelim.RemarkSet `json:"remarks"`
	Projection *projection      `json:"projection,omitempty"`
}

// POST /prelim/{variant}/compute
// Invalid input yields 422 with every failing field. Nothing is stored.
func ComputeHandler(n *notify.Notifier, notifyOnAutoFail bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg, err := prelim.ConfigFor(prelim.Variant(chi.URLParam(r, "variant")))
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		var req computeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}

		res, set, err := prelim.Calculate(req.input(), cfg)
		var ve *prelim.ValidationError
		if errors.As(err, &ve) {
			respondJSON(w, http.StatusUnprocessableEntity, ve)
			return
		}
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		out := computeResponse{Variant: cfg.Variant, Result: res, Remarks: set}
		if len(req.PrelimExam) > 0 && !res.AutoFailed {
			exam := numField(req.PrelimExam, math.NaN())
			if math.IsNaN(exam) || exam < 0 || exam > prelim.MaxExamScore {
				respondJSON(w, http.StatusUnprocessableEntity, &prelim.ValidationError{Fields: []prelim.FieldError{{
					Field:   fieldPrelimExam,
					Code:    prelim.CodeOutOfRange,
					Min:     0,
					Max:     prelim.MaxExamScore,
					Message: "Prelim exam score must be between 0 and 100",
				}}})
				return
			}
			final := cfg.FinalGrade(exam, res.ClassStanding)
			out.Projection = &projection{
				PrelimExam: exam,
				FinalGrade: final,
				Passed:     final >= cfg.PassingGrade,
				Excellent:  final >= cfg.ExcellentGrade,
			}
		}
		if res.AutoFailed && notifyOnAutoFail {
			n.NotifyAsync(notify.AutoFailMessage(res, cfg))
		}
		respondJSON(w, http.StatusOK, out)
	}
}
