// Package attendance keeps the class attendance log and renders its
// plain-text exports and login summaries.
package attendance

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Entry is one signed time-in.
type Entry struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name" validate:"required,max=120"`
	Course    string    `json:"course" validate:"required,max=120"`
	TimeIn    time.Time `json:"time_in"`
	Signature string    `json:"signature" validate:"required,uuid4"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report json names, not Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// NewEntry stamps a time-in and a fresh e-signature. Name and course are
// trimmed; the entry is validated before it is returned.
func NewEntry(name, course string, now time.Time) (Entry, error) {
	e := Entry{
		Name:      strings.TrimSpace(name),
		Course:    strings.TrimSpace(course),
		TimeIn:    now.Truncate(time.Second),
		Signature: uuid.NewString(),
	}
	if err := e.Validate(); err != nil {
		return Entry{}, err
	}
	return e, nil
}

// FieldError names an entry field that failed validation.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

type ValidationError struct {
	Fields []FieldError `json:"errors"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+" ("+f.Rule+")")
	}
	return "invalid attendance entry: " + strings.Join(parts, ", ")
}

func (e Entry) Validate() error {
	err := validate.Struct(e)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &ValidationError{}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{Field: fe.Field(), Rule: fe.Tag()})
	}
	return out
}
