// Package mcptools exposes the prelim calculator as MCP tools.
package mcptools

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/m4tt143/Prog2-9302-AY225-TANCHINGCO/internal/prelim"
	"github.com/m4tt143/Prog2-9302-AY225-TANCHINGCO/internal/report"
)

// AutoFailHook is called when a calculation ends in automatic failure.
type AutoFailHook func(res prelim.Result, cfg prelim.Config)

// GradeTool handles the prelim_required_score MCP tool.
type GradeTool struct {
	variant    prelim.Variant
	onAutoFail AutoFailHook
}

// NewGradeTool creates a GradeTool; def is used when a call names no variant.
func NewGradeTool(def prelim.Variant, onAutoFail AutoFailHook) *GradeTool {
	return &GradeTool{variant: def, onAutoFail: onAutoFail}
}

// Definition returns the MCP tool definition for prelim_required_score.
func (t *GradeTool) Definition() mcp.Tool {
	return mcp.NewTool("prelim_required_score",
		mcp.WithDescription(
			"Compute the Prelim Exam score a student needs to pass (75) and to reach excellent (100), "+
				"given attendance and three lab work grades. Returns a text report with remarks.",
		),
		mcp.WithString("variant",
			mcp.Description("Grading policy: 'excused' (5 classes, excused absences, auto-fail) or 'standard' (15 classes)"),
			mcp.Enum(string(prelim.VariantExcused), string(prelim.VariantStandard)),
		),
		mcp.WithNumber("attendance",
			mcp.Required(),
			mcp.Description("Number of classes attended"),
		),
		mcp.WithNumber("excused_absences",
			mcp.Description("Verified excused absences (excused variant only, default 0)"),
		),
		mcp.WithNumber("lab1", mcp.Required(), mcp.Description("Lab Work 1 grade (0-100)")),
		mcp.WithNumber("lab2", mcp.Required(), mcp.Description("Lab Work 2 grade (0-100)")),
		mcp.WithNumber("lab3", mcp.Required(), mcp.Description("Lab Work 3 grade (0-100)")),
		mcp.WithBoolean("verified",
			mcp.Description("Whether the excused absences have been verified with documentation"),
		),
	)
}

// Handle processes the prelim_required_score tool call.
func (t *GradeTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	variant := prelim.Variant(req.GetString("variant", string(t.variant)))
	cfg, err := prelim.ConfigFor(variant)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("unknown variant %q", variant)), nil
	}

	in := prelim.Input{
		Attendance:      numArg(req, "attendance", math.NaN()),
		ExcusedAbsences: numArg(req, "excused_absences", 0),
		Lab1:            numArg(req, "lab1", math.NaN()),
		Lab2:            numArg(req, "lab2", math.NaN()),
		Lab3:            numArg(req, "lab3", math.NaN()),
		Verified:        req.GetBool("verified", false),
	}
	res, set, err := prelim.Calculate(in, cfg)
	if err != nil {
		var ve *prelim.ValidationError
		if !errors.As(err, &ve) {
			return nil, err
		}
		var sb strings.Builder
		sb.WriteString("Please fix the following:\n")
		report.Errors(&sb, ve)
		return mcp.NewToolResultError(sb.String()), nil
	}
	if res.AutoFailed && t.onAutoFail != nil {
		t.onAutoFail(res, cfg)
	}

	var sb strings.Builder
	if err := report.Write(&sb, cfg, res, set); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to render report: %v", err)), nil
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// numArg reads a numeric argument. JSON numbers arrive as float64; numeric
// strings are parsed. Anything else yields NaN so validation reports it.
func numArg(req mcp.CallToolRequest, key string, def float64) float64 {
	v, ok := req.GetArguments()[key]
	if !ok || v == nil {
		return def
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case string:
		if strings.TrimSpace(n) == "" {
			return def
		}
		return prelim.ParseNumber(n)
	default:
		return math.NaN()
	}
}
