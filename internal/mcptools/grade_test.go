package mcptools

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/m4tt143/Prog2-9302-AY225-TANCHINGCO/internal/prelim"
)

func makeReq(args map[string]interface{}) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(r *mcp.CallToolResult) string {
	if r == nil || len(r.Content) == 0 {
		return ""
	}
	for _, c := range r.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func TestGradeTool_Definition(t *testing.T) {
	def := NewGradeTool(prelim.VariantExcused, nil).Definition()
	if def.Name != "prelim_required_score" {
		t.Errorf("tool name = %q", def.Name)
	}
	for _, p := range []string{"variant", "attendance", "excused_absences", "lab1", "lab2", "lab3", "verified"} {
		if _, ok := def.InputSchema.Properties[p]; !ok {
			t.Errorf("missing %q parameter", p)
		}
	}
	required := strings.Join(def.InputSchema.Required, ",")
	if required != "attendance,lab1,lab2,lab3" {
		t.Errorf("required = %s", required)
	}
}

func TestGradeTool_Standard(t *testing.T) {
	tool := NewGradeTool(prelim.VariantExcused, nil)
	res, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{
		"variant":    "standard",
		"attendance": float64(12),
		"lab1":       float64(85),
		"lab2":       "90",
		"lab3":       float64(80),
	}))
	if err != nil {
		t.Fatal(err)
	}
	if res.IsError {
		t.Fatalf("unexpected tool error: %s", resultText(res))
	}
	text := resultText(res)
	for _, want := range []string{"REQUIRED PRELIM EXAM SCORES", "To Pass (75):", "56.33", "REMARKS"} {
		if !strings.Contains(text, want) {
			t.Errorf("report missing %q:\n%s", want, text)
		}
	}
}

func TestGradeTool_ValidationErrors(t *testing.T) {
	tool := NewGradeTool(prelim.VariantExcused, nil)
	res, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{
		"attendance":       float64(3),
		"excused_absences": float64(1),
		"lab1":             float64(101),
		"lab2":             "abc",
		"lab3":             float64(50),
	}))
	if err != nil {
		t.Fatal(err)
	}
	if !res.IsError {
		t.Fatal("expected tool error")
	}
	text := resultText(res)
	for _, want := range []string{"lab1", "lab2", "verified"} {
		if !strings.Contains(text, want) {
			t.Errorf("errors missing %q:\n%s", want, text)
		}
	}
}

func TestGradeTool_AutoFailHook(t *testing.T) {
	var hooked bool
	tool := NewGradeTool(prelim.VariantExcused, func(res prelim.Result, cfg prelim.Config) {
		hooked = res.AutoFailed
	})
	res, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{
		"attendance": float64(1),
		"lab1":       float64(90),
		"lab2":       float64(90),
		"lab3":       float64(90),
	}))
	if err != nil {
		t.Fatal(err)
	}
	if res.IsError || !strings.Contains(resultText(res), "AUTOMATIC FAILURE") {
		t.Errorf("unexpected result: %s", resultText(res))
	}
	if !hooked {
		t.Error("auto-fail hook not called")
	}
}

func TestGradeTool_UnknownVariant(t *testing.T) {
	res, _ := NewGradeTool(prelim.VariantExcused, nil).Handle(context.Background(), makeReq(map[string]interface{}{
		"variant": "weekly",
	}))
	if !res.IsError {
		t.Error("expected tool error for unknown variant")
	}
}

func TestVariantsTool(t *testing.T) {
	tool := NewVariantsTool()
	if tool.Definition().Name != "prelim_variants" {
		t.Errorf("name = %q", tool.Definition().Name)
	}
	res, err := tool.Handle(context.Background(), makeReq(nil))
	if err != nil {
		t.Fatal(err)
	}
	text := resultText(res)
	for _, want := range []string{"### excused", "### standard", "- **Classes**: 15", "- **Auto-fail**: 4 or more", "prelim exam 30%"} {
		if !strings.Contains(text, want) {
			t.Errorf("missing %q:\n%s", want, text)
		}
	}
}
