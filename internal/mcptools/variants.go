package mcptools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/m4tt143/Prog2-9302-AY225-TANCHINGCO/internal/prelim"
)

// VariantsTool handles the prelim_variants MCP tool.
type VariantsTool struct{}

func NewVariantsTool() *VariantsTool { return &VariantsTool{} }

func (t *VariantsTool) Definition() mcp.Tool {
	return mcp.NewTool("prelim_variants",
		mcp.WithDescription("List the grading policies prelim_required_score accepts, with their weights and limits."),
	)
}

func (t *VariantsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var sb strings.Builder
	sb.WriteString("## Prelim grading variants\n")
	for _, c := range prelim.Variants() {
		sb.WriteString(fmt.Sprintf("\n### %s\n", c.Variant))
		sb.WriteString(fmt.Sprintf("- **Classes**: %d\n", c.TotalClasses))
		sb.WriteString(fmt.Sprintf("- **Weights**: prelim exam %.0f%%, class standing %.0f%% (attendance %.0f%%, lab work %.0f%%)\n",
			c.PrelimExamWeight*100, c.ClassStandingWeight*100, c.AttendanceWeight*100, c.LabWorkWeight*100))
		sb.WriteString(fmt.Sprintf("- **Targets**: pass %.0f, excellent %.0f\n", c.PassingGrade, c.ExcellentGrade))
		if c.ExcusedAbsences {
			sb.WriteString("- **Excused absences**: tracked, must be verified\n")
		}
		if c.AutoFail {
			sb.WriteString(fmt.Sprintf("- **Auto-fail**: %d or more unexcused absences\n", c.AutoFailThreshold))
		}
	}
	return mcp.NewToolResultText(sb.String()), nil
}
