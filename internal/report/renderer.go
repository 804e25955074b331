package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aumai/openjudge/internal/model"
)

// Renderer writes an analysis to JSON, Markdown, or plain text
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer. When includeFooter is set, Markdown
// output ends with the disclaimer footer.
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the analysis as indented JSON to the given path
func (r *Renderer) RenderJSON(a *model.Analysis, path string) error {
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal analysis: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write JSON: %w", err)
	}
	return nil
}

// RenderMarkdown writes the analysis as a Markdown report to the given path
func (r *Renderer) RenderMarkdown(a *model.Analysis, path string) error {
	var b strings.Builder

	b.WriteString("# Case Analysis\n\n")
	fmt.Fprintf(&b, "**Case:** %s\n\n", a.CaseDescription)
	fmt.Fprintf(&b, "## Summary\n\n%s\n\n", a.Summary)

	b.WriteString("## Relevant Sections\n\n")
	if len(a.RelevantSections) == 0 {
		b.WriteString("_No sections matched._\n\n")
	} else {
		b.WriteString("| Code | Section | Title | Punishment | Bailable |\n")
		b.WriteString("|------|---------|-------|------------|----------|\n")
		for _, sec := range a.RelevantSections {
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
				sec.Code, sec.Number, sec.Title, PunishmentLabel(&sec), BailableLabel(&sec))
		}
		b.WriteString("\n")
	}

	if len(a.IPCToBNSMapping) > 0 {
		b.WriteString("## IPC to BNS Transition\n\n")
		b.WriteString("| IPC | BNS | Status |\n")
		b.WriteString("|-----|-----|--------|\n")
		for _, m := range a.IPCToBNSMapping {
			fmt.Fprintf(&b, "| %s | %s | %s |\n", m.IPC, m.BNS, m.Status)
		}
		b.WriteString("\n")
	}

	if r.includeFooter {
		fmt.Fprintf(&b, "---\n\n_%s_\n", a.Disclaimer)
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}

// WriteText writes a compact human-readable rendering of the analysis
func (r *Renderer) WriteText(w io.Writer, a *model.Analysis) {
	fmt.Fprintf(w, "Summary:\n  %s\n", a.Summary)

	fmt.Fprintf(w, "\nRelevant sections (%d):\n", len(a.RelevantSections))
	for _, sec := range a.RelevantSections {
		WriteSection(w, &sec)
	}

	if len(a.IPCToBNSMapping) > 0 {
		fmt.Fprintf(w, "\nIPC -> BNS transition mappings:\n")
		for _, m := range a.IPCToBNSMapping {
			fmt.Fprintf(w, "  %s  ->  %s  [status: %s]\n", m.IPC, m.BNS, m.Status)
		}
	}

	fmt.Fprintf(w, "\nDisclaimer: %s\n", a.Disclaimer)
}

// WriteSection writes a compact rendering of a single section
func WriteSection(w io.Writer, sec *model.Section) {
	fmt.Fprintf(w, "  %s %s: %s\n", sec.Code, sec.Number, sec.Title)
	fmt.Fprintf(w, "    Punishment : %s\n", PunishmentLabel(sec))
	fmt.Fprintf(w, "    Bailable   : %s\n", BailableLabel(sec))
}

// BailableLabel renders the tri-state bailable flag
func BailableLabel(sec *model.Section) string {
	switch {
	case sec.Bailable == nil:
		return "see statute"
	case *sec.Bailable:
		return "bailable"
	default:
		return "non-bailable"
	}
}

// PunishmentLabel renders the optional punishment text
func PunishmentLabel(sec *model.Section) string {
	if sec.Punishment == nil || *sec.Punishment == "" {
		return "See description"
	}
	return *sec.Punishment
}
