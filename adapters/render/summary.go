// Package render turns a report into a human-readable summary document.
package render

import (
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"startupsim/domain/verdict"
	"startupsim/models"
)

// SummaryMarkdown renders the headline numbers, the verdict on each
// hypothesis and the financial projection as markdown
func SummaryMarkdown(r *models.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Simulation %s\n\n", r.SimulationID)
	fmt.Fprintf(&b, "Run `%s` at %s (seed %d)\n\n", r.RunID, r.Timestamp, r.Seed)
	if r.BusinessModel.ValueProposition != "" {
		fmt.Fprintf(&b, "**Value proposition:** %s\n\n", escape(r.BusinessModel.ValueProposition))
	}

	b.WriteString("## Summary\n\n")
	b.WriteString("| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Personas | %d |\n", r.Summary.TotalPersonas)
	fmt.Fprintf(&b, "| Interviews | %d |\n", r.Summary.TotalInterviews)
	fmt.Fprintf(&b, "| Validated | %d |\n", r.Summary.ValidatedHypotheses)
	fmt.Fprintf(&b, "| Invalidated | %d |\n", r.Summary.InvalidatedHypotheses)
	fmt.Fprintf(&b, "| Partial | %d |\n", r.Summary.PartialHypotheses)
	fmt.Fprintf(&b, "| Break-even | %s |\n", breakEven(r.Summary.BreakEvenMonth))
	fmt.Fprintf(&b, "| Projected ROI | %.1f%% |\n\n", r.Summary.ProjectedROI)

	b.WriteString("## Hypotheses\n\n")
	if len(r.ValidationResults) == 0 {
		b.WriteString("No hypotheses were supplied.\n\n")
	}
	for _, v := range r.ValidationResults {
		fmt.Fprintf(&b, "### %s\n\n", escape(v.Hypothesis))
		fmt.Fprintf(&b, "%s with confidence %.2f over %d relevant responses.\n\n",
			statusLabel(v.ValidationStatus), v.ConfidenceScore, v.RelevantResponses)
		writeList(&b, "Supporting evidence", v.SupportingEvidence)
		writeList(&b, "Contrary evidence", v.ContraryEvidence)
		writeList(&b, "Recommendations", v.Recommendations)
		writeList(&b, "Pivot suggestions", v.PivotSuggestions)
	}

	b.WriteString("## Financial projection\n\n")
	b.WriteString("| Month | Users | Revenue | Costs | Profit | Cumulative |\n|---|---|---|---|---|---|\n")
	for _, m := range r.FinancialProjection.Months {
		fmt.Fprintf(&b, "| %s | %d | %d | %d | %d | %d |\n",
			m.Month, m.Users, m.Revenue, m.Costs, m.Profit, m.CumulativeProfit)
	}
	b.WriteString("\n")

	return b.String()
}

// SummaryHTML renders SummaryMarkdown as an HTML fragment. Raw HTML in caller
// supplied text is dropped.
func SummaryHTML(r *models.Report) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	renderer := html.NewRenderer(html.RendererOptions{
		Flags: html.CommonFlags | html.SkipHTML,
	})
	return markdown.ToHTML([]byte(SummaryMarkdown(r)), p, renderer)
}

func writeList(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "**%s**\n\n", title)
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", escape(item))
	}
	b.WriteString("\n")
}

func statusLabel(s verdict.Status) string {
	switch s {
	case verdict.StatusValidated:
		return "Validated"
	case verdict.StatusInvalidated:
		return "Invalidated"
	case verdict.StatusPartial:
		return "Partially validated"
	}
	return s.String()
}

func breakEven(month *int) string {
	if month == nil {
		return "not reached"
	}
	return fmt.Sprintf("Month %d", *month)
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"#", `\#`,
	"|", `\|`,
	"[", `\[`,
	"]", `\]`,
	"<", "&lt;",
	">", "&gt;",
)

// escape neutralizes markdown syntax in caller supplied text
func escape(s string) string {
	return markdownEscaper.Replace(s)
}

// HTMLRenderer renders report summaries for the HTTP surface
type HTMLRenderer struct{}

// NewHTMLRenderer creates a summary renderer
func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{}
}

// Render returns the report summary as an HTML fragment
func (HTMLRenderer) Render(r *models.Report) []byte {
	return SummaryHTML(r)
}
