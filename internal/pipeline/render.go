package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// Renderer writes dump reports as JSON or Markdown
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a new renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the report as indented JSON to the given path
func (r *Renderer) RenderJSON(report *Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// maxUsageRows caps the property usage table in Markdown output.
const maxUsageRows = 50

// RenderMarkdown writes a human-readable report to the given path
func (r *Renderer) RenderMarkdown(report *Report, path string) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# Dump report: %s (%s)\n\n", report.Project, report.DateStamp)
	fmt.Fprintf(&b, "Generated: %s\n\n", report.GeneratedAt.Format("2006-01-02 15:04:05 UTC"))

	b.WriteString("## Totals\n\n")
	fmt.Fprintf(&b, "- Items: %d\n", report.Items)
	fmt.Fprintf(&b, "- Properties: %d\n", report.Properties)
	fmt.Fprintf(&b, "- Statements: %d\n", report.Statements)
	fmt.Fprintf(&b, "- Site links: %d\n", report.SiteLinks)
	fmt.Fprintf(&b, "- Label languages: %d\n\n", len(report.Labels))

	b.WriteString("## Property usage\n\n")
	b.WriteString("| Property | Main snaks | Qualifiers | References |\n")
	b.WriteString("|----------|-----------:|-----------:|-----------:|\n")
	for i, usage := range report.Usage {
		if i >= maxUsageRows {
			fmt.Fprintf(&b, "\n…and %d more properties.\n", len(report.Usage)-maxUsageRows)
			break
		}
		fmt.Fprintf(&b, "| %s | %d | %d | %d |\n",
			usage.Property, usage.MainSnaks, usage.Qualifiers, usage.References)
	}

	if r.includeFooter {
		b.WriteString("\n---\n")
		fmt.Fprintf(&b, "Report for %s dump %s.\n", report.Project, report.DateStamp)
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// RenderSummary prints a one-screen summary to stdout
func (r *Renderer) RenderSummary(report *Report, stats *Stats) {
	fmt.Printf("Processed %d entities in %s (%d items, %d properties, %d errors)\n",
		stats.Entities(), stats.Duration.Round(time.Millisecond), stats.Items, stats.Properties, stats.Errors)
	fmt.Printf("Statements: %d, site links: %d, distinct properties used: %d\n",
		report.Statements, report.SiteLinks, len(report.Usage))
}
