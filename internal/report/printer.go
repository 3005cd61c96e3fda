// Package report renders a verification result as the human-readable report.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"

	"github.com/ShayCichocki/featcheck/internal/checklist"
	"github.com/ShayCichocki/featcheck/internal/finalverify"
	"github.com/ShayCichocki/featcheck/internal/manifest"
	"github.com/ShayCichocki/featcheck/internal/structure"
)

// sectionWidth is the width of the "=" rules around section titles.
const sectionWidth = 60

// Title is printed at the top of every report.
const Title = "ENTERPRISE JAVA LIBRARY SYSTEM - COMPILATION TEST"

// Printer writes report sections to a writer.
type Printer struct {
	w     io.Writer
	ok    *color.Color
	bad   *color.Color
	title lipgloss.Style
}

// NewPrinter creates a printer. Color is applied only when useColor is set
// and the writer supports it.
func NewPrinter(w io.Writer, useColor bool) *Printer {
	ok := color.New(color.FgGreen)
	bad := color.New(color.FgRed)
	renderer := lipgloss.NewRenderer(w)
	title := renderer.NewStyle().Bold(true)
	if !useColor {
		ok.DisableColor()
		bad.DisableColor()
		title = renderer.NewStyle()
	}
	return &Printer{w: w, ok: ok, bad: bad, title: title}
}

// Header prints the report title and the expected number of items.
func (p *Printer) Header(expectedTotal int) {
	fmt.Fprintln(p.w, p.title.Render(Title))
	fmt.Fprintln(p.w, strings.Repeat("=", sectionWidth))
	fmt.Fprintf(p.w, "Testing completion of %d TODO enterprise improvements\n", expectedTotal)
}

// Section prints a section banner.
func (p *Printer) Section(name string) {
	rule := strings.Repeat("=", sectionWidth)
	fmt.Fprintf(p.w, "\n%s\n%s\n%s\n", rule, p.title.Render(name), rule)
}

// Features prints one line per feature followed by the implemented count.
func (p *Printer) Features(r *manifest.Report) {
	for _, res := range r.Results {
		status := p.bad.Sprint("❌ MISSING")
		if res.Present {
			status = p.ok.Sprint("✅ IMPLEMENTED")
		}
		fmt.Fprintf(p.w, "%-25s %s\n", res.Feature.Name, status)
	}
	fmt.Fprintf(p.w, "\nFEATURE IMPLEMENTATION STATUS: %d/%d\n", r.Implemented, r.Total)
}

// Structure prints one row per analyzed file.
func (p *Printer) Structure(summaries []structure.Summary) {
	for _, s := range summaries {
		fmt.Fprintln(p.w, s.String())
	}
}

// Checklist prints the numbered ledger and the completion count.
func (p *Printer) Checklist(items []checklist.Item, expectedTotal int) {
	for _, item := range items {
		fmt.Fprintf(p.w, "%2d. %s %s\n", item.Ordinal, p.ok.Sprint("✅"), item.Description)
	}
	fmt.Fprintf(p.w, "\nTOTAL COMPLETED: %d/%d TODOs\n", len(items), expectedTotal)
}

// Final prints the closing verdict banner.
func (p *Printer) Final(v finalverify.Verdict, expectedTotal int) {
	if v.OverallSuccess {
		fmt.Fprintln(p.w, p.ok.Sprint("🎉 SUCCESS: All enterprise features implemented!"))
		fmt.Fprintf(p.w, "📋 All %d TODO items completed\n", expectedTotal)
		fmt.Fprintln(p.w, "🏗️  Enterprise architecture fully established")
		fmt.Fprintln(p.w, "⚡ System ready for production deployment")
		return
	}
	fmt.Fprintln(p.w, p.bad.Sprint("❌ Some features may be incomplete"))
}

// Gaps prints the gap summary and list. Nothing is printed when there are
// no gaps.
func (p *Printer) Gaps(gaps []finalverify.Gap, summary string) {
	if len(gaps) == 0 {
		return
	}
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, "--- Gaps Requiring Action ---")
	if summary != "" {
		fmt.Fprintln(p.w, summary)
	}
	for i, g := range gaps {
		fmt.Fprintf(p.w, "%d. [%s] %s: %s\n", i+1, g.Kind, g.Subject, g.Description)
		if g.SuggestedAction != "" {
			fmt.Fprintf(p.w, "   Suggested: %s\n", g.SuggestedAction)
		}
	}
}

// Print renders the complete report for result.
func (p *Printer) Print(result *finalverify.VerificationResult) {
	expected := result.Checklist.ExpectedTotal

	p.Header(expected)

	p.Section("ENTERPRISE FEATURE VERIFICATION")
	p.Features(result.Features)

	p.Section("CODE STRUCTURE ANALYSIS")
	p.Structure(result.Structure)

	p.Section("TODO COMPLETION SUMMARY")
	p.Checklist(result.Checklist.Items, expected)

	p.Section("FINAL STATUS")
	p.Final(result.Verdict, expected)
	p.Gaps(result.Gaps, result.GapSummary)
}

// WriteJSON writes result as indented JSON.
func WriteJSON(w io.Writer, result *finalverify.VerificationResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}
