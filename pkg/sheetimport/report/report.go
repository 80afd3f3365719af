// Package report renders a plain-text summary of an import.
package report

import (
	"fmt"
	"strings"

	"github.com/ukaji3/sheetimport-go/pkg/sheetimport/i18n"
	"github.com/ukaji3/sheetimport-go/pkg/sheetimport/models"
	"golang.org/x/text/message"
)

// Generate builds the report text: title block, one line per sheet,
// then the error block and the warning block. It performs no I/O.
func Generate(doc *models.PreviewDocument, st models.DataStatistics, issues models.Issues, lang string) string {
	p := i18n.Printer(lang)
	var b strings.Builder

	title := p.Sprintf(i18n.ReportTitle)
	fmt.Fprintln(&b, title)
	fmt.Fprintln(&b, strings.Repeat("=", len([]rune(title))))

	if doc != nil {
		fmt.Fprintln(&b, p.Sprintf(i18n.ReportFile, doc.FileName))
		fmt.Fprintln(&b, p.Sprintf(i18n.ReportSize, FormatSize(doc.FileSizeBytes)))
		fmt.Fprintln(&b, p.Sprintf(i18n.ReportSheets, len(doc.Sheets)))
		fmt.Fprintln(&b, p.Sprintf(i18n.ReportRows, doc.TotalRows()))
	}
	fmt.Fprintln(&b, p.Sprintf(i18n.ReportFillRate, st.FillRate*100))

	if doc != nil && len(doc.Sheets) > 0 {
		fmt.Fprintln(&b)
		for i := range doc.Sheets {
			writeSheet(&b, p, &doc.Sheets[i])
		}
	}

	if types := typeLine(st); types != "" {
		fmt.Fprintln(&b)
		fmt.Fprintln(&b, p.Sprintf(i18n.ReportTypeDistributionHead), types)
	}

	errs, warns := issues.Errors(), issues.Warnings()
	if len(errs) == 0 && len(warns) == 0 {
		fmt.Fprintln(&b)
		fmt.Fprintln(&b, p.Sprintf(i18n.ReportNoIssues))
		return b.String()
	}
	writeBlock(&b, p, i18n.ReportErrors, errs)
	writeBlock(&b, p, i18n.ReportWarnings, warns)
	return b.String()
}

func writeSheet(b *strings.Builder, p *message.Printer, s *models.SheetPreview) {
	line := p.Sprintf(i18n.ReportSheetLine, s.Name, s.RowCount, s.ColumnCount)
	if s.Hidden {
		line += " " + p.Sprintf(i18n.ReportHiddenSheet)
	}
	if s.Truncated() {
		line += " " + p.Sprintf(i18n.ReportTruncatedSheet)
	}
	fmt.Fprintln(b, line)
}

// writeBlock lists issues one per line, each followed by its suggestion.
// Empty blocks are omitted.
func writeBlock(b *strings.Builder, p *message.Printer, heading string, issues models.Issues) {
	if len(issues) == 0 {
		return
	}
	fmt.Fprintln(b)
	fmt.Fprintln(b, p.Sprintf(heading, len(issues)))
	for _, is := range issues {
		if loc := location(p, is); loc != "" {
			fmt.Fprintf(b, "  [%s] %s\n", loc, is.Message)
		} else {
			fmt.Fprintf(b, "  %s\n", is.Message)
		}
		if is.Suggestion != "" {
			fmt.Fprintf(b, "    %s\n", p.Sprintf(i18n.ReportSuggestion, is.Suggestion))
		}
	}
}

func location(p *message.Printer, is models.ValidationIssue) string {
	var parts []string
	if is.Sheet != "" {
		parts = append(parts, p.Sprintf(i18n.ReportLocationSheet, is.Sheet))
	}
	if is.Row != nil {
		parts = append(parts, p.Sprintf(i18n.ReportLocationRow, *is.Row))
	}
	if is.Column != nil {
		parts = append(parts, p.Sprintf(i18n.ReportLocationColumn, *is.Column))
	}
	return strings.Join(parts, ", ")
}

// typeLine renders the type distribution in classification order.
func typeLine(st models.DataStatistics) string {
	var parts []string
	for _, t := range models.DataTypes {
		if n := st.TypeDistribution[t]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s=%d", t, n))
		}
	}
	return strings.Join(parts, " ")
}

// FormatSize renders a byte count with a binary unit, e.g. "1.5 KB".
func FormatSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit && exp < 3; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGT"[exp])
}
