// # internal/report/report.go
package report

import (
	"fmt"
	"io"

	"brackets/internal/scanner"
)

// FormatLine renders one per-line diagnostic record. Field widths are fixed
// so columns stay aligned up to 9999 lines and counts of +/-99.
func FormatLine(lc scanner.LineCount) string {
	return fmt.Sprintf("%4d: paren=%3d brace=%3d brack=%3d | %s",
		lc.Index, lc.Counts.Paren, lc.Counts.Brace, lc.Counts.Brack, lc.Text)
}

// FormatSummary renders the trailing summary, preceded by a blank line.
func FormatSummary(c scanner.Counts) string {
	return fmt.Sprintf("\nFINAL COUNTS: paren %d brace %d brack %d", c.Paren, c.Brace, c.Brack)
}

// Render writes the full trace: one record per scanned line, then the final
// summary. Writes are sequential, one per record.
func Render(w io.Writer, res scanner.Result) error {
	for _, lc := range res.Lines {
		if _, err := fmt.Fprintln(w, FormatLine(lc)); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w, FormatSummary(res.Final))
	return err
}
