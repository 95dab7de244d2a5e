// # internal/scanner/scanner.go
package scanner

import (
	"os"
	"strings"
	"unicode/utf8"

	"brackets/internal/errors"
)

// Counts is the running open-minus-close balance for each bracket kind,
// cumulative across the whole file. Values may go negative when a closer
// appears before its opener; only the final totals decide balance.
type Counts struct {
	Paren int
	Brace int
	Brack int
}

func (c Counts) Balanced() bool {
	return c.Paren == 0 && c.Brace == 0 && c.Brack == 0
}

// LineCount is the counter state after one input line has been consumed,
// paired with the line's 1-based index and raw text.
type LineCount struct {
	Index  int
	Text   string
	Counts Counts
}

type Result struct {
	Lines []LineCount
	Final Counts
}

// Scan walks the text line by line and accumulates bracket counts. Only the
// six ASCII characters ( ) { } [ ] move a counter; everything else is
// ignored, including brackets inside string literals or comments of the
// scanned language. The counters are never reset between lines.
func Scan(text string) Result {
	var res Result
	var c Counts

	lines := SplitLines(text)
	res.Lines = make([]LineCount, 0, len(lines))

	for i, line := range lines {
		for _, ch := range []byte(line) {
			switch ch {
			case '(':
				c.Paren++
			case ')':
				c.Paren--
			case '{':
				c.Brace++
			case '}':
				c.Brace--
			case '[':
				c.Brack++
			case ']':
				c.Brack--
			}
		}
		res.Lines = append(res.Lines, LineCount{Index: i + 1, Text: line, Counts: c})
	}

	res.Final = c
	return res
}

// SplitLines splits on "\n", strips a trailing "\r" from each line, and does
// not fabricate an empty trailing line for a terminating newline. An empty
// input yields zero lines.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}

	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// ScanFile reads the target into memory, releases the handle, then scans.
// Missing, unreadable or non-UTF-8 files fail with CodeFileAccess; there is
// no retry.
func ScanFile(path string) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, errors.Wrap(err, errors.CodeFileAccess, "read target file")
	}

	if !utf8.Valid(data) {
		return Result{}, errors.New(errors.CodeFileAccess, "target file is not valid UTF-8: "+path)
	}

	return Scan(string(data)), nil
}
