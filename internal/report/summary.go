package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/AndreyAkinshin/h2verify/internal/check"
	"github.com/AndreyAkinshin/h2verify/internal/errors"
)

// SummaryFileName is the default summary file written next to the candidate.
const SummaryFileName = "validation_summary.txt"

var symbolReplacer = strings.NewReplacer("±", "+/-", "≤", "<=", "≥", ">=")

// FormatSummary returns the summary file contents: a header, the overall
// status, and one line per check. The result contains ASCII only.
func FormatSummary(r check.Report) string {
	var sb strings.Builder

	sb.WriteString("H2 Hamiltonian Validation Summary\n")
	sb.WriteString(strings.Repeat("=", 40) + "\n\n")

	fmt.Fprintf(&sb, "Overall Status: %s - %s\n\n", status(r.Overall.Passed), ASCII(r.Overall.Message))

	sb.WriteString("Detailed Results:\n")
	for _, res := range r.Checks {
		fmt.Fprintf(&sb, "  %-12s %-6s - %s\n", cases.Upper(language.English).String(res.Name), status(res.Passed), ASCII(res.Message))
	}

	return sb.String()
}

// WriteSummary writes the summary into the directory of candidatePath under
// fileName, replacing any existing file, and returns the path written.
func WriteSummary(r check.Report, candidatePath, fileName string) (string, error) {
	if fileName == "" {
		fileName = SummaryFileName
	}
	path := filepath.Join(filepath.Dir(candidatePath), fileName)

	if err := os.WriteFile(path, []byte(FormatSummary(r)), 0644); err != nil {
		return "", errors.Wrap(err, "failed to write validation summary")
	}
	return path, nil
}

func status(passed bool) string {
	if passed {
		return "PASS"
	}
	return "FAIL"
}

// ASCII transliterates s to ASCII: comparison symbols are spelled out,
// accents are dropped, and any other non-ASCII rune becomes '?'.
func ASCII(s string) string {
	s = symbolReplacer.Replace(s)
	t := transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		runes.Map(func(r rune) rune {
			if r > unicode.MaxASCII {
				return '?'
			}
			return r
		}),
	)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
