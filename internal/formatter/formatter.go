// package formatter writes picker results as plain text, JSON, shell assignments or CSV
package formatter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/desertthunder/pickx/internal/models"
	"github.com/desertthunder/pickx/internal/shared"
)

// Format selects how results are written.
type Format string

const (
	FormatPlain Format = "plain"
	FormatJSON  Format = "json"
	FormatShell Format = "shell"
	FormatCSV   Format = "csv"
)

// ShellPrefix starts every variable name written in [FormatShell].
const ShellPrefix = "PICKX"

// Formats lists every supported format.
func Formats() []Format {
	return []Format{FormatPlain, FormatJSON, FormatShell, FormatCSV}
}

// ParseFormat validates s as a [Format].
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", shared.ErrUnsupportedFormat, s)
}

// Entry is one named result. Set is false when a field was never given a value.
type Entry struct {
	Name      string           `json:"name"`
	Set       bool             `json:"set"`
	Selection models.Selection `json:"selection"`
}

// Selection writes a single confirmed selection in format f.
func Selection(w io.Writer, f Format, s models.Selection) error {
	switch f {
	case FormatPlain:
		return write(w, s.Label+"\n")
	case FormatJSON:
		return writeJSON(w, s)
	case FormatShell:
		return write(w, shellVars(ShellPrefix, s))
	case FormatCSV:
		return writeCSV(w, []Entry{{Set: true, Selection: s}})
	default:
		return fmt.Errorf("%w: %q", shared.ErrUnsupportedFormat, f)
	}
}

// Entries writes the results of several named pickers in format f.
func Entries(w io.Writer, f Format, entries []Entry) error {
	switch f {
	case FormatPlain:
		var b strings.Builder
		for _, e := range entries {
			label := "-"
			if e.Set {
				label = e.Selection.Label
			}
			fmt.Fprintf(&b, "%s: %s\n", e.Name, label)
		}
		return write(w, b.String())
	case FormatJSON:
		return writeJSON(w, entries)
	case FormatShell:
		var b strings.Builder
		for _, e := range entries {
			if e.Set {
				b.WriteString(shellVars(ShellPrefix+"_"+ShellName(e.Name), e.Selection))
			}
		}
		return write(w, b.String())
	case FormatCSV:
		return writeCSV(w, entries)
	default:
		return fmt.Errorf("%w: %q", shared.ErrUnsupportedFormat, f)
	}
}

// ShellName returns the shell variable suffix for a field name. See [shared.VarName].
func ShellName(name string) string {
	return shared.VarName(name)
}

// ShellQuote wraps s in single quotes so it survives eval.
func ShellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func shellVars(prefix string, s models.Selection) string {
	return fmt.Sprintf("%s_LABEL=%s\n%s_INDEX=%d\n", prefix, ShellQuote(s.Label), prefix, s.Index)
}

func writeCSV(w io.Writer, entries []Entry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"name", "index", "label"}); err != nil {
		return fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, e := range entries {
		record := []string{e.Name, "", ""}
		if e.Set {
			record[1] = strconv.Itoa(e.Selection.Index)
			record[2] = e.Selection.Label
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("CSV writer error: %w", err)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return write(w, string(data)+"\n")
}

func write(w io.Writer, s string) error {
	if _, err := io.WriteString(w, s); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
