package shared

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ItemList is a single picker definition read from a file.
type ItemList struct {
	Title string   `toml:"title" yaml:"title"`
	Items []string `toml:"items" yaml:"items"`
	Value *int     `toml:"value" yaml:"value"` // Committed index, nil when absent
}

// FormField is one picker-backed field of a form file.
type FormField struct {
	Name  string   `toml:"name" yaml:"name"`
	Title string   `toml:"title" yaml:"title"`
	Items []string `toml:"items" yaml:"items"`
	Value *int     `toml:"value" yaml:"value"`
}

// MaxLineSize is the longest line accepted in a plain-text items file.
const MaxLineSize = 1024 * 1024

// Form is a set of picker-backed fields shown by the demo host.
type Form struct {
	Title  string      `toml:"title" yaml:"title"`
	Fields []FormField `toml:"fields" yaml:"fields"`
}

// LoadItems reads a picker definition from path.
//
// TOML (.toml) and YAML (.yaml, .yml) files decode into [ItemList]; any other file is read as one item per line with blank lines and '#' comments skipped.
func LoadItems(path string) (*ItemList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read items file: %w", err)
	}

	var list ItemList
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, &list); err != nil {
			return nil, fmt.Errorf("failed to parse items file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &list); err != nil {
			return nil, fmt.Errorf("failed to parse items file: %w", err)
		}
	default:
		if list.Items, err = ParseLines(data); err != nil {
			return nil, fmt.Errorf("failed to parse items file: %w", err)
		}
	}

	if err := ValidateItems(list.Items); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &list, nil
}

// LoadForm reads a form definition from a TOML or YAML file.
func LoadForm(path string) (*Form, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read form file: %w", err)
	}

	var form Form
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &form)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &form)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFileExt, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse form file: %w", err)
	}

	if len(form.Fields) == 0 {
		return nil, fmt.Errorf("%w: form has no fields", ErrInvalidInput)
	}
	seen := make(map[string]string, len(form.Fields))
	for i, f := range form.Fields {
		if f.Name == "" {
			return nil, fmt.Errorf("%w: field %d has no name", ErrInvalidInput, i)
		}
		key := VarName(f.Name)
		if prev, ok := seen[key]; ok {
			return nil, fmt.Errorf("%w: fields %q and %q both map to %s", ErrDuplicateField, prev, f.Name, key)
		}
		seen[key] = f.Name
		if err := ValidateItems(f.Items); err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Name, err)
		}
	}

	return &form, nil
}

// ParseLines splits data into trimmed, non-empty lines, skipping '#' comments.
//
// Lines may be up to [MaxLineSize] bytes long.
func ParseLines(data []byte) ([]string, error) {
	var items []string
	n := 0
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	for scanner.Scan() {
		n++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		items = append(items, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("line %d: %w", n+1, err)
	}
	return items, nil
}

// VarName upper-cases name and replaces every character that may not appear in a shell variable name with an
// underscore. Form field names must be unique under this mapping.
func VarName(name string) string {
	return strings.Map(func(r rune) rune {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return unicode.ToUpper(r)
		}
		return '_'
	}, name)
}

// SplitItems parses a comma-separated flag value into items.
func SplitItems(s string) []string {
	var items []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}

// ValidateItems rejects empty lists and blank labels.
func ValidateItems(items []string) error {
	if len(items) == 0 {
		return ErrNoItems
	}
	for i, item := range items {
		if strings.TrimSpace(item) == "" {
			return fmt.Errorf("%w: item %d is blank", ErrInvalidItem, i)
		}
	}
	return nil
}
