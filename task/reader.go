// task/reader.go

package task

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// dateLayouts are tried in order when parsing from/to values.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02",
}

// FieldError describes a malformed value in a data file.
type FieldError struct {
	Group string
	Item  string
	Field string
	Line  int
	Msg   string
}

func (e *FieldError) Error() string {
	var where []string
	if e.Group != "" {
		where = append(where, fmt.Sprintf("group %q", e.Group))
	}
	if e.Item != "" {
		where = append(where, fmt.Sprintf("item %q", e.Item))
	}
	if e.Line > 0 {
		where = append(where, fmt.Sprintf("line %d", e.Line))
	}
	prefix := e.Field
	if len(where) > 0 {
		prefix = strings.Join(where, ", ") + ": " + e.Field
	}
	return prefix + " " + e.Msg
}

type rawDate struct {
	value string
	line  int
}

func (d *rawDate) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return &FieldError{Field: "date", Line: value.Line, Msg: "must be a scalar"}
	}
	if value.Tag == "!!null" {
		return nil
	}
	d.value = strings.TrimSpace(value.Value)
	d.line = value.Line
	return nil
}

type rawItem struct {
	ID      ID       `yaml:"id"`
	Name    string   `yaml:"name"`
	From    rawDate  `yaml:"from"`
	To      rawDate  `yaml:"to"`
	Percent *float64 `yaml:"percent"`
}

type rawGroup struct {
	ID       ID        `yaml:"id"`
	Name     string    `yaml:"name"`
	Collapse bool      `yaml:"collapse"`
	Children []rawItem `yaml:"children"`
}

// ReadGroups decodes a YAML or JSON list of groups, interpreting dates without
// a zone in the local time zone.
func ReadGroups(r io.Reader) ([]Group, error) {
	return ReadGroupsIn(r, time.Local)
}

// ReadGroupsIn is ReadGroups with an explicit location for zone-less dates.
func ReadGroupsIn(r io.Reader, loc *time.Location) ([]Group, error) {
	if loc == nil {
		loc = time.Local
	}
	var raw []rawGroup
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return []Group{}, nil
		}
		return nil, fmt.Errorf("ReadGroups: decode: %w", err)
	}

	groups := make([]Group, 0, len(raw))
	for _, rg := range raw {
		g := Group{ID: rg.ID, Name: rg.Name, Collapse: rg.Collapse}
		if len(rg.Children) > 0 {
			g.Children = make([]Item, 0, len(rg.Children))
		}
		for _, ri := range rg.Children {
			it, err := convertItem(ri, loc)
			if err != nil {
				var fe *FieldError
				if errors.As(err, &fe) {
					fe.Group = rg.Name
				}
				return nil, fmt.Errorf("ReadGroups: %w", err)
			}
			g.Children = append(g.Children, it)
		}
		groups = append(groups, g)
	}
	return groups, nil
}

// ReadFile reads groups from a YAML or JSON file.
func ReadFile(path string) ([]Group, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	groups, err := ReadGroups(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return groups, nil
}

func convertItem(ri rawItem, loc *time.Location) (Item, error) {
	it := Item{ID: ri.ID, Name: ri.Name}
	var err error
	if it.From, err = parseDate(ri.From, loc); err != nil {
		return it, &FieldError{Item: ri.Name, Field: "from", Line: ri.From.line, Msg: err.Error()}
	}
	if it.To, err = parseDate(ri.To, loc); err != nil {
		return it, &FieldError{Item: ri.Name, Field: "to", Line: ri.To.line, Msg: err.Error()}
	}
	if it.Scheduled() && it.From.After(it.To) {
		return it, &FieldError{Item: ri.Name, Field: "from", Line: ri.From.line, Msg: "is after to"}
	}
	if ri.Percent != nil {
		p := *ri.Percent
		if p < 0 || p > 100 {
			return it, &FieldError{Item: ri.Name, Field: "percent", Msg: fmt.Sprintf("%g is outside [0,100]", p)}
		}
		it.Percent = p
	}
	return it, nil
}

func parseDate(d rawDate, loc *time.Location) (time.Time, error) {
	if d.value == "" {
		return time.Time{}, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, d.value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%q is not a recognised date", d.value)
}
