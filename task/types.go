// task/types.go

package task

import (
	"time"

	"gopkg.in/yaml.v3"
)

// ID identifies a group or item. Data files may use numbers or strings.
type ID string

// UnmarshalYAML accepts any scalar as an ID.
func (id *ID) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return &FieldError{Field: "id", Line: value.Line, Msg: "must be a scalar"}
	}
	*id = ID(value.Value)
	return nil
}

// Group is a collapsible set of task items shown under one bold label row.
// Children are displayed in slice order.
type Group struct {
	ID       ID     `yaml:"id"`
	Name     string `yaml:"name"`
	Collapse bool   `yaml:"collapse"`
	Children []Item `yaml:"children"`
}

// Item is a single scheduled task. A zero From or To means the item is unscheduled.
type Item struct {
	ID      ID        `yaml:"id"`
	Name    string    `yaml:"name"`
	From    time.Time `yaml:"-"`
	To      time.Time `yaml:"-"`
	Percent float64   `yaml:"percent"`
}

// Scheduled reports whether both dates are present.
func (it Item) Scheduled() bool {
	return !it.From.IsZero() && !it.To.IsZero()
}

// Rows returns how many chart rows the group occupies.
func (g Group) Rows() int {
	if g.Collapse {
		return 1
	}
	return 1 + len(g.Children)
}

// Clone deep-copies groups so the copy can be mutated without touching the original.
func Clone(groups []Group) []Group {
	if groups == nil {
		return nil
	}
	out := make([]Group, len(groups))
	for i, g := range groups {
		out[i] = g
		if g.Children != nil {
			out[i].Children = append([]Item(nil), g.Children...)
		}
	}
	return out
}
