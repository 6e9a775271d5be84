package render

import (
	"errors"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestParseGranularity(t *testing.T) {
	type tc struct {
		in      string
		want    Granularity
		wantErr bool
	}

	tests := map[string]tc{
		"day":        {in: "day", want: Day},
		"week":       {in: "week", want: Week},
		"month":      {in: "month", want: Month},
		"mixed case": {in: " Month ", want: Month},
		"year":       {in: "year", wantErr: true},
		"empty":      {in: "", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseGranularity(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidGranularity) {
					t.Fatalf("err = %v, want ErrInvalidGranularity", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGranularity_Units(t *testing.T) {
	tests := map[Granularity]int{Day: 1, Week: 7, Month: 30}
	for g, days := range tests {
		if g.Days() != days {
			t.Errorf("%v.Days() = %d, want %d", g, g.Days(), days)
		}
		if g.Unit() != time.Duration(days)*24*time.Hour {
			t.Errorf("%v.Unit() = %v", g, g.Unit())
		}
	}
	if Granularity(7).Valid() {
		t.Error("Granularity(7) should not be valid")
	}
}

func TestGranularity_Header(t *testing.T) {
	if _, ok := Day.header().(dayHeader); !ok {
		t.Errorf("Day header = %T, want dayHeader", Day.header())
	}
	for _, g := range []Granularity{Week, Month} {
		b, ok := g.header().(bucketHeader)
		if !ok {
			t.Fatalf("%v header = %T, want bucketHeader", g, g.header())
		}
		if b.size != 4 || b.days != g.Days() {
			t.Errorf("%v header = %+v", g, b)
		}
	}
}

func TestGranularity_YAML(t *testing.T) {
	var v struct {
		Type Granularity `yaml:"type"`
	}
	if err := yaml.Unmarshal([]byte("type: week\n"), &v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Type != Week {
		t.Errorf("Type = %v, want week", v.Type)
	}

	err := yaml.Unmarshal([]byte("type: fortnight\n"), &v)
	if !errors.Is(err, ErrInvalidGranularity) {
		t.Errorf("err = %v, want ErrInvalidGranularity", err)
	}

	out, err := yaml.Marshal(struct {
		Type Granularity `yaml:"type"`
	}{Month})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(out) != "type: month\n" {
		t.Errorf("Marshal = %q", out)
	}
}
