// Package portfolio holds the engagement records shown on each portfolio
// page and the tab filters that select which of them are visible.
package portfolio

import "strings"

// Metric is a headline figure shown under an engagement. Both fields are
// display strings and are never parsed.
type Metric struct {
	Value string `yaml:"value" json:"value"`
	Label string `yaml:"label" json:"label"`
}

// Record is one project or professional engagement entry.
type Record struct {
	ID        string   `yaml:"id" json:"id"`
	Category  string   `yaml:"category" json:"category"`
	Title     string   `yaml:"title" json:"title"`
	Role      string   `yaml:"role,omitempty" json:"role,omitempty"`
	Context   string   `yaml:"context,omitempty" json:"context,omitempty"`
	Tags      []string `yaml:"tags,omitempty" json:"tags,omitempty"`
	Narrative string   `yaml:"narrative,omitempty" json:"narrative,omitempty"`
	Metrics   []Metric `yaml:"metrics,omitempty" json:"metrics,omitempty"`
}

// HasRole reports whether the record carries a role badge.
func (r Record) HasRole() bool { return strings.TrimSpace(r.Role) != "" }

// HasContext reports whether the record names a client or sector.
func (r Record) HasContext() bool { return strings.TrimSpace(r.Context) != "" }

// HasNarrative reports whether the record has a description paragraph.
func (r Record) HasNarrative() bool { return strings.TrimSpace(r.Narrative) != "" }

// HasMetrics reports whether the metrics grid should be rendered.
func (r Record) HasMetrics() bool { return len(r.Metrics) > 0 }

// clone returns a deep copy so callers can't reach the page's backing arrays.
func (r Record) clone() Record {
	out := r
	if r.Tags != nil {
		out.Tags = append([]string(nil), r.Tags...)
	}
	if r.Metrics != nil {
		out.Metrics = append([]Metric(nil), r.Metrics...)
	}
	return out
}
