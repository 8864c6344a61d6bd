package portfolio

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

var (
	ErrUnknownTab   = errors.New("unknown tab")
	ErrDuplicateTab = errors.New("duplicate tab")
)

// Tab identifies a filter bucket on a page.
type Tab string

// TabAll is present on every page and shows every record.
const TabAll Tab = "all"

// ParseTab normalises user input into a tab key. An empty value selects
// TabAll.
func ParseTab(s string) Tab {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return TabAll
	}
	return Tab(s)
}

// TabSpec binds a tab key to its button label and membership test. Match is
// ignored for TabAll.
type TabSpec struct {
	Key   Tab
	Label string
	Match Matcher
}

// Policy is a page's table of tabs. It is immutable once built.
type Policy struct {
	tabs []TabSpec
}

// NewPolicy builds a policy whose first tab is TabAll labelled allLabel,
// followed by tabs in the given order.
func NewPolicy(allLabel string, tabs ...TabSpec) (Policy, error) {
	out := make([]TabSpec, 0, len(tabs)+1)
	out = append(out, TabSpec{Key: TabAll, Label: allLabel})
	seen := map[Tab]bool{TabAll: true}
	for _, t := range tabs {
		if t.Key == "" {
			return Policy{}, fmt.Errorf("tab with label %q has no key", t.Label)
		}
		if seen[t.Key] {
			return Policy{}, fmt.Errorf("%w: %s", ErrDuplicateTab, t.Key)
		}
		if t.Match == nil {
			return Policy{}, fmt.Errorf("tab %s has no matcher", t.Key)
		}
		seen[t.Key] = true
		out = append(out, t)
	}
	return Policy{tabs: out}, nil
}

// Tabs returns the tab specs in display order.
func (p Policy) Tabs() []TabSpec {
	return append([]TabSpec(nil), p.tabs...)
}

// Keys returns the tab keys in display order.
func (p Policy) Keys() []Tab {
	return lo.Map(p.tabs, func(t TabSpec, _ int) Tab { return t.Key })
}

// Lookup returns the spec for tab.
func (p Policy) Lookup(tab Tab) (TabSpec, bool) {
	return lo.Find(p.tabs, func(t TabSpec) bool { return t.Key == tab })
}

// Filter returns the records visible under tab, in their original order.
// TabAll and tabs the policy doesn't know return records unchanged.
func (p Policy) Filter(records []Record, tab Tab) []Record {
	spec, ok := p.Lookup(tab)
	if !ok || spec.Key == TabAll {
		return records
	}
	return lo.Filter(records, func(r Record, _ int) bool { return spec.Match(r) })
}

// Count returns how many records are visible under tab.
func (p Policy) Count(records []Record, tab Tab) int {
	spec, ok := p.Lookup(tab)
	if !ok || spec.Key == TabAll {
		return len(records)
	}
	return lo.CountBy(records, func(r Record) bool { return spec.Match(r) })
}
