package portfolio

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

var ErrDuplicateRecord = errors.New("duplicate record id")

// Page is one portfolio variant served at Route.
type Page struct {
	Route   string
	Profile Profile
	Policy  Policy

	records []Record
}

// NewPage validates records and takes a private copy of them.
func NewPage(route string, profile Profile, policy Policy, records []Record) (*Page, error) {
	if !strings.HasPrefix(route, "/") {
		return nil, fmt.Errorf("route %q must start with /", route)
	}
	seen := make(map[string]bool, len(records))
	for i, r := range records {
		if r.ID == "" {
			return nil, fmt.Errorf("record %d (%q) has no id", i, r.Title)
		}
		if seen[r.ID] {
			return nil, fmt.Errorf("%w: %s on %s", ErrDuplicateRecord, r.ID, route)
		}
		seen[r.ID] = true
	}
	return &Page{
		Route:   route,
		Profile: profile,
		Policy:  policy,
		records: lo.Map(records, func(r Record, _ int) Record { return r.clone() }),
	}, nil
}

// Records returns a copy of the page's records in display order.
func (p *Page) Records() []Record {
	return lo.Map(p.records, func(r Record, _ int) Record { return r.clone() })
}

// Filter returns copies of the records visible under tab.
func (p *Page) Filter(tab Tab) []Record {
	return lo.Map(p.Policy.Filter(p.records, tab), func(r Record, _ int) Record { return r.clone() })
}

// TabView is a tab button as rendered.
type TabView struct {
	Key    Tab
	Label  string
	Active bool
	Count  int
}

// View is everything a template needs to render the page in a given state.
type View struct {
	Page    *Page
	State   FilterState
	Tabs    []TabView
	Visible []Record
}

// View derives the render model for state.
func (p *Page) View(state FilterState) View {
	tabs := lo.Map(p.Policy.tabs, func(t TabSpec, _ int) TabView {
		return TabView{
			Key:    t.Key,
			Label:  t.Label,
			Active: t.Key == state.Selected,
			Count:  p.Policy.Count(p.records, t.Key),
		}
	})
	return View{
		Page:    p,
		State:   state,
		Tabs:    tabs,
		Visible: p.Filter(state.Selected),
	}
}
