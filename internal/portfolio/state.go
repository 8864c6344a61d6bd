package portfolio

import "fmt"

// FilterState is the selected tab of one page view. It starts at TabAll and
// only changes when the visitor picks a tab.
type FilterState struct {
	Selected Tab
}

// NewFilterState returns the state of a freshly opened page.
func NewFilterState() FilterState {
	return FilterState{Selected: TabAll}
}

// Action is a user interaction that can change a FilterState.
type Action interface {
	action()
}

// SelectTab is the visitor clicking a tab button.
type SelectTab struct {
	Tab Tab
}

func (SelectTab) action() {}

// Reduce applies a to s. Every tab is reachable from every other tab; an
// unknown tab leaves s unchanged and returns ErrUnknownTab.
func (p Policy) Reduce(s FilterState, a Action) (FilterState, error) {
	switch a := a.(type) {
	case SelectTab:
		if _, ok := p.Lookup(a.Tab); !ok {
			return s, fmt.Errorf("%w: %q", ErrUnknownTab, a.Tab)
		}
		return FilterState{Selected: a.Tab}, nil
	default:
		return s, fmt.Errorf("unsupported action %T", a)
	}
}
