package portfolio

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	ErrDuplicateRoute = errors.New("duplicate route")
	ErrUnknownPage    = errors.New("unknown page")
	ErrNilPage        = errors.New("nil page")
)

// Site is the route table of all portfolio pages.
type Site struct {
	pages []*Page
	index map[string]*Page
}

// NewSite registers pages in the given order.
func NewSite(pages ...*Page) (*Site, error) {
	s := &Site{index: make(map[string]*Page, len(pages))}
	for i, p := range pages {
		if p == nil {
			return nil, fmt.Errorf("%w: page %d is nil", ErrNilPage, i)
		}
		if _, ok := s.index[p.Route]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateRoute, p.Route)
		}
		s.index[p.Route] = p
		s.pages = append(s.pages, p)
	}
	return s, nil
}

// Pages returns the registered pages in registration order.
func (s *Site) Pages() []*Page {
	return slices.Clone(s.pages)
}

// Lookup finds the page served at route. The leading slash is optional so
// CLI users can write "palash" as well as "/palash".
func (s *Site) Lookup(route string) (*Page, error) {
	route = strings.TrimSpace(route)
	if !strings.HasPrefix(route, "/") {
		route = "/" + route
	}
	if p, ok := s.index[route]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownPage, route)
}
