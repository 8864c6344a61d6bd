// Package content holds the compiled-in portfolio pages: their records,
// tab policies and presentation copy.
package content

import (
	"fmt"

	"github.com/kjcma/portfolio/internal/portfolio"
)

type variant struct {
	route   string
	profile portfolio.Profile
	policy  func() (portfolio.Policy, error)
	records []portfolio.Record
}

var variants = []variant{
	{route: "/", profile: khushiProfile, policy: khushiPolicy, records: khushiRecords},
	{route: "/1", profile: consultingProfile, policy: consultingPolicy, records: consultingRecords},
	{route: "/palash", profile: palashProfile, policy: palashPolicy, records: palashRecords},
}

// NewSite builds the route table of every page.
func NewSite() (*portfolio.Site, error) {
	pages := make([]*portfolio.Page, 0, len(variants))
	for _, v := range variants {
		policy, err := v.policy()
		if err != nil {
			return nil, fmt.Errorf("policy for %s: %w", v.route, err)
		}
		page, err := portfolio.NewPage(v.route, v.profile, policy, v.records)
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}
	return portfolio.NewSite(pages...)
}

// MustSite is NewSite for start-up code; the data is compiled in, so an
// error here is a programming mistake.
func MustSite() *portfolio.Site {
	site, err := NewSite()
	if err != nil {
		panic(err)
	}
	return site
}
