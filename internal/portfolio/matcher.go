package portfolio

import (
	"strings"

	"github.com/samber/lo"
)

// Matcher decides whether a record belongs to a filter bucket.
type Matcher func(Record) bool

// CategoryIn matches records whose category equals one of values exactly.
func CategoryIn(values ...string) Matcher {
	allowed := lo.Uniq(values)
	return func(r Record) bool {
		return lo.Contains(allowed, r.Category)
	}
}

// CategoryContains matches records whose category contains keyword,
// ignoring case.
func CategoryContains(keyword string) Matcher {
	needle := strings.ToLower(keyword)
	return func(r Record) bool {
		return strings.Contains(strings.ToLower(r.Category), needle)
	}
}

// TagContains matches records with at least one tag containing any of the
// keywords, ignoring case. A record without tags never matches.
func TagContains(keywords ...string) Matcher {
	needles := lo.Map(keywords, func(k string, _ int) string { return strings.ToLower(k) })
	return func(r Record) bool {
		return lo.SomeBy(r.Tags, func(tag string) bool {
			tag = strings.ToLower(tag)
			return lo.SomeBy(needles, func(n string) bool { return strings.Contains(tag, n) })
		})
	}
}

// AnyOf matches when at least one of the matchers does. With no matchers it
// matches nothing.
func AnyOf(matchers ...Matcher) Matcher {
	return func(r Record) bool {
		return lo.SomeBy(matchers, func(m Matcher) bool { return m != nil && m(r) })
	}
}
