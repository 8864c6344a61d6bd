package portfolio

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(records []Record) []string {
	return lo.Map(records, func(r Record, _ int) string { return r.ID })
}

// auditPolicy mirrors the category allow-list page used in the tests below.
func auditPolicy(t *testing.T) Policy {
	t.Helper()
	p, err := NewPolicy("All Experience",
		TabSpec{Key: "advisory", Label: "Tax & Advisory", Match: CategoryIn("Tax & Compliance", "Costing & MIS")},
		TabSpec{Key: "assurance", Label: "Audit & Controls", Match: CategoryIn("Audit & Assurance", "Internal Audit")},
	)
	require.NoError(t, err)
	return p
}

func auditRecords() []Record {
	return []Record{
		{ID: "1", Category: "Audit & Assurance", Title: "Statutory & Tax Audits"},
		{ID: "2", Category: "Internal Audit", Title: "Internal & Process Audits"},
		{ID: "3", Category: "Costing & MIS", Title: "TDABC on SAP HANA"},
		{ID: "4", Category: "Tax & Compliance", Title: "Direct Tax & TDS Compliance"},
		{ID: "5", Category: "Tax & Compliance", Title: "Transfer Pricing Documentation"},
	}
}

// costRiskPolicy combines category and tag tests.
func costRiskPolicy(t *testing.T) Policy {
	t.Helper()
	p, err := NewPolicy("All Systems",
		TabSpec{Key: "cost", Label: "Cost", Match: AnyOf(CategoryContains("cost"), TagContains("tdabc", "value"))},
		TabSpec{Key: "risk", Label: "Risk", Match: AnyOf(CategoryContains("risk"), TagContains("sox", "icfr"))},
	)
	require.NoError(t, err)
	return p
}

func TestFilter_CategoryAllowList(t *testing.T) {
	p := auditPolicy(t)
	records := auditRecords()

	assert.Equal(t, []string{"1", "2"}, ids(p.Filter(records, "assurance")))
	assert.Equal(t, []string{"3", "4", "5"}, ids(p.Filter(records, "advisory")))
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids(p.Filter(records, TabAll)))
}

func TestFilter_AllIsIdentity(t *testing.T) {
	for _, p := range []Policy{auditPolicy(t), costRiskPolicy(t)} {
		records := auditRecords()
		got := p.Filter(records, TabAll)
		assert.Equal(t, records, got)
	}
}

func TestFilter_UnknownTabReturnsEverything(t *testing.T) {
	records := auditRecords()
	assert.Equal(t, records, auditPolicy(t).Filter(records, "bogus"))
}

func TestFilter_CategoryAndTagKeywords(t *testing.T) {
	p := costRiskPolicy(t)
	records := []Record{
		{ID: "1", Category: "Structural Costing", Tags: []string{"MySQL", "Power BI"}},
		{ID: "2", Category: "Process Engineering", Tags: []string{"Value Stream Mapping"}},
		{ID: "3", Category: "System Design", Tags: []string{"TDABC", "Excel"}},
		{ID: "4", Category: "Risk Control", Tags: []string{"SQL", "ICFR"}},
		{ID: "5", Category: "Governance", Tags: []string{"sox frameworks"}},
		{ID: "6", Category: "Branding"},
	}

	assert.Equal(t, []string{"1", "2", "3"}, ids(p.Filter(records, "cost")))
	assert.Equal(t, []string{"4", "5"}, ids(p.Filter(records, "risk")))
}

func TestFilter_UnmatchedRecordOnlyUnderAll(t *testing.T) {
	orphan := Record{ID: "x", Category: "Marketing"}
	for _, p := range []Policy{auditPolicy(t), costRiskPolicy(t)} {
		records := append(auditRecords(), orphan)
		for _, key := range p.Keys() {
			got := ids(p.Filter(records, key))
			if key == TabAll {
				assert.Contains(t, got, "x")
				continue
			}
			assert.NotContains(t, got, "x", "tab %s", key)
		}
	}
}

func TestFilter_Properties(t *testing.T) {
	records := []Record{
		{ID: "a", Category: "Risk Assurance", Tags: []string{"ICFR"}},
		{ID: "b", Category: "Transformation", Tags: []string{"TDABC"}},
		{ID: "c", Category: "Costing & MIS"},
		{ID: "d", Category: "Internal Audit", Tags: []string{"Value", "value"}},
		{ID: "e", Category: "Tax & Compliance", Tags: nil},
		{ID: "f", Category: "Audit & Assurance", Tags: []string{"SOX"}},
	}

	for _, p := range []Policy{auditPolicy(t), costRiskPolicy(t)} {
		for _, spec := range p.Tabs() {
			got := p.Filter(records, spec.Key)

			// idempotent
			assert.Equal(t, got, p.Filter(got, spec.Key), "tab %s", spec.Key)

			// every result satisfies the matcher and nothing matching is dropped
			if spec.Key != TabAll {
				for _, r := range records {
					assert.Equal(t, spec.Match(r), lo.ContainsBy(got, func(g Record) bool { return g.ID == r.ID }),
						"tab %s record %s", spec.Key, r.ID)
				}
			}

			// subsequence of the input in the same relative order
			i := 0
			for _, r := range records {
				if i < len(got) && got[i].ID == r.ID {
					i++
				}
			}
			assert.Equal(t, len(got), i, "tab %s is not an ordered subsequence", spec.Key)
		}
	}
}

func TestNewPolicy(t *testing.T) {
	p, err := NewPolicy("Everything", TabSpec{Key: "cost", Label: "Cost", Match: CategoryIn("Cost")})
	require.NoError(t, err)
	assert.Equal(t, []Tab{TabAll, "cost"}, p.Keys())

	spec, ok := p.Lookup(TabAll)
	require.True(t, ok)
	assert.Equal(t, "Everything", spec.Label)

	_, err = NewPolicy("All", TabSpec{Key: "all", Label: "Again", Match: CategoryIn("x")})
	assert.ErrorIs(t, err, ErrDuplicateTab)

	_, err = NewPolicy("All",
		TabSpec{Key: "cost", Match: CategoryIn("x")},
		TabSpec{Key: "cost", Match: CategoryIn("y")},
	)
	assert.ErrorIs(t, err, ErrDuplicateTab)

	_, err = NewPolicy("All", TabSpec{Key: "", Label: "Nameless", Match: CategoryIn("x")})
	assert.Error(t, err)

	_, err = NewPolicy("All", TabSpec{Key: "cost"})
	assert.Error(t, err)
}

func TestCount(t *testing.T) {
	p := auditPolicy(t)
	records := auditRecords()
	assert.Equal(t, 5, p.Count(records, TabAll))
	assert.Equal(t, 3, p.Count(records, "advisory"))
	assert.Equal(t, 2, p.Count(records, "assurance"))
}

func TestParseTab(t *testing.T) {
	assert.Equal(t, TabAll, ParseTab(""))
	assert.Equal(t, TabAll, ParseTab("  "))
	assert.Equal(t, Tab("advisory"), ParseTab(" Advisory "))
}
