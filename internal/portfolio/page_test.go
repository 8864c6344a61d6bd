package portfolio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPage_RejectsBadRecords(t *testing.T) {
	p := auditPolicy(t)

	_, err := NewPage("/x", Profile{}, p, []Record{{ID: "1"}, {ID: "1"}})
	assert.ErrorIs(t, err, ErrDuplicateRecord)

	_, err = NewPage("/x", Profile{}, p, []Record{{Title: "no id"}})
	assert.Error(t, err)

	_, err = NewPage("x", Profile{}, p, nil)
	assert.Error(t, err)
}

func TestPage_RecordsAreCopies(t *testing.T) {
	src := []Record{{ID: "1", Category: "Internal Audit", Tags: []string{"IFCR"}}}
	page, err := NewPage("/", Profile{}, auditPolicy(t), src)
	require.NoError(t, err)

	src[0].Tags[0] = "changed"
	got := page.Records()
	assert.Equal(t, "IFCR", got[0].Tags[0])

	got[0].Tags[0] = "changed again"
	assert.Equal(t, "IFCR", page.Records()[0].Tags[0])
}

func TestPage_View(t *testing.T) {
	page, err := NewPage("/palash", Profile{}, auditPolicy(t), auditRecords())
	require.NoError(t, err)

	v := page.View(FilterState{Selected: "advisory"})
	assert.Equal(t, []string{"3", "4", "5"}, ids(v.Visible))
	require.Len(t, v.Tabs, 3)

	assert.Equal(t, TabView{Key: TabAll, Label: "All Experience", Count: 5}, v.Tabs[0])
	assert.Equal(t, TabView{Key: "advisory", Label: "Tax & Advisory", Active: true, Count: 3}, v.Tabs[1])
	assert.Equal(t, TabView{Key: "assurance", Label: "Audit & Controls", Count: 2}, v.Tabs[2])
}

func TestRecord_OptionalFields(t *testing.T) {
	var r Record
	assert.False(t, r.HasRole())
	assert.False(t, r.HasContext())
	assert.False(t, r.HasNarrative())
	assert.False(t, r.HasMetrics())

	r = Record{Role: "Lead", Context: "PSU", Narrative: "text", Metrics: []Metric{{Value: "10%", Label: "Savings"}}}
	assert.True(t, r.HasRole())
	assert.True(t, r.HasContext())
	assert.True(t, r.HasNarrative())
	assert.True(t, r.HasMetrics())
}

func TestSite(t *testing.T) {
	a, err := NewPage("/", Profile{Brand: "A"}, auditPolicy(t), nil)
	require.NoError(t, err)
	b, err := NewPage("/palash", Profile{Brand: "B"}, auditPolicy(t), nil)
	require.NoError(t, err)

	site, err := NewSite(a, b)
	require.NoError(t, err)
	assert.Equal(t, []*Page{a, b}, site.Pages())

	got, err := site.Lookup("palash")
	require.NoError(t, err)
	assert.Same(t, b, got)

	got, err = site.Lookup("/")
	require.NoError(t, err)
	assert.Same(t, a, got)

	_, err = site.Lookup("/2")
	assert.ErrorIs(t, err, ErrUnknownPage)

	_, err = NewSite(a, a)
	assert.ErrorIs(t, err, ErrDuplicateRoute)

	_, err = NewSite(a, nil, b)
	assert.ErrorIs(t, err, ErrNilPage)
	assert.ErrorContains(t, err, "page 1")
}
