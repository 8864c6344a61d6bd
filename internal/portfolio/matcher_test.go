package portfolio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryIn(t *testing.T) {
	m := CategoryIn("Transformation", "Optimization")
	assert.True(t, m(Record{Category: "Transformation"}))
	assert.True(t, m(Record{Category: "Optimization"}))
	assert.False(t, m(Record{Category: "transformation"}), "equality is exact")
	assert.False(t, m(Record{Category: "Risk Assurance"}))
	assert.False(t, CategoryIn()(Record{Category: ""}))
}

func TestCategoryContains(t *testing.T) {
	m := CategoryContains("cost")
	assert.True(t, m(Record{Category: "Structural Costing"}))
	assert.True(t, m(Record{Category: "COST"}))
	assert.False(t, m(Record{Category: "Risk Control"}))
	assert.False(t, m(Record{}))
}

func TestTagContains(t *testing.T) {
	m := TagContains("sox", "icfr")
	assert.True(t, m(Record{Tags: []string{"SQL", "SOX Frameworks"}}))
	assert.True(t, m(Record{Tags: []string{"icfr"}}))
	assert.False(t, m(Record{Tags: []string{"SQL"}}))
	assert.False(t, m(Record{}), "no tags never matches")
}

func TestAnyOf(t *testing.T) {
	m := AnyOf(CategoryContains("risk"), TagContains("sox"))
	assert.True(t, m(Record{Category: "Risk Control"}))
	assert.True(t, m(Record{Category: "Design", Tags: []string{"SOX"}}))
	assert.False(t, m(Record{Category: "Design"}))
	assert.False(t, AnyOf()(Record{Category: "Risk"}))
	assert.False(t, AnyOf(nil)(Record{Category: "Risk"}))
}
