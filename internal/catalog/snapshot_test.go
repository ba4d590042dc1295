package catalog

import (
	"testing"

	"go-shop-sync/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSnapshot() *Snapshot {
	return New(
		[]model.Product{
			{Id: "5", Name: "Apple", CategoryId: "cat1"},
			{Id: "7", Name: "Milk", CategoryId: "cat2"},
			{Id: "x9", Name: "Mystery", CategoryId: "cat2"},
		},
		[]model.Category{{Id: "cat1", Name: "Fruit"}, {Id: "cat2", Name: "Dairy"}},
	)
}

func TestResolveProductNosKeepsOrderAndDropsUnknown(t *testing.T) {
	s := testSnapshot()

	products := s.ResolveProductNos([]int{7, 99, 5})
	require.Len(t, products, 2)
	assert.Equal(t, "7", products[0].Id)
	assert.Equal(t, "5", products[1].Id)
}

func TestLookups(t *testing.T) {
	s := testSnapshot()

	p, ok := s.ProductById("x9")
	require.True(t, ok)
	assert.Equal(t, "Mystery", p.Name)

	_, ok = s.ProductById("nope")
	assert.False(t, ok)

	c, ok := s.CategoryByName("dAiRy")
	require.True(t, ok)
	assert.Equal(t, "cat2", c.Id)

	_, ok = s.CategoryById("cat3")
	assert.False(t, ok)
}

func TestSnapshotIsIsolatedFromCallers(t *testing.T) {
	products := []model.Product{{Id: "1", Name: "Apple"}}
	s := New(products, nil)

	products[0].Name = "Changed"
	got := s.Products()
	got[0].Name = "Changed again"

	p, _ := s.ProductById("1")
	assert.Equal(t, "Apple", p.Name)
}

func TestEmptySnapshot(t *testing.T) {
	s := New(nil, nil)
	assert.True(t, s.Empty())
	assert.Empty(t, s.ResolveProductNos([]int{1, 2}))
}
