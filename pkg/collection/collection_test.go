package collection_test

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/fruitfuel/pkg/collection"
)

type line struct {
	sku string
	qty int
}

func TestFilterDoesNotAliasInput(t *testing.T) {
	in := []int{1, 2, 3, 4}
	out := collection.Filter(in, func(v int) bool { return v%2 == 0 })
	assert.Equal(t, []int{2, 4}, out)

	out[0] = 99
	assert.Equal(t, []int{1, 2, 3, 4}, in)
}

func TestTakeClampsAndCopies(t *testing.T) {
	in := []string{"a", "b", "c"}
	assert.Equal(t, []string{"a", "b"}, collection.Take(in, 2))
	assert.Equal(t, in, collection.Take(in, 10))
	assert.Empty(t, collection.Take(in, -1))

	got := collection.Take(in, 3)
	got[0] = "z"
	assert.Equal(t, "a", in[0])
}

func TestSortByIsStableAndNonDestructive(t *testing.T) {
	in := []line{{"b", 2}, {"a", 1}, {"c", 2}}
	out := collection.SortBy(in, func(x, y line) int { return cmp.Compare(y.qty, x.qty) })

	assert.Equal(t, []line{{"b", 2}, {"c", 2}, {"a", 1}}, out)
	assert.Equal(t, "b", in[0].sku)
	assert.Equal(t, "a", in[1].sku)
}

func TestGroupByAndSum(t *testing.T) {
	in := []line{{"a", 1}, {"b", 2}, {"a", 3}}
	groups := collection.GroupBy(in, func(l line) string { return l.sku })
	assert.Len(t, groups, 2)
	assert.Equal(t, 4.0, collection.Sum(groups["a"], func(l line) float64 { return float64(l.qty) }))
}

func TestFirstRejectReverseFlatten(t *testing.T) {
	in := []int{5, 6, 7}

	v, ok := collection.First(in, func(n int) bool { return n > 5 })
	assert.True(t, ok)
	assert.Equal(t, 6, v)

	_, ok = collection.First(in, func(n int) bool { return n > 10 })
	assert.False(t, ok)

	assert.Equal(t, []int{5, 7}, collection.Reject(in, func(n int) bool { return n == 6 }))
	assert.Equal(t, []int{7, 6, 5}, collection.Reverse(in))
	assert.Equal(t, []int{1, 2, 3}, collection.Flatten([][]int{{1}, {2, 3}}))
	assert.Equal(t, []string{"5", "6", "7"}, collection.Map(in, func(n int) string { return string(rune('0' + n)) }))
}
