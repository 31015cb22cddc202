package keygraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algokata/algokata/keygraph"
)

func TestGraph_InternsKeysInFirstSightOrder(t *testing.T) {
	g := keygraph.New[string, struct{}, struct{}]()
	g.Add("tokyo", "osaka", struct{}{})
	g.Add("osaka", "kyoto", struct{}{})

	id, ok := g.Index("tokyo")
	require.True(t, ok)
	assert.Equal(t, 0, id)

	id, ok = g.Index("kyoto")
	require.True(t, ok)
	assert.Equal(t, 2, id)

	key, ok := g.Key(1)
	require.True(t, ok)
	assert.Equal(t, "osaka", key)

	assert.Equal(t, 3, g.Len())
}

func TestGraph_AbsenceIsReported(t *testing.T) {
	g := keygraph.New[string, struct{}, int]()
	g.Add("a", "b", struct{}{})

	_, ok := g.Index("never-added")
	assert.False(t, ok)

	_, ok = g.Key(7)
	assert.False(t, ok)
	_, ok = g.Key(-1)
	assert.False(t, ok)

	// Known node, but no payload was ever set.
	_, ok = g.Node("a")
	assert.False(t, ok)

	assert.Empty(t, g.Neighbors("never-added"))
	assert.Empty(t, g.Arcs(42))
}

func TestGraph_NodePayloadUpsert(t *testing.T) {
	g := keygraph.New[string, struct{}, int]()
	g.SetNode("a", 10)
	g.SetNode("a", 20)

	got, ok := g.Node("a")
	require.True(t, ok)
	assert.Equal(t, 20, got)

	// SetNode alone creates the node.
	assert.Equal(t, 1, g.Len())
}

func TestGraph_UndirectedAddsSymmetricArc(t *testing.T) {
	g := keygraph.New[int, int, struct{}]()
	g.Add(1, 2, 5)

	assert.Equal(t, []int{2}, g.Neighbors(1))
	assert.Equal(t, []int{1}, g.Neighbors(2))
}

func TestGraph_DirectedAddsOneArc(t *testing.T) {
	g := keygraph.New[int, int, struct{}](keygraph.WithDirected())
	g.Add(1, 2, 5)

	assert.Equal(t, []int{2}, g.Neighbors(1))
	assert.Empty(t, g.Neighbors(2))
}

func TestGraph_SelfLoopStoredOnce(t *testing.T) {
	g := keygraph.New[int, int, struct{}]()
	g.Add(3, 3, 1)

	assert.Equal(t, []int{3}, g.Neighbors(3))
}

func TestFromGrid_PassableCellsBecomeNodes(t *testing.T) {
	grid := [][]int{
		{1, 0, 0},
		{1, 1, 0},
		{0, 1, 1},
	}
	g := keygraph.FromGrid(grid, func(v int) bool { return v == 1 })

	assert.Equal(t, 5, g.Len())

	// Blocked cells are absent, open cells carry their value.
	_, ok := g.Index([2]int{0, 1})
	assert.False(t, ok)
	val, ok := g.Node([2]int{0, 0})
	require.True(t, ok)
	assert.Equal(t, 1, val)

	// The middle cell touches its open neighbors only.
	assert.Equal(t, [][2]int{{1, 0}, {2, 1}}, g.Neighbors([2]int{1, 1}))
}

func TestFromGrid_RuneMaze(t *testing.T) {
	grid := [][]rune{
		[]rune(".#."),
		[]rune("..."),
	}
	g := keygraph.FromGrid(grid, func(r rune) bool { return r != '#' })

	assert.Equal(t, 5, g.Len())
	assert.Equal(t, [][2]int{{1, 0}, {1, 2}}, g.Neighbors([2]int{1, 1}))
}

func TestFromGrid_EmptyAndRagged(t *testing.T) {
	assert.Equal(t, 0, keygraph.FromGrid(nil, func(int) bool { return true }).Len())

	ragged := [][]int{
		{1, 1, 1},
		{1},
		{1, 1},
	}
	g := keygraph.FromGrid(ragged, func(v int) bool { return v == 1 })
	assert.Equal(t, 6, g.Len())
}
