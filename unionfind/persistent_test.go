package unionfind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algokata/algokata/unionfind"
)

func TestPersistent_UniteAndQuery(t *testing.T) {
	p := unionfind.NewPersistent(5)
	assert.True(t, p.Unite(0, 1))
	assert.True(t, p.Unite(2, 3))
	assert.True(t, p.Unite(1, 2))

	assert.True(t, p.Same(0, 3))
	assert.Equal(t, 4, p.Size(0))
	assert.Equal(t, 2, p.Count())
}

func TestPersistent_RollbackRestoresExactly(t *testing.T) {
	p := unionfind.NewPersistent(6)
	p.Unite(0, 1)
	p.Unite(2, 3)

	cp := p.Snapshot()
	require.Equal(t, 4, p.Count())

	// Branch: join everything, then rewind.
	p.Unite(1, 2)
	p.Unite(3, 4)
	p.Unite(4, 5)
	require.True(t, p.Same(0, 5))
	require.Equal(t, 1, p.Count())

	p.Rollback(cp)

	assert.Equal(t, 4, p.Count())
	assert.True(t, p.Same(0, 1))
	assert.True(t, p.Same(2, 3))
	assert.False(t, p.Same(0, 3))
	assert.False(t, p.Same(4, 5))
	assert.Equal(t, 2, p.Size(0))
	assert.Equal(t, 1, p.Size(4))
}

func TestPersistent_NestedCheckpoints(t *testing.T) {
	p := unionfind.NewPersistent(4)

	cp0 := p.Snapshot()
	p.Unite(0, 1)
	cp1 := p.Snapshot()
	p.Unite(2, 3)

	p.Rollback(cp1)
	assert.True(t, p.Same(0, 1))
	assert.False(t, p.Same(2, 3))

	p.Rollback(cp0)
	assert.False(t, p.Same(0, 1))
	assert.Equal(t, 4, p.Count())
}

func TestPersistent_RollbackToCurrentIsNoop(t *testing.T) {
	p := unionfind.NewPersistent(3)
	p.Unite(0, 1)
	cp := p.Snapshot()
	p.Rollback(cp)
	assert.True(t, p.Same(0, 1))
	assert.Equal(t, 2, p.Count())
}

func TestPersistent_FailedUniteLogsNothing(t *testing.T) {
	p := unionfind.NewPersistent(3)
	p.Unite(0, 1)
	cp := p.Snapshot()

	// Re-joining an existing pair must not pollute the log: rolling back
	// to cp afterwards must not undo the original union.
	assert.False(t, p.Unite(1, 0))
	p.Rollback(cp)
	assert.True(t, p.Same(0, 1))
}

func TestPersistent_StaleCheckpointPanics(t *testing.T) {
	p := unionfind.NewPersistent(4)
	p.Unite(0, 1)
	future := p.Snapshot()
	p.Rollback(0)

	// future now points past the truncated log.
	assert.Panics(t, func() { p.Rollback(future) })
	assert.Panics(t, func() { p.Rollback(-1) })
}

func TestPersistent_OutOfRangePanics(t *testing.T) {
	p := unionfind.NewPersistent(2)
	assert.Panics(t, func() { p.Find(2) })
	assert.Panics(t, func() { unionfind.NewPersistent(-3) })
}
