package bmerge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_OutOfRangeReturnsZeroCell(t *testing.T) {
	tbl, ok := newTable(3, 4)
	require.True(t, ok)

	assert.Equal(t, Cell{}, tbl.at(-1, 0))
	assert.Equal(t, Cell{}, tbl.at(0, -1))
	assert.Equal(t, Cell{}, tbl.at(3, 0))
	assert.Equal(t, Cell{}, tbl.at(0, 4))
}

func TestTable_SetThenGet(t *testing.T) {
	tbl, ok := newTable(3, 4)
	require.True(t, ok)

	tbl.set(1, 2, Cell{C: 5, G: 2})

	assert.Equal(t, Cell{C: 5, G: 2}, tbl.at(1, 2))
	assert.Equal(t, Cell{}, tbl.at(1, 1))
}

func TestTable_RejectsOversizedDimensions(t *testing.T) {
	_, ok := newTable(maxInputLen+1, 10)
	assert.False(t, ok)

	_, ok = newTable(10, maxInputLen+1)
	assert.False(t, ok)
}
