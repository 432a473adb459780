//go:build !windows

package stack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jamesxia20181001/prs/internal/vmem"
)

// Growth sizing from the faulting address is the POSIX layout policy;
// these tests pin its exact arithmetic.

func TestCreateAtCeiling(t *testing.T) {
	a := New(testMax)

	top, committed, err := a.Create(testMax)
	require.NoError(t, err)
	defer a.Destroy(top)

	assert.Equal(t, uintptr(testMax), committed)
	poke(top-testMax, 0x01) // whole range usable down to the bottom
	assert.Equal(t, byte(0x01), peek(top-testMax))
}

func TestGrowMakesFaultingAddressAccessible(t *testing.T) {
	a := New(testMax)
	ps := vmem.PageSize()

	top, size, err := a.Create(1)
	require.NoError(t, err)
	defer a.Destroy(top)
	require.Equal(t, ps, size)

	failed := top - ps - 1 // first byte past the committed page
	assert.True(t, faults(func() { poke(failed, 0xff) }))

	newSize, err := a.Grow(top, size, failed)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, newSize, 2*ps)
	assert.Zero(t, newSize%ps)

	poke(failed, 0xff)
	assert.Equal(t, byte(0xff), peek(failed))
}

func TestGrowIsMonotonic(t *testing.T) {
	a := New(testMax)
	ps := vmem.PageSize()

	top, size, err := a.Create(1)
	require.NoError(t, err)
	defer a.Destroy(top)

	for i := 0; i < 8; i++ {
		failed := top - size - 1
		newSize, err := a.Grow(top, size, failed)
		require.NoError(t, err, "grow %d", i)

		assert.Greater(t, newSize, size, "grow %d must increase the size", i)
		assert.Zero(t, newSize%ps, "grow %d size must be page-aligned", i)
		assert.LessOrEqual(t, newSize, uintptr(testMax))

		poke(top-newSize, byte(i)) // new limit byte is accessible
		size = newSize
	}
}

func TestGrowPastCeilingFails(t *testing.T) {
	a := New(testMax)

	top, size, err := a.Create(1)
	require.NoError(t, err)
	defer a.Destroy(top)

	// One byte below the reservation: the required size rounds past the
	// ceiling.
	newSize, err := a.Grow(top, size, top-testMax-1)
	require.ErrorIs(t, err, ErrSizeLimit)
	assert.Zero(t, newSize)

	// The previously committed region is untouched.
	poke(top-size, 0x3c)
	assert.Equal(t, byte(0x3c), peek(top-size))
	assert.True(t, faults(func() { _ = peek(top - size - 1) }),
		"failed grow must not commit anything")
}

func TestGrowInsideCommittedRegionPanics(t *testing.T) {
	a := New(testMax)
	ps := vmem.PageSize()

	top, size, err := a.Create(2 * ps)
	require.NoError(t, err)
	defer a.Destroy(top)

	assert.Panics(t, func() { _, _ = a.Grow(top, size, top-1) })
	assert.Panics(t, func() { _, _ = a.Grow(top, size, top-size) })
}

func TestOverflowScenario(t *testing.T) {
	a := New(testMax)
	ps := vmem.PageSize()

	top, committed, err := a.Create(1)
	require.NoError(t, err)
	defer a.Destroy(top)
	require.Equal(t, ps, committed)

	poke(top-1, 0x42)

	failed := top - ps - 1
	require.True(t, faults(func() { poke(failed, 0x43) }),
		"access one byte past the committed page must trap")

	newSize, err := a.Grow(top, committed, failed)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, newSize, 2*ps)

	poke(failed, 0x43)
	assert.Equal(t, byte(0x42), peek(top-1), "old contents survive growth")
	assert.Equal(t, byte(0x43), peek(failed))
}
