package bitscratch

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMinFreeEmpty(t *testing.T) {
	s := Acquire()
	defer Release(s)
	require.EqualValues(t, 0, s.MinFree())
}

func TestMinFreeAfterMarks(t *testing.T) {
	s := Acquire()
	defer Release(s)
	s.Mark(0)
	s.Mark(1)
	s.Mark(3)
	require.EqualValues(t, 2, s.MinFree())
}

func TestMinFreeGrowsBeyondPrefill(t *testing.T) {
	s := Acquire()
	defer Release(s)
	for i := int32(0); i < prefillBits+10; i++ {
		s.Mark(i)
	}
	require.EqualValues(t, prefillBits+10, s.MinFree())
}

func TestClearResetsBits(t *testing.T) {
	s := Acquire()
	defer Release(s)
	s.Mark(0)
	s.Mark(1)
	s.Clear()
	require.EqualValues(t, 0, s.MinFree())
}
