package assign

import (
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParallelForVisitsEveryItemExactlyOnce(t *testing.T) {
	items := make([]int32, 500)
	for i := range items {
		items[i] = int32(i)
	}

	var mu sync.Mutex
	seen := make(map[int32]int)
	ParallelFor(8, items, func(item int32) {
		mu.Lock()
		seen[item]++
		mu.Unlock()
	})

	require.Len(t, seen, len(items))
	for _, count := range seen {
		require.Equal(t, 1, count)
	}
}

func TestParallelForSingleThreadIsSequential(t *testing.T) {
	items := []int32{3, 1, 2}
	var order []int32
	ParallelFor(1, items, func(item int32) {
		order = append(order, item)
	})
	require.Equal(t, items, order)
}

func TestWorkStealingVisitsEveryItemExactlyOnce(t *testing.T) {
	items := make([]int32, 733)
	for i := range items {
		items[i] = int32(i)
	}

	var mu sync.Mutex
	var seen []int32
	parallelForStealing(6, items, func(item int32) {
		mu.Lock()
		seen = append(seen, item)
		mu.Unlock()
	})

	sort.Slice(seen, func(i, j int) bool { return seen[i] < seen[j] })
	require.Equal(t, items, seen)
}
