package id

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNew_UniqueAndOrdered(t *testing.T) {
	const n = 500
	ids := make([]string, n)
	seen := make(map[string]bool, n)
	for i := range ids {
		ids[i] = New()
		assert.False(t, seen[ids[i]], "duplicate id %s", ids[i])
		seen[ids[i]] = true
	}
	assert.True(t, sort.StringsAreSorted(ids), "ids must sort in creation order")
}

func TestNewAt_SortsByTime(t *testing.T) {
	early := NewAt(time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC))
	late := NewAt(time.Date(2025, 1, 15, 10, 30, 1, 0, time.UTC))
	assert.Len(t, early, 26)
	assert.Less(t, early, late)
}

func TestSequence(t *testing.T) {
	next := Sequence()
	assert.Equal(t, "1", next())
	assert.Equal(t, "2", next())

	other := Sequence()
	assert.Equal(t, "1", other(), "sequences are independent")
}
