package bloom_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/fwojciec/curate/bloom"
	"github.com/stretchr/testify/assert"
)

func TestFilter_Seen(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	assert.False(t, f.Seen("a1b2c3"), "first sighting")
	assert.True(t, f.Seen("a1b2c3"), "second sighting")
	assert.False(t, f.Seen("d4e5f6"))
}

func TestFilter_EstimatedCount(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	assert.Equal(t, uint(0), f.EstimatedCount())

	f.Seen("one")
	f.Seen("two")
	f.Seen("three")

	count := f.EstimatedCount()
	assert.True(t, count >= 2 && count <= 4, "expected count near 3, got %d", count)
}

func TestFilter_ConcurrentSeen(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		fresh int
	)
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if !f.Seen("same-source") {
				mu.Lock()
				fresh++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, fresh)
}

func TestFilter_FalsePositiveRate(t *testing.T) {
	t.Parallel()

	const (
		numItems   = 10000
		fpRate     = 0.01
		testProbes = 10000
	)

	// Probes are added as they are checked, so size for both sets.
	f := bloom.NewFilter(numItems+testProbes, fpRate)

	for i := range numItems {
		f.Seen(fmt.Sprintf("added-%d", i))
	}

	falsePositives := 0
	for i := range testProbes {
		if f.Seen(fmt.Sprintf("notadded-%d", i)) {
			falsePositives++
		}
	}

	// Allow up to 2% to account for statistical variance
	actualRate := float64(falsePositives) / float64(testProbes)
	assert.Less(t, actualRate, 0.02, "false positive rate %f exceeds 2%%", actualRate)
}
