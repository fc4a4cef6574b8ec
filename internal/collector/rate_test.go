package collector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRateReaderCounterSequence(t *testing.T) {
	// interval 1s, disk counters [100,300,350,350,340,500] should produce
	// rates [0,200,50,0,0,160]; a counter reset (340 after 350) clamps to 0
	// instead of going negative.
	r := NewRateReader(1.0)
	counters := []float64{100, 300, 350, 350, 340, 500}
	want := []float64{0, 200, 50, 0, 0, 160}

	for i, c := range counters {
		got := r.Next("disk.read", c)
		assert.Equal(t, want[i], got, "sample %d", i)
	}
}

func TestRateReaderFirstCallReturnsZero(t *testing.T) {
	r := NewRateReader(2.0)
	assert.Equal(t, 0.0, r.Next("k", 1000))
}

func TestRateReaderIndependentKeys(t *testing.T) {
	r := NewRateReader(1.0)
	r.Next("a", 10)
	r.Next("b", 5000)
	assert.Equal(t, 5.0, r.Next("a", 15))
	assert.Equal(t, 5.0, r.Next("b", 5005))
}
