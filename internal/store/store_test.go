package store

import (
	"sync"
	"testing"

	"github.com/kerlenton/system-eye/internal/metric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func one(name metric.Name, v float64) metric.Values {
	return metric.Values{{Name: name, Value: v}}
}

func TestIngestThenSnapshot(t *testing.T) {
	s := New(10)
	s.Ingest(one("cpu.total.utilization.percent", 42))

	vals, max := s.Snapshot("cpu.total.utilization.percent", 1, 0)
	require.Len(t, vals, 1)
	assert.Equal(t, 42.0, vals[0])
	assert.Equal(t, 42.0, max)
}

func TestSnapshotPadsLeftWithZeros(t *testing.T) {
	s := New(10)
	s.Ingest(one("m", 1))
	s.Ingest(one("m", 2))

	vals, _ := s.Snapshot("m", 5, 0)
	assert.Equal(t, []float64{0, 0, 0, 1, 2}, vals)
}

func TestSnapshotOffsetFreezesTail(t *testing.T) {
	s := New(10)
	for _, v := range []float64{1, 2, 3, 4, 5} {
		s.Ingest(one("m", v))
	}
	vals, _ := s.Snapshot("m", 2, 3)
	assert.Equal(t, []float64{1, 2}, vals)
}

func TestBufferCapacityBounded(t *testing.T) {
	s := New(3)
	for i := 0; i < 10; i++ {
		s.Ingest(one("m", float64(i)))
		assert.LessOrEqual(t, s.Len("m"), 3)
	}
	vals, _ := s.Snapshot("m", 3, 0)
	assert.Equal(t, []float64{7, 8, 9}, vals)
}

func TestBufferSizeOneAlwaysLengthOne(t *testing.T) {
	s := New(1)
	for i := 0; i < 5; i++ {
		s.Ingest(one("m", float64(i)))
		assert.Equal(t, 1, s.Len("m"))
	}
}

func TestInsertionOrderPreserved(t *testing.T) {
	s := New(10)
	s.Ingest(one("b", 1))
	s.Ingest(metric.Values{{Name: "a", Value: 1}, {Name: "c", Value: 1}})
	s.Ingest(one("b", 2))

	var order []metric.Name
	s.IterOrdered(func(name metric.Name, r *Ring) {
		order = append(order, name)
	})
	assert.Equal(t, []metric.Name{"b", "a", "c"}, order)
}

func TestSnapshotZeroColsReturnsEmptyWithoutLock(t *testing.T) {
	s := New(10)
	vals, max := s.Snapshot("missing", 0, 0)
	assert.Nil(t, vals)
	assert.Equal(t, 0.0, max)
}

func TestConcurrentIngestAndSnapshotNoRace(t *testing.T) {
	s := New(50)
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			s.Ingest(one("m", float64(i)))
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			vals, _ := s.Snapshot("m", 5, 0)
			assert.Len(t, vals, 5)
		}
	}()
	wg.Wait()
}
