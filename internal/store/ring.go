package store

// Ring is a fixed-capacity FIFO buffer of float64 samples. It is not
// safe for concurrent use on its own; Store wraps it with locking.
// Grounded on cubestat/data.py's collections.deque(maxlen=...).
type Ring struct {
	buf   []float64
	start int // index of the oldest element
	n     int // number of valid elements
}

// NewRing allocates a ring with the given capacity. Capacity must be >= 1.
func NewRing(capacity int) *Ring {
	if capacity < 1 {
		capacity = 1
	}
	return &Ring{buf: make([]float64, capacity)}
}

// Len returns the number of elements currently stored.
func (r *Ring) Len() int { return r.n }

// Cap returns the ring's fixed capacity.
func (r *Ring) Cap() int { return len(r.buf) }

// Push appends a value, discarding the oldest element if the ring is full.
func (r *Ring) Push(v float64) {
	cap := len(r.buf)
	if r.n < cap {
		r.buf[(r.start+r.n)%cap] = v
		r.n++
		return
	}
	r.buf[r.start] = v
	r.start = (r.start + 1) % cap
}

// At returns the i-th oldest element (0 is the oldest).
func (r *Ring) At(i int) float64 {
	return r.buf[(r.start+i)%len(r.buf)]
}

// Last returns the most recently pushed value and true, or (0, false) if
// the ring is empty.
func (r *Ring) Last() (float64, bool) {
	if r.n == 0 {
		return 0, false
	}
	return r.At(r.n - 1), true
}

// AtOffset returns the value pushed `offset` samples before the newest one
// (offset == 0 is equivalent to Last), or (0, false) if that position falls
// outside the data actually held.
func (r *Ring) AtOffset(offset int) (float64, bool) {
	idx := r.n - 1 - offset
	if idx < 0 || idx >= r.n {
		return 0, false
	}
	return r.At(idx), true
}

// Slice returns up to n of the most recent values, ending `offset` elements
// before the newest (offset == 0 means "end at the newest"). The result is
// left-padded with zeros if fewer than n values are available.
func (r *Ring) Slice(n, offset int) ([]float64, float64) {
	if n <= 0 {
		return nil, 0
	}
	out := make([]float64, n)
	end := r.n - offset
	if end < 0 {
		end = 0
	}
	if end > r.n {
		end = r.n
	}
	start := end - n
	pad := 0
	if start < 0 {
		pad = -start
		start = 0
	}
	var maxSeen float64
	for i := 0; i < end-start; i++ {
		v := r.At(start + i)
		out[pad+i] = v
		if v > maxSeen {
			maxSeen = v
		}
	}
	return out, maxSeen
}
