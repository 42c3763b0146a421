package debugui

// History is a fixed-size ring of samples for plotting.
type History struct {
	samples []float32
	next    int
	full    bool
}

func NewHistory(size int) *History {
	return &History{samples: make([]float32, max(size, 1))}
}

// Push records a sample, overwriting the oldest once the ring is full.
func (h *History) Push(v float32) {
	h.samples[h.next] = v
	h.next = (h.next + 1) % len(h.samples)
	if h.next == 0 {
		h.full = true
	}
}

// Len returns the number of recorded samples.
func (h *History) Len() int {
	if h.full {
		return len(h.samples)
	}
	return h.next
}

// Values returns the samples from oldest to newest.
func (h *History) Values() []float32 {
	if !h.full {
		out := make([]float32, h.next)
		copy(out, h.samples[:h.next])
		return out
	}
	out := make([]float32, 0, len(h.samples))
	out = append(out, h.samples[h.next:]...)
	return append(out, h.samples[:h.next]...)
}

func (h *History) Average() float32 {
	n := h.Len()
	if n == 0 {
		return 0
	}
	var sum float32
	for _, v := range h.Values() {
		sum += v
	}
	return sum / float32(n)
}

func (h *History) Max() float32 {
	var m float32
	for _, v := range h.Values() {
		m = max(m, v)
	}
	return m
}
