package entity

// Handle identifies a pool slot at a given generation. A handle outlives its
// slot safely: once the slot is released, Get on the old handle misses.
type Handle struct {
	index int
	gen   uint32
}

// Index returns the slot index the handle points at.
func (h Handle) Index() int { return h.index }

// Pool is a fixed-capacity slot arena. It never grows: a claim against a full
// pool is refused and the caller drops the spawn.
type Pool[T any] struct {
	items []T
	used  []bool
	gens  []uint32
	count int
}

// NewPool allocates a pool with capacity n.
func NewPool[T any](n int) *Pool[T] {
	return &Pool[T]{
		items: make([]T, n),
		used:  make([]bool, n),
		gens:  make([]uint32, n),
	}
}

// Claim takes the lowest-index free slot, zeroes it, and returns it.
// ok is false when the pool is full; the pool is then unchanged.
func (p *Pool[T]) Claim() (h Handle, item *T, ok bool) {
	for i, inUse := range p.used {
		if inUse {
			continue
		}
		var zero T
		p.items[i] = zero
		p.used[i] = true
		p.count++
		return Handle{index: i, gen: p.gens[i]}, &p.items[i], true
	}
	return Handle{}, nil, false
}

// Release frees the slot behind h. Stale handles are ignored.
func (p *Pool[T]) Release(h Handle) bool {
	if !p.valid(h) {
		return false
	}
	p.used[h.index] = false
	p.gens[h.index]++
	p.count--
	return true
}

// Get returns the item behind h, or nil if the handle is stale.
func (p *Pool[T]) Get(h Handle) *T {
	if !p.valid(h) {
		return nil
	}
	return &p.items[h.index]
}

func (p *Pool[T]) valid(h Handle) bool {
	return h.index >= 0 && h.index < len(p.items) && p.used[h.index] && p.gens[h.index] == h.gen
}

// Each calls fn for every claimed slot in index order. Returning false from
// fn releases that slot.
func (p *Pool[T]) Each(fn func(h Handle, item *T) (keep bool)) {
	for i := range p.items {
		if !p.used[i] {
			continue
		}
		h := Handle{index: i, gen: p.gens[i]}
		if !fn(h, &p.items[i]) {
			p.Release(h)
		}
	}
}

// Len returns the number of claimed slots.
func (p *Pool[T]) Len() int { return p.count }

// Cap returns the fixed capacity.
func (p *Pool[T]) Cap() int { return len(p.items) }

// Full reports whether no slot is free.
func (p *Pool[T]) Full() bool { return p.count == len(p.items) }

// Reset releases every slot.
func (p *Pool[T]) Reset() {
	for i := range p.used {
		if p.used[i] {
			p.used[i] = false
			p.gens[i]++
		}
	}
	p.count = 0
}
