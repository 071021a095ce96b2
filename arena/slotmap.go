// Package arena provides a generational slot map used to own simulation
// entities by index instead of by pointer or reference-counted handle.
//
// The original engine tracked cross-references with std::weak_ptr and
// checked expiry on every lock(). A Handle plays the same role here: once
// the slot it names is reused, the Handle's generation no longer matches
// and Get reports ok=false, exactly the way a weak_ptr silently fails to
// lock once its target is gone. The upside over weak pointers is that
// ownership lives in one place (the SlotMap's backing slice) and iteration
// order is deterministic, which a pointer-graph of shared/weak pointers
// cannot promise.
package arena

// Handle names a slot in a SlotMap. The zero Handle never refers to a live
// value - generation 0 is never assigned to an occupied slot.
type Handle struct {
	index      int32
	generation int32
}

// IsZero reports whether h is the zero Handle.
func (h Handle) IsZero() bool {
	return h.index == 0 && h.generation == 0
}

type slot[T any] struct {
	value      T
	generation int32
	occupied   bool
}

// SlotMap owns a collection of values of type T, handing out Handles that
// stay valid until the referenced value is removed.
type SlotMap[T any] struct {
	slots     []slot[T]
	freeList  []int32
	nextGen   int32
	liveCount int
}

// NewSlotMap returns an empty slot map.
func NewSlotMap[T any]() *SlotMap[T] {
	return &SlotMap[T]{nextGen: 1}
}

// Insert stores value in a free slot and returns a Handle for it.
func (m *SlotMap[T]) Insert(value T) Handle {
	generation := m.nextGen
	m.nextGen++

	if n := len(m.freeList); n > 0 {
		index := m.freeList[n-1]
		m.freeList = m.freeList[:n-1]
		m.slots[index] = slot[T]{value: value, generation: generation, occupied: true}
		m.liveCount++
		return Handle{index: index, generation: generation}
	}

	index := int32(len(m.slots))
	m.slots = append(m.slots, slot[T]{value: value, generation: generation, occupied: true})
	m.liveCount++
	return Handle{index: index, generation: generation}
}

// Get returns the value behind h and whether h still refers to a live slot.
func (m *SlotMap[T]) Get(h Handle) (*T, bool) {
	if h.index < 0 || int(h.index) >= len(m.slots) {
		return nil, false
	}
	s := &m.slots[h.index]
	if !s.occupied || s.generation != h.generation {
		return nil, false
	}
	return &s.value, true
}

// Remove drops the value behind h. Removing an already-stale or unknown
// handle is a no-op, matching a weak_ptr whose target has already expired.
func (m *SlotMap[T]) Remove(h Handle) {
	if h.index < 0 || int(h.index) >= len(m.slots) {
		return
	}
	s := &m.slots[h.index]
	if !s.occupied || s.generation != h.generation {
		return
	}
	var zero T
	s.value = zero
	s.occupied = false
	m.liveCount--
	m.freeList = append(m.freeList, h.index)
}

// Len returns the number of live values currently stored.
func (m *SlotMap[T]) Len() int {
	return m.liveCount
}

// Each calls fn for every live value, in slot order. fn may not insert or
// remove while iterating.
func (m *SlotMap[T]) Each(fn func(Handle, *T)) {
	for i := range m.slots {
		s := &m.slots[i]
		if s.occupied {
			fn(Handle{index: int32(i), generation: s.generation}, &s.value)
		}
	}
}
