package alloc

import (
	"errors"
	"fmt"
	"sort"
)

const MaxID = ^uint32(0)

var (
	ErrNoFreeID     = errors.New("no free id")
	ErrInvalidRange = errors.New("invalid id range")
	ErrNotAllocated = errors.New("id is not allocated")
)

// ReturnError is returned by Pool.Return when the id is not currently allocated.
// The pool is left unchanged.
type ReturnError struct {
	ID uint32
}

func (e *ReturnError) Error() string {
	return fmt.Sprintf("return id %d: %v", e.ID, ErrNotAllocated)
}

func (e *ReturnError) Is(target error) bool {
	return target == ErrNotAllocated
}

// Range is a half-open run [Start, End) of free ids.
type Range struct {
	Start uint32 `json:"start" yaml:"start"`
	End   uint32 `json:"end"   yaml:"end"`
}

func (r Range) Len() uint32 {
	return r.End - r.Start
}

func (r Range) Contains(id uint32) bool {
	return r.Start <= id && id < r.End
}

func (r Range) String() string {
	return fmt.Sprintf("[%d, %d)", r.Start, r.End)
}

// Pool hands out the smallest free id of its domain and takes ids back,
// coalescing adjacent free ids into ranges.
//
// Pool is not safe for concurrent use, see Keys.
type Pool struct {
	min  uint32
	max  uint32
	used uint64
	// sorted by Start, every range non-empty, no two ranges overlapping or touching.
	free []Range
}

// NewPool returns a pool over [1, MaxID). 0 is never issued.
func NewPool() *Pool {
	p, _ := NewRangedPool(1, MaxID)
	return p
}

func NewRangedPool(min, max uint32) (*Pool, error) {
	if min >= max {
		return nil, fmt.Errorf("%w: [%d, %d)", ErrInvalidRange, min, max)
	}
	return &Pool{
		min:  min,
		max:  max,
		free: []Range{{Start: min, End: max}},
	}, nil
}

// Request allocates the smallest free id. It reports false once the pool is exhausted.
func (p *Pool) Request() (uint32, bool) {
	if len(p.free) == 0 {
		return 0, false
	}
	id := p.free[0].Start
	p.free[0].Start++
	if p.free[0].Len() == 0 {
		p.remove(0)
	}
	p.used++
	return id, true
}

// Return gives id back to the pool. Ids that are already free, or that lie
// outside the pool's domain, are rejected with a *ReturnError.
func (p *Pool) Return(id uint32) error {
	if id < p.min || id >= p.max {
		return &ReturnError{ID: id}
	}

	// first range starting after id; the one before it is the only candidate holding id.
	i := sort.Search(len(p.free), func(i int) bool {
		return p.free[i].Start > id
	})

	var joinPrev, joinNext bool
	if i > 0 {
		prev := p.free[i-1]
		if prev.Contains(id) {
			return &ReturnError{ID: id}
		}
		joinPrev = prev.End == id
	}
	if i < len(p.free) {
		joinNext = p.free[i].Start == id+1
	}

	switch {
	case joinPrev && joinNext:
		p.free[i-1].End = p.free[i].End
		p.remove(i)
	case joinPrev:
		p.free[i-1].End++
	case joinNext:
		p.free[i].Start = id
	default:
		p.insert(i, Range{Start: id, End: id + 1})
	}
	p.used--
	return nil
}

// Used returns the number of ids currently allocated.
func (p *Pool) Used() uint64 {
	return p.used
}

// Free returns the number of ids still available.
func (p *Pool) Free() uint64 {
	var n uint64
	for _, r := range p.free {
		n += uint64(r.Len())
	}
	return n
}

// Fragments returns the number of free ranges.
func (p *Pool) Fragments() int {
	return len(p.free)
}

// Bounds returns the domain [min, max) the pool was created with.
func (p *Pool) Bounds() Range {
	return Range{Start: p.min, End: p.max}
}

// Ranges returns a copy of the free list.
func (p *Pool) Ranges() []Range {
	out := make([]Range, len(p.free))
	copy(out, p.free)
	return out
}

func (p *Pool) insert(i int, r Range) {
	p.free = append(p.free, Range{})
	copy(p.free[i+1:], p.free[i:])
	p.free[i] = r
}

func (p *Pool) remove(i int) {
	copy(p.free[i:], p.free[i+1:])
	p.free = p.free[:len(p.free)-1]
}
