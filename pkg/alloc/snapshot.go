package alloc

import (
	"errors"
	"fmt"
)

var ErrCorruptSnapshot = errors.New("corrupt pool snapshot")

// Snapshot is the exported state of a Pool. Callers may persist it in any
// format; the pool itself does no I/O.
type Snapshot struct {
	Min  uint32  `json:"min"  yaml:"min"`
	Max  uint32  `json:"max"  yaml:"max"`
	Used uint64  `json:"used" yaml:"used"`
	Free []Range `json:"free" yaml:"free"`
}

func (p *Pool) Snapshot() Snapshot {
	return Snapshot{
		Min:  p.min,
		Max:  p.max,
		Used: p.used,
		Free: p.Ranges(),
	}
}

// Validate checks that s describes a pool Restore can rebuild.
func (s Snapshot) Validate() error {
	if s.Min >= s.Max {
		return fmt.Errorf("%w: [%d, %d)", ErrInvalidRange, s.Min, s.Max)
	}
	var free uint64
	for i, r := range s.Free {
		if r.Start < s.Min || r.End > s.Max {
			return fmt.Errorf("%w: range %v outside [%d, %d)", ErrCorruptSnapshot, r, s.Min, s.Max)
		}
		if r.Start >= r.End {
			return fmt.Errorf("%w: empty range %v", ErrCorruptSnapshot, r)
		}
		if i > 0 && s.Free[i-1].End >= r.Start {
			return fmt.Errorf("%w: range %v overlaps or touches %v", ErrCorruptSnapshot, r, s.Free[i-1])
		}
		free += uint64(r.Len())
	}
	if total := uint64(s.Max - s.Min); s.Used != total-free {
		return fmt.Errorf("%w: used %d, want %d", ErrCorruptSnapshot, s.Used, total-free)
	}
	return nil
}

// Restore rebuilds a Pool from a snapshot taken by Pool.Snapshot.
func Restore(s Snapshot) (*Pool, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	free := make([]Range, len(s.Free))
	copy(free, s.Free)
	return &Pool{
		min:  s.Min,
		max:  s.Max,
		used: s.Used,
		free: free,
	}, nil
}
