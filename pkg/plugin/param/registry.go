package param

import (
	"fmt"
	"math"
	"sync"
	"sync/atomic"

	"github.com/justyntemme/audiocore/pkg/control"
)

// entry pairs a descriptor with its live value. The value is the
// float64 bit pattern stored atomically so the audio thread reads it
// without taking a lock.
type entry struct {
	desc  Desc
	value atomic.Uint64
}

func (e *entry) load() float64 {
	return math.Float64frombits(e.value.Load())
}

func (e *entry) store(v float64) {
	e.value.Store(math.Float64bits(v))
}

// Registry holds a plugin's parameters keyed by index, in declaration
// order. Set and Reset serve the ParamSet and ParamReset control
// events; Value is safe from the render path.
type Registry struct {
	mu      sync.RWMutex
	order   []int
	entries map[int]*entry
}

// NewRegistry builds a registry from descriptors, each starting at its
// default. Duplicate indices are rejected.
func NewRegistry(descs ...Desc) (*Registry, error) {
	r := &Registry{entries: make(map[int]*entry, len(descs))}
	for _, d := range descs {
		if _, exists := r.entries[d.Index]; exists {
			return nil, fmt.Errorf("param: duplicate parameter index %d", d.Index)
		}
		e := &entry{desc: d}
		e.store(d.clamp(d.Default))
		r.entries[d.Index] = e
		r.order = append(r.order, d.Index)
	}
	return r, nil
}

// MustNewRegistry is NewRegistry for descriptor sets known at compile
// time; it panics on duplicates.
func MustNewRegistry(descs ...Desc) *Registry {
	r, err := NewRegistry(descs...)
	if err != nil {
		panic(err)
	}
	return r
}

// Descs returns the descriptors in declaration order.
func (r *Registry) Descs() []Desc {
	r.mu.RLock()
	defer r.mu.RUnlock()
	descs := make([]Desc, len(r.order))
	for i, index := range r.order {
		descs[i] = r.entries[index].desc
	}
	return descs
}

// Count returns the number of parameters.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

func (r *Registry) get(index int) (*entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[index]
	return e, ok
}

// Value returns the current plain value of the parameter at index.
func (r *Registry) Value(index int) (float64, bool) {
	e, ok := r.get(index)
	if !ok {
		return 0, false
	}
	return e.load(), true
}

// Set assigns a typed value to the parameter at index, clamped into
// the kind's range. The value's type must match the parameter's kind.
func (r *Registry) Set(index int, v control.ParamValue) error {
	e, ok := r.get(index)
	if !ok {
		return fmt.Errorf("param: unknown parameter index %d", index)
	}

	var plain float64
	switch value := v.(type) {
	case control.Unsigned:
		if _, ok := e.desc.Kind.(Unsigned); !ok {
			return kindMismatch(e.desc, v)
		}
		plain = float64(value)
	case control.Signed:
		if _, ok := e.desc.Kind.(Signed); !ok {
			return kindMismatch(e.desc, v)
		}
		plain = float64(value)
	case control.Float:
		if _, ok := e.desc.Kind.(Float); !ok {
			return kindMismatch(e.desc, v)
		}
		plain = float64(value)
	case control.Index:
		if _, ok := e.desc.Kind.(Enum); !ok {
			return kindMismatch(e.desc, v)
		}
		plain = float64(value)
	case control.Boolean:
		if _, ok := e.desc.Kind.(Boolean); !ok {
			return kindMismatch(e.desc, v)
		}
		if value {
			plain = 1
		}
	default:
		return fmt.Errorf("param: unsupported value %v", v)
	}

	e.store(e.desc.clamp(plain))
	return nil
}

// Reset restores the parameter at index to its default.
func (r *Registry) Reset(index int) error {
	e, ok := r.get(index)
	if !ok {
		return fmt.Errorf("param: unknown parameter index %d", index)
	}
	e.store(e.desc.clamp(e.desc.Default))
	return nil
}

func kindMismatch(d Desc, v control.ParamValue) error {
	return fmt.Errorf("param: %s value for parameter %q (%d)",
		v.ParamType(), d.Name, d.Index)
}
