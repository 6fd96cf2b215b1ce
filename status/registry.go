package status

import "sync/atomic"

// Registry groups the arena's telemetry by value type
// The tick goroutine writes through cached pointers; the debug server and HUD only load
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Lookup loads a single metric by name, searching ints, bools, floats then strings
func (r *Registry) Lookup(name string) (any, bool) {
	if p, ok := r.Ints.Lookup(name); ok {
		return p.Load(), true
	}
	if p, ok := r.Bools.Lookup(name); ok {
		return p.Load(), true
	}
	if p, ok := r.Floats.Lookup(name); ok {
		return p.Get(), true
	}
	if p, ok := r.Strings.Lookup(name); ok {
		return p.Load(), true
	}
	return nil, false
}

// Snapshot copies every metric into a flat map keyed by metric name
func (r *Registry) Snapshot() map[string]any {
	out := make(map[string]any, r.TotalCount())
	r.Bools.Range(func(key string, ptr *atomic.Bool) {
		out[key] = ptr.Load()
	})
	r.Ints.Range(func(key string, ptr *atomic.Int64) {
		out[key] = ptr.Load()
	})
	r.Floats.Range(func(key string, ptr *AtomicFloat) {
		out[key] = ptr.Get()
	})
	r.Strings.Range(func(key string, ptr *AtomicString) {
		out[key] = ptr.Load()
	})
	return out
}
