package mediastore

// EngineSource yields the currently active storage engine, if any.
type EngineSource interface {
	// Active returns the first enabled engine in precedence order, or nil
	// when no engine is enabled.
	Active() Engine
}

// Registry is the explicit, priority-ordered set of storage engines built at
// startup. Registration order expresses backend-selection precedence: the
// first enabled engine wins. There is no inferred ordering; an engine that
// must be tried before another is inserted before it.
type Registry struct {
	engines []Engine
}

// NewRegistry creates a Registry with the given engines in precedence order.
func NewRegistry(engines ...Engine) *Registry {
	return &Registry{engines: engines}
}

// Register appends an engine at the lowest precedence.
func (r *Registry) Register(e Engine) {
	r.engines = append(r.engines, e)
}

// RegisterBefore inserts an engine ahead of the engine with the given type,
// or at the lowest precedence when no such engine is registered.
func (r *Registry) RegisterBefore(e Engine, engineType string) {
	for i, existing := range r.engines {
		if existing.EngineType() == engineType {
			r.engines = append(r.engines[:i], append([]Engine{e}, r.engines[i:]...)...)
			return
		}
	}
	r.engines = append(r.engines, e)
}

// Engines returns the registered engines in precedence order.
func (r *Registry) Engines() []Engine {
	return r.engines
}

// Active returns the first enabled engine, or nil when none is.
func (r *Registry) Active() Engine {
	for _, e := range r.engines {
		if e.Enabled() {
			return e
		}
	}
	return nil
}

var _ EngineSource = (*Registry)(nil)
