// Package env implements the lexical scope stack used by the lowering pass.
// Frames are pushed on entry to any nested block and popped on exit; lookup
// walks innermost-outward, so a name resolves to its innermost declaration.
package env

// Env is a stack of frames mapping names to values of type V.
type Env[V any] struct {
	frames []map[string]V
}

// New returns an environment with no frames. Callers push the outermost
// frame themselves.
func New[V any]() *Env[V] {
	return &Env[V]{}
}

// Push creates a new innermost frame.
func (e *Env[V]) Push() {
	e.frames = append(e.frames, make(map[string]V, 8))
}

// Pop discards the innermost frame along with every binding it holds.
func (e *Env[V]) Pop() {
	if len(e.frames) == 0 {
		panic("env: pop of empty environment")
	}
	e.frames = e.frames[:len(e.frames)-1]
}

// Depth returns the number of live frames.
func (e *Env[V]) Depth() int {
	return len(e.frames)
}

// Insert binds name in the innermost frame, shadowing any outer binding of
// the same name for the remainder of the frame's lifetime.
func (e *Env[V]) Insert(name string, v V) {
	if len(e.frames) == 0 {
		panic("env: insert with no open frame")
	}
	e.frames[len(e.frames)-1][name] = v
}

// Find searches innermost-outward and returns the first binding of name.
// A miss is an internal contract violation on input that passed semantic
// analysis; callers decide how to report it.
func (e *Env[V]) Find(name string) (V, bool) {
	for i := len(e.frames) - 1; i >= 0; i-- {
		if v, ok := e.frames[i][name]; ok {
			return v, true
		}
	}
	var zero V
	return zero, false
}
