package engine

import (
	"context"

	"go.uber.org/zap"

	"github.com/wasmbridge/wasmbridge/errors"
)

// Store provides the module loading surface of an Engine. It borrows the
// Engine that constructed it - the Store must not be used after the
// Engine is closed, but closing the Store leaves the Engine untouched -
// and owns every Module it loads.
type Store struct {
	engine  *Engine
	modules []*Module
	closed  bool
}

// NewStore creates a store against engine. A nil engine yields nil with
// no side effects.
func NewStore(engine *Engine) *Store {
	if engine == nil {
		return nil
	}
	return &Store{engine: engine}
}

// Engine returns the engine this store was constructed against, borrowed.
// A nil receiver reports nil.
func (s *Store) Engine() *Engine {
	if s == nil {
		return nil
	}
	return s.engine
}

// Load compiles and validates a binary module and tracks the result. The
// returned Module is owned by the store and released by Close; callers
// may also close it earlier themselves.
func (s *Store) Load(ctx context.Context, bin []byte) (*Module, error) {
	if s == nil {
		return nil, errors.NotInitialized(errors.PhaseLoad, "store")
	}
	if s.closed {
		return nil, errors.Closed(errors.PhaseStore, "store")
	}
	if s.engine.closed {
		return nil, errors.Closed(errors.PhaseEngine, "engine")
	}
	if len(bin) == 0 {
		return nil, errors.InvalidInput(errors.PhaseLoad, "empty module binary")
	}

	compiled, err := s.engine.runtime.CompileModule(ctx, bin)
	if err != nil {
		return nil, errors.Load("compile module", err)
	}

	m := &Module{compiled: compiled}
	s.modules = append(s.modules, m)
	Logger().Debug("module loaded",
		zap.String("name", compiled.Name()),
		zap.Int("size", len(bin)))
	return m, nil
}

// Close releases every module loaded through this store. The engine is
// not touched. Repeated calls and nil receivers are safe no-ops.
func (s *Store) Close(ctx context.Context) error {
	if s == nil || s.closed {
		return nil
	}
	s.closed = true

	var firstErr error
	for _, m := range s.modules {
		if err := m.Close(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	s.modules = nil
	return firstErr
}
