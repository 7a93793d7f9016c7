package engine

import (
	"context"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"github.com/tetratelabs/wazero/experimental"
)

// Config holds configuration for engine creation. It is consumed by
// NewEngineWithConfig: the engine keeps a snapshot and the passed Config
// is reset.
type Config struct {
	// MemoryLimitPages sets the maximum memory per instance in pages
	// (64KB each). 0 means the runtime default.
	MemoryLimitPages uint32

	// EnableThreads enables the WebAssembly threads proposal
	// (experimental): atomic operations and shared memory within modules.
	EnableThreads bool

	// CloseOnContextDone makes in-flight runtime work respect context
	// cancellation and deadlines.
	CloseOnContextDone bool
}

// NewConfig returns a default configuration.
func NewConfig() *Config {
	return &Config{}
}

// Delete resets the configuration. Repeated calls and nil receivers are
// safe no-ops.
func (c *Config) Delete() {
	if c == nil {
		return
	}
	*c = Config{}
}

// Engine owns a configuration snapshot and the wazero runtime built from
// it. Every Store is constructed against an Engine.
type Engine struct {
	cfg     Config
	runtime wazero.Runtime
	closed  bool
}

// NewEngine creates an engine with the default configuration.
func NewEngine(ctx context.Context) *Engine {
	return NewEngineWithConfig(ctx, nil)
}

// NewEngineWithConfig creates an engine from cfg. The configuration is
// consumed: the engine snapshots it and resets the source. A nil cfg is
// equivalent to the default configuration.
func NewEngineWithConfig(ctx context.Context, cfg *Config) *Engine {
	var snapshot Config
	if cfg != nil {
		snapshot = *cfg
	}

	runtimeCfg := wazero.NewRuntimeConfig()
	if snapshot.MemoryLimitPages > 0 {
		runtimeCfg = runtimeCfg.WithMemoryLimitPages(snapshot.MemoryLimitPages)
	}
	if snapshot.EnableThreads {
		runtimeCfg = runtimeCfg.WithCoreFeatures(api.CoreFeaturesV2 | experimental.CoreFeaturesThreads)
	}
	if snapshot.CloseOnContextDone {
		runtimeCfg = runtimeCfg.WithCloseOnContextDone(true)
	}

	e := &Engine{
		cfg:     snapshot,
		runtime: wazero.NewRuntimeWithConfig(ctx, runtimeCfg),
	}
	cfg.Delete()
	return e
}

// Config returns the engine's configuration snapshot, borrowed from the
// engine. A nil receiver reports nil.
func (e *Engine) Config() *Config {
	if e == nil {
		return nil
	}
	return &e.cfg
}

// Close releases the engine and its runtime. Repeated calls and nil
// receivers are safe no-ops.
func (e *Engine) Close(ctx context.Context) error {
	if e == nil || e.closed {
		return nil
	}
	e.closed = true
	Logger().Debug("engine closed")
	return e.runtime.Close(ctx)
}
