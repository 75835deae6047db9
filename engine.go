package twcss

import (
	"fmt"
	"runtime"

	"go.uber.org/zap"
)

// OutputMode selects the CSS text layout.
type OutputMode string

// Output modes.
const (
	OutputPretty   OutputMode = "pretty"
	OutputMinified OutputMode = "minified"
)

// ParseOutputMode validates a mode name. Empty means pretty.
func ParseOutputMode(s string) (OutputMode, error) {
	switch OutputMode(s) {
	case "", OutputPretty:
		return OutputPretty, nil
	case OutputMinified:
		return OutputMinified, nil
	default:
		return "", fmt.Errorf("unknown output mode %q (want %q or %q)", s, OutputPretty, OutputMinified)
	}
}

type options struct {
	mode      OutputMode
	cascade   []Category
	cacheSize int
	log       *zap.Logger
	workers   int
}

// Option configures an Engine.
type Option func(*options)

// WithOutputMode sets the layout of Stylesheet.String.
func WithOutputMode(mode OutputMode) Option {
	return func(o *options) { o.mode = mode }
}

// WithCascade overrides the cascade category order. It must list every
// category exactly once.
func WithCascade(order ...Category) Option {
	return func(o *options) { o.cascade = order }
}

// WithCacheSize bounds the token and definition caches with LRU eviction.
// 0 keeps every entry.
func WithCacheSize(n int) Option {
	return func(o *options) { o.cacheSize = n }
}

// WithLogger sets the diagnostics logger.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithWorkers bounds the goroutines used per Generate call.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// Engine turns class strings into CSS. It is safe for concurrent use.
type Engine struct {
	registry *Registry
	variants *VariantResolver
	cache    *Cache
	cascade  cascade
	mode     OutputMode
	workers  int
	log      *zap.Logger
}

// New builds an engine for theme.
func New(theme Theme, opts ...Option) (*Engine, error) {
	return NewWithRegistry(NewRegistry(theme), opts...)
}

// NewWithRegistry builds an engine over an existing registry, which may be
// shared between engines.
func NewWithRegistry(reg *Registry, opts ...Option) (*Engine, error) {
	o := options{
		mode:    OutputPretty,
		log:     zap.NewNop(),
		workers: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(&o)
	}

	mode, err := ParseOutputMode(string(o.mode))
	if err != nil {
		return nil, err
	}
	cs, err := newCascade(o.cascade)
	if err != nil {
		return nil, err
	}
	if o.workers < 1 {
		o.workers = 1
	}
	if o.log == nil {
		o.log = zap.NewNop()
	}

	variants := NewVariantResolver(reg.theme)
	cache, err := NewCache(reg, variants, o.cacheSize, o.log.Named("cache"))
	if err != nil {
		return nil, err
	}

	return &Engine{
		registry: reg,
		variants: variants,
		cache:    cache,
		cascade:  cs,
		mode:     mode,
		workers:  o.workers,
		log:      o.log,
	}, nil
}

// Registry returns the engine's registry.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// Parse tokenizes one class string through the cache.
func (e *Engine) Parse(raw string) (ClassToken, error) {
	return e.cache.Token(raw)
}

// Build runs the whole pipeline for one class string.
func (e *Engine) Build(raw string) (Rule, error) {
	tok, err := e.cache.Token(raw)
	if err != nil {
		return Rule{}, err
	}
	def, ok := e.registry.Definition(tok.Utility)
	if !ok {
		return Rule{}, newClassError(KindUnknownUtility, raw, raw)
	}
	return BuildRule(def, tok, e.variants.Resolve(tok.Variants))
}

// CacheStats reports cache counters.
func (e *Engine) CacheStats() CacheStats {
	return e.cache.Stats()
}
