package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/goliatone/go-cardgen/pkg/card"
	"github.com/goliatone/go-cardgen/pkg/presets"
	"github.com/goliatone/go-cardgen/pkg/render"
	"github.com/goliatone/go-cardgen/pkg/renderers/term"
	"github.com/goliatone/go-cardgen/pkg/renderers/vanilla"
)

const defaultRendererName = "vanilla"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithStyleResolver installs a style lookup applied to every request that
// does not carry its own resolver.
func WithStyleResolver(resolver card.StyleResolver) Option {
	return func(o *Orchestrator) {
		o.styleResolver = resolver
	}
}

// WithObserver registers a validation observer applied to every request that
// does not carry its own observer.
func WithObserver(observer card.Observer) Option {
	return func(o *Orchestrator) {
		o.observer = observer
	}
}

// WithPresets injects a preset store used to resolve Request.Preset names.
// Pass nil to disable the embedded catalog.
func WithPresets(store *presets.Store) Option {
	return func(o *Orchestrator) {
		o.presets = store
		o.presetsSpecified = true
	}
}

// WithPresetsFS loads presets from the supplied filesystem during
// initialisation. Load failures surface from Generate.
func WithPresetsFS(fsys fs.FS) Option {
	return func(o *Orchestrator) {
		o.presetsFS = fsys
		o.presetsSpecified = true
	}
}

// Orchestrator coordinates the preset → validation → renderer pipeline. It
// applies sensible defaults (vanilla renderer, embedded presets) while
// remaining open to dependency injection for advanced callers.
type Orchestrator struct {
	registry         *render.Registry
	defaultRenderer  string
	styleResolver    card.StyleResolver
	observer         card.Observer
	presets          *presets.Store
	presetsFS        fs.FS
	presetsSpecified bool
	themeSelector    themeSelector
	themeFallbacks   map[string]string
	initialiseErr    error
	defaultsApplied  bool
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes the inputs required to render a card.
type Request struct {
	// Input supplies the card content directly. Ignored when Preset names a
	// stored preset.
	Input card.Input

	// Preset names a preset from the configured store. The preset's card
	// replaces Input entirely.
	Preset string

	// Renderer names the renderer to use. If empty, the orchestrator falls
	// back to the configured default renderer.
	Renderer string

	// ThemeName and ThemeVariant select a theme via the configured selector.
	// Empty values leave the request unthemed.
	ThemeName    string
	ThemeVariant string

	// RenderOptions carries per-request instructions such as style overrides
	// or observers. When omitted, renderers receive the orchestrator-level
	// defaults.
	RenderOptions render.RenderOptions
}

// Generate resolves the request's card input, applies theme and style
// configuration, and renders with the selected renderer.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := o.initialiseErr; err != nil {
		return nil, err
	}
	if !o.defaultsApplied {
		o.applyDefaults()
		if err := o.initialiseErr; err != nil {
			return nil, err
		}
	}

	input, err := o.resolveInput(req)
	if err != nil {
		return nil, err
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	opts := req.RenderOptions
	if opts.StyleResolver == nil {
		opts.StyleResolver = o.styleResolver
	}
	if opts.Observer == nil {
		opts.Observer = o.observer
	}
	if opts.Theme == nil {
		cfg, err := o.resolveTheme(req.ThemeName, req.ThemeVariant)
		if err != nil {
			return nil, err
		}
		opts.Theme = cfg
	}

	output, err := renderer.Render(ctx, input, opts)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}

	return output, nil
}

// Presets exposes the configured preset store. Useful for callers listing
// available preset names.
func (o *Orchestrator) Presets() *presets.Store {
	if !o.defaultsApplied {
		o.applyDefaults()
	}
	return o.presets
}

func (o *Orchestrator) resolveInput(req Request) (card.Input, error) {
	if req.Preset == "" {
		return req.Input.Normalize(), nil
	}
	if o.presets == nil {
		return card.Input{}, fmt.Errorf("orchestrator: preset %q requested but no presets configured", req.Preset)
	}
	preset, ok := o.presets.Get(req.Preset)
	if !ok {
		return card.Input{}, fmt.Errorf("orchestrator: preset %q not found", req.Preset)
	}
	return preset.Card.Normalize(), nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}

	renderer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.registry == nil {
		o.registry = render.NewRegistry()
		renderer, err := vanilla.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
		} else {
			o.registry.MustRegister(renderer)
		}
		if termRenderer, err := term.New(); err == nil {
			o.registry.MustRegister(termRenderer)
		}
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}

	o.ensurePresets()

	o.defaultsApplied = true
}

func (o *Orchestrator) ensurePresets() {
	if o.presets != nil {
		return
	}

	fsys := o.presetsFS
	if !o.presetsSpecified {
		fsys = presets.EmbeddedFS()
	}
	if fsys == nil {
		return
	}

	store, err := presets.LoadFS(fsys)
	if err != nil {
		o.initialiseErr = fmt.Errorf("orchestrator: load presets: %w", err)
		return
	}
	o.presets = store
}
