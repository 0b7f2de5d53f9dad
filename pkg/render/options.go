package render

import (
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-cardgen/pkg/card"
)

// RenderOptions describe per-request data that renderers can use to
// customise their output without mutating the card pipeline.
type RenderOptions struct {
	// Theme carries the resolved go-theme configuration. Renderers derive
	// CSS variables and asset URLs from it; nil means unthemed output.
	Theme *theme.RendererConfig

	// StyleResolver overrides the style lookup used when resolving the
	// presentation state. When nil, renderers fall back to their configured
	// resolver (styles.Default for the built-ins).
	StyleResolver card.StyleResolver

	// Observer receives the verdict driving this render, following the
	// change-notification contract on card.Card. Renderers invoke it after
	// the render decision is made. Per-request observers fire on every
	// render since a single request has no prior verdict to compare against.
	Observer card.Observer

	// ChromeClasses overrides the semantic class applied to a chrome region
	// (e.g. "card", "alert"). Empty entries keep the defaults.
	ChromeClasses map[string]string

	// Stylesheet links an external stylesheet instead of the embedded
	// default styles. Renderers that do not emit documents ignore it.
	Stylesheet string
}
