package render

import (
	"context"

	"github.com/goliatone/go-cardgen/pkg/card"
)

// Renderer converts a card input into a byte representation (HTML, ANSI
// text, etc.). Implementations compute the verdict and presentation state
// through pkg/card so every surface shares identical render-mode semantics.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, input card.Input, options RenderOptions) ([]byte, error)
}
