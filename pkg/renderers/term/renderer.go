// Package term renders cards as styled terminal output using lipgloss. It
// shares the validation and render-mode semantics of the HTML renderer so
// CLI demos and web output stay in lockstep.
package term

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/goliatone/go-cardgen/pkg/card"
	"github.com/goliatone/go-cardgen/pkg/render"
	"github.com/goliatone/go-cardgen/pkg/styles"
)

// Option configures the terminal renderer.
type Option func(*Renderer)

// WithWidth fixes the card width in terminal cells.
func WithWidth(width int) Option {
	return func(r *Renderer) {
		if width > 0 {
			r.width = width
		}
	}
}

// WithPalette overrides the status color palette. Keys missing from the map
// keep their defaults.
func WithPalette(palette map[card.Status]lipgloss.Color) Option {
	return func(r *Renderer) {
		for status, color := range palette {
			r.palette[status] = color
		}
	}
}

// WithStyleResolver injects the style lookup used when resolving the
// presentation state. Class names are ignored by the terminal output but the
// resolver still runs so observers and state stay consistent.
func WithStyleResolver(styleFor card.StyleResolver) Option {
	return func(r *Renderer) {
		if styleFor != nil {
			r.styleFor = styleFor
		}
	}
}

const defaultWidth = 48

func defaultPalette() map[card.Status]lipgloss.Color {
	return map[card.Status]lipgloss.Color{
		card.StatusSuccess: lipgloss.Color("42"),
		card.StatusWarning: lipgloss.Color("214"),
		card.StatusError:   lipgloss.Color("196"),
		card.StatusInfo:    lipgloss.Color("39"),
		card.StatusNone:    lipgloss.Color("245"),
	}
}

// Renderer emits an ANSI-styled card box.
type Renderer struct {
	width    int
	palette  map[card.Status]lipgloss.Color
	styleFor card.StyleResolver
}

// New constructs the terminal renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		width:    defaultWidth,
		palette:  defaultPalette(),
		styleFor: styles.Default(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r, nil
}

func (r *Renderer) Name() string {
	return "term"
}

func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

func (r *Renderer) Render(ctx context.Context, input card.Input, options render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, fmt.Errorf("term renderer: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	styleFor := options.StyleResolver
	if styleFor == nil {
		styleFor = r.styleFor
	}

	instance := card.New(input,
		card.WithStyleResolver(styleFor),
		card.WithObserver(options.Observer),
	)
	state := instance.Resolve()

	if state.Mode == card.ModeValidationError {
		return []byte(r.renderAlert(state)), nil
	}
	return []byte(r.renderCard(input, state)), nil
}

func (r *Renderer) renderCard(input card.Input, state card.State) string {
	accent := r.palette[card.StatusNone]
	if state.Variant == card.VariantStatus {
		accent = r.palette[state.Status]
	}

	border := lipgloss.RoundedBorder()
	if state.Variant == card.VariantFeatured {
		border = lipgloss.DoubleBorder()
	}

	padding := 1
	switch state.Size {
	case card.SizeSmall:
		padding = 0
	case card.SizeLarge:
		padding = 2
	}
	if state.Variant == card.VariantCompact {
		padding = 0
	}

	titleStyle := lipgloss.NewStyle().Bold(true)
	bodyStyle := lipgloss.NewStyle().Width(r.width - 4)

	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(input.Title),
		bodyStyle.Render(input.Description),
	)

	boxStyle := lipgloss.NewStyle().
		Border(border).
		BorderForeground(accent).
		Padding(padding, padding+1).
		Width(r.width)

	return boxStyle.Render(content)
}

func (r *Renderer) renderAlert(state card.State) string {
	accent := r.palette[card.StatusError]

	headingStyle := lipgloss.NewStyle().Bold(true).Foreground(accent)
	messageStyle := lipgloss.NewStyle().Width(r.width - 4)

	content := lipgloss.JoinVertical(lipgloss.Left,
		headingStyle.Render("Invalid Card Content"),
		messageStyle.Render(state.Verdict.Message),
	)

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(accent).
		Padding(0, 1).
		Width(r.width)

	return boxStyle.Render(content)
}
