// Package tui provides an interactive card builder for terminal sessions.
// It prompts for content with validation feedback wired into the prompts,
// then delegates the final render to another renderer (the term renderer by
// default).
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-cardgen/pkg/card"
	"github.com/goliatone/go-cardgen/pkg/render"
	"github.com/goliatone/go-cardgen/pkg/renderers/term"
)

// Option configures the TUI renderer.
type Option func(*Renderer)

// WithPromptDriver overrides the prompt driver used by the renderer.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithDelegate overrides the renderer used for the final card output.
func WithDelegate(delegate render.Renderer) Option {
	return func(r *Renderer) {
		if delegate != nil {
			r.delegate = delegate
		}
	}
}

// Renderer walks the user through building a card: content prompts with
// inline validation, selector prompts, then a delegated render of the
// result.
type Renderer struct {
	driver   PromptDriver
	delegate render.Renderer
}

// New constructs a TUI renderer with defaults (survey driver, term
// delegate).
func New(options ...Option) (*Renderer, error) {
	driver, err := newSurveyDriver()
	if err != nil {
		return nil, err
	}
	delegate, err := term.New()
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		driver:   driver,
		delegate: delegate,
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
	return "tui"
}

func (r *Renderer) ContentType() string {
	if r.delegate != nil {
		return r.delegate.ContentType()
	}
	return "text/plain; charset=utf-8"
}

var variantOptions = []string{
	string(card.VariantDefault),
	string(card.VariantFeatured),
	string(card.VariantInteractive),
	string(card.VariantCompact),
	string(card.VariantStatus),
}

var sizeOptions = []string{
	string(card.SizeSmall),
	string(card.SizeDefault),
	string(card.SizeLarge),
}

var statusOptions = []string{
	string(card.StatusNone),
	string(card.StatusSuccess),
	string(card.StatusWarning),
	string(card.StatusError),
	string(card.StatusInfo),
}

// Render prompts for card content and selectors, using the supplied input as
// defaults, then renders the assembled card through the delegate.
func (r *Renderer) Render(ctx context.Context, input card.Input, options render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.driver == nil {
		return nil, errors.New("tui: prompt driver is nil")
	}
	if r.delegate == nil {
		return nil, errors.New("tui: delegate renderer is nil")
	}

	input = input.Normalize()

	title, err := r.driver.Input(ctx, InputConfig{
		Message:   "Card title",
		Default:   input.Title,
		Help:      fmt.Sprintf("Required, at most %d characters.", card.MaxTitleLength),
		Validator: validateTitle,
	})
	if err != nil {
		return nil, err
	}

	description, err := r.driver.Input(ctx, InputConfig{
		Message:   "Card description",
		Default:   input.Description,
		Help:      fmt.Sprintf("Required, at most %d characters, distinct from the title.", card.MaxDescriptionLength),
		Validator: validateDescription(title),
	})
	if err != nil {
		return nil, err
	}

	variantIdx, err := r.driver.Select(ctx, SelectConfig{
		Message:      "Variant",
		Options:      variantOptions,
		DefaultIndex: indexOf(variantOptions, string(input.Variant)),
	})
	if err != nil {
		return nil, err
	}
	variant := card.Variant(variantOptions[variantIdx])

	sizeIdx, err := r.driver.Select(ctx, SelectConfig{
		Message:      "Size",
		Options:      sizeOptions,
		DefaultIndex: indexOf(sizeOptions, string(input.Size)),
	})
	if err != nil {
		return nil, err
	}

	status := input.Status
	if variant == card.VariantStatus {
		statusIdx, err := r.driver.Select(ctx, SelectConfig{
			Message:      "Status",
			Options:      statusOptions,
			DefaultIndex: indexOf(statusOptions, string(input.Status)),
		})
		if err != nil {
			return nil, err
		}
		status = card.Status(statusOptions[statusIdx])
	}

	showValidation, err := r.driver.Confirm(ctx, ConfirmConfig{
		Message: "Show validation feedback when content is invalid?",
		Default: input.ShowValidation,
	})
	if err != nil {
		return nil, err
	}

	built := card.Input{
		Title:          title,
		Description:    description,
		Variant:        variant,
		Size:           card.Size(sizeOptions[sizeIdx]),
		Status:         status,
		ShowValidation: showValidation,
	}

	verdict := card.Validate(built.Title, built.Description)
	if err := r.driver.Info(ctx, verdict.Message); err != nil {
		return nil, err
	}

	return r.delegate.Render(ctx, built, options)
}

// validateTitle surfaces only title rule failures so the prompt can
// re-ask without a description in hand.
func validateTitle(value string) error {
	verdict := card.Validate(value, "pending description")
	switch verdict.Kind {
	case card.KindMissingTitle, card.KindTitleTooLong:
		return errors.New(verdict.Message)
	}
	return nil
}

func validateDescription(title string) func(string) error {
	return func(value string) error {
		verdict := card.Validate(title, value)
		switch verdict.Kind {
		case card.KindMissingDescription, card.KindDescriptionTooLong, card.KindDuplicateContent:
			return errors.New(verdict.Message)
		}
		return nil
	}
}

func indexOf(options []string, value string) int {
	for idx, option := range options {
		if option == value {
			return idx
		}
	}
	return 0
}
