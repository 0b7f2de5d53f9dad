package term_test

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-cardgen/pkg/card"
	"github.com/goliatone/go-cardgen/pkg/render"
	"github.com/goliatone/go-cardgen/pkg/renderers/term"
)

func TestRenderer_NormalOutputContainsContent(t *testing.T) {
	renderer, err := term.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	out, err := renderer.Render(context.Background(), card.Input{
		Title:       "Deploy finished",
		Description: "All checks passed.",
	}, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	text := string(out)
	if !strings.Contains(text, "Deploy finished") {
		t.Fatalf("missing title:\n%s", text)
	}
	if !strings.Contains(text, "All checks passed.") {
		t.Fatalf("missing description:\n%s", text)
	}
}

func TestRenderer_AlertShowsVerdictMessage(t *testing.T) {
	renderer, err := term.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	out, err := renderer.Render(context.Background(), card.Input{
		Title:          "",
		Description:    "A description",
		ShowValidation: true,
	}, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	text := string(out)
	if !strings.Contains(text, "Invalid Card Content") {
		t.Fatalf("missing alert heading:\n%s", text)
	}
	if !strings.Contains(text, "Card title is required") {
		t.Fatalf("missing verdict message:\n%s", text)
	}
}

func TestRenderer_SuppressedValidationRendersContent(t *testing.T) {
	renderer, err := term.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	out, err := renderer.Render(context.Background(), card.Input{
		Title:          "",
		Description:    "Still visible",
		ShowValidation: false,
	}, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	text := string(out)
	if strings.Contains(text, "Invalid Card Content") {
		t.Fatalf("suppressed validation must not render the alert:\n%s", text)
	}
	if !strings.Contains(text, "Still visible") {
		t.Fatalf("content should render normally:\n%s", text)
	}
}

func TestRenderer_NotifiesObserver(t *testing.T) {
	renderer, err := term.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	var observed card.Verdict
	_, err = renderer.Render(context.Background(), card.Input{
		Title:       "Same",
		Description: "same",
	}, render.RenderOptions{
		Observer: func(v card.Verdict) { observed = v },
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if observed.Kind != card.KindDuplicateContent {
		t.Fatalf("observer verdict: want %s, got %s", card.KindDuplicateContent, observed.Kind)
	}
}

func TestRenderer_NilContext(t *testing.T) {
	renderer, err := term.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	if _, err := renderer.Render(nil, card.Input{}, render.RenderOptions{}); err == nil { //nolint:staticcheck
		t.Fatalf("expected error for nil context")
	}
}
