package vanilla_test

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-cardgen/pkg/card"
	"github.com/goliatone/go-cardgen/pkg/render"
	"github.com/goliatone/go-cardgen/pkg/renderers/vanilla"
)

func TestSanitizeIconMarkup_AllowsInlineSVG(t *testing.T) {
	raw := `<svg viewBox="0 0 16 16"><circle cx="8" cy="8" r="6"/></svg>`
	cleaned := vanilla.SanitizeIconMarkup(raw)
	if !strings.Contains(cleaned, "<svg") || !strings.Contains(cleaned, "<circle") {
		t.Fatalf("svg markup should survive sanitising: %q", cleaned)
	}
}

func TestSanitizeIconMarkup_StripsScripts(t *testing.T) {
	raw := `<svg onload="evil()"><script>alert(1)</script><circle cx="8" cy="8" r="6"/></svg>`
	cleaned := vanilla.SanitizeIconMarkup(raw)
	if strings.Contains(cleaned, "script") || strings.Contains(cleaned, "onload") {
		t.Fatalf("script content must be stripped: %q", cleaned)
	}
}

func TestSanitizeIconMarkup_EmptyInput(t *testing.T) {
	if got := vanilla.SanitizeIconMarkup("   "); got != "" {
		t.Fatalf("whitespace input should sanitize to empty, got %q", got)
	}
}

func TestWithIcons_OverridesStatusIcon(t *testing.T) {
	renderer, err := vanilla.New(vanilla.WithIcons(map[card.Status]string{
		card.StatusInfo: `<svg viewBox="0 0 16 16" class="custom-info"><rect x="1" y="1" width="14" height="14"/></svg>`,
	}))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	out, err := renderer.Render(context.Background(), card.Input{
		Title:       "Heads up",
		Description: "Informational content.",
		Variant:     card.VariantStatus,
		Status:      card.StatusInfo,
	}, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if !strings.Contains(string(out), "custom-info") {
		t.Fatalf("icon override not applied:\n%s", out)
	}
}

func TestWithIcons_DropsRejectedMarkup(t *testing.T) {
	renderer, err := vanilla.New(vanilla.WithIcons(map[card.Status]string{
		card.StatusSuccess: `<script>alert(1)</script>`,
	}))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	out, err := renderer.Render(context.Background(), card.Input{
		Title:       "Done",
		Description: "Finished successfully.",
		Variant:     card.VariantStatus,
		Status:      card.StatusSuccess,
	}, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	html := string(out)
	if strings.Contains(html, "<script") || strings.Contains(html, "alert(1)") {
		t.Fatalf("rejected markup must not render:\n%s", html)
	}
	// Falls back to the built-in success icon.
	if !strings.Contains(html, "<svg") {
		t.Fatalf("expected fallback icon:\n%s", html)
	}
}
