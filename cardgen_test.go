package cardgen_test

import (
	"context"
	"strings"
	"testing"

	cardgen "github.com/goliatone/go-cardgen"
)

func TestGenerateHTML(t *testing.T) {
	out, err := cardgen.GenerateHTML(context.Background(), cardgen.Input{
		Title:       "Release notes",
		Description: "Everything that changed in this version.",
	}, "")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	html := string(out)
	if !strings.Contains(html, "Release notes") {
		t.Fatalf("output missing title:\n%s", html)
	}
	if !strings.Contains(html, "cardgen-card") {
		t.Fatalf("output missing card class:\n%s", html)
	}
}

func TestGenerateFromPreset(t *testing.T) {
	out, err := cardgen.GenerateFromPreset(context.Background(), "status-success", "")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(string(out), "Deployment complete") {
		t.Fatalf("preset content not rendered:\n%s", out)
	}
}

func TestValidateReExport(t *testing.T) {
	verdict := cardgen.Validate("Title", "Title")
	if verdict.Valid {
		t.Fatalf("duplicate content should be invalid")
	}
	if mode := cardgen.ResolveMode(verdict, true); mode != "validation-error" {
		t.Fatalf("unexpected mode %q", mode)
	}
	if mode := cardgen.ResolveMode(verdict, false); mode != "normal" {
		t.Fatalf("unexpected mode %q", mode)
	}
}

func TestEmbeddedAssets(t *testing.T) {
	if cardgen.EmbeddedPresets().Empty() {
		t.Fatalf("expected embedded presets")
	}
	if cardgen.EmbeddedTemplates() == nil || cardgen.RuntimeAssetsFS() == nil {
		t.Fatalf("expected embedded template/asset filesystems")
	}
}
