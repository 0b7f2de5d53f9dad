package template_test

import (
	"io"
	"strings"
	"testing"
	"testing/fstest"

	rendertemplate "github.com/goliatone/go-cardgen/pkg/render/template"
	gotemplate "github.com/goliatone/go-cardgen/pkg/render/template/gotemplate"
	"github.com/goliatone/go-cardgen/pkg/testsupport"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"templates/greeting.tmpl": {
			Data: []byte("Hello {{ name }}!"),
		},
	}
}

func TestEngine_RenderTemplate(t *testing.T) {
	engine := mustEngine(t)

	out, err := engine.RenderTemplate("templates/greeting", map[string]any{"name": "cardgen"})
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	if out != "Hello cardgen!" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestEngine_RenderTemplateAppendsExtension(t *testing.T) {
	engine := mustEngine(t)

	withExt, err := engine.RenderTemplate("templates/greeting.tmpl", map[string]any{"name": "a"})
	if err != nil {
		t.Fatalf("render with extension: %v", err)
	}
	withoutExt, err := engine.RenderTemplate("templates/greeting", map[string]any{"name": "a"})
	if err != nil {
		t.Fatalf("render without extension: %v", err)
	}
	if withExt != withoutExt {
		t.Fatalf("extension handling mismatch: %q vs %q", withExt, withoutExt)
	}
}

func TestEngine_RenderString(t *testing.T) {
	engine := mustEngine(t)

	out, err := engine.RenderString("{{ value|trim }}", map[string]any{"value": "  padded  "})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if out != "padded" {
		t.Fatalf("trim filter not applied: %q", out)
	}
}

func TestEngine_ClipFilter(t *testing.T) {
	engine := mustEngine(t)

	out, err := engine.RenderString("{{ value|clip:5 }}", map[string]any{"value": "overflowing"})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if !strings.HasSuffix(out, "…") {
		t.Fatalf("clip should append ellipsis, got %q", out)
	}

	short, err := engine.RenderString("{{ value|clip:50 }}", map[string]any{"value": "short"})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if short != "short" {
		t.Fatalf("clip should pass short values through, got %q", short)
	}
}

func TestEngine_RenderWritesToWriter(t *testing.T) {
	engine := mustEngine(t)

	out, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.Render("templates/greeting", map[string]any{"name": "cardgen"}, w)
	})
	if out != written {
		t.Fatalf("writer and return value differ: %q vs %q", out, written)
	}
}

func TestEngine_RequiresSource(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatalf("expected error without base dir or fs")
	}
}

func mustEngine(t *testing.T) rendertemplate.TemplateRenderer {
	t.Helper()
	engine, err := gotemplate.New(
		gotemplate.WithFS(testFS()),
		gotemplate.WithExtension(".tmpl"),
	)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}
