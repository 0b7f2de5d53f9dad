package card_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-cardgen/pkg/card"
)

func TestResolveMode(t *testing.T) {
	invalid := card.Validate("", "")
	valid := card.Validate("Valid title", "Valid description")

	cases := []struct {
		name           string
		verdict        card.Verdict
		showValidation bool
		want           card.Mode
	}{
		{"invalid with validation shown", invalid, true, card.ModeValidationError},
		{"invalid with validation suppressed", invalid, false, card.ModeNormal},
		{"valid with validation shown", valid, true, card.ModeNormal},
		{"valid with validation suppressed", valid, false, card.ModeNormal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := card.ResolveMode(tc.verdict, tc.showValidation); got != tc.want {
				t.Fatalf("mode: want %s, got %s", tc.want, got)
			}
		})
	}
}

func TestResolve_ErrorModeForcesAlertTreatment(t *testing.T) {
	in := card.Input{
		Title:          "",
		Description:    "A description",
		Variant:        card.VariantFeatured,
		Size:           card.SizeLarge,
		Status:         card.StatusSuccess,
		ShowValidation: true,
	}

	state := card.Resolve(in, card.Validate(in.Title, in.Description), nil)

	if state.Mode != card.ModeValidationError {
		t.Fatalf("mode: want %s, got %s", card.ModeValidationError, state.Mode)
	}
	if state.Variant != card.VariantStatus {
		t.Fatalf("variant should be forced to status, got %s", state.Variant)
	}
	if state.Status != card.StatusError {
		t.Fatalf("status should be forced to error, got %s", state.Status)
	}
	if state.Size != card.SizeLarge {
		t.Fatalf("size should pass through, got %s", state.Size)
	}
}

func TestResolve_NormalModePassesSelectorsThrough(t *testing.T) {
	in := card.Input{
		Title:       "A title",
		Description: "A description",
		Variant:     card.VariantInteractive,
		Size:        card.SizeSmall,
		Status:      card.StatusInfo,
	}

	var captured []string
	styleFor := func(v card.Variant, s card.Size, st card.Status) card.Style {
		captured = append(captured, string(v), string(s), string(st))
		return card.Style{Classes: []string{"stub"}}
	}

	state := card.Resolve(in, card.Validate(in.Title, in.Description), styleFor)

	if state.Mode != card.ModeNormal {
		t.Fatalf("mode: want %s, got %s", card.ModeNormal, state.Mode)
	}
	want := []string{"interactive", "small", "info"}
	if diff := cmp.Diff(want, captured); diff != "" {
		t.Fatalf("style lookup received wrong selectors (-want +got):\n%s", diff)
	}
	if len(state.Style.Classes) != 1 || state.Style.Classes[0] != "stub" {
		t.Fatalf("style descriptor not propagated: %+v", state.Style)
	}
}

func TestResolve_InvalidContentRendersNormallyWhenSuppressed(t *testing.T) {
	in := card.Input{Title: "", Description: "", ShowValidation: false}
	state := card.Resolve(in, card.Validate(in.Title, in.Description), nil)

	if state.Mode != card.ModeNormal {
		t.Fatalf("suppressed validation must render normally, got %s", state.Mode)
	}
	if state.Variant != card.VariantDefault {
		t.Fatalf("variant should normalise to default, got %s", state.Variant)
	}
}

func TestParseSelectors(t *testing.T) {
	if _, err := card.ParseVariant("banner"); err == nil {
		t.Fatalf("expected error for unknown variant")
	}
	if v, err := card.ParseVariant(""); err != nil || v != card.VariantDefault {
		t.Fatalf("empty variant should default, got %s (%v)", v, err)
	}
	if s, err := card.ParseSize("large"); err != nil || s != card.SizeLarge {
		t.Fatalf("parse size: got %s (%v)", s, err)
	}
	if _, err := card.ParseStatus("fatal"); err == nil {
		t.Fatalf("expected error for unknown status")
	}
	if s, err := card.ParseStatus(""); err != nil || s != card.StatusNone {
		t.Fatalf("empty status should map to none, got %s (%v)", s, err)
	}
}
