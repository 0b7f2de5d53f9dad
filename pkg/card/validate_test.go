package card_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-cardgen/pkg/card"
)

func TestValidate_RuleOrdering(t *testing.T) {
	cases := []struct {
		name        string
		title       string
		description string
		wantKind    card.Kind
		wantValid   bool
	}{
		{
			name:        "empty title",
			title:       "",
			description: "A description",
			wantKind:    card.KindMissingTitle,
		},
		{
			name:        "whitespace only title",
			title:       "   ",
			description: "A description",
			wantKind:    card.KindMissingTitle,
		},
		{
			name:        "empty title wins over long description",
			title:       "",
			description: strings.Repeat("d", 501),
			wantKind:    card.KindMissingTitle,
		},
		{
			name:        "long title",
			title:       strings.Repeat("t", 101),
			description: "A description",
			wantKind:    card.KindTitleTooLong,
		},
		{
			name:        "empty description",
			title:       "A title",
			description: "",
			wantKind:    card.KindMissingDescription,
		},
		{
			name:        "whitespace only description",
			title:       "A title",
			description: "\t\n ",
			wantKind:    card.KindMissingDescription,
		},
		{
			name:        "long description",
			title:       "A title",
			description: strings.Repeat("d", 501),
			wantKind:    card.KindDescriptionTooLong,
		},
		{
			name:        "case insensitive duplicate",
			title:       "Same Content",
			description: "same content",
			wantKind:    card.KindDuplicateContent,
		},
		{
			name:        "valid content",
			title:       "Valid title",
			description: "Valid description",
			wantKind:    card.KindValid,
			wantValid:   true,
		},
		{
			name:        "trimming tolerated for presence and equality",
			title:       "  Valid Title  ",
			description: "  Valid description  ",
			wantKind:    card.KindValid,
			wantValid:   true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := card.Validate(tc.title, tc.description)
			if got.Kind != tc.wantKind {
				t.Fatalf("kind: want %s, got %s (message %q)", tc.wantKind, got.Kind, got.Message)
			}
			if got.Valid != tc.wantValid {
				t.Fatalf("valid: want %v, got %v", tc.wantValid, got.Valid)
			}
			if got.Message == "" {
				t.Fatalf("expected a diagnostic message")
			}
		})
	}
}

func TestValidate_LengthBoundaries(t *testing.T) {
	title100 := strings.Repeat("t", 100)
	if got := card.Validate(title100, "A description"); !got.Valid {
		t.Fatalf("title of length 100 should be valid, got %s: %q", got.Kind, got.Message)
	}

	title101 := strings.Repeat("t", 101)
	got := card.Validate(title101, "A description")
	if got.Kind != card.KindTitleTooLong {
		t.Fatalf("title of length 101: want %s, got %s", card.KindTitleTooLong, got.Kind)
	}
	if !strings.Contains(got.Message, "101/100 characters") {
		t.Fatalf("message should interpolate the actual length, got %q", got.Message)
	}

	desc500 := strings.Repeat("d", 500)
	if got := card.Validate("A title", desc500); !got.Valid {
		t.Fatalf("description of length 500 should be valid, got %s: %q", got.Kind, got.Message)
	}

	desc501 := strings.Repeat("d", 501)
	got = card.Validate("A title", desc501)
	if got.Kind != card.KindDescriptionTooLong {
		t.Fatalf("description of length 501: want %s, got %s", card.KindDescriptionTooLong, got.Kind)
	}
	if !strings.Contains(got.Message, "501/500 characters") {
		t.Fatalf("message should interpolate the actual length, got %q", got.Message)
	}
}

func TestValidate_LengthCountsUntrimmedRunes(t *testing.T) {
	// 99 content runes plus two spaces of padding; the raw value is what
	// counts, so this trips the limit even though the trimmed title fits.
	padded := " " + strings.Repeat("t", 99) + " "
	got := card.Validate(padded, "A description")
	if got.Kind != card.KindTitleTooLong {
		t.Fatalf("padded title: want %s, got %s", card.KindTitleTooLong, got.Kind)
	}
}

func TestValidate_Idempotent(t *testing.T) {
	first := card.Validate("Valid title", "Valid description")
	second := card.Validate("Valid title", "Valid description")
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("verdicts differ for identical inputs (-first +second):\n%s", diff)
	}
}

func TestValidate_SuccessMessage(t *testing.T) {
	got := card.Validate("Valid title", "Valid description")
	want := "Card content is valid and provides meaningful information to users."
	if got.Message != want {
		t.Fatalf("success message: want %q, got %q", want, got.Message)
	}
}
