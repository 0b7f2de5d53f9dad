package card

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Content limits enforced by Validate. Lengths are measured in runes on the
// raw, untrimmed value.
const (
	MaxTitleLength       = 100
	MaxDescriptionLength = 500
)

// Kind identifies which validation rule produced a verdict. The kinds are
// mutually exclusive: rule evaluation short-circuits on the first failure.
type Kind string

const (
	KindValid              Kind = "valid"
	KindMissingTitle       Kind = "missing-title"
	KindTitleTooLong       Kind = "title-too-long"
	KindMissingDescription Kind = "missing-description"
	KindDescriptionTooLong Kind = "description-too-long"
	KindDuplicateContent   Kind = "duplicate-content"
)

const (
	msgMissingTitle = "Card title is required and cannot be empty. " +
		"Please provide a meaningful title to describe your content."
	msgTitleTooLong = "Card title is too long (%d/%d characters). " +
		"Please use a concise title that summarizes your content effectively."
	msgMissingDescription = "Card description is required and cannot be empty. " +
		"Please provide a clear description to give users context about your content."
	msgDescriptionTooLong = "Card description is too long (%d/%d characters). " +
		"Please provide a concise description that highlights the key information."
	msgDuplicateContent = "Card title and description should be different. " +
		"The description should provide additional context beyond the title."
	msgValid = "Card content is valid and provides meaningful information to users."
)

// Verdict is the validity result for a title/description pair. It is a pure
// function of the content: presentation selectors never influence it.
type Verdict struct {
	Valid   bool   `json:"isValid"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

// Validate classifies a title/description pair into a verdict with a
// human-readable diagnostic. Rules run in a fixed order and the first failure
// wins: missing title, title length, missing description, description
// length, then duplicate content. Presence checks compare the trimmed value
// while length checks count runes on the raw value, so an all-whitespace
// title reports as missing rather than short. The function is total; it
// never panics, and identical inputs always produce identical verdicts.
func Validate(title, description string) Verdict {
	trimmedTitle := strings.TrimSpace(title)
	if trimmedTitle == "" {
		return Verdict{Kind: KindMissingTitle, Message: msgMissingTitle}
	}

	if n := utf8.RuneCountInString(title); n > MaxTitleLength {
		return Verdict{
			Kind:    KindTitleTooLong,
			Message: fmt.Sprintf(msgTitleTooLong, n, MaxTitleLength),
		}
	}

	trimmedDescription := strings.TrimSpace(description)
	if trimmedDescription == "" {
		return Verdict{Kind: KindMissingDescription, Message: msgMissingDescription}
	}

	if n := utf8.RuneCountInString(description); n > MaxDescriptionLength {
		return Verdict{
			Kind:    KindDescriptionTooLong,
			Message: fmt.Sprintf(msgDescriptionTooLong, n, MaxDescriptionLength),
		}
	}

	if strings.EqualFold(trimmedTitle, trimmedDescription) {
		return Verdict{Kind: KindDuplicateContent, Message: msgDuplicateContent}
	}

	return Verdict{Valid: true, Kind: KindValid, Message: msgValid}
}
