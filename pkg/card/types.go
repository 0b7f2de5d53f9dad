package card

import "fmt"

// Variant is the simplified enum for card visual treatments.
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantFeatured    Variant = "featured"
	VariantInteractive Variant = "interactive"
	VariantCompact     Variant = "compact"
	VariantStatus      Variant = "status"
)

// Size selects the spacing/density treatment applied to a card.
type Size string

const (
	SizeSmall   Size = "small"
	SizeDefault Size = "default"
	SizeLarge   Size = "large"
)

// Status picks the semantic color treatment for the status variant. It is
// ignored by every other variant.
type Status string

const (
	StatusNone    Status = "none"
	StatusSuccess Status = "success"
	StatusWarning Status = "warning"
	StatusError   Status = "error"
	StatusInfo    Status = "info"
)

var validVariants = map[Variant]bool{
	VariantDefault:     true,
	VariantFeatured:    true,
	VariantInteractive: true,
	VariantCompact:     true,
	VariantStatus:      true,
}

var validSizes = map[Size]bool{
	SizeSmall:   true,
	SizeDefault: true,
	SizeLarge:   true,
}

var validStatuses = map[Status]bool{
	StatusNone:    true,
	StatusSuccess: true,
	StatusWarning: true,
	StatusError:   true,
	StatusInfo:    true,
}

// ParseVariant validates a raw variant string. Empty input maps to the
// default variant.
func ParseVariant(raw string) (Variant, error) {
	if raw == "" {
		return VariantDefault, nil
	}
	v := Variant(raw)
	if !validVariants[v] {
		return "", fmt.Errorf("card: invalid variant %q", raw)
	}
	return v, nil
}

// ParseSize validates a raw size string. Empty input maps to the default
// size.
func ParseSize(raw string) (Size, error) {
	if raw == "" {
		return SizeDefault, nil
	}
	s := Size(raw)
	if !validSizes[s] {
		return "", fmt.Errorf("card: invalid size %q", raw)
	}
	return s, nil
}

// ParseStatus validates a raw status string. Empty input maps to none.
func ParseStatus(raw string) (Status, error) {
	if raw == "" {
		return StatusNone, nil
	}
	s := Status(raw)
	if !validStatuses[s] {
		return "", fmt.Errorf("card: invalid status %q", raw)
	}
	return s, nil
}

func (v Variant) String() string { return string(v) }
func (s Size) String() string    { return string(s) }
func (s Status) String() string  { return string(s) }

// Variants lists every accepted variant in declaration order.
func Variants() []Variant {
	return []Variant{VariantDefault, VariantFeatured, VariantInteractive, VariantCompact, VariantStatus}
}

// Sizes lists every accepted size in declaration order.
func Sizes() []Size {
	return []Size{SizeSmall, SizeDefault, SizeLarge}
}

// Statuses lists every accepted status in declaration order.
func Statuses() []Status {
	return []Status{StatusNone, StatusSuccess, StatusWarning, StatusError, StatusInfo}
}

// Input carries the caller-supplied card content and presentation selectors.
// Values are treated as immutable for the duration of a render pass.
type Input struct {
	Title          string  `json:"title" yaml:"title"`
	Description    string  `json:"description" yaml:"description"`
	Variant        Variant `json:"variant,omitempty" yaml:"variant,omitempty"`
	Size           Size    `json:"size,omitempty" yaml:"size,omitempty"`
	Status         Status  `json:"status,omitempty" yaml:"status,omitempty"`
	ShowValidation bool    `json:"showValidation,omitempty" yaml:"showValidation,omitempty"`
}

// Normalize returns a copy of the input with zero-value selectors replaced by
// their defaults. Unknown selector values are left untouched; use the Parse
// helpers when ingesting untrusted strings.
func (in Input) Normalize() Input {
	if in.Variant == "" {
		in.Variant = VariantDefault
	}
	if in.Size == "" {
		in.Size = SizeDefault
	}
	if in.Status == "" {
		in.Status = StatusNone
	}
	return in
}
