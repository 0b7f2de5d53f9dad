package card

// Mode is the binary render decision: ordinary content or the diagnostic
// alert presentation.
type Mode string

const (
	ModeNormal          Mode = "normal"
	ModeValidationError Mode = "validation-error"
)

// Style is the opaque descriptor produced by a StyleResolver. The core never
// interprets it beyond passing it to renderers.
type Style struct {
	Classes    []string          `json:"classes,omitempty"`
	DataAttrs  map[string]string `json:"dataAttrs,omitempty"`
	CSSVars    map[string]string `json:"cssVars,omitempty"`
	Stylesheet string            `json:"stylesheet,omitempty"`
}

// StyleResolver maps presentation selectors to a style descriptor. The
// mapping is an external collaborator; implementations must be pure so the
// resolver stays deterministic.
type StyleResolver func(Variant, Size, Status) Style

// State is the resolved presentation for one render pass: the render mode
// plus the effective selectors and their style lookup.
type State struct {
	Mode    Mode    `json:"mode"`
	Variant Variant `json:"variant"`
	Size    Size    `json:"size"`
	Status  Status  `json:"status"`
	Style   Style   `json:"style"`
	Verdict Verdict `json:"verdict"`
}

// ResolveMode decides between the normal and alert layouts. The alert layout
// is selected only when the verdict failed and the caller opted in via
// showValidation; invalid content still renders normally otherwise.
func ResolveMode(verdict Verdict, showValidation bool) Mode {
	if !verdict.Valid && showValidation {
		return ModeValidationError
	}
	return ModeNormal
}

// Resolve computes the presentation state for an input and its verdict. In
// validation-error mode the effective variant is forced to status/error so
// failures always carry the same alarm treatment regardless of the requested
// variant. styleFor may be nil, in which case the style is empty.
func Resolve(in Input, verdict Verdict, styleFor StyleResolver) State {
	in = in.Normalize()

	state := State{
		Mode:    ResolveMode(verdict, in.ShowValidation),
		Variant: in.Variant,
		Size:    in.Size,
		Status:  in.Status,
		Verdict: verdict,
	}

	if state.Mode == ModeValidationError {
		state.Variant = VariantStatus
		state.Status = StatusError
	}

	if styleFor != nil {
		state.Style = styleFor(state.Variant, state.Size, state.Status)
	}
	return state
}
