package card

// Observer receives the verdict that drove the current render whenever it
// changes relative to the previously observed one.
type Observer func(Verdict)

// Option configures a Card instance.
type Option func(*Card)

// WithObserver registers a validation-change observer. A nil observer is
// ignored.
func WithObserver(fn Observer) Option {
	return func(c *Card) {
		if fn != nil {
			c.observer = fn
		}
	}
}

// WithStyleResolver injects the style lookup collaborator used by Resolve.
func WithStyleResolver(styleFor StyleResolver) Option {
	return func(c *Card) {
		if styleFor != nil {
			c.styleFor = styleFor
		}
	}
}

// Card is a live instance that recomputes its verdict and presentation state
// from the current input on every Resolve call. The instance itself holds no
// derived state beyond the last verdict handed to the observer; verdicts and
// states are fresh values each pass.
type Card struct {
	input    Input
	observer Observer
	styleFor StyleResolver

	lastVerdict *Verdict
}

// New constructs a card around the supplied input.
func New(input Input, options ...Option) *Card {
	c := &Card{input: input.Normalize()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c
}

// Input returns the current input values.
func (c *Card) Input() Input {
	if c == nil {
		return Input{}.Normalize()
	}
	return c.input
}

// SetInput replaces the card content and selectors. The next Resolve call
// picks up the new values; nothing is recomputed eagerly.
func (c *Card) SetInput(input Input) {
	if c == nil {
		return
	}
	c.input = input.Normalize()
}

// SetContent replaces only the title and description.
func (c *Card) SetContent(title, description string) {
	if c == nil {
		return
	}
	c.input.Title = title
	c.input.Description = description
}

// Resolve computes the verdict and presentation state for the current input.
// The observer, when registered, is notified after the render decision is
// made and only when the verdict differs by value from the previously
// observed one, so reconstructing a card with unchanged content stays quiet.
func (c *Card) Resolve() State {
	if c == nil {
		return Resolve(Input{}, Validate("", ""), nil)
	}

	verdict := Validate(c.input.Title, c.input.Description)
	state := Resolve(c.input, verdict, c.styleFor)

	if c.observer != nil && (c.lastVerdict == nil || *c.lastVerdict != verdict) {
		c.observer(verdict)
	}
	c.lastVerdict = &verdict

	return state
}
