package vanilla

// ChromeClass is a typed identifier for semantic chrome CSS classes.
type ChromeClass string

const (
	ClassCard        ChromeClass = "cardgen-card"
	ClassHeader      ChromeClass = "cardgen-card__header"
	ClassTitle       ChromeClass = "cardgen-card__title"
	ClassBody        ChromeClass = "cardgen-card__body"
	ClassDescription ChromeClass = "cardgen-card__description"
	ClassAlert       ChromeClass = "cardgen-alert"
)

// Default*Class values are applied when RenderOptions.ChromeClasses
// overrides are empty.
const (
	DefaultCardClass  = string(ClassCard)
	DefaultAlertClass = string(ClassAlert)
)

// Chrome override keys accepted via RenderOptions.ChromeClasses.
const (
	ChromeKeyCard  = "card"
	ChromeKeyAlert = "alert"
)
