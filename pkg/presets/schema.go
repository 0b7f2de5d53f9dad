package presets

import (
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
)

var (
	schemaOnce sync.Once
	docSchema  *openapi3.Schema
)

// documentSchema describes the structure of a preset document. It mirrors
// the documentFile/presetFile decode targets; the enum values are repeated
// here so schema validation reports unknown selectors with the full list of
// accepted values.
func documentSchema() *openapi3.Schema {
	schemaOnce.Do(func() {
		preset := openapi3.NewObjectSchema()
		preset.Required = []string{"name", "title", "description"}
		preset.Properties = openapi3.Schemas{
			"name":        openapi3.NewStringSchema().WithMinLength(1).NewRef(),
			"summary":     openapi3.NewStringSchema().NewRef(),
			"title":       openapi3.NewStringSchema().NewRef(),
			"description": openapi3.NewStringSchema().NewRef(),
			"variant": openapi3.NewStringSchema().
				WithEnum("default", "featured", "interactive", "compact", "status").
				NewRef(),
			"size": openapi3.NewStringSchema().
				WithEnum("small", "default", "large").
				NewRef(),
			"status": openapi3.NewStringSchema().
				WithEnum("none", "success", "warning", "error", "info").
				NewRef(),
			"showValidation": openapi3.NewBoolSchema().NewRef(),
		}

		doc := openapi3.NewObjectSchema()
		doc.Required = []string{"presets"}
		doc.Properties = openapi3.Schemas{
			"presets": openapi3.NewArraySchema().WithItems(preset).NewRef(),
		}

		docSchema = doc
	})
	return docSchema
}

func validateDocument(value map[string]any) error {
	if err := documentSchema().VisitJSON(value); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
