package config

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// GenerateJSONSchema returns the JSON Schema for a project config.json,
// grounded on the teacher's config.GenerateJSONSchema - same reflector
// options, retargeted at Regression instead of Config.
func GenerateJSONSchema() string {
	r := &jsonschema.Reflector{
		DoNotReference:             true,
		ExpandedStruct:             true,
		AllowAdditionalProperties:  true,
		RequiredFromJSONSchemaTags: true,
	}

	schema := r.Reflect(&Regression{})
	schema.ID = "https://github.com/cklewar/regressci/raw/main/regressci.schema.json"
	schema.Title = "Regression Project Configuration"
	schema.Description = "Configuration schema for the regressci pipeline generator's project config.json"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return "{}"
	}

	return string(data)
}
