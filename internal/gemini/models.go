package gemini

import "strings"

// Model is a static model descriptor served by the listing endpoints.
type Model struct {
	Name                       string   `json:"name"`
	Version                    string   `json:"version"`
	DisplayName                string   `json:"displayName"`
	Description                string   `json:"description"`
	InputTokenLimit            int      `json:"inputTokenLimit"`
	OutputTokenLimit           int      `json:"outputTokenLimit"`
	SupportedGenerationMethods []string `json:"supportedGenerationMethods"`
}

// ModelList is the GET /v1beta/models response body.
type ModelList struct {
	Models []Model `json:"models"`
}

// DefaultModelVersion is reported when a request carries no model name.
const DefaultModelVersion = "gemini-1.5-flash"

var catalog = []Model{
	{
		Name:             "models/gemini-1.5-pro",
		Version:          "001",
		DisplayName:      "Gemini 1.5 Pro",
		Description:      "Mid-size multimodal model that supports up to 2 million tokens",
		InputTokenLimit:  2097152,
		OutputTokenLimit: 8192,
		SupportedGenerationMethods: []string{
			"generateContent",
			"streamGenerateContent",
			"countTokens",
		},
	},
	{
		Name:             "models/gemini-1.5-flash",
		Version:          "001",
		DisplayName:      "Gemini 1.5 Flash",
		Description:      "Fast and versatile multimodal model for scaling across diverse tasks",
		InputTokenLimit:  1048576,
		OutputTokenLimit: 8192,
		SupportedGenerationMethods: []string{
			"generateContent",
			"streamGenerateContent",
			"countTokens",
		},
	},
}

// ModelCatalog returns the fixed pair of model descriptors. The slice is
// a copy; callers may not mutate the catalog.
func ModelCatalog() []Model {
	out := make([]Model, len(catalog))
	copy(out, catalog)
	return out
}

// LookupModel finds a descriptor by name, with or without the "models/"
// resource prefix.
func LookupModel(name string) (Model, bool) {
	name = strings.TrimPrefix(name, "models/")
	for _, m := range catalog {
		if strings.TrimPrefix(m.Name, "models/") == name {
			return m, true
		}
	}
	return Model{}, false
}
