package catalog

import "encoding/json"

// Model is a single pricing/capability record from the catalog.
// Cost fields are dollars per token; nil means the catalog has no data.
type Model struct {
	Slug     string `json:"slug,omitempty"`
	Name     string `json:"litellm_model_name,omitempty"`
	Provider string `json:"litellm_provider,omitempty"`

	InputCostPerToken      *float64 `json:"input_cost_per_token,omitempty"`
	OutputCostPerToken     *float64 `json:"output_cost_per_token,omitempty"`
	CacheReadCostPerToken  *float64 `json:"cache_read_input_token_cost,omitempty"`
	CacheWriteCostPerToken *float64 `json:"cache_creation_input_token_cost,omitempty"`

	MaxInputTokens  *int64 `json:"max_input_tokens,omitempty"`
	MaxOutputTokens *int64 `json:"max_output_tokens,omitempty"`
	MaxTokens       *int64 `json:"max_tokens,omitempty"`

	SupportsVision          bool `json:"supports_vision,omitempty"`
	SupportsFunctionCalling bool `json:"supports_function_calling,omitempty"`
	SupportsToolChoice      bool `json:"supports_tool_choice,omitempty"`
	SupportsPromptCaching   bool `json:"supports_prompt_caching,omitempty"`
	SupportsResponseSchema  bool `json:"supports_response_schema,omitempty"`
	SupportsSystemMessages  bool `json:"supports_system_messages,omitempty"`
	SupportsAudioInput      bool `json:"supports_audio_input,omitempty"`
	SupportsAudioOutput     bool `json:"supports_audio_output,omitempty"`
	SupportsPDFInput        bool `json:"supports_pdf_input,omitempty"`

	// Raw is the response body as the service sent it, for JSON output mode.
	Raw json.RawMessage `json:"-"`
}

// DisplayName prefers the catalog model name and falls back to the slug.
func (m *Model) DisplayName() string {
	if m.Name != "" {
		return m.Name
	}
	if m.Slug != "" {
		return m.Slug
	}
	return "Unknown"
}

func (m *Model) ProviderName() string {
	if m.Provider != "" {
		return m.Provider
	}
	return "Unknown"
}

// SearchModel is the compact record returned by the search endpoint.
type SearchModel struct {
	Slug     string `json:"slug,omitempty"`
	Name     string `json:"name,omitempty"`
	Provider string `json:"provider,omitempty"`

	InputCostPerToken  *float64 `json:"input_cost_per_token,omitempty"`
	OutputCostPerToken *float64 `json:"output_cost_per_token,omitempty"`
}

// Identifier prefers the slug and falls back to the name.
func (m *SearchModel) Identifier() string {
	if m.Slug != "" {
		return m.Slug
	}
	if m.Name != "" {
		return m.Name
	}
	return "?"
}

func (m *SearchModel) ProviderName() string {
	if m.Provider != "" {
		return m.Provider
	}
	return "-"
}

// SearchResult is the response of the search endpoint: the matching
// records in catalog order plus the echoed query and total count.
type SearchResult struct {
	Results []SearchModel `json:"results"`
	Query   string        `json:"query"`
	Count   int           `json:"count"`

	Raw json.RawMessage `json:"-"`
}
