package i18n

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

type Translations struct {
	bundle   *i18n.Bundle
	localize *i18n.Localizer
}

func NewTranslations(defaultLang, localesDir string) (*Translations, error) {
	if defaultLang == "" {
		return nil, fmt.Errorf("default language cannot be empty")
	}

	if localesDir == "" {
		localesDir = "locales"
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	bundle.MustParseMessageFileBytes([]byte(defaultMessages), "default.en.toml")

	files, err := filepath.Glob(filepath.Join(localesDir, "active.*.toml"))
	if err != nil {
		return nil, fmt.Errorf("error reading locales: %w", err)
	}

	for _, file := range files {
		if _, err := bundle.LoadMessageFile(file); err != nil {
			return nil, fmt.Errorf("error loading locale file %s: %w", file, err)
		}
	}

	localize := i18n.NewLocalizer(bundle, defaultLang)

	return &Translations{
		bundle:   bundle,
		localize: localize,
	}, nil
}

func (t *Translations) SetLanguage(lang string) error {
	for _, tag := range t.bundle.LanguageTags() {
		if tag.String() == lang {
			t.localize = i18n.NewLocalizer(t.bundle, lang)
			return nil
		}
	}
	return fmt.Errorf("language '%s' not supported", lang)
}

func (t *Translations) GetMessage(messageID string, count int, templateData map[string]interface{}) string {
	localized, err := t.localize.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID: messageID,
		},
		PluralCount:  count,
		TemplateData: templateData,
	})
	if err != nil {
		return "Translation missing: " + messageID
	}
	return localized
}

var defaultMessages = `
	[app_usage]
	other = "LLM pricing data at your fingertips"

	[app_description]
	other = "Look up pricing and capability data for LLM models.\n\nGet pricing info for a model:\n\n   toktab gpt-4o\n\nSearch for models:\n\n   toktab search claude"

	[help_command_usage]
	other = "Show help for toktab"

	[show_command_usage]
	other = "Show pricing and capabilities for a model"

	[show_slug_required]
	other = "A model slug is required.\nExample: toktab gpt-4o"

	[fetching_model]
	other = "Fetching {{.Slug}}..."

	[search_command_usage]
	other = "Search for models by name or provider"

	[search_command_description]
	other = "Search supports partial matches and a 'provider:' prefix.\n\nExamples:\n\n   toktab search claude\n\n   toktab search \"gemini 3\"\n\n   toktab search provider:anthropic"

	[search_query_required]
	other = "A search query is required.\nExample: toktab search claude"

	[search_limit_flag]
	other = "Number of results (max {{.Max}})"

	[searching]
	other = "Searching for '{{.Query}}'..."

	[no_models_found]
	other = "No models found for '{{.Query}}'"

	[found_models]
	one = "Found {{.Count}} model for '{{.Query}}'"
	other = "Found {{.Count}} models for '{{.Query}}'"

	[providers_command_usage]
	other = "List all providers in the catalog"

	[providers_title]
	other = "Providers"

	[providers_tip]
	other = "Tip: Search by provider with 'toktab search provider:NAME'"

	[json_flag]
	other = "Output raw JSON"

	[no_color_flag]
	other = "Disable colored output"

	[debug_flag]
	other = "Enable debug logging"

	[verbose_flag]
	other = "Enable verbose logging"

	[pricing_section]
	other = "Pricing"

	[context_window_section]
	other = "Context Window"

	[capabilities_section]
	other = "Capabilities"

	[header_type]
	other = "Type"

	[header_cost_per_million]
	other = "Cost / 1M tokens"

	[header_limit]
	other = "Limit"

	[header_tokens]
	other = "Tokens"

	[header_model]
	other = "Model"

	[header_provider]
	other = "Provider"

	[header_input_per_million]
	other = "Input / 1M"

	[header_output_per_million]
	other = "Output / 1M"

	[row_input]
	other = "Input"

	[row_output]
	other = "Output"

	[row_cache_read]
	other = "Cache read"

	[row_cache_write]
	other = "Cache write"

	[row_max_input]
	other = "Max input"

	[row_max_output]
	other = "Max output"

	[row_max_total]
	other = "Max total"

	[cap_vision]
	other = "Vision"

	[cap_functions]
	other = "Functions"

	[cap_tool_choice]
	other = "Tool choice"

	[cap_caching]
	other = "Caching"

	[cap_schema]
	other = "Schema"

	[cap_system_messages]
	other = "System msgs"

	[cap_audio_input]
	other = "Audio in"

	[cap_audio_output]
	other = "Audio out"

	[cap_pdf]
	other = "PDF"

	[error_prefix]
	other = "Error"

	[config_command_usage]
	other = "Manage toktab configuration"

	[config_show_usage]
	other = "Show the current configuration"

	[config_set_lang_usage]
	other = "Set the interface language"

	[config_set_url_usage]
	other = "Set the catalog base URL"

	[current_config]
	other = "Current configuration"

	[config_language_label]
	other = "Language"

	[config_base_url_label]
	other = "Catalog URL"

	[config_timeout_label]
	other = "Request timeout"

	[config_limit_label]
	other = "Default search limit"

	[config_color_label]
	other = "Colored output"

	[config_file_label]
	other = "Config file"

	[language_set]
	other = "Language set to '{{.Lang}}'"

	[language_arg_required]
	other = "A language code is required.\nExample: toktab config set-lang en"

	[url_set]
	other = "Catalog URL set to '{{.URL}}'"

	[url_arg_required]
	other = "A base URL is required.\nExample: toktab config set-url https://toktab.com/api"

	[update.available]
	other = "Update available: {{.Current}} → {{.Latest}}"

	[update.command]
	other = "Run: {{.Command}}"

	[update.box_top]
	other = "╭──────────────────────────────────────────────╮"

	[update.box_bottom]
	other = "╰──────────────────────────────────────────────╯"
	`
