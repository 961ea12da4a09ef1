package ui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/tomdyson/toktab-cli/internal/catalog"
	"github.com/tomdyson/toktab-cli/internal/i18n"
)

// Renderer writes formatted catalog data to a terminal.
type Renderer struct {
	w io.Writer
	t *i18n.Translations
}

func NewRenderer(w io.Writer, t *i18n.Translations) *Renderer {
	return &Renderer{w: w, t: t}
}

// RenderJSON re-emits the raw response body, indented.
func (r *Renderer) RenderJSON(raw json.RawMessage) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		_, _ = fmt.Fprintln(r.w, string(raw))
		return
	}
	_, _ = fmt.Fprintln(r.w, buf.String())
}

// RenderModel writes the detail view: header, pricing, context window
// and capabilities.
func (r *Renderer) RenderModel(m *catalog.Model) {
	rule := Header.Sprint(strings.Repeat("━", 46))

	_, _ = fmt.Fprintf(r.w, "\n%s\n", rule)
	_, _ = fmt.Fprintf(r.w, " %s %s\n", Header.Sprint(m.DisplayName()), Dim.Sprintf("(%s)", m.ProviderName()))
	_, _ = fmt.Fprintf(r.w, "%s\n\n", rule)

	r.renderPricing(m)
	r.renderContextWindow(m)
	r.renderCapabilities(m)
}

func (r *Renderer) renderPricing(m *catalog.Model) {
	_, _ = fmt.Fprintf(r.w, "%s %s\n", Accent.Sprint(r.msg("pricing_section")), Dim.Sprintf("(%s)", r.msg("header_cost_per_million")))

	type priceRow struct {
		label string
		cost  *float64
	}

	rows := []priceRow{
		{r.msg("row_input"), m.InputCostPerToken},
		{r.msg("row_output"), m.OutputCostPerToken},
	}
	if m.CacheReadCostPerToken != nil {
		rows = append(rows, priceRow{r.msg("row_cache_read"), m.CacheReadCostPerToken})
	}
	if m.CacheWriteCostPerToken != nil {
		rows = append(rows, priceRow{r.msg("row_cache_write"), m.CacheWriteCostPerToken})
	}

	labelWidth := 12
	for _, row := range rows {
		labelWidth = columnWidth([]string{row.label}, labelWidth)
	}

	for _, row := range rows {
		label := Dim.Sprint(pad(row.label, labelWidth))
		_, _ = fmt.Fprintf(r.w, "  %s %s\n", label, tierColored(padLeft(FormatCost(row.cost), 10), CostTier(row.cost)))
	}
	_, _ = fmt.Fprintln(r.w)
}

func (r *Renderer) renderContextWindow(m *catalog.Model) {
	rows := make([][2]string, 0, 3)
	if m.MaxInputTokens != nil {
		rows = append(rows, [2]string{r.msg("row_max_input"), FormatTokens(m.MaxInputTokens)})
	}
	if m.MaxOutputTokens != nil {
		rows = append(rows, [2]string{r.msg("row_max_output"), FormatTokens(m.MaxOutputTokens)})
	}
	if m.MaxTokens != nil {
		rows = append(rows, [2]string{r.msg("row_max_total"), FormatTokens(m.MaxTokens)})
	}
	if len(rows) == 0 {
		return
	}

	_, _ = fmt.Fprintf(r.w, "%s\n", Accent.Sprint(r.msg("context_window_section")))

	labelWidth := 12
	for _, row := range rows {
		labelWidth = columnWidth([]string{row[0]}, labelWidth)
	}
	for _, row := range rows {
		_, _ = fmt.Fprintf(r.w, "  %s %s\n", Dim.Sprint(pad(row[0], labelWidth)), padLeft(row[1], 10))
	}
	_, _ = fmt.Fprintln(r.w)
}

func (r *Renderer) renderCapabilities(m *catalog.Model) {
	flags := []struct {
		enabled bool
		msgID   string
	}{
		{m.SupportsVision, "cap_vision"},
		{m.SupportsFunctionCalling, "cap_functions"},
		{m.SupportsToolChoice, "cap_tool_choice"},
		{m.SupportsPromptCaching, "cap_caching"},
		{m.SupportsResponseSchema, "cap_schema"},
		{m.SupportsSystemMessages, "cap_system_messages"},
		{m.SupportsAudioInput, "cap_audio_input"},
		{m.SupportsAudioOutput, "cap_audio_output"},
		{m.SupportsPDFInput, "cap_pdf"},
	}

	capabilities := make([]string, 0, len(flags))
	for _, f := range flags {
		if f.enabled {
			capabilities = append(capabilities, fmt.Sprintf("%s %s", color.GreenString("✓"), r.msg(f.msgID)))
		}
	}
	if len(capabilities) == 0 {
		return
	}

	_, _ = fmt.Fprintf(r.w, "%s\n", Accent.Sprint(r.msg("capabilities_section")))
	_, _ = fmt.Fprintf(r.w, "  %s\n\n", strings.Join(capabilities, " · "))
}

// RenderSearchResults writes the results table for a search.
func (r *Renderer) RenderSearchResults(result *catalog.SearchResult) {
	if len(result.Results) == 0 {
		PrintWarning(r.w, r.t.GetMessage("no_models_found", 0, map[string]interface{}{
			"Query": result.Query,
		}))
		return
	}

	_, _ = fmt.Fprintf(r.w, "\n%s\n\n", Dim.Sprint(r.t.GetMessage("found_models", result.Count, map[string]interface{}{
		"Count": result.Count,
		"Query": result.Query,
	})))

	modelHeader := r.msg("header_model")
	providerHeader := r.msg("header_provider")
	inputHeader := r.msg("header_input_per_million")
	outputHeader := r.msg("header_output_per_million")

	modelWidth := columnWidth([]string{modelHeader}, 0)
	providerWidth := columnWidth([]string{providerHeader}, 0)
	for _, m := range result.Results {
		modelWidth = columnWidth([]string{m.Identifier()}, modelWidth)
		providerWidth = columnWidth([]string{m.ProviderName()}, providerWidth)
	}

	costWidth := columnWidth([]string{inputHeader, outputHeader}, 10)

	_, _ = fmt.Fprintf(r.w, "  %s  %s  %s  %s\n",
		Dim.Sprint(pad(modelHeader, modelWidth)),
		Dim.Sprint(pad(providerHeader, providerWidth)),
		Dim.Sprint(padLeft(inputHeader, costWidth)),
		Dim.Sprint(padLeft(outputHeader, costWidth)),
	)

	for _, m := range result.Results {
		_, _ = fmt.Fprintf(r.w, "  %s  %s  %s  %s\n",
			Info.Sprint(pad(m.Identifier(), modelWidth)),
			Dim.Sprint(pad(m.ProviderName(), providerWidth)),
			tierColored(padLeft(FormatCost(m.InputCostPerToken), costWidth), CostTier(m.InputCostPerToken)),
			tierColored(padLeft(FormatCost(m.OutputCostPerToken), costWidth), CostTier(m.OutputCostPerToken)),
		)
	}
	_, _ = fmt.Fprintln(r.w)
}

// RenderProviders writes the provider list.
func (r *Renderer) RenderProviders(providers []string) {
	_, _ = fmt.Fprintf(r.w, "\n%s %s\n\n", Accent.Sprint(r.msg("providers_title")), Dim.Sprintf("(%d)", len(providers)))

	for _, provider := range providers {
		_, _ = fmt.Fprintf(r.w, "  • %s\n", provider)
	}

	_, _ = fmt.Fprintf(r.w, "\n%s\n", Dim.Sprint(r.msg("providers_tip")))
}

func (r *Renderer) msg(id string) string {
	return r.t.GetMessage(id, 0, nil)
}

// Column cells are padded before coloring: ANSI escapes would otherwise
// throw off width calculations. Widths are counted in runes so accented
// model or provider names keep the columns straight.
func pad(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

func padLeft(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return strings.Repeat(" ", width-n) + s
	}
	return s
}

func columnWidth(values []string, minimum int) int {
	width := minimum
	for _, v := range values {
		if n := utf8.RuneCountInString(v); n > width {
			width = n
		}
	}
	return width
}

func tierColored(s, tier string) string {
	switch tier {
	case TierYellow:
		return color.YellowString(s)
	case TierRed:
		return color.RedString(s)
	default:
		return color.GreenString(s)
	}
}
