package locale

// Descriptor holds the metadata for one supported locale. Code is the
// full region-qualified tag and must be unique within a Registry;
// BaseLanguage is derived from Code at registry construction when left
// empty. The formatting fields are consumed by Formatter, never by the
// resolver itself.
type Descriptor struct {
	Code              string            `json:"code" yaml:"code"`
	BaseLanguage      string            `json:"base_language,omitempty" yaml:"base_language,omitempty"`
	DisplayName       string            `json:"display_name,omitempty" yaml:"display_name,omitempty"`
	NativeName        string            `json:"native_name,omitempty" yaml:"native_name,omitempty"`
	CurrencyCode      string            `json:"currency_code,omitempty" yaml:"currency_code,omitempty"`
	DateFormatPattern string            `json:"date_format,omitempty" yaml:"date_format,omitempty"`
	NumberFormat      NumberFormatRules `json:"number_format,omitempty" yaml:"number_format,omitempty"`
	RightToLeft       bool              `json:"right_to_left,omitempty" yaml:"right_to_left,omitempty"`
	Default           bool              `json:"default,omitempty" yaml:"default,omitempty"`
}

// NumberFormatRules overrides the CLDR derived formatting for a locale.
// A zero value means "use golang.org/x/text defaults for the tag".
type NumberFormatRules struct {
	DecimalSeparator  string `json:"decimal_separator,omitempty" yaml:"decimal_separator,omitempty"`
	ThousandSeparator string `json:"thousand_separator,omitempty" yaml:"thousand_separator,omitempty"`
	CurrencySymbol    string `json:"currency_symbol,omitempty" yaml:"currency_symbol,omitempty"`
	// SymbolPosition is "before" or "after"; "after" renders
	// "1.234,56 €" instead of "€1.234,56".
	SymbolPosition string `json:"symbol_position,omitempty" yaml:"symbol_position,omitempty"`
	// FractionDigits is the number of digits after the decimal separator
	// in currency output. Zero or negative means the default of 2.
	FractionDigits int `json:"fraction_digits,omitempty" yaml:"fraction_digits,omitempty"`
}

func (r NumberFormatRules) hasSeparators() bool {
	return r.DecimalSeparator != "" || r.ThousandSeparator != ""
}

func (r NumberFormatRules) symbolAfter() bool {
	return r.SymbolPosition == "after"
}
