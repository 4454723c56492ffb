package locale

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders numbers, currency amounts and dates according to a
// descriptor's formatting metadata. Descriptor rules take precedence;
// anything left unspecified falls back to golang.org/x/text output for
// the descriptor's tag. The resolver has no dependency on this type.
type Formatter struct {
	descriptor Descriptor
	tag        language.Tag
	printer    *message.Printer
}

// NewFormatter builds a formatter for the given descriptor.
func NewFormatter(descriptor Descriptor) *Formatter {
	tag := language.Make(descriptor.Code)
	return &Formatter{
		descriptor: descriptor,
		tag:        tag,
		printer:    message.NewPrinter(tag),
	}
}

// Descriptor returns the descriptor this formatter renders for.
func (f *Formatter) Descriptor() Descriptor {
	if f == nil {
		return Descriptor{}
	}
	return f.descriptor
}

// Number formats a value with the given number of fraction digits;
// negative decimals means no fixed precision.
func (f *Formatter) Number(value float64, decimals int) string {
	if f == nil {
		return ""
	}

	if f.descriptor.NumberFormat.hasSeparators() {
		return f.numberWithRules(value, decimals)
	}

	opts := []number.Option{}
	if decimals >= 0 {
		opts = append(opts, number.MinFractionDigits(decimals), number.MaxFractionDigits(decimals))
	}
	return f.printer.Sprintf("%v", number.Decimal(value, opts...))
}

func (f *Formatter) numberWithRules(value float64, decimals int) string {
	if decimals < 0 {
		decimals = 2
	}

	formatted := fmt.Sprintf("%.*f", decimals, value)

	rules := f.descriptor.NumberFormat
	decimalSep := rules.DecimalSeparator
	if decimalSep == "" {
		decimalSep = "."
	}

	if decimalSep != "." {
		formatted = strings.Replace(formatted, ".", decimalSep, 1)
	}

	if rules.ThousandSeparator == "" {
		return formatted
	}

	integerPart := formatted
	fractionPart := ""
	if idx := strings.Index(formatted, decimalSep); idx >= 0 {
		integerPart = formatted[:idx]
		fractionPart = formatted[idx:]
	}

	negative := strings.HasPrefix(integerPart, "-")
	if negative {
		integerPart = integerPart[1:]
	}

	if len(integerPart) > 3 {
		var grouped strings.Builder
		for i, digit := range integerPart {
			if i > 0 && (len(integerPart)-i)%3 == 0 {
				grouped.WriteString(rules.ThousandSeparator)
			}
			grouped.WriteRune(digit)
		}
		integerPart = grouped.String()
	}

	if negative {
		integerPart = "-" + integerPart
	}

	return integerPart + fractionPart
}

// Currency formats an amount in the descriptor's currency. Descriptor
// symbol and placement rules win; otherwise the symbol comes from
// golang.org/x/text/currency, and with no currency metadata at all the
// bare number is returned.
func (f *Formatter) Currency(amount float64) string {
	if f == nil {
		return ""
	}

	rules := f.descriptor.NumberFormat
	digits := rules.FractionDigits
	if digits <= 0 {
		digits = 2
	}

	formatted := f.Number(amount, digits)

	if rules.CurrencySymbol != "" {
		if rules.symbolAfter() {
			return formatted + " " + rules.CurrencySymbol
		}
		return rules.CurrencySymbol + formatted
	}

	code := strings.TrimSpace(f.descriptor.CurrencyCode)
	if code == "" {
		return formatted
	}

	unit, err := currency.ParseISO(code)
	if err != nil || unit.String() == "XXX" {
		return strings.ToUpper(code) + " " + formatted
	}

	symbol := f.currencySymbol(unit, amount, digits)
	if symbol == "" {
		symbol = unit.String()
	}

	if rules.symbolAfter() {
		return formatted + " " + symbol
	}
	return symbol + " " + formatted
}

// currencySymbol extracts the bare symbol by formatting the amount with
// and without the currency wrapper and removing the numeric portion.
func (f *Formatter) currencySymbol(unit currency.Unit, amount float64, digits int) string {
	value := unit.Amount(amount)
	full := f.printer.Sprintf("%v", currency.Symbol(value))

	opts := []number.Option{number.MinFractionDigits(digits), number.MaxFractionDigits(digits)}
	numeric := f.printer.Sprintf("%v", number.Decimal(amount, opts...))

	symbol := strings.TrimSpace(strings.ReplaceAll(full, numeric, ""))
	if symbol != "" && symbol != unit.String() {
		return symbol
	}

	englishPrinter := message.NewPrinter(language.English)
	full = englishPrinter.Sprintf("%v", currency.Symbol(value))
	numeric = englishPrinter.Sprintf("%v", number.Decimal(amount, opts...))
	return strings.TrimSpace(strings.ReplaceAll(full, numeric, ""))
}

// Date formats t with the descriptor's date pattern, defaulting to ISO
// year-month-day.
func (f *Formatter) Date(t time.Time) string {
	if f == nil {
		return ""
	}
	pattern := f.descriptor.DateFormatPattern
	if pattern == "" {
		pattern = "2006-01-02"
	}
	return t.Format(pattern)
}

// DateTime formats t with the descriptor's date pattern plus a 24 hour
// clock, defaulting to RFC 3339 when no pattern is configured.
func (f *Formatter) DateTime(t time.Time) string {
	if f == nil {
		return ""
	}
	if f.descriptor.DateFormatPattern == "" {
		return t.Format(time.RFC3339)
	}
	return t.Format(f.descriptor.DateFormatPattern + " 15:04")
}
