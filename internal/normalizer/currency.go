package normalizer

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"bookstats/internal/models"
)

// Currency codes.
const (
	USD = "USD"
	EUR = "EUR"
)

// ReferenceCurrency is the currency every amount is converted into.
const ReferenceCurrency = USD

// PricePlaces is the number of decimal places converted prices are rounded to.
const PricePlaces = 2

// CentSign is read as a decimal point.
const CentSign = "¢"

var priceNoisePattern = regexp.MustCompile(`[^\d.,¢]`)

// DefaultRates maps currency symbols and codes to their value in the reference currency.
func DefaultRates() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		USD: decimal.NewFromInt(1),
		"$": decimal.NewFromInt(1),
		EUR: decimal.RequireFromString("1.2"),
		"€": decimal.RequireFromString("1.2"),
	}
}

// CurrencyNormalizer converts free-text prices into the reference currency.
type CurrencyNormalizer struct {
	rates map[string]decimal.Decimal
}

// NewCurrencyNormalizer creates a normalizer using the static rate table.
func NewCurrencyNormalizer() *CurrencyNormalizer {
	return &CurrencyNormalizer{rates: DefaultRates()}
}

// Normalize detects the currency, parses the amount and converts it.
// present is false when the source had no value at all.
func (c *CurrencyNormalizer) Normalize(raw string, present bool) models.Price {
	if !present || isNull(raw) {
		return models.Price{Status: models.StatusMissing}
	}

	currency := DetectCurrency(raw)
	price := models.Price{Raw: raw, Currency: currency, Status: models.StatusUnparseable}

	cleaned := CleanAmount(raw)
	if cleaned == "" {
		return price
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return price
	}

	price.Amount = amount.Mul(c.rates[currency]).Round(PricePlaces)
	price.Status = models.StatusValid

	return price
}

// DetectCurrency returns EUR when the string carries € or EUR, otherwise USD.
func DetectCurrency(raw string) string {
	upper := strings.ToUpper(raw)

	switch {
	case strings.Contains(raw, "€") || strings.Contains(upper, EUR):
		return EUR
	case strings.Contains(raw, "$") || strings.Contains(upper, USD):
		return USD
	default:
		return USD
	}
}

// CleanAmount reduces a price string to a plain decimal number.
//
// When both separators occur the last one is the decimal point and the others are
// dropped. A run of periods keeps only the last as decimal point. A single comma is a
// decimal comma. Several commas without a period cannot be read and yield "".
func CleanAmount(raw string) string {
	s := priceNoisePattern.ReplaceAllString(raw, "")
	s = strings.ReplaceAll(s, CentSign, ".")

	lastDot := strings.LastIndex(s, ".")
	lastComma := strings.LastIndex(s, ",")

	decimalAt := -1

	switch {
	case lastDot >= 0 && lastComma >= 0:
		decimalAt = max(lastDot, lastComma)
	case lastDot >= 0:
		decimalAt = lastDot
	case strings.Count(s, ",") > 1:
		return ""
	case lastComma >= 0:
		decimalAt = lastComma
	}

	var sb strings.Builder

	for i := 0; i < len(s); i++ {
		switch {
		case i == decimalAt:
			sb.WriteByte('.')
		case s[i] == '.' || s[i] == ',':
			continue
		default:
			sb.WriteByte(s[i])
		}
	}

	out := strings.TrimSuffix(sb.String(), ".")
	if strings.HasPrefix(out, ".") {
		out = "0" + out
	}

	return out
}
