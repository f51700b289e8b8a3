package entity

import (
	"fmt"
	"math"
	"strings"

	errs "github.com/Akilan7123/DreamPixel/internal/domain/error"
)

// MinorUnitsPerMajor is the factor between a plan price and the gateway amount (paise per rupee).
const MinorUnitsPerMajor = 100

// ToMinorUnits converts a major-unit amount into minor units, rejecting negatives and overflow.
func ToMinorUnits(major int64) (int64, error) {
	if major < 0 {
		return 0, fmt.Errorf("%w: %d", errs.ErrInvalidAmount, major)
	}
	if major > math.MaxInt64/MinorUnitsPerMajor {
		return 0, fmt.Errorf("%w: %d", errs.ErrAmountOverflow, major)
	}
	return major * MinorUnitsPerMajor, nil
}

// AddChecked adds a non-negative delta to a non-negative value without wrapping around.
func AddChecked(value, delta int64) (int64, error) {
	if delta < 0 {
		return 0, fmt.Errorf("%w: %d", errs.ErrInvalidAmount, delta)
	}
	if value > math.MaxInt64-delta {
		return 0, errs.ErrAmountOverflow
	}
	return value + delta, nil
}

// FormatMinorUnits renders a minor-unit amount with two decimal places.
// For example:
// - 1015 becomes "10.15"
// - 1000 becomes "10.00"
func FormatMinorUnits(amount int64) string {
	isNegative := amount < 0
	if isNegative {
		amount = -amount
	}

	amountStr := fmt.Sprintf("%d", amount)
	if len(amountStr) < 3 {
		amountStr = strings.Repeat("0", 3-len(amountStr)) + amountStr
	}

	decimalPos := len(amountStr) - 2
	formatted := amountStr[:decimalPos] + "." + amountStr[decimalPos:]

	if isNegative {
		return "-" + formatted
	}
	return formatted
}

// FormatPrice renders a minor-unit amount together with its currency, e.g. "50.00 INR".
func FormatPrice(amount int64, currency string) string {
	return FormatMinorUnits(amount) + " " + strings.ToUpper(currency)
}
