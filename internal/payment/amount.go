package payment

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

var ErrInvalidAmount = errors.New("invalid payment amount")

// NormalizeAmount turns a user-supplied amount into a float. String
// inputs may carry currency symbols, thousands separators, and
// whitespace ("₹1,234.50"). Anything that does not parse to a positive
// number is ErrInvalidAmount; bad input is never coerced to zero.
func NormalizeAmount(raw interface{}) (float64, error) {
	switch v := raw.(type) {
	case nil:
		return 0, ErrInvalidAmount
	case float64:
		return validateAmount(v)
	case int:
		return validateAmount(float64(v))
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, ErrInvalidAmount
		}
		return validateAmount(f)
	case string:
		cleaned := strings.NewReplacer("₹", "", "$", "", ",", "", " ", "").Replace(strings.TrimSpace(v))
		if cleaned == "" {
			return 0, ErrInvalidAmount
		}
		f, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return 0, ErrInvalidAmount
		}
		return validateAmount(f)
	default:
		return 0, ErrInvalidAmount
	}
}

func validateAmount(f float64) (float64, error) {
	if f <= 0 {
		return 0, ErrInvalidAmount
	}
	return f, nil
}
