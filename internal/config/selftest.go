package config

import (
	"fmt"

	"github.com/suryansh-23/piiscan/internal/types"
)

// SyntheticSample returns a fabricated value that the category's matcher
// must accept under cfg. Values use reserved or documentation ranges.
func SyntheticSample(category types.Category, cfg Config) (string, error) {
	switch category {
	case types.CategoryPhone:
		return "call 555-555-0100 today", nil
	case types.CategoryEmail:
		return "jane.doe@example.com", nil
	case types.CategoryIPv4:
		return "192.0.2.10", nil
	case types.CategoryIPv6:
		return "2001:0db8:0000:0000:0000:ff00:0042:8329", nil
	case types.CategoryName:
		return "Jane Doe", nil
	case types.CategoryStreetAddress:
		if len(cfg.StreetSuffixes) == 0 {
			return "", fmt.Errorf("%w: no street suffixes configured", ErrInvalidConfig)
		}
		return "1234 Nowhere " + cfg.StreetSuffixes[0], nil
	case types.CategoryCreditCard:
		return "4111-1111-1111-1111", nil
	case types.CategorySSN:
		return "078-05-1120", nil
	case types.CategoryHandle:
		return "ping @janedoe", nil
	default:
		return "", fmt.Errorf("%w: unknown category %q", ErrInvalidConfig, category)
	}
}
