package packages

import (
	"strings"

	"github.com/shopspring/decimal"

	pkgerrors "github.com/naturetrails/naturetrails-backend/pkg/errors"
)

// Filter holds the browse criteria. All populated criteria must match for a
// package to survive (criteria are ANDed together).
type Filter struct {
	Search      string
	Destination string
	PriceRange  *PriceRange
}

// PriceRange is a closed-open price bracket. Max is nil for open-top brackets
// such as "2000+".
type PriceRange struct {
	Min decimal.Decimal
	Max *decimal.Decimal
}

// ParsePriceRange accepts "min-max" brackets and "min+" for an unbounded top.
func ParsePriceRange(raw string) (*PriceRange, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	if strings.HasSuffix(value, "+") {
		min, err := decimal.NewFromString(strings.TrimSuffix(value, "+"))
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid price range").WithDetails(map[string]any{"price_range": raw})
		}
		return &PriceRange{Min: min}, nil
	}

	parts := strings.SplitN(value, "-", 2)
	if len(parts) != 2 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid price range").WithDetails(map[string]any{"price_range": raw})
	}
	min, err := decimal.NewFromString(strings.TrimSpace(parts[0]))
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid price range").WithDetails(map[string]any{"price_range": raw})
	}
	max, err := decimal.NewFromString(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid price range").WithDetails(map[string]any{"price_range": raw})
	}
	if max.LessThan(min) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid price range").WithDetails(map[string]any{"price_range": raw})
	}
	return &PriceRange{Min: min, Max: &max}, nil
}

// Contains reports whether price falls inside the bracket (bounds inclusive).
func (r *PriceRange) Contains(price decimal.Decimal) bool {
	if r == nil {
		return true
	}
	if price.LessThan(r.Min) {
		return false
	}
	if r.Max != nil && price.GreaterThan(*r.Max) {
		return false
	}
	return true
}

// Apply returns the packages matching every populated criterion. The input
// order is preserved and the input slice is never mutated, so applying the
// same filter twice yields the same result.
func (f Filter) Apply(input []PackageDTO) []PackageDTO {
	search := strings.ToLower(strings.TrimSpace(f.Search))
	destination := strings.ToLower(strings.TrimSpace(f.Destination))

	out := make([]PackageDTO, 0, len(input))
	for _, pkg := range input {
		if search != "" && !matchesSearch(pkg, search) {
			continue
		}
		if destination != "" && !strings.Contains(strings.ToLower(pkg.Destination), destination) {
			continue
		}
		if !f.PriceRange.Contains(pkg.Price) {
			continue
		}
		out = append(out, pkg)
	}
	return out
}

func matchesSearch(pkg PackageDTO, needle string) bool {
	return strings.Contains(strings.ToLower(pkg.Title), needle) ||
		strings.Contains(strings.ToLower(pkg.Destination), needle) ||
		strings.Contains(strings.ToLower(pkg.Description), needle)
}
