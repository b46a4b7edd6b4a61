package scoring

import (
	"log/slog"
	"strings"

	"github.com/myrjola/sustainscore/internal/errors"
	"github.com/shopspring/decimal"
)

var ErrUnknownRounding = errors.NewSentinel("unknown rounding mode")

// Rounding selects how the local vendor sub-score rounds halves.
type Rounding int

const (
	// RoundHalfUp rounds 10.5 to 11.
	RoundHalfUp Rounding = iota
	// RoundHalfEven rounds 10.5 to 10 and 11.5 to 12.
	RoundHalfEven
)

func (r Rounding) String() string {
	if r == RoundHalfEven {
		return "half-even"
	}
	return "half-up"
}

// ParseRounding parses "half-up" or "half-even".
func ParseRounding(s string) (Rounding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "half-up", "":
		return RoundHalfUp, nil
	case "half-even", "bankers":
		return RoundHalfEven, nil
	default:
		return RoundHalfUp, errors.Wrap(ErrUnknownRounding, "parse rounding", slog.String("rounding", s))
	}
}

func (r Rounding) round(d decimal.Decimal) int {
	if r == RoundHalfEven {
		return int(d.RoundBank(0).IntPart())
	}
	return int(d.Round(0).IntPart())
}

const (
	// DefaultMaterialCeiling keeps the observed behaviour where a zero penalty plus the full recyclable bonus
	// yields 25 points, above the nominal 20.
	DefaultMaterialCeiling = 25
	// NominalMaterialCeiling caps the material sub-score at its nominal maximum.
	NominalMaterialCeiling = 20
)

// Policy holds the scoring choices that differ between deployments.
type Policy struct {
	Rounding Rounding
	// MaterialCeiling is the upper clamp of the material sub-score. Zero or less means DefaultMaterialCeiling.
	MaterialCeiling int
}

// DefaultPolicy rounds half up and keeps the 25-point material ceiling.
func DefaultPolicy() Policy {
	return Policy{
		Rounding:        RoundHalfUp,
		MaterialCeiling: DefaultMaterialCeiling,
	}
}

func (p Policy) materialCeiling() int {
	if p.MaterialCeiling <= 0 {
		return DefaultMaterialCeiling
	}
	return p.MaterialCeiling
}
