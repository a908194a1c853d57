package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Mode selects how ties are broken when a value is rounded to a fixed number of places.
type Mode struct {
	name string
}

// Supported rounding modes.
var (
	// Bankers rounds half to even; it matches the default decimal context of most
	// accounting systems and is the platform default.
	Bankers = Mode{name: "bankers"}
	// HalfUp rounds half away from zero.
	HalfUp = Mode{name: "half_up"}
)

// ParseMode converts a configuration string into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "bankers", "half_even":
		return Bankers, nil
	case "half_up":
		return HalfUp, nil
	default:
		return Mode{}, fmt.Errorf("invalid rounding mode %q: must be bankers or half_up", s)
	}
}

// String returns the mode name.
func (m Mode) String() string {
	return m.name
}

// Rounding is the explicit precision context for all monetary arithmetic.
// Fields are unexported to keep a configured context immutable.
type Rounding struct {
	mode              Mode
	moneyPlaces       int32
	ratePlaces        int32
	intermediatePlace int32
}

// Default precision: pennies for money, five places for annual rates and
// sixteen places for intermediate quotients and powers.
const (
	DefaultMoneyPlaces        = 2
	DefaultRatePlaces         = 5
	DefaultIntermediatePlaces = 16
)

// NewRounding creates a Rounding after validating the precision values.
func NewRounding(mode Mode, moneyPlaces, ratePlaces int32) (Rounding, error) {
	if mode.name == "" {
		return Rounding{}, fmt.Errorf("rounding mode is required")
	}
	if moneyPlaces < 0 || moneyPlaces > DefaultIntermediatePlaces {
		return Rounding{}, fmt.Errorf("invalid money places %d: must be between 0 and %d", moneyPlaces, DefaultIntermediatePlaces)
	}
	if ratePlaces < moneyPlaces || ratePlaces > DefaultIntermediatePlaces {
		return Rounding{}, fmt.Errorf("invalid rate places %d: must be between %d and %d", ratePlaces, moneyPlaces, DefaultIntermediatePlaces)
	}
	return Rounding{
		mode:              mode,
		moneyPlaces:       moneyPlaces,
		ratePlaces:        ratePlaces,
		intermediatePlace: DefaultIntermediatePlaces,
	}, nil
}

// MustRounding creates a Rounding and panics on error. Intended for package-level variable
// initialization only.
func MustRounding(mode Mode, moneyPlaces, ratePlaces int32) Rounding {
	r, err := NewRounding(mode, moneyPlaces, ratePlaces)
	if err != nil {
		panic(err)
	}
	return r
}

// Standard is the default context: banker's rounding, 2 places for money, 5 for rates.
var Standard = MustRounding(Bankers, DefaultMoneyPlaces, DefaultRatePlaces)

// Mode returns the tie-breaking mode.
func (r Rounding) Mode() Mode {
	return r.mode
}

// MoneyPlaces returns the number of decimal places kept for monetary amounts.
func (r Rounding) MoneyPlaces() int32 {
	return r.moneyPlaces
}

// RatePlaces returns the number of decimal places kept for interest rates.
func (r Rounding) RatePlaces() int32 {
	return r.ratePlaces
}

// IntermediatePlaces returns the precision of quotients and powers that feed a final rounding.
func (r Rounding) IntermediatePlaces() int32 {
	return r.intermediatePlace
}

// IsZero reports whether r is the uninitialised zero value.
func (r Rounding) IsZero() bool {
	return r.mode.name == ""
}

// Money rounds d to the money precision.
func (r Rounding) Money(d decimal.Decimal) decimal.Decimal {
	return r.round(d, r.moneyPlaces)
}

// Rate rounds d to the rate precision.
func (r Rounding) Rate(d decimal.Decimal) decimal.Decimal {
	return r.round(d, r.ratePlaces)
}

// Div divides a by b, keeping the intermediate precision. The caller must ensure b is non-zero.
func (r Rounding) Div(a, b decimal.Decimal) decimal.Decimal {
	return a.DivRound(b, r.intermediatePlace)
}

// Mul multiplies a by b, keeping the intermediate precision.
func (r Rounding) Mul(a, b decimal.Decimal) decimal.Decimal {
	return a.Mul(b).Round(r.intermediatePlace)
}

// PowInt raises base to a non-negative integer power by repeated squaring.
// Each product is held at the intermediate precision so the digit count stays bounded.
func (r Rounding) PowInt(base decimal.Decimal, exp int) decimal.Decimal {
	result := decimal.NewFromInt(1)
	for exp > 0 {
		if exp&1 == 1 {
			result = r.Mul(result, base)
		}
		exp >>= 1
		if exp > 0 {
			base = r.Mul(base, base)
		}
	}
	return result
}

// String formats the context, for example "bankers/2/5".
func (r Rounding) String() string {
	return fmt.Sprintf("%s/%d/%d", r.mode, r.moneyPlaces, r.ratePlaces)
}

func (r Rounding) round(d decimal.Decimal, places int32) decimal.Decimal {
	if r.mode == HalfUp {
		return d.Round(places)
	}
	return d.RoundBank(places)
}
