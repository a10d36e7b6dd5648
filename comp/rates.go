/*
rates.go - Rate tables and constants for the A+B salary model

PURPOSE:
  Holds every configured dollar rate and weighting the engine consumes.
  All tables are immutable process-wide data; they are configuration,
  not input.

TABLES:
  RankTable:
    Academic rank to annual Component A base. Unknown ranks fall back
    to DefaultAComponent instead of failing.

  ShiftCatalog:
    Shift type to (shift-equivalent ratio, strength-of-schedule factor).
    The ratio converts one calendar day into fractional standard shifts;
    the SoS factor weights that type's contribution to the incentive pool.

SPECIAL CASES (deliberately NOT in the catalog):
  Nights:
    Tiered. The first 21 nights earn SoS 1.5, nights after 21 earn 1.75.
    Both tiers count days 1:1 as shift equivalents.

  Addiction:
    Converted to an FTE carve-out (days / 183) and paid at the
    other-department rate rather than through the SoS pool.

SEE ALSO:
  - engine.go: Consumes these tables
  - schedule.go: Shift breakdown accumulation
*/
package comp

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// MODEL CONSTANTS
// =============================================================================

const (
	// BaseShiftEquivalents is the annual full-time shift count; 1.0 FTE
	// works 183 shift equivalents per year.
	BaseShiftEquivalents = 183

	// StrengthOfScheduleBase is the annual B component base before the
	// SoS multiplier is applied.
	StrengthOfScheduleBase = 198500

	// ExperienceAdjustmentPerYear is added to B per year since graduation.
	ExperienceAdjustmentPerYear = 2000

	// ABaseForBCalc is subtracted from B scaled by status FTE. Always the
	// Assistant Professor rate, regardless of the physician's actual rank.
	ABaseForBCalc = 105000

	// OtherDeptRate is the annual rate per FTE for addiction and
	// other-department work.
	OtherDeptRate = 240000

	// AddictionBoardBonusRate is the annual bonus for addiction board
	// certification at 1.0 status FTE.
	AddictionBoardBonusRate = 20000

	// DefaultAComponent is the Component A base for unrecognized ranks.
	DefaultAComponent = 105000
)

// Night shift tiering.
const (
	NightStandardThreshold = 21
)

var (
	NightStandardSoS = decimal.NewFromFloat(1.5)
	NightPremiumSoS  = decimal.NewFromFloat(1.75)
)

// Breakdown row names for the two night tiers.
const (
	ShiftNights         = "Nights"
	ShiftAddiction      = "Addiction"
	ShiftDirectCare     = "Direct Care Days"
	ShiftStandardNights = "Standard Nights (first 21)"
	ShiftPremiumNights  = "Premium Nights (after 21)"
)

// =============================================================================
// RANK TABLE - Academic rank to Component A base
// =============================================================================

var RankTable = map[string]int64{
	"Assistant Professor": 105000,
	"Associate Professor": 120750,
	"Professor":           136500,
	"TFP NFP Physician":   105000,
}

// RankNames lists the recognized ranks in display order.
var RankNames = []string{
	"Assistant Professor",
	"Associate Professor",
	"Professor",
	"TFP NFP Physician",
}

// AComponentForRank looks up the Component A base for a rank, falling
// back to DefaultAComponent for unrecognized values.
func AComponentForRank(rank string) Money {
	if base, ok := RankTable[rank]; ok {
		return DollarsFromInt(base)
	}
	return DollarsFromInt(DefaultAComponent)
}

// =============================================================================
// SHIFT CATALOG - Generic shift types (Nights and Addiction excluded)
// =============================================================================

// ShiftRate is one catalog entry: a shift type with its day-to-shift-
// equivalent ratio and strength-of-schedule factor.
type ShiftRate struct {
	Name  string
	Ratio decimal.Decimal
	SoS   decimal.Decimal
}

// ShiftCatalog lists the generic shift types in display order. Iteration
// order is fixed so the breakdown (and therefore the whole result) is
// deterministic.
var ShiftCatalog = []ShiftRate{
	{Name: "Teaching", Ratio: decimal.NewFromFloat(1.0), SoS: decimal.NewFromFloat(1.0)},
	{Name: ShiftDirectCare, Ratio: decimal.NewFromFloat(1.0), SoS: decimal.NewFromFloat(1.25)},
	{Name: "Women & Families Days", Ratio: decimal.NewFromFloat(1.2), SoS: decimal.NewFromFloat(1.25)},
	{Name: "Episcopal", Ratio: decimal.NewFromFloat(0.75), SoS: decimal.NewFromFloat(1.05)},
	{Name: "Clinic", Ratio: decimal.NewFromFloat(0.9), SoS: decimal.NewFromFloat(1.125)},
}

// CatalogRate returns the catalog entry for a shift type name.
func CatalogRate(name string) (ShiftRate, bool) {
	for _, r := range ShiftCatalog {
		if r.Name == name {
			return r, true
		}
	}
	return ShiftRate{}, false
}

// ShiftTypeNames returns every shift type the caller is expected to cover
// in EmploymentInput.ShiftDays: the catalog plus Nights and Addiction.
func ShiftTypeNames() []string {
	names := make([]string, 0, len(ShiftCatalog)+2)
	for _, r := range ShiftCatalog {
		names = append(names, r.Name)
	}
	return append(names, ShiftNights, ShiftAddiction)
}
