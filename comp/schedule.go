/*
schedule.go - Shift breakdown accumulation and schedule helpers

PURPOSE:
  Turns the raw shift_days mapping into the per-type breakdown the B
  component is built from, and provides the derived-field helpers the
  presentation layer needs (direct-care autofill, zero-row filtering).

ACCUMULATION RULES:
  - Catalog types contribute days x ratio shift equivalents, weighted by
    the type's SoS factor.
  - Nights are tiered: the first 21 at SoS 1.5, the rest at 1.75. Night
    days count 1:1 as shift equivalents in both tiers. When there are no
    nights, no night rows appear at all.
  - Addiction never enters the breakdown; it is an FTE carve-out paid at
    the other-department rate.
  - Shift types absent from the catalog are ignored.

ORDERING:
  Rows follow catalog declaration order, then the two night tiers. The
  input map's iteration order never leaks into the result.

SEE ALSO:
  - rates.go: The catalog and night tier constants
  - engine.go: Consumes the accumulated totals
*/
package comp

import (
	"github.com/shopspring/decimal"
)

// schedule is the accumulated shift mix for one calculation.
type schedule struct {
	lines         []ShiftLine
	totalShiftEq  decimal.Decimal
	totalSoSValue decimal.Decimal
}

// accumulateSchedule builds the breakdown from the shift-days mapping.
// Every catalog type present in the input is recorded, zero-day entries
// included; TotalSoSValue always equals the sum over all rows.
func accumulateSchedule(shiftDays map[string]int) schedule {
	s := schedule{
		totalShiftEq:  decimal.Zero,
		totalSoSValue: decimal.Zero,
	}

	for _, rate := range ShiftCatalog {
		days, ok := shiftDays[rate.Name]
		if !ok {
			continue
		}
		shiftEq := decimal.NewFromInt(int64(days)).Mul(rate.Ratio)
		sosValue := shiftEq.Mul(rate.SoS)
		s.lines = append(s.lines, ShiftLine{
			Type:     rate.Name,
			Days:     days,
			ShiftEq:  shiftEq,
			SoSValue: sosValue,
		})
		s.totalShiftEq = s.totalShiftEq.Add(shiftEq)
		s.totalSoSValue = s.totalSoSValue.Add(sosValue)
	}

	s.accumulateNights(shiftDays[ShiftNights])
	return s
}

// accumulateNights adds the two tiered night rows. Runs only when there
// is at least one night; day counts pass through as shift equivalents.
func (s *schedule) accumulateNights(nightDays int) {
	if nightDays <= 0 {
		return
	}

	standard := nightDays
	premium := 0
	if standard > NightStandardThreshold {
		standard = NightStandardThreshold
		premium = nightDays - NightStandardThreshold
	}

	standardSoS := decimal.NewFromInt(int64(standard)).Mul(NightStandardSoS)
	premiumSoS := decimal.NewFromInt(int64(premium)).Mul(NightPremiumSoS)

	s.lines = append(s.lines,
		ShiftLine{
			Type:     ShiftStandardNights,
			Days:     standard,
			ShiftEq:  decimal.NewFromInt(int64(standard)),
			SoSValue: standardSoS,
		},
		ShiftLine{
			Type:     ShiftPremiumNights,
			Days:     premium,
			ShiftEq:  decimal.NewFromInt(int64(premium)),
			SoSValue: premiumSoS,
		},
	)

	s.totalShiftEq = s.totalShiftEq.Add(decimal.NewFromInt(int64(nightDays)))
	s.totalSoSValue = s.totalSoSValue.Add(standardSoS).Add(premiumSoS)
}

// =============================================================================
// PRESENTATION HELPERS
// =============================================================================

// DirectCareInput carries what the direct-care autofill needs: the FTE
// allocation plus the day counts for every shift type except Direct Care
// itself.
type DirectCareInput struct {
	StatusFTE      decimal.Decimal
	NonClinicalFTE decimal.Decimal
	OtherDeptFTE   decimal.Decimal
	ShiftDays      map[string]int
}

// DirectCareDays computes the auto-filled direct-care day count: the
// whole-shift capacity implied by the hospitalist FTE, minus the ratio-
// weighted days already committed to other shift types, floored at zero.
// The caller writes the returned value into shift_days before calling
// Calculate; the engine itself never fills it in.
func DirectCareDays(in DirectCareInput) int {
	addictionFTE := decimal.NewFromInt(int64(in.ShiftDays[ShiftAddiction])).Div(baseShiftEq)
	hospitalistFTE := clampZero(in.StatusFTE.Sub(in.NonClinicalFTE).Sub(in.OtherDeptFTE).Sub(addictionFTE))

	target := hospitalistFTE.Mul(baseShiftEq).Floor()

	committed := decimal.NewFromInt(int64(in.ShiftDays[ShiftNights]))
	for _, rate := range ShiftCatalog {
		if rate.Name == ShiftDirectCare {
			continue
		}
		committed = committed.Add(decimal.NewFromInt(int64(in.ShiftDays[rate.Name])).Mul(rate.Ratio))
	}

	days := target.Sub(committed).Floor().IntPart()
	if days < 0 {
		return 0
	}
	return int(days)
}

// FilterBreakdown returns only the rows with worked days, in the same
// order. The display layer shows these and sums them independently.
func FilterBreakdown(lines []ShiftLine) []ShiftLine {
	filtered := make([]ShiftLine, 0, len(lines))
	for _, l := range lines {
		if l.Days > 0 {
			filtered = append(filtered, l)
		}
	}
	return filtered
}
