package comp_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/agonzalez06/hospitalist-calculator/comp"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func fte(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

func date(year int, month time.Month, day int) comp.Date {
	return comp.NewDate(year, month, day)
}

// fullTimeInput is the full-year, full-time baseline: starts on the fiscal
// year start, Assistant Professor, 182 teaching days and 28 nights.
func fullTimeInput() comp.EmploymentInput {
	return comp.EmploymentInput{
		StartDate:      date(2026, time.July, 1),
		LeaveDays:      0,
		StatusFTE:      fte(1.0),
		NonClinicalFTE: fte(0),
		OtherDeptFTE:   fte(0),
		AcademicRank:   "Assistant Professor",
		ShiftDays: map[string]int{
			"Teaching": 182,
			"Nights":   28,
		},
		GraduationYear: 2026,
		OtherStipend:   comp.ZeroDollars(),
	}
}

func assertDecimal(t *testing.T, name string, got, want decimal.Decimal) {
	t.Helper()
	if !got.Equal(want) {
		t.Errorf("%s: expected %s, got %s", name, want, got)
	}
}

func assertMoney(t *testing.T, name string, got, want comp.Money) {
	t.Helper()
	if !got.Equal(want) {
		t.Errorf("%s: expected %s, got %s", name, want, got)
	}
}

func findLine(lines []comp.ShiftLine, shiftType string) (comp.ShiftLine, bool) {
	for _, l := range lines {
		if l.Type == shiftType {
			return l, true
		}
	}
	return comp.ShiftLine{}, false
}

// =============================================================================
// BASELINE
// =============================================================================

func TestCalculate_FullYearFullTimeBaseline(t *testing.T) {
	// GIVEN: Full-year full-time Assistant Professor, 182 teaching days,
	//        28 nights, zero experience
	// WHEN: Calculating compensation
	// THEN: Every intermediate matches the worked example

	result := comp.Calculate(fullTimeInput())

	assertDecimal(t, "time fraction", result.TimeFraction, fte(1.0))
	assertDecimal(t, "addiction FTE", result.AddictionFTE, decimal.Zero)
	assertDecimal(t, "HM FTE", result.HMFTE, fte(1.0))
	assertDecimal(t, "hospitalist FTE", result.HospitalistFTE, fte(1.0))

	if result.ShiftEquivalents != 183 {
		t.Errorf("shift equivalents: expected 183, got %d", result.ShiftEquivalents)
	}

	// Teaching: 182 x 1.0 ratio x 1.0 SoS
	teaching, ok := findLine(result.Breakdown, "Teaching")
	if !ok {
		t.Fatal("missing Teaching row")
	}
	assertDecimal(t, "teaching SoS", teaching.SoSValue, decimal.NewFromInt(182))

	// Nights: 21 standard at 1.5 = 31.5, 7 premium at 1.75 = 12.25
	standard, ok := findLine(result.Breakdown, comp.ShiftStandardNights)
	if !ok {
		t.Fatal("missing standard nights row")
	}
	if standard.Days != 21 {
		t.Errorf("standard nights: expected 21 days, got %d", standard.Days)
	}
	assertDecimal(t, "standard night SoS", standard.SoSValue, decimal.NewFromFloat(31.5))

	premium, ok := findLine(result.Breakdown, comp.ShiftPremiumNights)
	if !ok {
		t.Fatal("missing premium nights row")
	}
	if premium.Days != 7 {
		t.Errorf("premium nights: expected 7 days, got %d", premium.Days)
	}
	assertDecimal(t, "premium night SoS", premium.SoSValue, decimal.NewFromFloat(12.25))

	// Totals: 182 + 31.5 + 12.25 = 225.75
	assertDecimal(t, "total SoS value", result.TotalSoSValue, decimal.NewFromFloat(225.75))
	assertDecimal(t, "SoS multiplier", result.SoSMultiplier,
		decimal.NewFromFloat(225.75).Div(decimal.NewFromInt(183)))

	// A: 105000 x 1.0. B: round (198500 x multiplier - 105000) to $100.
	assertMoney(t, "A FTE adjusted", result.AFTEAdjusted, comp.DollarsFromInt(105000))
	if result.ExperienceYears != 0 {
		t.Errorf("experience years: expected 0, got %d", result.ExperienceYears)
	}
	assertMoney(t, "B FTE adjusted", result.BFTEAdjusted, comp.DollarsFromInt(139900))
	assertMoney(t, "total", result.TotalCompensation, comp.DollarsFromInt(244900))
}

// =============================================================================
// ROUNDING
// =============================================================================

func TestCalculate_ShiftEquivalentsRoundHalfUp(t *testing.T) {
	// GIVEN: 0.5 hospitalist FTE over a full year, so clinical capacity is
	//        exactly 91.5 shift equivalents
	// WHEN: Calculating
	// THEN: Rounds UP to 92, never down

	input := fullTimeInput()
	input.StatusFTE = fte(0.5)
	input.ShiftDays = map[string]int{"Teaching": 91}

	result := comp.Calculate(input)

	assertDecimal(t, "clinical FTE", result.ClinicalFTE, fte(0.5))
	if result.ShiftEquivalents != 92 {
		t.Errorf("shift equivalents: expected 92 (91.5 rounds up), got %d", result.ShiftEquivalents)
	}
}

// =============================================================================
// NIGHT TIERING
// =============================================================================

func TestCalculate_NightTieringBoundary(t *testing.T) {
	cases := []struct {
		name         string
		nights       int
		wantStandard int
		wantPremium  int
	}{
		{"at threshold all standard", 21, 21, 0},
		{"one past threshold", 22, 21, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := fullTimeInput()
			input.ShiftDays = map[string]int{"Nights": tc.nights}

			result := comp.Calculate(input)

			standard, ok := findLine(result.Breakdown, comp.ShiftStandardNights)
			if !ok {
				t.Fatal("missing standard nights row")
			}
			if standard.Days != tc.wantStandard {
				t.Errorf("standard nights: expected %d, got %d", tc.wantStandard, standard.Days)
			}

			premium, ok := findLine(result.Breakdown, comp.ShiftPremiumNights)
			if !ok {
				t.Fatal("missing premium nights row")
			}
			if premium.Days != tc.wantPremium {
				t.Errorf("premium nights: expected %d, got %d", tc.wantPremium, premium.Days)
			}
		})
	}
}

func TestCalculate_ZeroNights_NoNightRows(t *testing.T) {
	// GIVEN: No night shifts at all
	// WHEN: Calculating
	// THEN: No night rows appear and nothing accrues from nights

	input := fullTimeInput()
	input.ShiftDays = map[string]int{"Teaching": 100}

	result := comp.Calculate(input)

	if _, ok := findLine(result.Breakdown, comp.ShiftStandardNights); ok {
		t.Error("standard nights row should not exist")
	}
	if _, ok := findLine(result.Breakdown, comp.ShiftPremiumNights); ok {
		t.Error("premium nights row should not exist")
	}
	assertDecimal(t, "total SoS value", result.TotalSoSValue, decimal.NewFromInt(100))
	assertDecimal(t, "total shift eq", result.TotalShiftEq, decimal.NewFromInt(100))
}

// =============================================================================
// FTE EDGE CASES
// =============================================================================

func TestCalculate_ZeroStatusFTE(t *testing.T) {
	// GIVEN: status_fte = 0 with a stipend
	// WHEN: Calculating
	// THEN: Everything is zero except the stipend

	input := fullTimeInput()
	input.StatusFTE = fte(0)
	input.ShiftDays = map[string]int{}
	input.OtherStipend = comp.DollarsFromInt(5000)

	result := comp.Calculate(input)

	assertMoney(t, "A FTE adjusted", result.AFTEAdjusted, comp.ZeroDollars())
	assertDecimal(t, "HM FTE", result.HMFTE, decimal.Zero)
	assertMoney(t, "B FTE adjusted", result.BFTEAdjusted, comp.ZeroDollars())
	assertMoney(t, "other dept comp", result.OtherDeptComp, comp.ZeroDollars())
	assertMoney(t, "board bonus", result.AddictionBoardBonus, comp.ZeroDollars())
	assertMoney(t, "total", result.TotalCompensation, comp.DollarsFromInt(5000))
}

func TestCalculate_HMFTEClampedAtZero(t *testing.T) {
	// GIVEN: Other-department FTE exceeds status FTE
	// WHEN: Calculating
	// THEN: Both hospitalist FTE figures clamp to zero, never negative

	input := fullTimeInput()
	input.StatusFTE = fte(0.5)
	input.OtherDeptFTE = fte(0.8)
	input.ShiftDays = map[string]int{}

	result := comp.Calculate(input)

	assertDecimal(t, "HM FTE", result.HMFTE, decimal.Zero)
	assertDecimal(t, "hospitalist FTE", result.HospitalistFTE, decimal.Zero)
}

func TestCalculate_AddictionDaysCarveOutFTE(t *testing.T) {
	// GIVEN: 36.6 addiction days would be 0.2 FTE; use 36 days
	// WHEN: Calculating
	// THEN: Addiction FTE = 36/183, excluded from the SoS breakdown, paid
	//       through other-dept comp

	input := fullTimeInput()
	input.ShiftDays = map[string]int{"Addiction": 36}

	result := comp.Calculate(input)

	wantFTE := decimal.NewFromInt(36).Div(decimal.NewFromInt(183))
	assertDecimal(t, "addiction FTE", result.AddictionFTE, wantFTE)

	if _, ok := findLine(result.Breakdown, comp.ShiftAddiction); ok {
		t.Error("addiction must not appear in the SoS breakdown")
	}

	wantComp := comp.DollarsFromInt(240000).Mul(wantFTE)
	assertMoney(t, "other dept comp", result.OtherDeptComp, wantComp)
}

// =============================================================================
// FALLBACKS
// =============================================================================

func TestCalculate_UnrecognizedRankFallsBack(t *testing.T) {
	// GIVEN: A rank the table has never heard of
	// WHEN: Calculating
	// THEN: Component A defaults to 105000 instead of failing

	input := fullTimeInput()
	input.AcademicRank = "Nonexistent Rank"

	result := comp.Calculate(input)

	assertMoney(t, "A component", result.AComponent, comp.DollarsFromInt(105000))
}

func TestCalculate_SoSMultiplierFallback(t *testing.T) {
	// GIVEN: Zero shifts everywhere, so shift equivalents are zero
	// WHEN: Calculating
	// THEN: SoS multiplier falls back to exactly 1.0, not a division error

	input := fullTimeInput()
	input.StatusFTE = fte(0)
	input.ShiftDays = map[string]int{}

	result := comp.Calculate(input)

	if result.ShiftEquivalents != 0 {
		t.Fatalf("expected 0 shift equivalents, got %d", result.ShiftEquivalents)
	}
	assertDecimal(t, "SoS multiplier", result.SoSMultiplier, decimal.NewFromInt(1))
}

// =============================================================================
// TIME FRACTION
// =============================================================================

func TestCalculate_StartAfterFiscalYearEnd(t *testing.T) {
	// GIVEN: Start date past the end of the fiscal year
	// WHEN: Calculating
	// THEN: Time-prorated streams are zero; A and B still computed as
	//       annual amounts from whatever shifts the caller supplied

	input := fullTimeInput()
	input.StartDate = date(2027, time.August, 1)
	input.AddictionBoardCertified = true

	result := comp.Calculate(input)

	assertDecimal(t, "time fraction", result.TimeFraction, decimal.Zero)
	assertMoney(t, "other dept comp", result.OtherDeptComp, comp.ZeroDollars())
	assertMoney(t, "board bonus", result.AddictionBoardBonus, comp.ZeroDollars())
	assertMoney(t, "A FTE adjusted", result.AFTEAdjusted, comp.DollarsFromInt(105000))
}

func TestCalculate_LeaveDaysReduceTimeFraction(t *testing.T) {
	// GIVEN: Full-year start with 73 leave days (365 - 73 = 292 effective)
	// WHEN: Calculating
	// THEN: Time fraction is 292/365 = 0.8

	input := fullTimeInput()
	input.LeaveDays = 73

	result := comp.Calculate(input)

	assertDecimal(t, "time fraction", result.TimeFraction, fte(0.8))
}

// =============================================================================
// BOARD BONUS
// =============================================================================

func TestCalculate_AddictionBoardBonus(t *testing.T) {
	// GIVEN: Certified physician at 0.5 status FTE, full year
	// WHEN: Calculating
	// THEN: Bonus = 20000 x 0.5 x 1.0 = 10000

	input := fullTimeInput()
	input.StatusFTE = fte(0.5)
	input.AddictionBoardCertified = true

	result := comp.Calculate(input)

	assertMoney(t, "board bonus", result.AddictionBoardBonus, comp.DollarsFromInt(10000))
}

// =============================================================================
// DETERMINISM
// =============================================================================

func TestCalculate_Idempotent(t *testing.T) {
	// GIVEN: One input record
	// WHEN: Calculating twice
	// THEN: Results are identical, row for row and field for field

	input := fullTimeInput()
	input.ShiftDays = map[string]int{
		"Teaching":              70,
		"Direct Care Days":      40,
		"Women & Families Days": 10,
		"Episcopal":             8,
		"Clinic":                12,
		"Nights":                25,
		"Addiction":             6,
	}
	input.AddictionBoardCertified = true
	input.GraduationYear = 2015

	first := comp.Calculate(input)
	second := comp.Calculate(input)

	assertMoney(t, "total", first.TotalCompensation, second.TotalCompensation)
	assertDecimal(t, "SoS multiplier", first.SoSMultiplier, second.SoSMultiplier)
	if len(first.Breakdown) != len(second.Breakdown) {
		t.Fatalf("breakdown length differs: %d vs %d", len(first.Breakdown), len(second.Breakdown))
	}
	for i := range first.Breakdown {
		if first.Breakdown[i].Type != second.Breakdown[i].Type {
			t.Errorf("row %d: type %q vs %q", i, first.Breakdown[i].Type, second.Breakdown[i].Type)
		}
		assertDecimal(t, "row SoS value", first.Breakdown[i].SoSValue, second.Breakdown[i].SoSValue)
	}
}

func TestCalculate_ExperienceAdjustment(t *testing.T) {
	// GIVEN: Graduated 10 years before the fiscal year start
	// WHEN: Calculating
	// THEN: Experience adds 10 x 2000 = 20000 to B before FTE scaling

	input := fullTimeInput()
	input.GraduationYear = 2016

	result := comp.Calculate(input)

	if result.ExperienceYears != 10 {
		t.Errorf("experience years: expected 10, got %d", result.ExperienceYears)
	}
	assertMoney(t, "experience adjustment", result.ExperienceAdjustment, comp.DollarsFromInt(20000))
	assertMoney(t, "B with experience", result.BWithExperience,
		result.BAdjusted.Add(comp.DollarsFromInt(20000)))
}

func TestCalculate_FutureGraduationYearClamps(t *testing.T) {
	// GIVEN: Graduation year after the fiscal year start
	// WHEN: Calculating
	// THEN: Experience clamps to zero years

	input := fullTimeInput()
	input.GraduationYear = 2030

	result := comp.Calculate(input)

	if result.ExperienceYears != 0 {
		t.Errorf("experience years: expected 0, got %d", result.ExperienceYears)
	}
}

func TestCalculate_TotalSoSMatchesRowSum(t *testing.T) {
	// GIVEN: A mixed schedule including zero-day catalog entries
	// WHEN: Calculating
	// THEN: TotalSoSValue equals the sum over all rows, zero rows included

	input := fullTimeInput()
	input.ShiftDays = map[string]int{
		"Teaching":              42,
		"Direct Care Days":      0,
		"Women & Families Days": 15,
		"Clinic":                0,
		"Nights":                23,
	}

	result := comp.Calculate(input)

	sum := decimal.Zero
	for _, l := range result.Breakdown {
		sum = sum.Add(l.SoSValue)
	}
	assertDecimal(t, "total SoS value", result.TotalSoSValue, sum)
}
