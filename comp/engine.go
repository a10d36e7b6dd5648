/*
engine.go - The compensation calculation

PURPOSE:
  Calculate is the single operation this package exposes: a pure mapping
  from employment parameters and shift schedule to a full compensation
  breakdown. No I/O, no shared state, no error returns; every edge case
  is arithmetic policy (clamps and fallbacks), never a failure.

CALCULATION STEPS:
  1. Time fraction from start date and leave days
  2. FTE decomposition (two distinct hospitalist FTE figures)
  3. Shift breakdown and SoS accumulation over the catalog
  4. Tiered night pay (first 21 vs after 21)
  5. SoS multiplier (capacity-denominated, schedule-numerated)
  6. Component A (rank base x status FTE, annual)
  7. Component B (SoS base x multiplier + experience, FTE-scaled, offset)
  8. Other-department comp and addiction board bonus
  9. Total

TWO FTE FIGURES (easy to conflate, must not be):
  HMFTE           = status - other dept - addiction        (B formula)
  HospitalistFTE  = status - non-clinical - other dept - addiction
  Only the second feeds shift capacity; only the first feeds B.

SEE ALSO:
  - rates.go: Tables and constants
  - schedule.go: Breakdown accumulation and the direct-care autofill
*/
package comp

import (
	"github.com/shopspring/decimal"
)

var baseShiftEq = decimal.NewFromInt(BaseShiftEquivalents)

// Calculate computes the full A+B compensation breakdown for one
// physician. It is deterministic and safe to call concurrently.
func Calculate(in EmploymentInput) Result {
	fy := FY27

	// Step 1: time fraction. Scales only the time-prorated streams
	// (other-dept comp, board bonus); A and B stay annual.
	timeFraction := fy.TimeFraction(in.StartDate, in.LeaveDays)

	// Step 2: FTE decomposition.
	addictionFTE := decimal.NewFromInt(int64(in.addictionDays())).Div(baseShiftEq)

	hmFTE := clampZero(in.StatusFTE.Sub(in.OtherDeptFTE).Sub(addictionFTE))
	hospitalistFTE := clampZero(in.StatusFTE.Sub(in.NonClinicalFTE).Sub(in.OtherDeptFTE).Sub(addictionFTE))

	clinicalFTE := hospitalistFTE.Mul(timeFraction)
	shiftEquivalents := RoundHalfUp(clinicalFTE.Mul(baseShiftEq)).IntPart()

	// Steps 3-4: shift breakdown and SoS accumulation.
	sched := accumulateSchedule(in.ShiftDays)

	// Step 5: SoS multiplier. Denominator is the rounded FTE-derived
	// capacity, not the scheduled shift-equivalent total; the two diverge
	// when schedule and capacity don't reconcile, and that divergence is
	// part of the model.
	sosMultiplier := decimal.NewFromInt(1)
	if shiftEquivalents > 0 {
		sosMultiplier = sched.totalSoSValue.Div(decimal.NewFromInt(shiftEquivalents))
	}

	// Step 6: Component A, annual, scaled by status FTE only.
	aComponent := AComponentForRank(in.AcademicRank)
	aFTEAdjusted := aComponent.Mul(in.StatusFTE)

	// Step 7: Component B. The subtracted base is always the Assistant
	// Professor rate, independent of the physician's actual rank.
	bBase := DollarsFromInt(StrengthOfScheduleBase)
	bAdjusted := bBase.Mul(sosMultiplier)

	experienceYears := fy.Start.Year() - in.GraduationYear
	if experienceYears < 0 {
		experienceYears = 0
	}
	experienceAdjustment := DollarsFromInt(ExperienceAdjustmentPerYear * int64(experienceYears))

	bWithExperience := bAdjusted.Add(experienceAdjustment)
	bFTEAdjusted := bWithExperience.Mul(hmFTE).
		Sub(DollarsFromInt(ABaseForBCalc).Mul(in.StatusFTE)).
		RoundToHundred()

	// Step 8: time-prorated streams.
	otherDeptComp := DollarsFromInt(OtherDeptRate).
		Mul(addictionFTE.Add(in.OtherDeptFTE)).
		Mul(timeFraction)

	boardBonus := ZeroDollars()
	if in.AddictionBoardCertified {
		boardBonus = DollarsFromInt(AddictionBoardBonusRate).Mul(in.StatusFTE).Mul(timeFraction)
	}

	// Step 9: total.
	total := aFTEAdjusted.
		Add(bFTEAdjusted).
		Add(otherDeptComp).
		Add(boardBonus).
		Add(in.OtherStipend)

	return Result{
		FiscalYear:           fy,
		TimeFraction:         timeFraction,
		AddictionFTE:         addictionFTE,
		HMFTE:                hmFTE,
		HospitalistFTE:       hospitalistFTE,
		ClinicalFTE:          clinicalFTE,
		ShiftEquivalents:     shiftEquivalents,
		Breakdown:            sched.lines,
		TotalShiftEq:         sched.totalShiftEq,
		TotalSoSValue:        sched.totalSoSValue,
		SoSMultiplier:        sosMultiplier,
		AComponent:           aComponent,
		AFTEAdjusted:         aFTEAdjusted,
		BBase:                bBase,
		BAdjusted:            bAdjusted,
		ExperienceYears:      experienceYears,
		ExperienceAdjustment: experienceAdjustment,
		BWithExperience:      bWithExperience,
		BFTEAdjusted:         bFTEAdjusted,
		OtherDeptComp:        otherDeptComp,
		AddictionBoardBonus:  boardBonus,
		OtherStipend:         in.OtherStipend,
		TotalCompensation:    total,
	}
}
