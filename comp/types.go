package comp

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// EMPLOYMENT INPUT - Caller-supplied parameters for one calculation
// =============================================================================

// EmploymentInput carries everything the engine needs for one physician.
// The caller validates upper bounds (FTEs within [0,1], non-negative day
// counts) before handing the record over; the engine only clamps derived
// FTEs at zero and never re-validates.
type EmploymentInput struct {
	// StartDate is when employment becomes effective. Dates on or before
	// the fiscal year start count as a full year.
	StartDate Date

	// LeaveDays is the unpaid/leave day count subtracted from eligible days.
	LeaveDays int

	// StatusFTE is the overall appointment fraction.
	StatusFTE decimal.Decimal

	// NonClinicalFTE is the fraction carved out for non-clinical duties.
	NonClinicalFTE decimal.Decimal

	// OtherDeptFTE is the fraction assigned to another department.
	OtherDeptFTE decimal.Decimal

	// AcademicRank may be any string; unrecognized ranks fall back to the
	// default Component A base.
	AcademicRank string

	// ShiftDays maps shift type name (catalog types plus "Nights" and
	// "Addiction") to calendar days worked. Missing keys count as zero.
	ShiftDays map[string]int

	// GraduationYear feeds the experience adjustment only.
	GraduationYear int

	AddictionBoardCertified bool

	// OtherStipend is added verbatim to the total.
	OtherStipend Money
}

// addictionDays is the carve-out day count the FTE decomposition needs.
func (in EmploymentInput) addictionDays() int { return in.ShiftDays[ShiftAddiction] }

// =============================================================================
// SHIFT LINE - One row of the shift breakdown
// =============================================================================

// ShiftLine is one breakdown row: a shift type with its day count,
// shift-equivalent contribution, and weighted SoS contribution. Zero-day
// rows are returned as zeros; the display layer filters them.
type ShiftLine struct {
	Type     string
	Days     int
	ShiftEq  decimal.Decimal
	SoSValue decimal.Decimal
}

// =============================================================================
// RESULT - Immutable output of one calculation
// =============================================================================

// Result holds every intermediate quantity of the calculation so the
// presentation layer can render the full worksheet, not just the total.
type Result struct {
	FiscalYear FiscalYear

	// Time and FTE decomposition
	TimeFraction   decimal.Decimal
	AddictionFTE   decimal.Decimal
	HMFTE          decimal.Decimal // status - other dept - addiction (B formula only)
	HospitalistFTE decimal.Decimal // status - non-clinical - other dept - addiction
	ClinicalFTE    decimal.Decimal
	// ShiftEquivalents is the FTE-derived annual capacity, rounded half-up
	// to a whole shift count.
	ShiftEquivalents int64

	// Strength of schedule
	Breakdown     []ShiftLine
	TotalShiftEq  decimal.Decimal
	TotalSoSValue decimal.Decimal
	SoSMultiplier decimal.Decimal

	// Component A
	AComponent   Money
	AFTEAdjusted Money

	// Component B
	BBase                Money
	BAdjusted            Money
	ExperienceYears      int
	ExperienceAdjustment Money
	BWithExperience      Money
	BFTEAdjusted         Money

	// Other streams
	OtherDeptComp       Money
	AddictionBoardBonus Money
	OtherStipend        Money

	TotalCompensation Money
}
