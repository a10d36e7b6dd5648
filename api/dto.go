/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the engine's decimal-backed domain model from the float-valued JSON the
  frontend consumes.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

BREAKDOWN FILTERING:
  The engine returns zero-day rows; the API filters them and sums the
  displayed rows independently, so the table's total line always matches
  what is on screen. TotalSoSValue comes from the engine and equals the
  sum over ALL rows, filtered or not.

SEE ALSO:
  - handlers.go: Uses these types
  - comp/types.go: The domain-side Result
*/
package api

import (
	"github.com/agonzalez06/hospitalist-calculator/comp"
	"github.com/agonzalez06/hospitalist-calculator/physician"
)

// =============================================================================
// REQUEST TYPES
// =============================================================================

// CalculateRequest is an ad hoc calculation request: the full employment
// input without any stored identity.
type CalculateRequest struct {
	StartDate               string         `json:"start_date"`
	LeaveDays               int            `json:"leave_days"`
	StatusFTE               float64        `json:"status_fte"`
	NonClinicalFTE          float64        `json:"non_clinical_fte"`
	OtherDeptFTE            float64        `json:"other_dept_fte"`
	AcademicRank            string         `json:"academic_rank"`
	ShiftDays               map[string]int `json:"shift_days"`
	GraduationYear          int            `json:"graduation_year"`
	AddictionBoardCertified bool           `json:"addiction_board_certified"`
	OtherStipend            float64        `json:"other_stipend"`
	AutofillDirectCare      bool           `json:"autofill_direct_care"`
}

// toProfile wraps the request in an unnamed profile so the same
// validation and input-building path serves stored and ad hoc inputs.
func (r CalculateRequest) toProfile() physician.Profile {
	return physician.Profile{
		ID:                      "ad-hoc",
		Name:                    "ad hoc",
		StartDate:               r.StartDate,
		LeaveDays:               r.LeaveDays,
		StatusFTE:               r.StatusFTE,
		NonClinicalFTE:          r.NonClinicalFTE,
		OtherDeptFTE:            r.OtherDeptFTE,
		AcademicRank:            r.AcademicRank,
		ShiftDays:               r.ShiftDays,
		GraduationYear:          r.GraduationYear,
		AddictionBoardCertified: r.AddictionBoardCertified,
		OtherStipend:            r.OtherStipend,
		AutofillDirectCare:      r.AutofillDirectCare,
	}
}

// DirectCareRequest asks for the auto-filled direct care day count.
type DirectCareRequest struct {
	StatusFTE      float64        `json:"status_fte"`
	NonClinicalFTE float64        `json:"non_clinical_fte"`
	OtherDeptFTE   float64        `json:"other_dept_fte"`
	ShiftDays      map[string]int `json:"shift_days"`
}

// DirectCareDTO is the autofill response.
type DirectCareDTO struct {
	DirectCareDays int `json:"direct_care_days"`
}

// =============================================================================
// RESULT TYPES
// =============================================================================

// FiscalYearDTO describes the fiscal year the calculation ran against.
type FiscalYearDTO struct {
	Label     string `json:"label"`
	Start     string `json:"start"`
	End       string `json:"end"`
	TotalDays int    `json:"total_days"`
}

// ShiftLineDTO is one displayed breakdown row.
type ShiftLineDTO struct {
	Type     string  `json:"type"`
	Days     int     `json:"days"`
	ShiftEq  float64 `json:"shift_eq"`
	SoSValue float64 `json:"sos_value"`
}

// BreakdownTotalsDTO sums the displayed rows.
type BreakdownTotalsDTO struct {
	Days     int     `json:"days"`
	ShiftEq  float64 `json:"shift_eq"`
	SoSValue float64 `json:"sos_value"`
}

// ResultDTO is the full compensation worksheet.
type ResultDTO struct {
	FiscalYear FiscalYearDTO `json:"fiscal_year"`

	TimeFraction     float64 `json:"time_fraction"`
	AddictionFTE     float64 `json:"addiction_fte"`
	HMFTE            float64 `json:"hm_fte"`
	HospitalistFTE   float64 `json:"hospitalist_fte"`
	ClinicalFTE      float64 `json:"clinical_fte"`
	ShiftEquivalents int64   `json:"shift_equivalents"`

	Breakdown       []ShiftLineDTO     `json:"breakdown"`
	BreakdownTotals BreakdownTotalsDTO `json:"breakdown_totals"`
	TotalSoSValue   float64            `json:"total_sos_value"`
	SoSMultiplier   float64            `json:"sos_multiplier"`

	AComponent   float64 `json:"a_component"`
	AFTEAdjusted float64 `json:"a_fte_adjusted"`

	BBase                float64 `json:"b_base"`
	BAdjusted            float64 `json:"b_adjusted"`
	ExperienceYears      int     `json:"experience_years"`
	ExperienceAdjustment float64 `json:"experience_adjustment"`
	BWithExperience      float64 `json:"b_with_experience"`
	BFTEAdjusted         float64 `json:"b_fte_adjusted"`

	OtherDeptComp       float64 `json:"other_dept_comp"`
	AddictionBoardBonus float64 `json:"addiction_board_bonus"`
	OtherStipend        float64 `json:"other_stipend"`

	TotalCompensation float64 `json:"total_compensation"`
}

// =============================================================================
// REFERENCE TYPES
// =============================================================================

// RankDTO is one rank table entry.
type RankDTO struct {
	Rank       string  `json:"rank"`
	AComponent float64 `json:"a_component"`
}

// ShiftRateDTO is one shift reference row. The two night tiers are
// appended with their fixed SoS factors; Addiction appears with no SoS
// factor since it is paid separately.
type ShiftRateDTO struct {
	Name  string   `json:"name"`
	Ratio float64  `json:"ratio"`
	SoS   *float64 `json:"sos,omitempty"`
	Notes string   `json:"notes,omitempty"`
}

// ExampleDTO is one example physician preset.
type ExampleDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

func toResultDTO(res comp.Result) ResultDTO {
	displayed := comp.FilterBreakdown(res.Breakdown)

	lines := make([]ShiftLineDTO, len(displayed))
	var totals BreakdownTotalsDTO
	for i, l := range displayed {
		shiftEq, _ := l.ShiftEq.Float64()
		sosValue, _ := l.SoSValue.Float64()
		lines[i] = ShiftLineDTO{
			Type:     l.Type,
			Days:     l.Days,
			ShiftEq:  shiftEq,
			SoSValue: sosValue,
		}
		totals.Days += l.Days
		totals.ShiftEq += shiftEq
		totals.SoSValue += sosValue
	}

	timeFraction, _ := res.TimeFraction.Float64()
	addictionFTE, _ := res.AddictionFTE.Float64()
	hmFTE, _ := res.HMFTE.Float64()
	hospitalistFTE, _ := res.HospitalistFTE.Float64()
	clinicalFTE, _ := res.ClinicalFTE.Float64()
	totalSoS, _ := res.TotalSoSValue.Float64()
	sosMultiplier, _ := res.SoSMultiplier.Float64()

	return ResultDTO{
		FiscalYear: FiscalYearDTO{
			Label:     res.FiscalYear.Label,
			Start:     res.FiscalYear.Start.String(),
			End:       res.FiscalYear.End.String(),
			TotalDays: res.FiscalYear.TotalDays,
		},
		TimeFraction:     timeFraction,
		AddictionFTE:     addictionFTE,
		HMFTE:            hmFTE,
		HospitalistFTE:   hospitalistFTE,
		ClinicalFTE:      clinicalFTE,
		ShiftEquivalents: res.ShiftEquivalents,

		Breakdown:       lines,
		BreakdownTotals: totals,
		TotalSoSValue:   totalSoS,
		SoSMultiplier:   sosMultiplier,

		AComponent:   res.AComponent.Float64(),
		AFTEAdjusted: res.AFTEAdjusted.Float64(),

		BBase:                res.BBase.Float64(),
		BAdjusted:            res.BAdjusted.Float64(),
		ExperienceYears:      res.ExperienceYears,
		ExperienceAdjustment: res.ExperienceAdjustment.Float64(),
		BWithExperience:      res.BWithExperience.Float64(),
		BFTEAdjusted:         res.BFTEAdjusted.Float64(),

		OtherDeptComp:       res.OtherDeptComp.Float64(),
		AddictionBoardBonus: res.AddictionBoardBonus.Float64(),
		OtherStipend:        res.OtherStipend.Float64(),

		TotalCompensation: res.TotalCompensation.Float64(),
	}
}
