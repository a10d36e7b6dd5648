// Package physician layers named physician profiles on top of the
// compensation engine. A profile is a stored, validated input record;
// the engine never sees profiles, only the EmploymentInput built from one.
package physician

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/agonzalez06/hospitalist-calculator/comp"
)

// =============================================================================
// PROFILE - Named, persisted employment record
// =============================================================================

// Profile carries every engine input plus display metadata. The validate
// tags enforce the caller-side contract the engine does not re-check:
// FTE fractions within [0,1], non-negative day counts, a plausible
// graduation year. The academic rank deliberately has no membership
// constraint; unrecognized ranks are legal and fall back inside the
// engine.
type Profile struct {
	ID   string `json:"id"`
	Name string `json:"name" validate:"required,min=1"`

	StartDate               string         `json:"start_date" validate:"required,datetime=2006-01-02"`
	LeaveDays               int            `json:"leave_days" validate:"gte=0,lte=365"`
	StatusFTE               float64        `json:"status_fte" validate:"gte=0,lte=1"`
	NonClinicalFTE          float64        `json:"non_clinical_fte" validate:"gte=0,lte=1"`
	OtherDeptFTE            float64        `json:"other_dept_fte" validate:"gte=0,lte=1"`
	AcademicRank            string         `json:"academic_rank" validate:"required"`
	ShiftDays               map[string]int `json:"shift_days" validate:"dive,gte=0,lte=365"`
	GraduationYear          int            `json:"graduation_year" validate:"gte=1950,lte=2100"`
	AddictionBoardCertified bool           `json:"addiction_board_certified"`
	OtherStipend            float64        `json:"other_stipend" validate:"gte=0"`

	// AutofillDirectCare asks Input() to overwrite the Direct Care Days
	// entry with the computed remainder, the way the interactive form does.
	AutofillDirectCare bool `json:"autofill_direct_care,omitempty"`

	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

var validate = validator.New()

// NewProfile creates a profile with a fresh ID and the shift map seeded
// with every expected shift type at zero days.
func NewProfile(name string) Profile {
	shiftDays := make(map[string]int, len(comp.ShiftTypeNames()))
	for _, n := range comp.ShiftTypeNames() {
		shiftDays[n] = 0
	}
	return Profile{
		ID:        uuid.NewString(),
		Name:      name,
		StartDate: comp.FY27.Start.String(),
		StatusFTE: 1.0,
		ShiftDays: shiftDays,
	}
}

// Validate checks the profile against the engine's caller-side contract.
func (p *Profile) Validate() error {
	return validate.Struct(p)
}

// Input builds the engine input. Missing shift keys default to zero and,
// when AutofillDirectCare is set, the Direct Care Days entry is replaced
// with the computed remainder before the input is returned.
func (p *Profile) Input() (comp.EmploymentInput, error) {
	start, err := comp.ParseDate(p.StartDate)
	if err != nil {
		return comp.EmploymentInput{}, fmt.Errorf("invalid start date %q: %w", p.StartDate, err)
	}

	statusFTE := decimal.NewFromFloat(p.StatusFTE)
	nonClinicalFTE := decimal.NewFromFloat(p.NonClinicalFTE)
	otherDeptFTE := decimal.NewFromFloat(p.OtherDeptFTE)

	shiftDays := make(map[string]int, len(comp.ShiftTypeNames()))
	for _, name := range comp.ShiftTypeNames() {
		shiftDays[name] = p.ShiftDays[name]
	}

	if p.AutofillDirectCare {
		shiftDays[comp.ShiftDirectCare] = comp.DirectCareDays(comp.DirectCareInput{
			StatusFTE:      statusFTE,
			NonClinicalFTE: nonClinicalFTE,
			OtherDeptFTE:   otherDeptFTE,
			ShiftDays:      shiftDays,
		})
	}

	return comp.EmploymentInput{
		StartDate:               start,
		LeaveDays:               p.LeaveDays,
		StatusFTE:               statusFTE,
		NonClinicalFTE:          nonClinicalFTE,
		OtherDeptFTE:            otherDeptFTE,
		AcademicRank:            p.AcademicRank,
		ShiftDays:               shiftDays,
		GraduationYear:          p.GraduationYear,
		AddictionBoardCertified: p.AddictionBoardCertified,
		OtherStipend:            comp.Dollars(p.OtherStipend),
	}, nil
}

// Calculate validates the profile, builds the input, and runs the engine.
func (p *Profile) Calculate() (comp.Result, error) {
	if err := p.Validate(); err != nil {
		return comp.Result{}, err
	}
	input, err := p.Input()
	if err != nil {
		return comp.Result{}, err
	}
	return comp.Calculate(input), nil
}
