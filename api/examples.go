/*
examples.go - Example physician presets

PURPOSE:
  Provides ready-made input records that demonstrate each corner of the
  salary model without anyone typing a full schedule in first. Examples
  live in code, never in the database, and calculating one never stores
  anything.

AVAILABLE EXAMPLES:
  full-time-teaching:   The baseline. Full year, 1.0 FTE, teaching-heavy
                        schedule with a night block past the premium tier.
  nocturnist:           Night-heavy schedule deep into the premium tier.
  addiction-specialist: Addiction carve-out, board certified, split FTE.
  part-time-clinic:     0.6 FTE with clinic and direct care mix.
  mid-year-hire:        Starts January 1 with a pre-scaled schedule.

ADDING NEW EXAMPLES:
 1. Add to the 'examples' slice with ID, name, description
 2. Add a case to exampleProfile

SEE ALSO:
  - handlers.go: ListExamples, CalculateExample
*/
package api

import (
	"github.com/agonzalez06/hospitalist-calculator/physician"
)

var examples = []ExampleDTO{
	{
		ID:          "full-time-teaching",
		Name:        "Full-Time Teaching",
		Description: "Full year at 1.0 FTE, 26 teaching weeks and 28 nights",
	},
	{
		ID:          "nocturnist",
		Name:        "Nocturnist",
		Description: "Night-heavy schedule well past the 21-night premium tier",
	},
	{
		ID:          "addiction-specialist",
		Name:        "Addiction Specialist",
		Description: "Board-certified with addiction days carved out of hospitalist FTE",
	},
	{
		ID:          "part-time-clinic",
		Name:        "Part-Time Clinic",
		Description: "0.6 status FTE across clinic and direct care shifts",
	},
	{
		ID:          "mid-year-hire",
		Name:        "Mid-Year Hire",
		Description: "Starts January 1 with a schedule scaled to the half year",
	},
}

func exampleList() []ExampleDTO {
	return examples
}

func exampleProfile(id string) (physician.Profile, bool) {
	switch id {
	case "full-time-teaching":
		p := physician.NewProfile("Full-Time Teaching")
		p.AcademicRank = "Assistant Professor"
		p.GraduationYear = 2018
		p.ShiftDays["Teaching"] = 182
		p.ShiftDays["Nights"] = 28
		return p, true

	case "nocturnist":
		p := physician.NewProfile("Nocturnist")
		p.AcademicRank = "Assistant Professor"
		p.GraduationYear = 2014
		p.ShiftDays["Nights"] = 120
		p.ShiftDays["Direct Care Days"] = 40
		return p, true

	case "addiction-specialist":
		p := physician.NewProfile("Addiction Specialist")
		p.AcademicRank = "Associate Professor"
		p.GraduationYear = 2008
		p.AddictionBoardCertified = true
		p.ShiftDays["Addiction"] = 55
		p.ShiftDays["Direct Care Days"] = 90
		p.ShiftDays["Nights"] = 14
		return p, true

	case "part-time-clinic":
		p := physician.NewProfile("Part-Time Clinic")
		p.AcademicRank = "Assistant Professor"
		p.GraduationYear = 2020
		p.StatusFTE = 0.6
		p.ShiftDays["Clinic"] = 60
		p.ShiftDays["Direct Care Days"] = 50
		return p, true

	case "mid-year-hire":
		p := physician.NewProfile("Mid-Year Hire")
		p.AcademicRank = "Assistant Professor"
		p.GraduationYear = 2026
		p.StartDate = "2027-01-01"
		p.ShiftDays["Direct Care Days"] = 70
		p.ShiftDays["Nights"] = 14
		return p, true

	default:
		return physician.Profile{}, false
	}
}
