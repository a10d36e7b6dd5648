/*
Package comp implements the hospitalist compensation engine.

PURPOSE:
  Computes annual compensation for hospital-based physicians under the
  A+B salary model. Component A is a rank-based base salary scaled by
  appointment fraction. Component B is a strength-of-schedule incentive
  derived from the physician's shift mix, adjusted for experience and
  offset by a fixed base deduction. Additional streams cover other-
  department work and the addiction board certification bonus.

KEY CONCEPTS IN THIS FILE (money.go):
  - Money: A dollar amount backed by decimal.Decimal
  - RoundHalfUp: Excel-style rounding (exact .5 rounds up, never to-even)
  - RoundToHundred: Rounds to the nearest $100, half away from zero

DESIGN PRINCIPLES:
  1. Determinism: Same input always produces the same output
  2. Precision: Uses decimal.Decimal to avoid floating-point drift
  3. Purity: No I/O, no shared state, safe for concurrent callers
  4. Arithmetic policy over errors: edge cases clamp or fall back,
     they never fail

USAGE:
  result := comp.Calculate(comp.EmploymentInput{...})
  fmt.Println(result.TotalCompensation)

SEE ALSO:
  - engine.go: The Calculate function
  - rates.go: Rank table, shift catalog, and rate constants
  - fiscalyear.go: Fiscal year boundaries and time fraction
*/
package comp

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// MONEY - Dollar amount with exact decimal arithmetic
// =============================================================================

type Money struct {
	Value decimal.Decimal
}

func Dollars(v float64) Money {
	return Money{Value: decimal.NewFromFloat(v)}
}

func DollarsFromInt(v int64) Money {
	return Money{Value: decimal.NewFromInt(v)}
}

func ZeroDollars() Money {
	return Money{Value: decimal.Zero}
}

func (m Money) Add(o Money) Money            { return Money{Value: m.Value.Add(o.Value)} }
func (m Money) Sub(o Money) Money            { return Money{Value: m.Value.Sub(o.Value)} }
func (m Money) Mul(f decimal.Decimal) Money  { return Money{Value: m.Value.Mul(f)} }
func (m Money) IsZero() bool                 { return m.Value.IsZero() }
func (m Money) IsPositive() bool             { return m.Value.IsPositive() }
func (m Money) Equal(o Money) bool           { return m.Value.Equal(o.Value) }
func (m Money) Float64() float64             { f, _ := m.Value.Float64(); return f }
func (m Money) String() string               { return "$" + m.Value.StringFixed(2) }

// RoundToHundred rounds to the nearest $100, exact $50 away from zero.
// Used for the B component only.
func (m Money) RoundToHundred() Money {
	return Money{Value: m.Value.Round(-2)}
}

// =============================================================================
// ROUNDING POLICIES
// =============================================================================

var half = decimal.NewFromFloat(0.5)

// RoundHalfUp rounds to the nearest integer with exact .5 rounding up
// (toward positive infinity). This is the Excel convention the salary
// model is defined in, NOT round-half-to-even. Callers pass non-negative
// values only.
func RoundHalfUp(d decimal.Decimal) decimal.Decimal {
	return d.Add(half).Floor()
}

// clampZero returns zero when d is negative.
func clampZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
