package payroll

import "github.com/shopspring/decimal"

// Bracket is one row of a progressive withholding table. Both bounds are
// inclusive; an Unbounded bracket has no upper limit.
type Bracket struct {
	Lower     decimal.Decimal `json:"lower"`
	Upper     decimal.Decimal `json:"upper"`
	Unbounded bool            `json:"unbounded"`
	Rate      decimal.Decimal `json:"rate"`
	Deduction decimal.Decimal `json:"deduction"`
}

func (b Bracket) Contains(value decimal.Decimal) bool {
	if value.LessThan(b.Lower) {
		return false
	}
	return b.Unbounded || value.LessThanOrEqual(b.Upper)
}

// Schedule is an ordered bracket table. Lookup returns the first bracket that
// contains the value, so a shared boundary belongs to the earlier bracket.
type Schedule []Bracket

func (s Schedule) Lookup(value decimal.Decimal) (Bracket, bool) {
	for _, bracket := range s {
		if bracket.Contains(value) {
			return bracket, true
		}
	}
	return Bracket{}, false
}

func bracket(lower, upper, rate, deduction string) Bracket {
	return Bracket{
		Lower:     decimal.RequireFromString(lower),
		Upper:     decimal.RequireFromString(upper),
		Rate:      decimal.RequireFromString(rate),
		Deduction: decimal.RequireFromString(deduction),
	}
}

func openBracket(lower, rate, deduction string) Bracket {
	b := bracket(lower, lower, rate, deduction)
	b.Upper = decimal.Zero
	b.Unbounded = true
	return b
}

var ContributionSchedule = Schedule{
	bracket("0.00", "1412.00", "0.075", "0.00"),
	bracket("1412.01", "2666.67", "0.09", "21.18"),
	bracket("2666.68", "4000.02", "0.12", "101.18"),
	bracket("4000.03", "7786.01", "0.14", "181.18"),
}

var IncomeTaxSchedule = Schedule{
	bracket("0.00", "2259.20", "0", "0.00"),
	bracket("2259.20", "2826.65", "0.075", "158.40"),
	bracket("2826.66", "3751.05", "0.15", "370.40"),
	bracket("3751.06", "4664.68", "0.225", "651.73"),
	openBracket("4664.69", "0.275", "884.96"),
}
