package payroll

import "github.com/shopspring/decimal"

type Employee struct {
	Name           string          `json:"name"`
	BaseSalary     decimal.Decimal `json:"baseSalary"`
	DaysWorked     int             `json:"daysWorked"`
	CommuteBenefit bool            `json:"commuteBenefit"`
}

// Withholding is one deduction from gross pay together with the rate and
// subtractive constant that produced it. Applied is false when no rate was
// used, e.g. an employee not enrolled in the commute benefit.
type Withholding struct {
	Amount    decimal.Decimal `json:"amount"`
	Rate      decimal.Decimal `json:"rate"`
	Deduction decimal.Decimal `json:"deduction"`
	Applied   bool            `json:"applied"`
}

// Percent is the applied rate expressed as a percentage.
func (w Withholding) Percent() decimal.Decimal {
	return w.Rate.Mul(decimal.NewFromInt(100))
}

type Breakdown struct {
	Employee       Employee        `json:"employee"`
	GrossPay       decimal.Decimal `json:"grossPay"`
	Contribution   Withholding     `json:"contribution"`
	IncomeTax      Withholding     `json:"incomeTax"`
	CommuteBenefit Withholding     `json:"commuteBenefit"`
	TotalWithheld  decimal.Decimal `json:"totalWithheld"`
	NetPay         decimal.Decimal `json:"netPay"`
}
