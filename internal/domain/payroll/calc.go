package payroll

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// GrossPay pro-rates baseSalary over a 30-day month for the days worked,
// rounded to cents.
func GrossPay(baseSalary decimal.Decimal, daysWorked int) (decimal.Decimal, error) {
	if !baseSalary.IsPositive() {
		return decimal.Zero, &InvalidInputError{Field: "baseSalary", Value: baseSalary.String()}
	}
	if daysWorked < MinDaysWorked || daysWorked > MaxDaysWorked {
		return decimal.Zero, &InvalidInputError{Field: "daysWorked", Value: strconv.Itoa(daysWorked)}
	}
	gross := baseSalary.Mul(decimal.NewFromInt(int64(daysWorked))).Div(daysInMonth)
	return gross.Round(2), nil
}

func ContributionFor(gross decimal.Decimal) Withholding {
	rate, deduction := ContributionFallbackRate, decimal.Zero
	if b, ok := ContributionSchedule.Lookup(gross); ok {
		rate, deduction = b.Rate, b.Deduction
	}
	amount := decimal.Min(gross.Mul(rate).Sub(deduction), ContributionCap)
	return Withholding{Amount: amount.Round(2), Rate: rate, Deduction: deduction, Applied: true}
}

func IncomeTaxFor(gross decimal.Decimal) Withholding {
	b, ok := IncomeTaxSchedule.Lookup(gross)
	if !ok {
		return Withholding{}
	}
	amount := gross.Mul(b.Rate).Sub(b.Deduction)
	return Withholding{Amount: amount.Round(2), Rate: b.Rate, Deduction: b.Deduction, Applied: true}
}

func CommuteBenefitFor(baseSalary decimal.Decimal, enrolled bool) Withholding {
	if !enrolled {
		return Withholding{}
	}
	amount := baseSalary.Mul(CommuteBenefitRate)
	return Withholding{Amount: amount.Round(2), Rate: CommuteBenefitRate, Applied: true}
}

// Calculator derives every pay figure from its employee on each call; nothing
// is cached, so a Calculator built from updated inputs never sees stale values.
type Calculator struct {
	employee Employee
}

func NewCalculator(employee Employee) *Calculator {
	return &Calculator{employee: employee}
}

func (c *Calculator) Employee() Employee {
	return c.employee
}

func (c *Calculator) GrossPay() (decimal.Decimal, error) {
	return GrossPay(c.employee.BaseSalary, c.employee.DaysWorked)
}

func (c *Calculator) ContributionWithholding() (Withholding, error) {
	gross, err := c.GrossPay()
	if err != nil {
		return Withholding{}, err
	}
	return ContributionFor(gross), nil
}

func (c *Calculator) IncomeTaxWithholding() (Withholding, error) {
	gross, err := c.GrossPay()
	if err != nil {
		return Withholding{}, err
	}
	return IncomeTaxFor(gross), nil
}

func (c *Calculator) CommuteBenefitWithholding() Withholding {
	return CommuteBenefitFor(c.employee.BaseSalary, c.employee.CommuteBenefit)
}

func (c *Calculator) NetPay() (decimal.Decimal, error) {
	breakdown, err := c.Calculate()
	if err != nil {
		return decimal.Zero, err
	}
	return breakdown.NetPay, nil
}

// Calculate runs the whole pipeline once: gross pay, both bracket lookups,
// the commute withholding when enrolled, then net pay.
func (c *Calculator) Calculate() (Breakdown, error) {
	gross, err := c.GrossPay()
	if err != nil {
		return Breakdown{}, err
	}
	out := Breakdown{
		Employee:     c.employee,
		GrossPay:     gross,
		Contribution: ContributionFor(gross),
		IncomeTax:    IncomeTaxFor(gross),
	}
	withheld := out.Contribution.Amount.Add(out.IncomeTax.Amount)
	if c.employee.CommuteBenefit {
		out.CommuteBenefit = c.CommuteBenefitWithholding()
		withheld = withheld.Add(out.CommuteBenefit.Amount)
	}
	out.TotalWithheld = withheld
	out.NetPay = gross.Sub(withheld)
	return out, nil
}
