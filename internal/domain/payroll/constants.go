package payroll

import "github.com/shopspring/decimal"

const (
	// ReferenceMonthDays is the month length gross pay is pro-rated against.
	ReferenceMonthDays = 30

	MinDaysWorked = 1
	MaxDaysWorked = ReferenceMonthDays
)

var (
	// ContributionCap is the statutory ceiling for the monthly contribution.
	ContributionCap = decimal.RequireFromString("908.85")

	// ContributionFallbackRate applies when gross pay is above every contribution bracket.
	ContributionFallbackRate = decimal.RequireFromString("0.14")

	CommuteBenefitRate = decimal.RequireFromString("0.06")

	daysInMonth = decimal.NewFromInt(ReferenceMonthDays)
)
