package reports

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"netpay/internal/domain/payroll"
)

func fixedNow() time.Time {
	return time.Date(2026, time.October, 15, 9, 30, 0, 0, time.UTC)
}

func breakdownFor(t *testing.T, salary string, days int, benefit bool) payroll.Breakdown {
	t.Helper()
	employee := payroll.Employee{
		Name:           "NoName",
		BaseSalary:     decimal.RequireFromString(salary),
		DaysWorked:     days,
		CommuteBenefit: benefit,
	}
	b, err := payroll.NewCalculator(employee).Calculate()
	require.NoError(t, err)
	return b
}

func TestRenderEnrolledEmployee(t *testing.T) {
	var out bytes.Buffer
	r := &Renderer{Out: &out, Now: fixedNow}
	require.NoError(t, r.Render(breakdownFor(t, "1412.00", 30, true)))

	text := out.String()
	require.Contains(t, text, "NET PAY REPORT")
	require.Contains(t, text, "2026-10-15 09:30:00")
	require.Contains(t, text, "Social security (7.5%)")
	require.Contains(t, text, "105.90")
	require.Contains(t, text, "Income tax (0.0%)")
	require.Contains(t, text, "Commute benefit (6.0%)")
	require.Contains(t, text, "84.72")
	require.Contains(t, text, "1221.38")

	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		require.LessOrEqual(t, len(line), reportWidth, "line %q exceeds report width", line)
	}
}

func TestRenderWithoutCommuteBenefit(t *testing.T) {
	var out bytes.Buffer
	r := &Renderer{Out: &out, Now: fixedNow}
	require.NoError(t, r.Render(breakdownFor(t, "3000.00", 30, false)))

	text := out.String()
	require.Contains(t, text, "Gross pay:")
	require.Contains(t, text, "3000.00")
	require.Contains(t, text, "Commute benefit (not enrolled)")
	require.Contains(t, text, "Income tax (15.0%)")
	require.Contains(t, text, "79.60")
	require.Contains(t, text, "2661.58")
}

func TestRenderClearsScreenFirst(t *testing.T) {
	var out bytes.Buffer
	r := &Renderer{Out: &out, Now: fixedNow, Clear: ANSIClearer{}}
	require.NoError(t, r.Render(breakdownFor(t, "1412.00", 30, false)))
	require.True(t, strings.HasPrefix(out.String(), "\033[H\033[2J"))
}

type failingClearer struct{}

func (failingClearer) Clear(io.Writer) error {
	return errors.New("no terminal")
}

func TestRenderReportsClearFailure(t *testing.T) {
	var out bytes.Buffer
	r := &Renderer{Out: &out, Now: fixedNow, Clear: failingClearer{}}
	err := r.Render(breakdownFor(t, "1412.00", 30, false))
	require.Error(t, err)
	require.Zero(t, out.Len())
}
