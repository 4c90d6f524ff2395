package cli

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"netpay/internal/domain/payroll"
	"netpay/internal/platform/config"
)

func newRunner(t *testing.T, out io.Writer) *Runner {
	t.Helper()
	dir := t.TempDir()
	return &Runner{
		Config: config.Config{ExportPath: filepath.Join(dir, "employee.csv")},
		Logger: slog.New(slog.NewJSONHandler(io.Discard, nil)),
		Out:    out,
		Now:    func() time.Time { return time.Date(2026, time.October, 15, 12, 0, 0, 0, time.UTC) },
	}
}

func TestRunRendersAndExports(t *testing.T) {
	var out bytes.Buffer
	runner := newRunner(t, &out)

	err := runner.Run(config.EmployeeInput{Name: "NoName", BaseSalary: "3000.00", DaysWorked: 30})
	require.NoError(t, err)
	require.Contains(t, out.String(), "2661.58")
	require.Contains(t, out.String(), "2026-10-15 12:00:00")

	data, err := os.ReadFile(runner.Config.ExportPath)
	require.NoError(t, err)
	require.Equal(t, "name,base_salary,days_worked\nNoName,3000.00,30\n", string(data))
}

func TestRunStoresPayslipWhenConfigured(t *testing.T) {
	var out bytes.Buffer
	runner := newRunner(t, &out)
	runner.Config.PayslipDir = filepath.Join(t.TempDir(), "payslips")
	runner.Config.ReportClearScreen = true

	require.NoError(t, runner.Run(config.EmployeeInput{Name: "NoName", BaseSalary: "1412.00", DaysWorked: 30, CommuteBenefit: true}))
	require.True(t, strings.HasPrefix(out.String(), "\033[H\033[2J"))

	entries, err := os.ReadDir(runner.Config.PayslipDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestRunPropagatesInvalidInput(t *testing.T) {
	var out bytes.Buffer
	runner := newRunner(t, &out)

	err := runner.Run(config.EmployeeInput{Name: "NoName", BaseSalary: "1412.00", DaysWorked: 31})
	require.True(t, errors.Is(err, payroll.ErrInvalidInput))
	require.Zero(t, out.Len())
	_, statErr := os.Stat(runner.Config.ExportPath)
	require.True(t, os.IsNotExist(statErr))
}

func TestRunRejectsUnparseableSalary(t *testing.T) {
	runner := newRunner(t, io.Discard)
	require.Error(t, runner.Run(config.EmployeeInput{Name: "NoName", BaseSalary: "lots", DaysWorked: 30}))
}
