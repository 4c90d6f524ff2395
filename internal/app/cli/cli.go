package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"netpay/internal/domain/payroll"
	"netpay/internal/export"
	"netpay/internal/platform/config"
	cryptoutil "netpay/internal/platform/crypto"
	"netpay/internal/reports"
)

// Runner processes one employee per invocation: report to Out, spreadsheet to
// the export path and, when a payslip directory is configured, a stored payslip.
type Runner struct {
	Config config.Config
	Logger *slog.Logger
	Out    io.Writer
	Now    func() time.Time
}

func (r *Runner) Run(input config.EmployeeInput) error {
	salary, err := decimal.NewFromString(strings.TrimSpace(input.BaseSalary))
	if err != nil {
		return fmt.Errorf("parse base salary: %w", err)
	}
	employee := payroll.Employee{
		Name:           input.Name,
		BaseSalary:     salary,
		DaysWorked:     input.DaysWorked,
		CommuteBenefit: input.CommuteBenefit,
	}

	crypto, err := cryptoutil.New(r.Config.DataEncryptionKey)
	if err != nil {
		return fmt.Errorf("encryption setup: %w", err)
	}
	service := payroll.NewService(crypto, r.Config.PayslipDir)

	breakdown, err := service.Calculate(employee)
	if err != nil {
		return err
	}

	renderer := reports.NewRenderer(r.Out)
	if r.Now != nil {
		renderer.Now = r.Now
	}
	if r.Config.ReportClearScreen {
		renderer.Clear = reports.ANSIClearer{}
	}
	if err := renderer.Render(breakdown); err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	if err := export.WriteFile(r.Config.ExportPath, employee); err != nil {
		return err
	}
	r.logger().Info("employee exported", "path", r.Config.ExportPath)

	if r.Config.PayslipDir != "" {
		path, err := service.StorePayslip(breakdown)
		if err != nil {
			return fmt.Errorf("store payslip: %w", err)
		}
		r.logger().Info("payslip stored", "path", path, "encrypted", crypto.Configured())
	}
	return nil
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.Default()
}
