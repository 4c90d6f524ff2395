package reports

import (
	"fmt"
	"io"
	"strings"
	"time"

	"netpay/internal/domain/payroll"
)

const (
	reportWidth = 50
	labelWidth  = 30
	timeLayout  = "2006-01-02 15:04:05"
)

// ScreenClearer wipes the output device before a report is drawn.
type ScreenClearer interface {
	Clear(w io.Writer) error
}

// ANSIClearer clears a terminal with the home + erase-display sequence.
type ANSIClearer struct{}

func (ANSIClearer) Clear(w io.Writer) error {
	_, err := io.WriteString(w, "\033[H\033[2J")
	return err
}

// Renderer prints a fixed-width net pay report. It only formats values that
// the payroll calculator already produced.
type Renderer struct {
	Out   io.Writer
	Now   func() time.Time
	Clear ScreenClearer
}

func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{Out: out, Now: time.Now}
}

func (r *Renderer) Render(b payroll.Breakdown) error {
	if r.Clear != nil {
		if err := r.Clear.Clear(r.Out); err != nil {
			return fmt.Errorf("clear screen: %w", err)
		}
	}
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}

	var sb strings.Builder
	double := strings.Repeat("=", reportWidth)
	single := strings.Repeat("-", reportWidth)

	sb.WriteString(double + "\n")
	sb.WriteString(center("NET PAY REPORT") + "\n")
	sb.WriteString(double + "\n")
	sb.WriteString(row("Date:", now().Format(timeLayout)))
	sb.WriteString(single + "\n")
	sb.WriteString(row("Employee:", b.Employee.Name))
	sb.WriteString(row("Base salary:", b.Employee.BaseSalary.StringFixed(2)))
	sb.WriteString(row("Days worked:", fmt.Sprintf("%d", b.Employee.DaysWorked)))
	sb.WriteString(row("Gross pay:", b.GrossPay.StringFixed(2)))
	sb.WriteString(single + "\n")
	sb.WriteString("DEDUCTIONS\n")
	writeWithholding(&sb, "Social security", b.Contribution)
	writeWithholding(&sb, "Income tax", b.IncomeTax)
	if b.CommuteBenefit.Applied {
		sb.WriteString(row(fmt.Sprintf("Commute benefit (%s%%)", b.CommuteBenefit.Percent().StringFixed(1)), b.CommuteBenefit.Amount.StringFixed(2)))
	} else {
		sb.WriteString(row("Commute benefit (not enrolled)", "0.00"))
	}
	sb.WriteString(row("Total withheld:", b.TotalWithheld.StringFixed(2)))
	sb.WriteString(single + "\n")
	sb.WriteString(row("NET PAY:", b.NetPay.StringFixed(2)))
	sb.WriteString(double + "\n")

	_, err := io.WriteString(r.Out, sb.String())
	return err
}

func writeWithholding(sb *strings.Builder, label string, w payroll.Withholding) {
	sb.WriteString(row(fmt.Sprintf("%s (%s%%)", label, w.Percent().StringFixed(1)), w.Amount.StringFixed(2)))
	sb.WriteString(row("  deduction constant", w.Deduction.StringFixed(2)))
}

func row(label, value string) string {
	return fmt.Sprintf("%-*s%*s\n", labelWidth, label, reportWidth-labelWidth, value)
}

func center(title string) string {
	pad := (reportWidth - len(title)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + title
}
