package payroll

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"

	cryptoutil "netpay/internal/platform/crypto"
)

// Service turns a calculated breakdown into payslip documents.
type Service struct {
	crypto     *cryptoutil.Service
	payslipDir string
	now        func() time.Time
}

func NewService(crypto *cryptoutil.Service, payslipDir string) *Service {
	return &Service{crypto: crypto, payslipDir: payslipDir, now: time.Now}
}

func (s *Service) Calculate(employee Employee) (Breakdown, error) {
	return NewCalculator(employee).Calculate()
}

func (s *Service) WritePayslipPDF(w io.Writer, breakdown Breakdown) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", breakdown.Employee.Name))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Issued: %s", s.now().Format("2006-01-02 15:04")))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Base salary: %s", breakdown.Employee.BaseSalary.StringFixed(2)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Days worked: %d", breakdown.Employee.DaysWorked))
	pdf.Ln(10)
	pdf.Cell(0, 8, fmt.Sprintf("Gross: %s", breakdown.GrossPay.StringFixed(2)))
	pdf.Ln(7)
	pdf.Cell(0, 8, withholdingLine("Contribution", breakdown.Contribution))
	pdf.Ln(7)
	pdf.Cell(0, 8, withholdingLine("Income tax", breakdown.IncomeTax))
	pdf.Ln(7)
	if breakdown.CommuteBenefit.Applied {
		pdf.Cell(0, 8, withholdingLine("Commute benefit", breakdown.CommuteBenefit))
		pdf.Ln(7)
	}
	pdf.Ln(3)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Net: %s", breakdown.NetPay.StringFixed(2)))

	return pdf.Output(w)
}

// StorePayslip writes the payslip under the payslip directory and returns its
// path. With an encryption key configured only the encrypted file is kept.
func (s *Service) StorePayslip(breakdown Breakdown) (string, error) {
	if err := os.MkdirAll(s.payslipDir, 0o755); err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := s.WritePayslipPDF(&buf, breakdown); err != nil {
		return "", err
	}
	filePath := filepath.Join(s.payslipDir, uuid.NewString()+".pdf")

	if s.crypto != nil && s.crypto.Configured() {
		encrypted, err := s.crypto.Encrypt(buf.Bytes())
		if err != nil {
			return "", err
		}
		encryptedPath := filePath + ".enc"
		if err := os.WriteFile(encryptedPath, encrypted, 0o600); err != nil {
			return "", err
		}
		return encryptedPath, nil
	}

	if err := os.WriteFile(filePath, buf.Bytes(), 0o644); err != nil {
		return "", err
	}
	return filePath, nil
}

func withholdingLine(label string, w Withholding) string {
	return fmt.Sprintf("%s (%s%%, deduction %s): %s", label, w.Percent().StringFixed(1), w.Deduction.StringFixed(2), w.Amount.StringFixed(2))
}
