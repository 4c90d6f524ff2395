package export

import (
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"

	"netpay/internal/domain/payroll"
)

// Row is the single spreadsheet record written per employee.
type Row struct {
	Name       string `csv:"name"`
	BaseSalary string `csv:"base_salary"`
	DaysWorked int    `csv:"days_worked"`
}

type Rows []Row

func RowFor(employee payroll.Employee) Row {
	return Row{
		Name:       employee.Name,
		BaseSalary: employee.BaseSalary.StringFixed(2),
		DaysWorked: employee.DaysWorked,
	}
}

func Write(w io.Writer, employee payroll.Employee) error {
	return gocsv.Marshal(Rows{RowFor(employee)}, w)
}

// WriteFile replaces whatever is at path with a one-row spreadsheet.
func WriteFile(path string, employee payroll.Employee) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer file.Close()

	if err := gocsv.MarshalFile(Rows{RowFor(employee)}, file); err != nil {
		return fmt.Errorf("write export file: %w", err)
	}
	return file.Close()
}
