package pdfexport

import (
	"bytes"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"

	dbmodels "workorbit-backend/models/db"
)

type Provider interface {
	ExportEmployeeList(list []dbmodels.Employee) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var employeeColumns = []struct {
	title string
	width float64
}{
	{"Name", 45},
	{"Email", 55},
	{"Department", 30},
	{"Job title", 40},
	{"Location", 30},
	{"Manager", 45},
	{"Skills", 45},
}

func (i impl) ExportEmployeeList(list []dbmodels.Employee) (buf *bytes.Buffer, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("ExportEmployeeList panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 10, "Employee directory", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 9)
	for _, col := range employeeColumns {
		pdf.CellFormat(col.width, 8, col.title, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, item := range list {
		manager := ""
		if item.Manager != nil {
			manager = item.Manager.GetFullName()
		}
		values := []string{
			item.GetFullName(),
			item.Email,
			string(item.Department),
			item.JobTitle,
			item.Location,
			manager,
			strings.Join(item.Skills, ", "),
		}
		for idx, value := range values {
			pdf.CellFormat(employeeColumns[idx].width, 7, value, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	buf = new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf, nil
}
