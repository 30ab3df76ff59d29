package xlsexport

import (
	"bytes"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

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

var employeeHeaders = []string{"Name", "Email", "Department", "Job title", "Location", "Manager", "Skills"}

func (i impl) ExportEmployeeList(list []dbmodels.Employee) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("xlsx file close error")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, employeeHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "xlsx header write error")
	}
	if len(list) != 0 {
		_, err = writeEmployeeData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "xlsx data write error")
		}
	}
	f.SetSheetName(sheet, "Employees")
	return f.WriteToBuffer()
}

func writeEmployeeData(f *excelize.File, sheet string, list []dbmodels.Employee, row int) (int, error) {
	for _, item := range list {
		row++
		// "Name"
		col := 1
		if err := writeColumn(f, sheet, col, row, item.GetFullName()); err != nil {
			return row, err
		}

		// "Email"
		col++
		if err := writeColumn(f, sheet, col, row, item.Email); err != nil {
			return row, err
		}

		// "Department"
		col++
		if err := writeColumn(f, sheet, col, row, string(item.Department)); err != nil {
			return row, err
		}

		// "Job title"
		col++
		if err := writeColumn(f, sheet, col, row, item.JobTitle); err != nil {
			return row, err
		}

		// "Location"
		col++
		if err := writeColumn(f, sheet, col, row, item.Location); err != nil {
			return row, err
		}

		// "Manager"
		col++
		if item.Manager != nil {
			if err := writeColumn(f, sheet, col, row, item.Manager.GetFullName()); err != nil {
				return row, err
			}
		}

		// "Skills"
		col++
		if err := writeColumn(f, sheet, col, row, strings.Join(item.Skills, ", ")); err != nil {
			return row, err
		}
	}
	return row, nil
}
