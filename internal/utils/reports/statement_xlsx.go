// Package reports renders statements into tabular documents.
package reports

import (
	"fmt"

	"github.com/andinabank/ledger-service/internal/core/domain"
	"github.com/xuri/excelize/v2"
)

const (
	sheetName  = "Account Statement"
	dateLayout = "2006-01-02"
	timeLayout = "2006-01-02 15:04"
)

// BuildStatementXLSX renders a statement as a spreadsheet: customer identity
// block, requested period, then one section per account with its header
// (number, kind, current balance) followed by one row per movement.
func BuildStatementXLSX(statement *domain.Statement) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("failed to name statement sheet: %w", err)
	}

	headerStyle, err := newHeaderStyle(f)
	if err != nil {
		return nil, err
	}
	dataStyle, err := newDataStyle(f)
	if err != nil {
		return nil, err
	}

	row := 1
	row, err = writeCustomerBlock(f, statement, headerStyle, dataStyle, row)
	if err != nil {
		return nil, err
	}
	row, err = writePeriodBlock(f, statement, headerStyle, dataStyle, row)
	if err != nil {
		return nil, err
	}

	for _, account := range statement.Accounts {
		row, err = writeAccountSection(f, account, headerStyle, dataStyle, row)
		if err != nil {
			return nil, err
		}
	}

	for _, col := range []string{"A", "B", "C", "D"} {
		if err := f.SetColWidth(sheetName, col, col, 22); err != nil {
			return nil, fmt.Errorf("failed to size column %s: %w", col, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize statement workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func newHeaderStyle(f *excelize.File) (int, error) {
	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 12},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D9D9D9"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "left", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create header style: %w", err)
	}
	return style, nil
}

func newDataStyle(f *excelize.File) (int, error) {
	style, err := f.NewStyle(&excelize.Style{
		Border: []excelize.Border{
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "left", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create data style: %w", err)
	}
	return style, nil
}

func writeCustomerBlock(f *excelize.File, statement *domain.Statement, headerStyle, dataStyle, row int) (int, error) {
	if err := setLabelled(f, row, "Customer:", statement.Customer.Name, headerStyle, dataStyle); err != nil {
		return 0, err
	}
	row++
	if err := setLabelled(f, row, "Identification:", statement.Customer.Identification, headerStyle, dataStyle); err != nil {
		return 0, err
	}
	return row + 2, nil
}

func writePeriodBlock(f *excelize.File, statement *domain.Statement, headerStyle, dataStyle, row int) (int, error) {
	period := fmt.Sprintf("%s to %s",
		statement.StartDate.Format(dateLayout),
		statement.EndDate.Format(dateLayout))
	if err := setLabelled(f, row, "Period:", period, headerStyle, dataStyle); err != nil {
		return 0, err
	}
	return row + 2, nil
}

func writeAccountSection(f *excelize.File, account domain.StatementAccount, headerStyle, dataStyle, row int) (int, error) {
	title := fmt.Sprintf("Account: %s - %s | Balance: %s",
		account.Number, account.AccountType, account.CurrentBalance.StringFixed(2))
	cell := fmt.Sprintf("A%d", row)
	if err := f.SetCellValue(sheetName, cell, title); err != nil {
		return 0, err
	}
	if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
		return 0, err
	}
	row++

	headers := []string{"Date", "Type", "Value", "Balance"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return 0, err
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return 0, err
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			return 0, err
		}
	}
	row++

	for _, line := range account.Lines {
		values := []any{
			line.MovementDate.Format(timeLayout),
			string(line.MovementType),
			line.Value.StringFixed(2),
			line.Balance.StringFixed(2),
		}
		for i, v := range values {
			cell, err := excelize.CoordinatesToCellName(i+1, row)
			if err != nil {
				return 0, err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return 0, err
			}
			if err := f.SetCellStyle(sheetName, cell, cell, dataStyle); err != nil {
				return 0, err
			}
		}
		row++
	}

	return row + 1, nil
}

func setLabelled(f *excelize.File, row int, label, value string, headerStyle, dataStyle int) error {
	labelCell := fmt.Sprintf("A%d", row)
	valueCell := fmt.Sprintf("B%d", row)
	if err := f.SetCellValue(sheetName, labelCell, label); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetName, labelCell, labelCell, headerStyle); err != nil {
		return err
	}
	if err := f.SetCellValue(sheetName, valueCell, value); err != nil {
		return err
	}
	return f.SetCellStyle(sheetName, valueCell, valueCell, dataStyle)
}
