package Export

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"CarWash/Models"
)

// Header of the exported sheet, one column per RowRecord facet.
var Header = []string{"Type", "Date", "Company", "Plate", "VehicleType", "Items", "Remarks", "Total"}

const sheetName = "Wash Records"

// BuildRows projects filtered rows onto the flat spreadsheet layout. The
// first physical row of each record carries every column; each item beyond
// the first gets its own physical row carrying only the Items column; a
// blank separator row closes each record group.
func BuildRows(rows []Models.RowRecord) [][]string {
	out := [][]string{Header}
	for _, row := range rows {
		first := ""
		if len(row.Items) > 0 {
			first = itemCell(row.Items[0])
		}
		out = append(out, []string{
			row.PaymentType,
			row.Date,
			row.CompanyName,
			row.VehiclePlate,
			row.VehicleType,
			first,
			row.Remarks,
			strconv.Itoa(row.Total),
		})
		if len(row.Items) > 1 {
			for _, it := range row.Items[1:] {
				out = append(out, []string{"", "", "", "", "", itemCell(it), "", ""})
			}
		}
		out = append(out, make([]string, len(Header)))
	}
	return out
}

func itemCell(it Models.RecordItem) string {
	return fmt.Sprintf("%s - $%d", it.Name, it.Price)
}

// WriteExcel renders the projected rows into an xlsx workbook and returns
// it as a download buffer.
func WriteExcel(rows []Models.RowRecord) (*bytes.Buffer, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("error creating sheet: %v", err)
	}
	f.SetActiveSheet(index)

	table := BuildRows(rows)
	for r, cells := range table {
		for c, value := range cells {
			cell := fmt.Sprintf("%c%d", 'A'+c, r+1)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6E6FA"},
			Pattern: 1,
		},
	})
	if err == nil {
		f.SetRowStyle(sheetName, 1, 1, headerStyle)
	}

	// Width follows the longest stringified cell in each column.
	for c := range Header {
		width := 0
		for _, cells := range table {
			if n := len([]rune(cells[c])); n > width {
				width = n
			}
		}
		col := string('A' + rune(c))
		f.SetColWidth(sheetName, col, col, float64(width+2))
	}

	if f.GetSheetName(0) != sheetName {
		f.DeleteSheet("Sheet1")
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("error writing Excel file to buffer: %v", err)
	}
	return &buf, nil
}
