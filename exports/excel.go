package exports

import (
	"fmt"
	"io"

	"port-app/models"

	"github.com/xuri/excelize/v2"
)

// WriteManifestExcel renders a vessel's container manifest to xlsx.
func WriteManifestExcel(w io.Writer, vessel *models.Vessel, containers []models.Container) error {
	f := excelize.NewFile()
	sheet := "Sheet1"

	f.SetCellValue(sheet, "A1", fmt.Sprintf("MANIFEST - %s %s", vessel.Name, vessel.VoyageNo))

	headers := []string{"No", "Container No", "Type", "Seal No", "Pkgs", "Weight", "Carrier Decl", "Warehouse Decl", "Status"}
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetCellValue(sheet, col+"3", h)
	}

	for i, c := range containers {
		row := i + 4
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), i+1)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), c.ContainerNo)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), c.Type)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), c.SealNo)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), c.Pkgs)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), c.Weight)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), c.CarrierDeclNo)
		f.SetCellValue(sheet, fmt.Sprintf("H%d", row), c.WarehouseDeclNo)
		f.SetCellValue(sheet, fmt.Sprintf("I%d", row), c.Status)
	}

	totalRow := len(containers) + 5
	f.SetCellValue(sheet, fmt.Sprintf("D%d", totalRow), "TOTAL")
	f.SetCellValue(sheet, fmt.Sprintf("E%d", totalRow), vessel.TotalPkgs)
	f.SetCellValue(sheet, fmt.Sprintf("F%d", totalRow), vessel.TotalWeight)

	return f.Write(w)
}
