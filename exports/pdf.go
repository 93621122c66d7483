package exports

import (
	"fmt"
	"io"

	"port-app/models"

	"github.com/jung-kurt/gofpdf/v2"
)

// WriteTallyPDF renders one sub-report as a printable tally sheet.
func WriteTallyPDF(w io.Writer, report *models.TallyReport) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, fmt.Sprintf("TALLY REPORT %s", report.ReportNo))
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Vessel: %s    Mode: %s    Bucket: %s", report.Vessel, report.Mode, report.Bucket))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s    Shift: %s    Inspector: %s", report.WorkDate, report.Shift, report.InspectorName))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(10, 7, "No", "1", 0, "C", false, 0, "")
	pdf.CellFormat(45, 7, "Container / Vehicle", "1", 0, "C", false, 0, "")
	pdf.CellFormat(20, 7, "Pkgs", "1", 0, "C", false, 0, "")
	pdf.CellFormat(25, 7, "Weight", "1", 0, "C", false, 0, "")
	pdf.CellFormat(35, 7, "Seal", "1", 0, "C", false, 0, "")
	pdf.CellFormat(45, 7, "Remarks", "1", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 9)
	for i, item := range report.Items {
		no := item.ContainerNo
		if no == "" {
			no = item.VehicleNo
		}
		pdf.CellFormat(10, 6, fmt.Sprintf("%d", i+1), "1", 0, "C", false, 0, "")
		pdf.CellFormat(45, 6, no, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 6, fmt.Sprintf("%d", item.Pkgs), "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 6, fmt.Sprintf("%.2f", item.Weight), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 6, item.SealNo, "1", 0, "L", false, 0, "")
		pdf.CellFormat(45, 6, item.Remarks, "1", 1, "L", false, 0, "")
	}

	return pdf.Output(w)
}

// WriteWorkOrdersPDF renders the work orders derived from one report.
func WriteWorkOrdersPDF(w io.Writer, reportNo string, orders []models.WorkOrder) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, fmt.Sprintf("WORK ORDERS - %s", reportNo))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(30, 7, "Kind", "1", 0, "C", false, 0, "")
	pdf.CellFormat(50, 7, "Handling / Task", "1", 0, "C", false, 0, "")
	pdf.CellFormat(25, 7, "Headcount", "1", 0, "C", false, 0, "")
	pdf.CellFormat(25, 7, "Quantity", "1", 0, "C", false, 0, "")
	pdf.CellFormat(25, 7, "External", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 7, "Shift", "1", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 9)
	for _, wo := range orders {
		label := wo.HandlingMethod
		if wo.Kind == models.WorkOrderKindMechanical {
			label = wo.Task
		}
		external := ""
		if wo.IsExternal {
			external = "YES"
		}
		pdf.CellFormat(30, 6, wo.Kind, "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 6, label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 6, fmt.Sprintf("%d", wo.Headcount), "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 6, fmt.Sprintf("%d", wo.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 6, external, "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 6, wo.Shift, "1", 1, "L", false, 0, "")
	}

	return pdf.Output(w)
}
