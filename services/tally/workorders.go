package tally

import (
	"strings"

	"port-app/models"

	"golang.org/x/exp/slices"
)

// Work orders are derived from finalized sub-reports, never authored by
// hand. One labor order per sub-report; mechanical orders grouped by
// (external, task).

// Fallback handling methods when the inspector did not pick one.
var fallbackHandling = map[string]string{
	models.ModeImport + ":TRUCK":   "SHIP_TO_TRUCK",
	models.ModeImport + ":FLATBED": "SHIP_TO_FLATBED",
	models.ModeImport + ":":        "SHIP_TO_YARD",
	models.ModeExport + ":TRUCK":   "YARD_TO_SHIP",
	models.ModeExport + ":FLATBED": "FLATBED_TO_SHIP",
	models.ModeExport + ":":        "YARD_TO_SHIP",
}

const legacyMechanicalTask = "GENERAL_LIFT"

// DeriveWorkOrders produces the labor order and mechanical orders for one
// persisted sub-report.
func DeriveWorkOrders(report models.TallyReport) []models.WorkOrder {
	orders := []models.WorkOrder{LaborOrder(report)}
	orders = append(orders, MechanicalOrders(report)...)
	return orders
}

// LaborOrder builds the single labor order for one sub-report.
func LaborOrder(report models.TallyReport) models.WorkOrder {
	method := report.HandlingMethod
	if method == "" {
		method = fallbackHandling[report.Mode+":"+report.VehicleCategory]
		if method == "" {
			method = fallbackHandling[report.Mode+":"]
		}
	}

	return models.WorkOrder{
		Kind:           models.WorkOrderKindLabor,
		ReportNo:       report.ReportNo,
		VesselID:       report.VesselID,
		Vessel:         report.Vessel,
		Mode:           report.Mode,
		WorkDate:       report.WorkDate,
		Shift:          report.Shift,
		HandlingMethod: method,
		Headcount:      report.LaborCount,
	}
}

type mechGroup struct {
	isExternal bool
	task       string
}

func MechanicalOrders(report models.TallyReport) []models.WorkOrder {
	if len(report.MechanicalDetails) == 0 {
		// Legacy reports carry only a headcount.
		if report.MechanicalCount > 0 {
			return []models.WorkOrder{{
				Kind:     models.WorkOrderKindMechanical,
				ReportNo: report.ReportNo,
				VesselID: report.VesselID,
				Vessel:   report.Vessel,
				Mode:     report.Mode,
				WorkDate: report.WorkDate,
				Shift:    report.Shift,
				Task:     legacyMechanicalTask,
				Quantity: report.MechanicalCount,
			}}
		}
		return nil
	}

	sums := map[mechGroup]int{}
	for _, d := range report.MechanicalDetails {
		sums[mechGroup{d.IsExternal, d.Task}] += d.Quantity
	}

	groups := make([]mechGroup, 0, len(sums))
	for g := range sums {
		groups = append(groups, g)
	}
	slices.SortFunc(groups, func(a, b mechGroup) int {
		if a.isExternal != b.isExternal {
			if a.isExternal {
				return 1
			}
			return -1
		}
		return strings.Compare(a.task, b.task)
	})

	orders := make([]models.WorkOrder, 0, len(groups))
	for _, g := range groups {
		orders = append(orders, models.WorkOrder{
			Kind:       models.WorkOrderKindMechanical,
			ReportNo:   report.ReportNo,
			VesselID:   report.VesselID,
			Vessel:     report.Vessel,
			Mode:       report.Mode,
			WorkDate:   report.WorkDate,
			Shift:      report.Shift,
			Task:       g.task,
			Quantity:   sums[g],
			IsExternal: g.isExternal,
		})
	}
	return orders
}
