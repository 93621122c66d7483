package tally

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"port-app/models"
)

func baseReport() models.TallyReport {
	return models.TallyReport{
		ReportNo:   "PB-NHAP-42-01",
		Mode:       models.ModeImport,
		VesselID:   42,
		Vessel:     "MV OCEAN STAR",
		WorkDate:   "2025-06-01",
		Shift:      "CA1",
		LaborCount: 12,
	}
}

func TestLaborOrderUsesExplicitHandlingMethod(t *testing.T) {
	r := baseReport()
	r.HandlingMethod = "SHIP_TO_WAREHOUSE"

	wo := LaborOrder(r)
	assert.Equal(t, models.WorkOrderKindLabor, wo.Kind)
	assert.Equal(t, "SHIP_TO_WAREHOUSE", wo.HandlingMethod)
	assert.Equal(t, 12, wo.Headcount)
	assert.Equal(t, "PB-NHAP-42-01", wo.ReportNo)
}

func TestLaborOrderFallbackMatrix(t *testing.T) {
	for _, tc := range []struct {
		mode     string
		category string
		want     string
	}{
		{models.ModeImport, "TRUCK", "SHIP_TO_TRUCK"},
		{models.ModeImport, "FLATBED", "SHIP_TO_FLATBED"},
		{models.ModeImport, "", "SHIP_TO_YARD"},
		{models.ModeExport, "TRUCK", "YARD_TO_SHIP"},
		{models.ModeExport, "", "YARD_TO_SHIP"},
		{models.ModeImport, "UNKNOWN", "SHIP_TO_YARD"},
	} {
		r := baseReport()
		r.Mode = tc.mode
		r.VehicleCategory = tc.category
		assert.Equal(t, tc.want, LaborOrder(r).HandlingMethod, "%s/%s", tc.mode, tc.category)
	}
}

func TestMechanicalOrdersGroupedByExternalAndTask(t *testing.T) {
	r := baseReport()
	r.MechanicalDetails = []models.MechanicalDetail{
		{Task: "FORKLIFT", Quantity: 2, IsExternal: false},
		{Task: "FORKLIFT", Quantity: 1, IsExternal: false},
		{Task: "FORKLIFT", Quantity: 3, IsExternal: true},
		{Task: "CRANE", Quantity: 1, IsExternal: false},
	}

	orders := MechanicalOrders(r)
	require.Len(t, orders, 3)

	// Internal groups first, then by task.
	assert.Equal(t, "CRANE", orders[0].Task)
	assert.False(t, orders[0].IsExternal)
	assert.Equal(t, 1, orders[0].Quantity)

	assert.Equal(t, "FORKLIFT", orders[1].Task)
	assert.False(t, orders[1].IsExternal)
	assert.Equal(t, 3, orders[1].Quantity)

	assert.Equal(t, "FORKLIFT", orders[2].Task)
	assert.True(t, orders[2].IsExternal)
	assert.Equal(t, 3, orders[2].Quantity)
}

func TestMechanicalOrdersLegacyHeadcountFallback(t *testing.T) {
	r := baseReport()
	r.MechanicalCount = 4

	orders := MechanicalOrders(r)
	require.Len(t, orders, 1)
	assert.Equal(t, legacyMechanicalTask, orders[0].Task)
	assert.Equal(t, 4, orders[0].Quantity)
	assert.Equal(t, models.WorkOrderKindMechanical, orders[0].Kind)
}

func TestMechanicalOrdersNoneWhenNothingRecorded(t *testing.T) {
	assert.Empty(t, MechanicalOrders(baseReport()))
}

func TestDeriveWorkOrdersExactlyOneLaborOrder(t *testing.T) {
	r := baseReport()
	r.MechanicalDetails = []models.MechanicalDetail{{Task: "CRANE", Quantity: 1}}

	orders := DeriveWorkOrders(r)
	labor := 0
	for _, wo := range orders {
		if wo.Kind == models.WorkOrderKindLabor {
			labor++
		}
	}
	assert.Equal(t, 1, labor)
	assert.Len(t, orders, 2)
}
