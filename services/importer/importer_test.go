package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"port-app/models"
)

func TestDetectHeaderEnglish(t *testing.T) {
	grid := [][]string{
		{"MANIFEST", "", ""},
		{"", "", ""},
		{"Container No", "Seal No", "Weight", "Pkgs"},
		{"MSKU1234567", "SL001", "27.0", "15"},
	}

	row, cols := DetectHeader(grid)
	assert.Equal(t, 2, row)
	assert.Equal(t, 0, cols["container"])
	assert.Equal(t, 1, cols["seal"])
	assert.Equal(t, 2, cols["weight"])
	assert.Equal(t, 3, cols["pkgs"])
}

func TestDetectHeaderVietnamese(t *testing.T) {
	grid := [][]string{
		{"STT", "Số Cont", "Số Chì", "Trọng Lượng", "Số Kiện"},
	}

	row, cols := DetectHeader(grid)
	assert.Equal(t, 0, row)
	assert.Equal(t, 1, cols["container"])
	assert.Equal(t, 2, cols["seal"])
	assert.Equal(t, 3, cols["weight"])
	assert.Equal(t, 4, cols["pkgs"])
}

func TestDetectHeaderFallbackRowZero(t *testing.T) {
	grid := [][]string{
		{"MSKU1234567", "SL001"},
		{"MSKU7654321", "SL002"},
	}

	row, cols := DetectHeader(grid)
	assert.Equal(t, 0, row)
	assert.Equal(t, 0, cols["container"])
}

func TestIsVehicle(t *testing.T) {
	assert.False(t, IsVehicle("MSKU1234567"))
	assert.True(t, IsVehicle("51C-123.45/01"))
	assert.True(t, IsVehicle("XE-0123"))
	assert.True(t, IsVehicle("MSKU123456")) // too short for ISO shape
}

func TestReconcileSingleRowIntoEmptyVessel(t *testing.T) {
	grid := [][]string{
		{"Container No", "Seal No", "Weight", "Pkgs"},
		{"MSKU1234567", "SL001", "27.0", "15"},
	}

	res, err := Reconcile(grid, nil, 77)
	require.NoError(t, err)
	require.Len(t, res.Containers, 1)

	c := res.Containers[0]
	assert.Equal(t, "MSKU1234567", c.ContainerNo)
	assert.Equal(t, 27.0, c.Weight)
	assert.Equal(t, 15, c.Pkgs)
	assert.Equal(t, models.ContainerStatusPending, c.Status)
	assert.Equal(t, models.UnitTypeContainer, c.Type)
	assert.Equal(t, int64(77), c.VesselID)
	assert.Equal(t, 15, res.TotalPkgs)
	assert.Equal(t, 27.0, res.TotalWeight)
}

func TestReconcileSkipsSentinelRows(t *testing.T) {
	grid := [][]string{
		{"Container No", "Pkgs"},
		{"STT", ""},
		{"NO", ""},
		{"", "10"},
		{"MSKU1234567", "5"},
	}

	res, err := Reconcile(grid, nil, 1)
	require.NoError(t, err)
	assert.Len(t, res.Containers, 1)
	assert.Equal(t, 1, res.Inserted)
}

func TestReconcileUpdatesByContainerNo(t *testing.T) {
	existing := []models.Container{
		{ID: 1001, VesselID: 1, ContainerNo: "MSKU1234567", Pkgs: 10, Weight: 20, SealNo: "OLD"},
		{ID: 1002, VesselID: 1, ContainerNo: "TCLU7654321", Pkgs: 4, Weight: 8},
	}
	grid := [][]string{
		{"Container No", "Seal No", "Weight", "Pkgs"},
		{"MSKU1234567", "SL009", "25.5", "12"},
		{"HLXU1112223", "SL010", "10.0", "3"},
	}

	res, err := Reconcile(grid, existing, 1)
	require.NoError(t, err)
	require.Len(t, res.Containers, 3)
	assert.Equal(t, 1, res.Updated)
	assert.Equal(t, 1, res.Inserted)

	// Re-imported row keeps its stable identifier, fields overwritten.
	assert.Equal(t, int64(1001), res.Containers[0].ID)
	assert.Equal(t, "SL009", res.Containers[0].SealNo)
	assert.Equal(t, 12, res.Containers[0].Pkgs)
	assert.Equal(t, 25.5, res.Containers[0].Weight)

	// Untouched row survives with its values.
	assert.Equal(t, int64(1002), res.Containers[1].ID)
	assert.Equal(t, 4, res.Containers[1].Pkgs)

	// Totals cover the whole merged set, not just the sheet.
	assert.Equal(t, 12+4+3, res.TotalPkgs)
	assert.InDelta(t, 25.5+8+10.0, res.TotalWeight, 0.0001)
}

func TestReconcileReimportIsIdempotentOnIdentity(t *testing.T) {
	grid := [][]string{
		{"Container No", "Pkgs"},
		{"MSKU1234567", "15"},
	}

	first, err := Reconcile(grid, nil, 1)
	require.NoError(t, err)
	first.Containers[0].ID = 5555

	second, err := Reconcile(grid, first.Containers, 1)
	require.NoError(t, err)
	require.Len(t, second.Containers, 1)
	assert.Equal(t, int64(5555), second.Containers[0].ID)
	assert.Equal(t, 1, second.Updated)
	assert.Equal(t, 0, second.Inserted)
}

func TestReconcileDerivesReadyStatus(t *testing.T) {
	grid := [][]string{
		{"Container No", "Tờ Khai Hãng Tàu", "Tờ Khai Kho"},
		{"MSKU1234567", "TK001", "TK900"},
		{"TCLU7654321", "TK002", ""},
	}

	res, err := Reconcile(grid, nil, 1)
	require.NoError(t, err)
	assert.Equal(t, models.ContainerStatusReady, res.Containers[0].Status)
	assert.Equal(t, models.ContainerStatusPending, res.Containers[1].Status)
}

func TestReconcileCoercesMalformedCells(t *testing.T) {
	grid := [][]string{
		{"Container No", "Weight", "Pkgs"},
		{"MSKU1234567", "abc", "xx"},
	}

	res, err := Reconcile(grid, nil, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Containers[0].Pkgs)
	assert.Equal(t, 0.0, res.Containers[0].Weight)
}

func TestReconcileNoValidRows(t *testing.T) {
	grid := [][]string{
		{"Container No", "Pkgs"},
		{"STT", ""},
		{"", ""},
	}

	_, err := Reconcile(grid, nil, 1)
	assert.ErrorIs(t, err, ErrNoData)
}
