package tally

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"port-app/models"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) ExistingReportNos(vesselID int64, mode string) ([]string, error) {
	args := m.Called(vesselID, mode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockStore) DeleteReports(reportNos []string) error {
	return m.Called(reportNos).Error(0)
}

func (m *MockStore) SaveReports(reports []models.TallyReport) error {
	return m.Called(reports).Error(0)
}

func (m *MockStore) MarkSealsUsed(vesselID int64, serials []string, reportNo string) error {
	return m.Called(vesselID, serials, reportNo).Error(0)
}

func (m *MockStore) SyncCompletedContainers(vesselID int64, syncs []ContainerSync) error {
	return m.Called(vesselID, syncs).Error(0)
}

func (m *MockStore) SaveWorkOrders(orders []models.WorkOrder) error {
	return m.Called(orders).Error(0)
}

func exportRequest(n int, draft bool) SaveRequest {
	items := make([]models.TallyItem, n)
	for i := range items {
		items[i] = models.TallyItem{
			ContainerNo: fmt.Sprintf("MSKU%07d", i+1),
			SealNo:      fmt.Sprintf("T/25.%04d", i+1),
		}
	}
	return SaveRequest{Report: models.TallyReport{
		Mode:          models.ModeExport,
		VesselID:      7,
		Vessel:        "MV OCEAN STAR",
		InspectorName: "N.V. Hung",
		Shift:         "CA2",
		WorkDate:      "2025-06-01",
		LaborCount:    10,
		IsDraft:       draft,
		Items:         items,
	}}
}

func stageNames(res SaveResult) []string {
	var names []string
	for _, s := range res.Stages {
		names = append(names, s.Stage)
	}
	return names
}

func TestRunDraftSkipsSideEffects(t *testing.T) {
	store := new(MockStore)
	store.On("ExistingReportNos", int64(7), models.ModeExport).Return([]string{}, nil)
	store.On("SaveReports", mock.Anything).Return(nil)

	res := NewFinalizer(store).Run(exportRequest(3, true))

	assert.True(t, res.Completed)
	assert.Equal(t, []string{StageReports}, stageNames(res))
	assert.Empty(t, res.WorkOrders)
	store.AssertNotCalled(t, "MarkSealsUsed", mock.Anything, mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "SyncCompletedContainers", mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "SaveWorkOrders", mock.Anything)
}

func TestRunFinalSaveAllStages(t *testing.T) {
	store := new(MockStore)
	store.On("ExistingReportNos", int64(7), models.ModeExport).Return([]string{"PB-XUAT-7-04"}, nil)
	store.On("SaveReports", mock.Anything).Return(nil)
	store.On("MarkSealsUsed", int64(7), mock.Anything, "PB-XUAT-7-05").Return(nil)
	store.On("MarkSealsUsed", int64(7), mock.Anything, "PB-XUAT-7-06").Return(nil)
	store.On("SyncCompletedContainers", int64(7), mock.Anything).Return(nil)
	store.On("SaveWorkOrders", mock.Anything).Return(nil)

	res := NewFinalizer(store).Run(exportRequest(20, false))

	assert.True(t, res.Completed)
	assert.Equal(t, []string{StageReports, StageSeals, StageContainerSync, StageWorkOrders}, stageNames(res))

	// 20 items -> 2 sub-reports, sequence continues from 04.
	require.Len(t, res.Reports, 2)
	assert.Equal(t, "PB-XUAT-7-05", res.Reports[0].ReportNo)
	assert.Equal(t, "PB-XUAT-7-06", res.Reports[1].ReportNo)

	// One labor order per sub-report, no mechanical details recorded.
	require.Len(t, res.WorkOrders, 2)
	for _, wo := range res.WorkOrders {
		assert.Equal(t, models.WorkOrderKindLabor, wo.Kind)
	}

	// Every referenced seal serial is consumed once, attributed to the
	// sub-report its item landed in.
	first := store.Calls[2]
	require.Equal(t, "MarkSealsUsed", first.Method)
	assert.Len(t, first.Arguments.Get(1).([]string), 15)
	assert.Equal(t, "PB-XUAT-7-05", first.Arguments.String(2))
	second := store.Calls[3]
	require.Equal(t, "MarkSealsUsed", second.Method)
	assert.Len(t, second.Arguments.Get(1).([]string), 5)
	assert.Equal(t, "PB-XUAT-7-06", second.Arguments.String(2))
}

func TestRunEmptyReportHaltsAtReportsStage(t *testing.T) {
	store := new(MockStore)
	store.On("ExistingReportNos", mock.Anything, mock.Anything).Return([]string{}, nil)

	res := NewFinalizer(store).Run(exportRequest(0, false))

	assert.False(t, res.Completed)
	require.Len(t, res.Stages, 1)
	assert.Equal(t, StageReports, res.Stages[0].Stage)
	assert.NotEmpty(t, res.Stages[0].Error)
	store.AssertNotCalled(t, "SaveReports", mock.Anything)
	store.AssertNotCalled(t, "MarkSealsUsed", mock.Anything, mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "SaveWorkOrders", mock.Anything)
}

func TestRunSealFailureHaltsLaterStages(t *testing.T) {
	store := new(MockStore)
	store.On("ExistingReportNos", mock.Anything, mock.Anything).Return([]string{}, nil)
	store.On("SaveReports", mock.Anything).Return(nil)
	store.On("MarkSealsUsed", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("store down"))

	res := NewFinalizer(store).Run(exportRequest(2, false))

	assert.False(t, res.Completed)
	assert.Equal(t, []string{StageReports, StageSeals}, stageNames(res))
	assert.Equal(t, "store down", res.Stages[1].Error)
	// Reports already written stay written: no rollback.
	assert.Len(t, res.Reports, 1)
	store.AssertNotCalled(t, "SyncCompletedContainers", mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "SaveWorkOrders", mock.Anything)
}

func TestRunSyncFailureIsBestEffort(t *testing.T) {
	store := new(MockStore)
	store.On("ExistingReportNos", mock.Anything, mock.Anything).Return([]string{}, nil)
	store.On("SaveReports", mock.Anything).Return(nil)
	store.On("MarkSealsUsed", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	store.On("SyncCompletedContainers", mock.Anything, mock.Anything).Return(errors.New("container gone"))
	store.On("SaveWorkOrders", mock.Anything).Return(nil)

	var logged []string
	f := NewFinalizer(store)
	f.Logf = func(format string, args ...interface{}) {
		logged = append(logged, fmt.Sprintf(format, args...))
	}

	res := f.Run(exportRequest(2, false))

	// Sync failure is logged and recorded but work orders still run.
	assert.True(t, res.Completed)
	assert.Equal(t, []string{StageReports, StageSeals, StageContainerSync, StageWorkOrders}, stageNames(res))
	assert.Equal(t, "container gone", res.Stages[2].Error)
	require.Len(t, logged, 1)
	assert.Contains(t, logged[0], "container sync failed")
}

func TestRunReportsFailureStopsEverything(t *testing.T) {
	store := new(MockStore)
	store.On("ExistingReportNos", mock.Anything, mock.Anything).Return([]string{}, nil)
	store.On("SaveReports", mock.Anything).Return(errors.New("write rejected"))

	res := NewFinalizer(store).Run(exportRequest(2, false))

	assert.False(t, res.Completed)
	require.Len(t, res.Stages, 1)
	assert.Equal(t, StageReports, res.Stages[0].Stage)
	assert.Equal(t, "write rejected", res.Stages[0].Error)
}

func TestRunImportModeSplitScenario(t *testing.T) {
	// 12 plain containers + 8 flatbeds, first reports for the vessel:
	// one container page and one flatbed page, both suffix sequence 01, 02.
	items := make([]models.TallyItem, 0, 20)
	for i := 0; i < 12; i++ {
		items = append(items, models.TallyItem{ContainerNo: fmt.Sprintf("MSKU%07d", i+1)})
	}
	for i := 0; i < 8; i++ {
		items = append(items, models.TallyItem{ContainerNo: fmt.Sprintf("51C-00%d/0%d", i, i)})
	}
	req := SaveRequest{Report: models.TallyReport{
		Mode:     models.ModeImport,
		VesselID: 3,
		IsDraft:  true,
		Items:    items,
	}}

	store := new(MockStore)
	store.On("ExistingReportNos", int64(3), models.ModeImport).Return([]string{}, nil)
	store.On("SaveReports", mock.Anything).Return(nil)

	res := NewFinalizer(store).Run(req)

	require.Len(t, res.Reports, 2)
	assert.Equal(t, models.BucketContainer, res.Reports[0].Bucket)
	assert.Len(t, res.Reports[0].Items, 12)
	assert.Equal(t, "PB-NHAP-3-01", res.Reports[0].ReportNo)
	assert.Equal(t, models.BucketFlatbed, res.Reports[1].Bucket)
	assert.Len(t, res.Reports[1].Items, 8)
	assert.Equal(t, "PB-NHAP-3-02", res.Reports[1].ReportNo)
}

func TestRunReplaceReportNosDeletesFirst(t *testing.T) {
	store := new(MockStore)
	store.On("ExistingReportNos", mock.Anything, mock.Anything).Return([]string{"PB-XUAT-7-01"}, nil)
	store.On("DeleteReports", []string{"PB-XUAT-7-01"}).Return(nil)
	store.On("SaveReports", mock.Anything).Return(nil)

	req := exportRequest(2, true)
	req.ReplaceReportNos = []string{"PB-XUAT-7-01"}

	res := NewFinalizer(store).Run(req)

	assert.True(t, res.Completed)
	store.AssertCalled(t, "DeleteReports", []string{"PB-XUAT-7-01"})
	// Replaced number is still in the scan set, so the new report moves on.
	assert.Equal(t, "PB-XUAT-7-02", res.Reports[0].ReportNo)
}
