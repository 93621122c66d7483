package tally

import (
	"log"

	"port-app/models"
)

// Finalize pipeline: one tally save runs reports -> seals -> container
// sync -> work orders, in that order. Each stage reports its own result;
// a stage failure halts the stages after it but never rolls back what an
// earlier stage already wrote (append-only store). Container sync is
// best-effort: its failure is logged and recorded, not fatal.

const (
	StageReports       = "reports"
	StageSeals         = "seals"
	StageContainerSync = "container_sync"
	StageWorkOrders    = "work_orders"
)

type StageResult struct {
	Stage string `json:"stage"`
	Count int    `json:"count"`
	Error string `json:"error,omitempty"`
}

type SaveResult struct {
	Reports    []models.TallyReport `json:"reports"`
	WorkOrders []models.WorkOrder   `json:"work_orders"`
	Stages     []StageResult        `json:"stages"`
	Completed  bool                 `json:"completed"`
}

// ContainerSync carries the tally outcome back onto a logistics
// container record.
type ContainerSync struct {
	ContainerNo   string
	InspectorName string
	Shift         string
	WorkDate      string
	Photos        []string
}

// Store is the persistence surface the pipeline writes through.
type Store interface {
	ExistingReportNos(vesselID int64, mode string) ([]string, error)
	DeleteReports(reportNos []string) error
	SaveReports(reports []models.TallyReport) error
	MarkSealsUsed(vesselID int64, serials []string, reportNo string) error
	SyncCompletedContainers(vesselID int64, syncs []ContainerSync) error
	SaveWorkOrders(orders []models.WorkOrder) error
}

type SaveRequest struct {
	Report        models.TallyReport
	KnownFlatbeds map[string]bool
	// Edit-and-resave: report numbers replaced by this save.
	ReplaceReportNos []string
}

type Finalizer struct {
	Store Store
	Logf  func(format string, args ...interface{})
}

func NewFinalizer(store Store) *Finalizer {
	return &Finalizer{Store: store, Logf: log.Printf}
}

// Run executes one save action. Draft saves persist the split reports and
// stop; final saves continue through seals, container sync and work
// orders.
func (f *Finalizer) Run(req SaveRequest) SaveResult {
	res := SaveResult{}

	reports, err := f.buildReports(req)
	if err != nil {
		res.Stages = append(res.Stages, StageResult{Stage: StageReports, Error: err.Error()})
		return res
	}
	if len(reports) == 0 {
		res.Stages = append(res.Stages, StageResult{Stage: StageReports, Error: "report has no tally rows"})
		return res
	}

	// Stage 1: persist sub-reports (replacing any edited ones first).
	if len(req.ReplaceReportNos) > 0 {
		if err := f.Store.DeleteReports(req.ReplaceReportNos); err != nil {
			res.Stages = append(res.Stages, StageResult{Stage: StageReports, Error: err.Error()})
			return res
		}
	}
	if err := f.Store.SaveReports(reports); err != nil {
		res.Stages = append(res.Stages, StageResult{Stage: StageReports, Error: err.Error()})
		return res
	}
	res.Reports = reports
	res.Stages = append(res.Stages, StageResult{Stage: StageReports, Count: len(reports)})

	if req.Report.IsDraft {
		res.Completed = true
		return res
	}

	// Stage 2: seal consumption (export finalization only). Each seal is
	// attributed to the sub-report its item landed in; a serial repeated
	// across sub-reports is consumed once, by the first.
	if req.Report.Mode == models.ModeExport {
		batches := collectSeals(reports)
		consumed := 0
		for _, batch := range batches {
			if err := f.Store.MarkSealsUsed(req.Report.VesselID, batch.serials, batch.reportNo); err != nil {
				res.Stages = append(res.Stages, StageResult{Stage: StageSeals, Error: err.Error()})
				return res
			}
			consumed += len(batch.serials)
		}
		if consumed > 0 {
			res.Stages = append(res.Stages, StageResult{Stage: StageSeals, Count: consumed})
		}
	}

	// Stage 3: container status sync, best-effort.
	syncs := buildSyncs(reports)
	if err := f.Store.SyncCompletedContainers(req.Report.VesselID, syncs); err != nil {
		f.logf("container sync failed for vessel %d: %v", req.Report.VesselID, err)
		res.Stages = append(res.Stages, StageResult{Stage: StageContainerSync, Error: err.Error()})
	} else {
		res.Stages = append(res.Stages, StageResult{Stage: StageContainerSync, Count: len(syncs)})
	}

	// Stage 4: derived work orders. One labor order per sub-report;
	// mechanical orders once, attributed to the first sub-report.
	var orders []models.WorkOrder
	for _, r := range reports {
		orders = append(orders, LaborOrder(r))
	}
	mech := req.Report
	mech.ReportNo = reports[0].ReportNo
	orders = append(orders, MechanicalOrders(mech)...)

	if err := f.Store.SaveWorkOrders(orders); err != nil {
		res.Stages = append(res.Stages, StageResult{Stage: StageWorkOrders, Error: err.Error()})
		return res
	}
	res.WorkOrders = orders
	res.Stages = append(res.Stages, StageResult{Stage: StageWorkOrders, Count: len(orders)})

	res.Completed = true
	return res
}

// buildReports splits the submitted report into numbered sub-reports.
func (f *Finalizer) buildReports(req SaveRequest) ([]models.TallyReport, error) {
	existing, err := f.Store.ExistingReportNos(req.Report.VesselID, req.Report.Mode)
	if err != nil {
		return nil, err
	}

	pages := Split(req.Report.Items, req.Report.Mode, req.KnownFlatbeds)
	prefix := ReportPrefix(req.Report.Mode, req.Report.VesselID)
	numbers := NextSequences(existing, prefix, len(pages))

	reports := make([]models.TallyReport, len(pages))
	for i, page := range pages {
		sub := req.Report
		sub.ID = 0
		sub.ReportNo = numbers[i]
		sub.Bucket = page.Bucket
		sub.Items = page.Items
		sub.MechanicalDetails = nil
		reports[i] = sub
	}
	return reports, nil
}

type sealBatch struct {
	reportNo string
	serials  []string
}

func collectSeals(reports []models.TallyReport) []sealBatch {
	seen := map[string]bool{}
	var batches []sealBatch
	for _, r := range reports {
		var serials []string
		for _, item := range r.Items {
			if item.SealNo == "" || seen[item.SealNo] {
				continue
			}
			seen[item.SealNo] = true
			serials = append(serials, item.SealNo)
		}
		if len(serials) > 0 {
			batches = append(batches, sealBatch{reportNo: r.ReportNo, serials: serials})
		}
	}
	return batches
}

func buildSyncs(reports []models.TallyReport) []ContainerSync {
	var syncs []ContainerSync
	for _, r := range reports {
		for _, item := range r.Items {
			no := item.ContainerNo
			if no == "" {
				no = item.VehicleNo
			}
			if no == "" {
				continue
			}
			syncs = append(syncs, ContainerSync{
				ContainerNo:   no,
				InspectorName: r.InspectorName,
				Shift:         r.Shift,
				WorkDate:      r.WorkDate,
				Photos:        decodePhotos(item.Photos),
			})
		}
	}
	return syncs
}

func (f *Finalizer) logf(format string, args ...interface{}) {
	if f.Logf != nil {
		f.Logf(format, args...)
	}
}
