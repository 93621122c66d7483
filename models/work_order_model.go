package models

import (
	"port-app/controllers/idgen"

	"gorm.io/gorm"
)

const (
	WorkOrderKindLabor      = "LABOR"
	WorkOrderKindMechanical = "MECHANICAL"
)

// WorkOrder is the single canonical shape for both labor and mechanical
// assignments; Kind is the discriminant. Work orders are derived from
// finalized tally reports, never authored directly.
type WorkOrder struct {
	gorm.Model
	ID       int64  `json:"id" gorm:"primary_key"`
	Kind     string `json:"kind"`
	ReportNo string `json:"report_no" gorm:"index"`
	VesselID int64  `json:"vessel_id" gorm:"index"`
	Vessel   string `json:"vessel"`
	Mode     string `json:"mode"`
	WorkDate string `json:"work_date" gorm:"type:date"`
	Shift    string `json:"shift"`

	// Labor orders
	HandlingMethod string `json:"handling_method"`
	Headcount      int    `json:"headcount"`

	// Mechanical orders
	Task       string `json:"task"`
	Quantity   int    `json:"quantity"`
	IsExternal bool   `json:"is_external"`

	CreatedBy int
	UpdatedBy int
	DeletedBy int
}

func (w *WorkOrder) BeforeCreate(tx *gorm.DB) (err error) {
	if w.ID == 0 {
		w.ID = idgen.GenerateID()
	}
	return
}
