package models

import (
	"port-app/controllers/idgen"
	"port-app/types"

	"gorm.io/gorm"
)

const (
	ModeImport = "NHAP"
	ModeExport = "XUAT"

	BucketContainer = "CONTAINER"
	BucketFlatbed   = "FLATBED"

	// A sub-report holds at most this many tally items; longer reports
	// are split into numbered pages at save time.
	TallyPageSize = 15
)

type TallyReport struct {
	gorm.Model
	// Serialized as a JSON string; report IDs land in browser grids and
	// would lose precision as numbers.
	ID       types.SnowflakeID `json:"id" gorm:"primary_key"`
	ReportNo string            `json:"report_no" gorm:"unique"`
	Mode     string            `json:"mode"`
	Bucket   string            `json:"bucket" gorm:"default:'CONTAINER'"`
	VesselID int64             `json:"vessel_id" gorm:"index"`
	Vessel   string            `json:"vessel"`
	IsDraft  bool              `json:"is_draft"`

	WorkDate      string `json:"work_date" gorm:"type:date"`
	Shift         string `json:"shift"`
	InspectorName string `json:"inspector_name"`

	// Workforce / equipment metadata
	HandlingMethod  string `json:"handling_method"`
	VehicleCategory string `json:"vehicle_category"`
	LaborCount      int    `json:"labor_count"`
	MechanicalCount int    `json:"mechanical_count"`

	Remarks   string `json:"remarks"`
	CreatedBy int
	UpdatedBy int
	DeletedBy int

	Items             []TallyItem        `gorm:"foreignKey:ReportID;references:ID;constraint:OnDelete:CASCADE" json:"items"`
	MechanicalDetails []MechanicalDetail `gorm:"foreignKey:ReportID;references:ID;constraint:OnDelete:CASCADE" json:"mechanical_details"`
}

func (r *TallyReport) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == 0 {
		r.ID = types.SnowflakeID(idgen.GenerateID())
	}
	return
}

type TallyItem struct {
	gorm.Model
	ReportID types.SnowflakeID `json:"report_id" gorm:"index"`
	// Free-form row identifier carried over from legacy sheets; the save
	// stamps DurableID from the identifier-mapping table.
	LocalID     string  `json:"local_id"`
	DurableID   string  `json:"durable_id"`
	ContainerNo string  `json:"container_no"`
	VehicleNo   string  `json:"vehicle_no"`
	Pkgs        int     `json:"pkgs"`
	Weight      float64 `json:"weight"`
	SealNo      string  `json:"seal_no"`
	Photos      string  `json:"photos" gorm:"type:text"`
	Remarks     string  `json:"remarks"`
}

type MechanicalDetail struct {
	gorm.Model
	ReportID   types.SnowflakeID `json:"report_id" gorm:"index"`
	Task       string            `json:"task"`
	Quantity   int               `json:"quantity"`
	IsExternal bool              `json:"is_external"`
}
