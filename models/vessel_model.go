package models

import (
	"port-app/controllers/idgen"

	"gorm.io/gorm"
)

const (
	VesselStatusArrived  = "ARRIVED"
	VesselStatusCleared  = "CLEARED"
	VesselStatusDeparted = "DEPARTED"
)

type Vessel struct {
	gorm.Model
	ID          int64   `json:"id" gorm:"primary_key"`
	Name        string  `json:"name"`
	VoyageNo    string  `json:"voyage_no"`
	Eta         string  `json:"eta" gorm:"type:date"`
	Status      string  `json:"status" gorm:"default:'ARRIVED'"`
	TotalPkgs   int     `json:"total_pkgs"`
	TotalWeight float64 `json:"total_weight"`

	// Export plan promotion
	IsExportPlan     bool    `json:"is_export_plan"`
	PlanExportWeight float64 `json:"plan_export_weight"`
	PlanExportDate   string  `json:"plan_export_date" gorm:"type:date"`

	Remarks   string `json:"remarks"`
	CreatedBy int
	UpdatedBy int
	DeletedBy int

	Containers []Container `gorm:"foreignKey:VesselID;references:ID;constraint:OnDelete:CASCADE" json:"containers,omitempty"`
}

func (v *Vessel) BeforeCreate(tx *gorm.DB) (err error) {
	if v.ID == 0 {
		v.ID = idgen.GenerateID()
	}
	return
}
