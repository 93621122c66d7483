package models

import (
	"port-app/controllers/idgen"

	"gorm.io/gorm"
)

const (
	SealStatusAvailable = "Available"
	SealStatusUsed      = "Used"
)

type Seal struct {
	gorm.Model
	ID           int64  `json:"id" gorm:"primary_key"`
	VesselID     int64  `json:"vessel_id" gorm:"index:idx_vessel_seal,unique"`
	SerialNo     string `json:"serial_no" gorm:"index:idx_vessel_seal,unique"`
	Status       string `json:"status" gorm:"default:'Available'"`
	UsedByReport string `json:"used_by_report"`
	CreatedBy    int
	UpdatedBy    int
	DeletedBy    int
}

func (s *Seal) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == 0 {
		s.ID = idgen.GenerateID()
	}
	return
}
