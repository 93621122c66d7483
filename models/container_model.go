package models

import (
	"encoding/json"

	"port-app/controllers/idgen"

	"gorm.io/gorm"
)

const (
	ContainerStatusPending   = "PENDING"
	ContainerStatusReady     = "READY"
	ContainerStatusCompleted = "COMPLETED"
	ContainerStatusIssue     = "ISSUE"

	UnitTypeContainer = "CONTAINER"
	UnitTypeVehicle   = "VEHICLE"
)

type Container struct {
	gorm.Model
	ID          int64   `json:"id" gorm:"primary_key"`
	VesselID    int64   `json:"vessel_id" gorm:"index:idx_vessel_container,unique"`
	ContainerNo string  `json:"container_no" gorm:"index:idx_vessel_container,unique"`
	Type        string  `json:"type" gorm:"default:'CONTAINER'"`
	Pkgs        int     `json:"pkgs"`
	Weight      float64 `json:"weight"`
	SealNo      string  `json:"seal_no"`
	Consignee   string  `json:"consignee"`
	DemDetDate  string  `json:"dem_det_date" gorm:"type:date"`

	// Two independent customs declarations per unit: one filed by the
	// carrier, one by the warehouse.
	CarrierDeclNo     string `json:"carrier_decl_no"`
	CarrierDeclDate   string `json:"carrier_decl_date" gorm:"type:date"`
	WarehouseDeclNo   string `json:"warehouse_decl_no"`
	WarehouseDeclDate string `json:"warehouse_decl_date" gorm:"type:date"`

	Status        string `json:"status" gorm:"default:'PENDING'"`
	InspectorName string `json:"inspector_name"`
	Shift         string `json:"shift"`
	WorkDate      string `json:"work_date" gorm:"type:date"`
	Photos        string `json:"photos" gorm:"type:text"`

	CreatedBy int
	UpdatedBy int
	DeletedBy int
}

func (c *Container) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == 0 {
		c.ID = idgen.GenerateID()
	}
	return
}

// PhotoList decodes the stored photo URL list. An empty column is an
// empty list, never an error.
func (c *Container) PhotoList() []string {
	if c.Photos == "" {
		return nil
	}
	var urls []string
	if err := json.Unmarshal([]byte(c.Photos), &urls); err != nil {
		return nil
	}
	return urls
}

func (c *Container) SetPhotoList(urls []string) {
	if len(urls) == 0 {
		c.Photos = ""
		return
	}
	b, _ := json.Marshal(urls)
	c.Photos = string(b)
}
