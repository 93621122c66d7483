package models

import (
	"port-app/controllers/idgen"

	"gorm.io/gorm"
)

type TransportVehicle struct {
	gorm.Model
	ID         int64  `json:"id" gorm:"primary_key"`
	PlateNo    string `json:"plate_no" gorm:"unique"`
	Category   string `json:"category"`
	Driver     string `json:"driver"`
	IsExternal bool   `json:"is_external"`
	CreatedBy  int
	UpdatedBy  int
	DeletedBy  int
}

func (t *TransportVehicle) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == 0 {
		t.ID = idgen.GenerateID()
	}
	return
}

type ServicePrice struct {
	gorm.Model
	ID        int64   `json:"id" gorm:"primary_key"`
	Code      string  `json:"code" gorm:"unique"`
	Name      string  `json:"name"`
	Unit      string  `json:"unit"`
	Price     float64 `json:"price"`
	DebitCode string  `json:"debit_code"`
	DebitName string  `json:"debit_name"`
	CreatedBy int
	UpdatedBy int
	DeletedBy int
}

func (p *ServicePrice) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == 0 {
		p.ID = idgen.GenerateID()
	}
	return
}

type Consignee struct {
	gorm.Model
	ID        int64  `json:"id" gorm:"primary_key"`
	Code      string `json:"code" gorm:"unique"`
	Name      string `json:"name"`
	TaxCode   string `json:"tax_code"`
	Address   string `json:"address"`
	Contact   string `json:"contact"`
	CreatedBy int
	UpdatedBy int
	DeletedBy int
}

func (c *Consignee) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == 0 {
		c.ID = idgen.GenerateID()
	}
	return
}

type ResourceMember struct {
	gorm.Model
	ID        int64  `json:"id" gorm:"primary_key"`
	Name      string `json:"name"`
	Team      string `json:"team"`
	Role      string `json:"role"`
	Phone     string `json:"phone"`
	IsActive  bool   `json:"is_active" gorm:"default:true"`
	CreatedBy int
	UpdatedBy int
	DeletedBy int
}

func (m *ResourceMember) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == 0 {
		m.ID = idgen.GenerateID()
	}
	return
}
