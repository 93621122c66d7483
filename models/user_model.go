package models

import (
	"port-app/controllers/idgen"

	"gorm.io/gorm"
)

const (
	RoleAdmin     = "admin"
	RoleLogistics = "logistics"
	RoleCustoms   = "customs"
	RoleInspector = "inspector"
	RoleDispatch  = "dispatch"
)

type User struct {
	gorm.Model
	ID       int64  `json:"id" gorm:"primary_key"`
	Name     string `json:"name"`
	Email    string `json:"email" gorm:"unique"`
	Password string `json:"-"`
	Role     string `json:"role" gorm:"default:'logistics'"`
	IsActive bool   `json:"is_active" gorm:"default:true"`
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == 0 {
		u.ID = idgen.GenerateID()
	}
	return
}

type ActivityLog struct {
	gorm.Model
	Actor    string `json:"actor"`
	Action   string `json:"action"`
	Entity   string `json:"entity"`
	EntityID string `json:"entity_id"`
	Detail   string `json:"detail"`
}
