package database

import (
	"port-app/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.ActivityLog{},
		&models.Vessel{},
		&models.Container{},
		&models.TallyReport{},
		&models.TallyItem{},
		&models.MechanicalDetail{},
		&models.WorkOrder{},
		&models.Seal{},
		&models.TransportVehicle{},
		&models.ServicePrice{},
		&models.Consignee{},
		&models.ResourceMember{},
		&models.IDMapping{},
	)
}
