package utils

import (
	"port-app/models"

	"gorm.io/gorm"
)

func InsertLog(db *gorm.DB, entry models.ActivityLog) {
	db.Create(&entry)
}
