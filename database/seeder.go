package database

import (
	"log"

	"port-app/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func RunSeeders(db *gorm.DB) {
	SeedUsers(db)
	SeedServicePrices(db)
	SeedTransportVehicles(db)
}

func SeedUsers(db *gorm.DB) {
	var count int64
	db.Model(&models.User{}).Count(&count)
	if count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash seed password: %v", err)
	}

	users := []models.User{
		{Name: "Administrator", Email: "admin@port.local", Password: string(hash), Role: models.RoleAdmin},
	}
	for _, u := range users {
		if err := db.Create(&u).Error; err != nil {
			log.Printf("Failed to seed user %s: %v", u.Email, err)
		}
	}
}

func SeedServicePrices(db *gorm.DB) {
	var count int64
	db.Model(&models.ServicePrice{}).Count(&count)
	if count > 0 {
		return
	}

	prices := []models.ServicePrice{
		{Code: "XDTAU", Name: "Xếp dỡ tàu - container", Unit: "cont", Price: 350000, DebitCode: "D01", DebitName: "Xếp dỡ"},
		{Code: "XDKHO", Name: "Xếp dỡ kho bãi", Unit: "tấn", Price: 25000, DebitCode: "D01", DebitName: "Xếp dỡ"},
		{Code: "LUUBAI", Name: "Lưu bãi container", Unit: "cont/ngày", Price: 40000, DebitCode: "D02", DebitName: "Lưu bãi"},
		{Code: "CANHANG", Name: "Cân hàng", Unit: "lượt", Price: 50000, DebitCode: "D03", DebitName: "Dịch vụ khác"},
	}
	for _, p := range prices {
		if err := db.Create(&p).Error; err != nil {
			log.Printf("Failed to seed service price %s: %v", p.Code, err)
		}
	}
}

func SeedTransportVehicles(db *gorm.DB) {
	var count int64
	db.Model(&models.TransportVehicle{}).Count(&count)
	if count > 0 {
		return
	}

	vehicles := []models.TransportVehicle{
		{PlateNo: "51C-123.45", Category: "TRUCK", Driver: "Tran Van B"},
		{PlateNo: "51R-678.90", Category: "FLATBED", Driver: "Le Van C"},
	}
	for _, v := range vehicles {
		if err := db.Create(&v).Error; err != nil {
			log.Printf("Failed to seed vehicle %s: %v", v.PlateNo, err)
		}
	}
}
