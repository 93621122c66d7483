package repositories

import (
	"port-app/models"

	"gorm.io/gorm"
)

type VesselRepository struct {
	db *gorm.DB
}

func NewVesselRepository(db *gorm.DB) *VesselRepository {
	return &VesselRepository{db: db}
}

func (r *VesselRepository) GetAll() ([]models.Vessel, error) {
	var vessels []models.Vessel
	err := r.db.Order("created_at desc").Find(&vessels).Error
	return vessels, err
}

func (r *VesselRepository) GetByID(id int64) (*models.Vessel, error) {
	var vessel models.Vessel
	if err := r.db.First(&vessel, id).Error; err != nil {
		return nil, err
	}
	return &vessel, nil
}

func (r *VesselRepository) Create(vessel *models.Vessel) error {
	return r.db.Create(vessel).Error
}

func (r *VesselRepository) Update(vessel *models.Vessel) error {
	return r.db.Save(vessel).Error
}

func (r *VesselRepository) Delete(id int64) error {
	return r.db.Delete(&models.Vessel{}, id).Error
}

// PromoteExportPlan switches a vessel into export-plan state with its
// planned weight and schedule.
func (r *VesselRepository) PromoteExportPlan(id int64, weight float64, date string) error {
	return r.db.Model(&models.Vessel{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_export_plan":     true,
			"plan_export_weight": weight,
			"plan_export_date":   date,
		}).Error
}
