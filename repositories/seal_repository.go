package repositories

import (
	"port-app/models"

	"gorm.io/gorm"
)

type SealRepository struct {
	db *gorm.DB
}

func NewSealRepository(db *gorm.DB) *SealRepository {
	return &SealRepository{db: db}
}

func (r *SealRepository) GetByVessel(vesselID int64) ([]models.Seal, error) {
	var seals []models.Seal
	err := r.db.Where("vessel_id = ?", vesselID).Order("serial_no").Find(&seals).Error
	return seals, err
}

// CreateBatch registers a run of seal serials for a vessel. Serials
// already registered are skipped, not errors.
func (r *SealRepository) CreateBatch(vesselID int64, serials []string) (int, error) {
	created := 0
	for _, serial := range serials {
		var count int64
		if err := r.db.Model(&models.Seal{}).
			Where("vessel_id = ? AND serial_no = ?", vesselID, serial).
			Count(&count).Error; err != nil {
			return created, err
		}
		if count > 0 {
			continue
		}
		seal := models.Seal{VesselID: vesselID, SerialNo: serial}
		if err := r.db.Create(&seal).Error; err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

func (r *SealRepository) Delete(id int64) error {
	return r.db.Delete(&models.Seal{}, id).Error
}
