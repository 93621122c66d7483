package repositories

import (
	"errors"

	"port-app/models"
	"port-app/services/customs"
	"port-app/services/tally"

	"gorm.io/gorm"
)

type ContainerRepository struct {
	db *gorm.DB
}

func NewContainerRepository(db *gorm.DB) *ContainerRepository {
	return &ContainerRepository{db: db}
}

func (r *ContainerRepository) GetByVessel(vesselID int64) ([]models.Container, error) {
	var containers []models.Container
	err := r.db.Where("vessel_id = ?", vesselID).Order("id").Find(&containers).Error
	return containers, err
}

// SaveImportBatch persists a reconciled container set together with the
// recomputed vessel totals in one transaction, so totals and rows cannot
// be read torn.
func (r *ContainerRepository) SaveImportBatch(vesselID int64, containers []models.Container, totalPkgs int, totalWeight float64) error {
	tx := r.db.Begin()
	if tx.Error != nil {
		return errors.New("failed to start transaction")
	}

	defer func() {
		if rec := recover(); rec != nil {
			tx.Rollback()
		}
	}()

	for i := range containers {
		if err := tx.Save(&containers[i]).Error; err != nil {
			tx.Rollback()
			return err
		}
	}

	if err := tx.Model(&models.Vessel{}).Where("id = ?", vesselID).
		Updates(map[string]interface{}{
			"total_pkgs":   totalPkgs,
			"total_weight": totalWeight,
		}).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

// SaveCustomsGrid writes the officer-entered grid onto the containers and
// marks the flagged ones ISSUE. The grid always persists; findings only
// decide the flags.
func (r *ContainerRepository) SaveCustomsGrid(vesselID int64, entries []customs.Entry, flagged []string) error {
	flaggedSet := make(map[string]bool, len(flagged))
	for _, no := range flagged {
		flaggedSet[no] = true
	}

	tx := r.db.Begin()
	if tx.Error != nil {
		return errors.New("failed to start transaction")
	}

	for _, e := range entries {
		updates := map[string]interface{}{
			"carrier_decl_no":   e.DeclNo,
			"carrier_decl_date": e.DeclDate,
			"pkgs":              e.Pkgs,
			"weight":            e.Weight,
		}
		if e.SealNo != "" {
			updates["seal_no"] = e.SealNo
		}
		if flaggedSet[e.ContainerNo] {
			updates["status"] = models.ContainerStatusIssue
		}
		if err := tx.Model(&models.Container{}).
			Where("vessel_id = ? AND container_no = ?", vesselID, e.ContainerNo).
			Updates(updates).Error; err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit().Error
}

// SyncCompleted stamps the tally outcome onto each matching container:
// status COMPLETED, inspector metadata, and new photos appended with
// duplicates dropped by URL.
func (r *ContainerRepository) SyncCompleted(vesselID int64, syncs []tally.ContainerSync) error {
	for _, s := range syncs {
		var container models.Container
		err := r.db.Where("vessel_id = ? AND container_no = ?", vesselID, s.ContainerNo).
			First(&container).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return err
		}

		container.Status = models.ContainerStatusCompleted
		container.InspectorName = s.InspectorName
		container.Shift = s.Shift
		container.WorkDate = s.WorkDate

		if len(s.Photos) > 0 {
			existing := container.PhotoList()
			seen := make(map[string]bool, len(existing))
			for _, url := range existing {
				seen[url] = true
			}
			for _, url := range s.Photos {
				if !seen[url] {
					existing = append(existing, url)
					seen[url] = true
				}
			}
			container.SetPhotoList(existing)
		}

		if err := r.db.Save(&container).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *ContainerRepository) Delete(id int64) error {
	return r.db.Delete(&models.Container{}, id).Error
}
