package repositories

import (
	"errors"

	"port-app/models"
	"port-app/services/tally"

	"gorm.io/gorm"
)

// TallyRepository is the persistence surface of the finalize pipeline
// (it implements tally.Store).
type TallyRepository struct {
	db         *gorm.DB
	containers *ContainerRepository
}

func NewTallyRepository(db *gorm.DB) *TallyRepository {
	return &TallyRepository{db: db, containers: NewContainerRepository(db)}
}

func (r *TallyRepository) ExistingReportNos(vesselID int64, mode string) ([]string, error) {
	var nos []string
	err := r.db.Model(&models.TallyReport{}).
		Where("vessel_id = ? AND mode = ?", vesselID, mode).
		Pluck("report_no", &nos).Error
	return nos, err
}

func (r *TallyRepository) DeleteReports(reportNos []string) error {
	if len(reportNos) == 0 {
		return nil
	}
	tx := r.db.Begin()
	if tx.Error != nil {
		return errors.New("failed to start transaction")
	}

	var ids []int64
	if err := tx.Model(&models.TallyReport{}).
		Where("report_no IN ?", reportNos).
		Pluck("id", &ids).Error; err != nil {
		tx.Rollback()
		return err
	}
	if len(ids) > 0 {
		if err := tx.Where("report_id IN ?", ids).Delete(&models.TallyItem{}).Error; err != nil {
			tx.Rollback()
			return err
		}
		if err := tx.Where("report_id IN ?", ids).Delete(&models.MechanicalDetail{}).Error; err != nil {
			tx.Rollback()
			return err
		}
		if err := tx.Delete(&models.TallyReport{}, ids).Error; err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit().Error
}

func (r *TallyRepository) SaveReports(reports []models.TallyReport) error {
	tx := r.db.Begin()
	if tx.Error != nil {
		return errors.New("failed to start transaction")
	}

	idmap := NewIDMapRepository(tx)
	for i := range reports {
		for j := range reports[i].Items {
			item := &reports[i].Items[j]
			if item.LocalID == "" || item.DurableID != "" {
				continue
			}
			durable, err := idmap.Resolve(item.LocalID)
			if err != nil {
				tx.Rollback()
				return err
			}
			item.DurableID = durable
		}
		if err := tx.Create(&reports[i]).Error; err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit().Error
}

// MarkSealsUsed flips the referenced seals Available -> Used. Seals
// already Used are left alone, so re-finalization does not error and
// never "unuses" a seal.
func (r *TallyRepository) MarkSealsUsed(vesselID int64, serials []string, reportNo string) error {
	return r.db.Model(&models.Seal{}).
		Where("vessel_id = ? AND serial_no IN ? AND status = ?", vesselID, serials, models.SealStatusAvailable).
		Updates(map[string]interface{}{
			"status":         models.SealStatusUsed,
			"used_by_report": reportNo,
		}).Error
}

func (r *TallyRepository) SyncCompletedContainers(vesselID int64, syncs []tally.ContainerSync) error {
	return r.containers.SyncCompleted(vesselID, syncs)
}

func (r *TallyRepository) SaveWorkOrders(orders []models.WorkOrder) error {
	tx := r.db.Begin()
	if tx.Error != nil {
		return errors.New("failed to start transaction")
	}

	for i := range orders {
		if err := tx.Create(&orders[i]).Error; err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit().Error
}

func (r *TallyRepository) GetByVessel(vesselID int64) ([]models.TallyReport, error) {
	var reports []models.TallyReport
	err := r.db.Preload("Items").Preload("MechanicalDetails").
		Where("vessel_id = ?", vesselID).
		Order("report_no").
		Find(&reports).Error
	return reports, err
}

func (r *TallyRepository) GetByReportNo(reportNo string) (*models.TallyReport, error) {
	var report models.TallyReport
	err := r.db.Preload("Items").Preload("MechanicalDetails").
		Where("report_no = ?", reportNo).
		First(&report).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}
