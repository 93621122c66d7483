package repositories

import (
	"port-app/models"

	"gorm.io/gorm"
)

type WorkOrderRepository struct {
	db *gorm.DB
}

func NewWorkOrderRepository(db *gorm.DB) *WorkOrderRepository {
	return &WorkOrderRepository{db: db}
}

func (r *WorkOrderRepository) GetAll() ([]models.WorkOrder, error) {
	var orders []models.WorkOrder
	err := r.db.Order("created_at desc").Find(&orders).Error
	return orders, err
}

func (r *WorkOrderRepository) GetByReportNo(reportNo string) ([]models.WorkOrder, error) {
	var orders []models.WorkOrder
	err := r.db.Where("report_no = ?", reportNo).Order("kind, task").Find(&orders).Error
	return orders, err
}

func (r *WorkOrderRepository) GetByVessel(vesselID int64) ([]models.WorkOrder, error) {
	var orders []models.WorkOrder
	err := r.db.Where("vessel_id = ?", vesselID).Order("report_no, kind").Find(&orders).Error
	return orders, err
}
