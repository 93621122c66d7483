package repositories

import (
	"errors"

	"port-app/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IDMapRepository maintains the legacy-id -> durable-UUID mapping table.
// Legacy spreadsheet rows carry free-form identifiers; every one of them
// gets a generated UUID pinned on first sight instead of being hashed
// into a pseudo-UUID.
type IDMapRepository struct {
	db *gorm.DB
}

func NewIDMapRepository(db *gorm.DB) *IDMapRepository {
	return &IDMapRepository{db: db}
}

// Resolve returns the durable ID for a local identifier, creating the
// mapping on first use. Resolving the same local ID twice always yields
// the same UUID.
func (r *IDMapRepository) Resolve(localID string) (string, error) {
	if localID == "" {
		return "", errors.New("empty local id")
	}

	var mapping models.IDMapping
	err := r.db.Where("local_id = ?", localID).First(&mapping).Error
	if err == nil {
		return mapping.DurableID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	mapping = models.IDMapping{
		LocalID:   localID,
		DurableID: uuid.NewString(),
	}
	if err := r.db.Create(&mapping).Error; err != nil {
		return "", err
	}
	return mapping.DurableID, nil
}

// Lookup returns the local ID for a durable ID, if mapped.
func (r *IDMapRepository) Lookup(durableID string) (string, error) {
	var mapping models.IDMapping
	if err := r.db.Where("durable_id = ?", durableID).First(&mapping).Error; err != nil {
		return "", err
	}
	return mapping.LocalID, nil
}
