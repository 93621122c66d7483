package repositories

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"port-app/models"
)

func setupTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

// The status filter in the WHERE clause is what keeps the transition
// one-directional: only Available seals are touched.
const sealUpdatePattern = `UPDATE "seals" SET .+ WHERE vessel_id = \$\d+ AND serial_no IN \([^)]+\) AND status = \$\d+`

func TestMarkSealsUsedFlipsOnlyAvailableSeals(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewTallyRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(sealUpdatePattern).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			int64(7), "T/25.0001", "T/25.0002", models.SealStatusAvailable).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	err := repo.MarkSealsUsed(7, []string{"T/25.0001", "T/25.0002"}, "PB-XUAT-7-01")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkSealsUsedAlreadyUsedIsNoop(t *testing.T) {
	// Re-finalizing a report references seals that are already Used; the
	// filter matches no rows and the call returns without error, so a
	// seal is never flipped back to Available.
	db, mock := setupTestDB(t)
	repo := NewTallyRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(sealUpdatePattern).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			int64(7), "T/25.0001", models.SealStatusAvailable).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.MarkSealsUsed(7, []string{"T/25.0001"}, "PB-XUAT-7-02")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
