package implementation

import (
	"context"
	"testing"

	"brand-dashboard-be/internal/entity"
	"brand-dashboard-be/internal/pkg/pagination"
	"brand-dashboard-be/internal/repository/contract"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	return db, mock
}

func TestCampaignRepository_FindByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCampaignRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "campaigns" WHERE id = \$1 AND organization_id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	campaign, err := repo.FindByID(context.Background(), uuid.New(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, campaign)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCampaignRepository_FindAllPaged(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCampaignRepository(db)
	orgID := uuid.New()
	campaignID := uuid.New()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "campaigns" WHERE organization_id = \$1 AND status IN \(\$2,\$3\)`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(21))
	mock.ExpectQuery(`SELECT \* FROM "campaigns" WHERE organization_id = \$1 AND status IN \(\$2,\$3\) ORDER BY start_date DESC LIMIT`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "organization_id", "title", "status", "platforms"}).
			AddRow(campaignID.String(), orgID.String(), "Diwali Glow", "active", `["instagram"]`))

	items, total, err := repo.FindAll(context.Background(), contract.CampaignFilter{
		OrganizationId: &orgID,
		Statuses:       []entity.CampaignStatus{entity.CampaignStatusActive, entity.CampaignStatusPaused},
		Sort:           contract.Sort{Field: "startDate", Desc: true},
		Page:           pagination.New(2, 10),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(21), total)
	require.Len(t, items, 1)
	assert.Equal(t, campaignID, items[0].Id)
	assert.Equal(t, entity.CampaignStatusActive, items[0].Status)
	assert.Equal(t, []string{"instagram"}, items[0].Platforms)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCampaignRepository_UnknownSortFallsBackToCreatedAt(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCampaignRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "campaigns"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT \* FROM "campaigns" ORDER BY created_at ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	items, total, err := repo.FindAll(context.Background(), contract.CampaignFilter{
		Sort: contract.Sort{Field: "id; DROP TABLE campaigns"},
	})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, items)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCampaignRepository_CountByStatus(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCampaignRepository(db)

	mock.ExpectQuery(`SELECT status, COUNT\(\*\) AS count FROM "campaigns" WHERE organization_id = \$1 GROUP BY`).
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).
			AddRow("draft", 2).
			AddRow("active", 5))

	counts, err := repo.CountByStatus(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts[entity.CampaignStatusDraft])
	assert.Equal(t, int64(5), counts[entity.CampaignStatusActive])
	assert.NoError(t, mock.ExpectationsWereMet())
}
