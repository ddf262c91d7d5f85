package service

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"masjidcare_backend/internals/apperr"
	"masjidcare_backend/internals/features/users/user/dto"
	helper "masjidcare_backend/internals/helpers"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, func()) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	dialector := postgres.New(postgres.Config{
		Conn:       sqlDB,
		DriverName: "postgres",
	})
	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
		TranslateError:         true,
	})
	if err != nil {
		t.Fatalf("failed to open gorm db: %v", err)
	}

	return gormDB, mock, func() { sqlDB.Close() }
}

// A database outage must surface as a generic infrastructure error, never as
// the raw driver message.
func TestListMembers_DatabaseFailureIsInfrastructure(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WillReturnError(errors.New("pq: connection refused"))

	_, _, err := ListMembers(db, superadmin(), dto.ListMemberQuery{},
		helper.Paging{Page: 1, PerPage: 10, Limit: 10})

	assert.True(t, apperr.Is(err, apperr.KindInfrastructure))
	assert.Equal(t, "Internal server error", err.Error())
	assert.NoError(t, mock.ExpectationsWereMet())
}
