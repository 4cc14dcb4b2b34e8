package users

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/terramasterhub/hub-backend/pkg/db/models"
	"github.com/terramasterhub/hub-backend/pkg/enums"
)

func setupUsersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	users := `
CREATE TABLE IF NOT EXISTS users (
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL,
  first_name TEXT NOT NULL DEFAULT '',
  last_name TEXT NOT NULL DEFAULT '',
  phone TEXT,
  city TEXT,
  user_type TEXT NOT NULL,
  status TEXT NOT NULL DEFAULT 'Pending',
  profile_picture TEXT,
  front_id_url TEXT,
  back_id_url TEXT,
  last_login_at DATETIME,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(users).Error)
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string, userType enums.UserType, status enums.UserStatus, createdAt time.Time) *models.User {
	t.Helper()

	user := &models.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: "hash",
		FirstName:    "Test",
		LastName:     "User",
		UserType:     userType,
		Status:       status,
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestRepositoryFindByEmail(t *testing.T) {
	db := setupUsersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	seeded := seedUser(t, db, "admin@hub.test", enums.UserTypeAdmin, enums.UserStatusActive, time.Now().UTC())

	found, err := repo.FindByEmail(ctx, "admin@hub.test")
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, found.ID)
	assert.Equal(t, enums.UserTypeAdmin, found.UserType)

	_, err = repo.FindByEmail(ctx, "missing@hub.test")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepositoryFindByIDs(t *testing.T) {
	db := setupUsersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	first := seedUser(t, db, "one@hub.test", enums.UserTypeLandowner, enums.UserStatusActive, now)
	second := seedUser(t, db, "two@hub.test", enums.UserTypeSurveyor, enums.UserStatusVerified, now)

	found, err := repo.FindByIDs(ctx, []uuid.UUID{first.ID, second.ID, uuid.New()})
	require.NoError(t, err)
	assert.Len(t, found, 2)

	found, err = repo.FindByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestRepositoryListByTypes(t *testing.T) {
	db := setupUsersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Hour)
	seedUser(t, db, "admin@hub.test", enums.UserTypeAdmin, enums.UserStatusActive, base)
	older := seedUser(t, db, "older@hub.test", enums.UserTypeLandowner, enums.UserStatusActive, base.Add(time.Minute))
	newer := seedUser(t, db, "newer@hub.test", enums.UserTypeSurveyor, enums.UserStatusVerified, base.Add(2*time.Minute))

	found, err := repo.ListByTypes(ctx, enums.DirectoryUserTypes, 10, 0)
	require.NoError(t, err)
	require.Len(t, found, 2, "admins must not appear in the directory")
	assert.Equal(t, newer.ID, found[0].ID)
	assert.Equal(t, older.ID, found[1].ID)

	found, err = repo.ListByTypes(ctx, enums.DirectoryUserTypes, 1, 1)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, older.ID, found[0].ID)
}

func TestRepositorySearchDirectoryGate(t *testing.T) {
	db := setupUsersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	pendingLandowner := seedUser(t, db, "lp@hub.test", enums.UserTypeLandowner, enums.UserStatusPending, now)
	verifiedSurveyor := seedUser(t, db, "sv@hub.test", enums.UserTypeSurveyor, enums.UserStatusVerified, now.Add(time.Minute))
	seedUser(t, db, "sp@hub.test", enums.UserTypeSurveyor, enums.UserStatusPending, now)
	seedUser(t, db, "pa@hub.test", enums.UserTypeProcessor, enums.UserStatusActive, now)
	seedUser(t, db, "admin@hub.test", enums.UserTypeAdmin, enums.UserStatusActive, now)

	found, total, err := repo.SearchDirectory(ctx, "", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, found, 2)
	assert.Equal(t, verifiedSurveyor.ID, found[0].ID, "newest first")
	assert.Equal(t, pendingLandowner.ID, found[1].ID, "landowners visible regardless of status")
}

func TestRepositorySearchDirectoryQuery(t *testing.T) {
	db := setupUsersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	cebu := seedUser(t, db, "cebu@hub.test", enums.UserTypeLandowner, enums.UserStatusActive, now)
	city := "Cebu City"
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", cebu.ID).Update("city", city).Error)
	seedUser(t, db, "davao@hub.test", enums.UserTypeLandowner, enums.UserStatusActive, now)

	found, total, err := repo.SearchDirectory(ctx, "cebu", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, found, 1)
	assert.Equal(t, cebu.ID, found[0].ID)

	// matches the user_type column too
	_, total, err = repo.SearchDirectory(ctx, "LANDOWNER", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestRepositorySearchDirectoryPagination(t *testing.T) {
	db := setupUsersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 8; i++ {
		seedUser(t, db, fmt.Sprintf("u%d@hub.test", i), enums.UserTypeLandowner, enums.UserStatusActive, base.Add(time.Duration(i)*time.Minute))
	}

	found, total, err := repo.SearchDirectory(ctx, "", 6, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(8), total)
	assert.Len(t, found, 6)

	found, total, err = repo.SearchDirectory(ctx, "", 6, 6)
	require.NoError(t, err)
	assert.Equal(t, int64(8), total)
	assert.Len(t, found, 2)
}

func TestRepositoryCountByTypeAndStatus(t *testing.T) {
	db := setupUsersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	seedUser(t, db, "l1@hub.test", enums.UserTypeLandowner, enums.UserStatusActive, now)
	seedUser(t, db, "l2@hub.test", enums.UserTypeLandowner, enums.UserStatusVerified, now)
	seedUser(t, db, "s1@hub.test", enums.UserTypeSurveyor, enums.UserStatusVerified, now)
	seedUser(t, db, "a1@hub.test", enums.UserTypeAdmin, enums.UserStatusActive, now)

	counts, err := repo.CountByTypeAndStatus(ctx, enums.DirectoryUserTypes)
	require.NoError(t, err)

	assert.Equal(t, int64(2), counts[enums.UserTypeLandowner].Total)
	assert.Equal(t, int64(1), counts[enums.UserTypeLandowner].Verified)
	assert.Equal(t, int64(1), counts[enums.UserTypeSurveyor].Total)
	assert.Equal(t, int64(1), counts[enums.UserTypeSurveyor].Verified)
	assert.Zero(t, counts[enums.UserTypeProcessor].Total)
	assert.NotContains(t, counts, enums.UserTypeAdmin)
}

func TestRepositoryListPending(t *testing.T) {
	db := setupUsersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Hour)
	second := seedUser(t, db, "second@hub.test", enums.UserTypeProcessor, enums.UserStatusPending, base.Add(time.Minute))
	first := seedUser(t, db, "first@hub.test", enums.UserTypeLandowner, enums.UserStatusPending, base)
	seedUser(t, db, "active@hub.test", enums.UserTypeSurveyor, enums.UserStatusActive, base)

	found, err := repo.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, first.ID, found[0].ID)
	assert.Equal(t, second.ID, found[1].ID)
}

func TestRepositoryApproveIfPending(t *testing.T) {
	db := setupUsersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	pending := seedUser(t, db, "pending@hub.test", enums.UserTypeLandowner, enums.UserStatusPending, now)

	won, err := repo.ApproveIfPending(ctx, pending.ID, now)
	require.NoError(t, err)
	assert.True(t, won)

	updated, err := repo.FindByID(ctx, pending.ID)
	require.NoError(t, err)
	assert.Equal(t, enums.UserStatusActive, updated.Status)

	// second attempt loses the guarded update
	won, err = repo.ApproveIfPending(ctx, pending.ID, now)
	require.NoError(t, err)
	assert.False(t, won)

	won, err = repo.ApproveIfPending(ctx, uuid.New(), now)
	require.NoError(t, err)
	assert.False(t, won)
}

func TestRepositoryUpdateLastLogin(t *testing.T) {
	db := setupUsersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "login@hub.test", enums.UserTypeAdmin, enums.UserStatusActive, time.Now().UTC())
	require.Nil(t, user.LastLoginAt)

	at := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, repo.UpdateLastLogin(ctx, user.ID, at))

	updated, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.LastLoginAt)
	assert.WithinDuration(t, at, *updated.LastLoginAt, time.Second)
}
