package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"life-go/internal/config"
	"life-go/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := models.Open(config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "test.db"),
	})
	require.NoError(t, err)
	require.NoError(t, models.AutoMigrate(db))
	t.Cleanup(func() { _ = models.Close(db) })
	return db
}

func createProfile(t *testing.T, repo *ProfileRepository, age, lifeExpectancy int) *models.UserProfile {
	t.Helper()
	p := &models.UserProfile{Age: age, LifeExpectancy: lifeExpectancy}
	require.NoError(t, repo.Create(context.Background(), p))
	return p
}

func TestProfileRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewProfileRepository(newTestDB(t))

	p := createProfile(t, repo, 30, 80)
	require.NotZero(t, p.ID)

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 30, got.Age)
	assert.Equal(t, 80, got.LifeExpectancy)

	_, err = repo.GetByID(ctx, p.ID+100)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestProfileRepository_List(t *testing.T) {
	ctx := context.Background()
	repo := NewProfileRepository(newTestDB(t))
	for i := 0; i < 5; i++ {
		createProfile(t, repo, 20+i, 80)
	}

	page, total, err := repo.List(ctx, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, page, 2)

	rest, _, err := repo.List(ctx, 4, 10)
	require.NoError(t, err)
	assert.Len(t, rest, 1)
}

func TestProfileRepository_DeleteCascades(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	profiles := NewProfileRepository(db)
	level1 := NewLevel1Repository(db)
	activities := NewActivityRepository(db)

	keep := createProfile(t, profiles, 40, 80)
	drop := createProfile(t, profiles, 30, 80)

	for _, p := range []*models.UserProfile{keep, drop} {
		require.NoError(t, level1.Save(ctx,
			&models.TimeInput{UserID: p.ID, SleepHoursPerDay: 8},
			&models.ComputedResult{UserID: p.ID, RemainingYears: 50, SleepYears: 16, FreeYears: 34},
		))
		require.NoError(t, activities.Create(ctx, &models.Activity{
			UserID: p.ID, Kind: models.KindMaintenance, Name: "Exercising", HoursPerWeek: 3, IsActive: true, Source: models.SourcePreset,
		}))
	}

	require.NoError(t, profiles.Delete(ctx, drop.ID))

	_, err := profiles.GetByID(ctx, drop.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	_, err = level1.GetResultByUserID(ctx, drop.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	_, err = level1.GetInputByUserID(ctx, drop.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	dropped, err := activities.ListByUserID(ctx, drop.ID, models.KindMaintenance)
	require.NoError(t, err)
	assert.Empty(t, dropped)

	kept, err := activities.ListByUserID(ctx, keep.ID, models.KindMaintenance)
	require.NoError(t, err)
	assert.Len(t, kept, 1)
	_, err = level1.GetResultByUserID(ctx, keep.ID)
	assert.NoError(t, err)

	err = profiles.Delete(ctx, drop.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestLevel1Repository_SaveReplaces(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	p := createProfile(t, NewProfileRepository(db), 30, 80)
	repo := NewLevel1Repository(db)

	_, err := repo.GetResultByUserID(ctx, p.ID)
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	require.NoError(t, repo.Save(ctx,
		&models.TimeInput{UserID: p.ID, SleepHoursPerDay: 8, WorkDaysPerWeek: 5},
		&models.ComputedResult{UserID: p.ID, RemainingYears: 50, FreeYears: 10},
	))
	first, err := repo.GetInputByUserID(ctx, p.ID)
	require.NoError(t, err)

	require.NoError(t, repo.Save(ctx,
		&models.TimeInput{UserID: p.ID, SleepHoursPerDay: 7, WorkDaysPerWeek: 4},
		&models.ComputedResult{UserID: p.ID, RemainingYears: 50, FreeYears: 12},
	))

	input, err := repo.GetInputByUserID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, input.ID)
	assert.Equal(t, 7.0, input.SleepHoursPerDay)
	assert.Equal(t, 4, input.WorkDaysPerWeek)
	assert.True(t, first.CreatedAt.Equal(input.CreatedAt))

	result, err := repo.GetResultByUserID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 12.0, result.FreeYears)

	var count int64
	require.NoError(t, db.Model(&models.ComputedResult{}).Where("user_id = ?", p.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestActivityRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	p := createProfile(t, NewProfileRepository(db), 30, 80)
	repo := NewActivityRepository(db)

	running := &models.Activity{UserID: p.ID, Kind: models.KindMaintenance, Name: "Running", HoursPerWeek: 3, IsActive: true, Source: models.SourcePreset}
	paused := &models.Activity{UserID: p.ID, Kind: models.KindMaintenance, Name: "Piano", HoursPerWeek: 2, IsActive: false, Source: models.SourcePreset}
	scrolling := &models.Activity{UserID: p.ID, Kind: models.KindLeakage, Name: "Running", HoursPerWeek: 10, IsActive: true}
	for _, a := range []*models.Activity{running, paused, scrolling} {
		require.NoError(t, repo.Create(ctx, a))
	}

	stored, err := repo.GetByIDAndUserID(ctx, paused.ID, p.ID, models.KindMaintenance)
	require.NoError(t, err)
	assert.False(t, stored.IsActive, "false must survive the insert")

	_, err = repo.GetByIDAndUserID(ctx, scrolling.ID, p.ID, models.KindMaintenance)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound), "kind must match")

	active, err := repo.ListActiveByUserID(ctx, p.ID, models.KindMaintenance)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Running", active[0].Name)

	all, err := repo.ListByUserID(ctx, p.ID, models.KindMaintenance)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	exists, err := repo.ExistsByName(ctx, p.ID, models.KindMaintenance, "Running", 0)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByName(ctx, p.ID, models.KindMaintenance, "Running", running.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	dup := &models.Activity{UserID: p.ID, Kind: models.KindMaintenance, Name: "Running", IsActive: true}
	assert.Error(t, repo.Create(ctx, dup), "unique index on (user, kind, name)")

	stored.IsActive = true
	stored.HoursPerWeek = 0
	require.NoError(t, repo.Update(ctx, stored))
	active, err = repo.ListActiveByUserID(ctx, p.ID, models.KindMaintenance)
	require.NoError(t, err)
	assert.Len(t, active, 2)
}

func TestActivityRepository_SourceRules(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	p := createProfile(t, NewProfileRepository(db), 30, 80)
	repo := NewActivityRepository(db)

	defaulted := &models.Activity{UserID: p.ID, Kind: models.KindMaintenance, Name: "Stretching", IsActive: true}
	require.NoError(t, repo.Create(ctx, defaulted))
	assert.Equal(t, models.SourcePreset, defaulted.Source)

	custom := &models.Activity{UserID: p.ID, Kind: models.KindMaintenance, Name: "Pottery", IsActive: true, Source: models.SourceUser}
	require.NoError(t, repo.Create(ctx, custom))
	stored, err := repo.GetByIDAndUserID(ctx, custom.ID, p.ID, models.KindMaintenance)
	require.NoError(t, err)
	assert.Equal(t, models.SourceUser, stored.Source)

	bogus := &models.Activity{UserID: p.ID, Kind: models.KindMaintenance, Name: "Knitting", IsActive: true, Source: "imported"}
	assert.Error(t, repo.Create(ctx, bogus))

	tagged := &models.Activity{UserID: p.ID, Kind: models.KindLeakage, Name: "Scrolling", IsActive: true, Source: models.SourcePreset}
	assert.Error(t, repo.Create(ctx, tagged))

	var count int64
	require.NoError(t, db.Model(&models.Activity{}).Where("user_id = ?", p.ID).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}
