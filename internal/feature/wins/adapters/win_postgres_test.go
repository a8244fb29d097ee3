package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authentity "walloffame_backend/internal/feature/auth/domain/entity"
	"walloffame_backend/internal/feature/wins/domain/entity"
	"walloffame_backend/internal/feature/wins/usecase"
)

// setupTestDB はテスト用のインメモリSQLiteデータベースを作成し、ユーザーをシードします。
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(&authentity.User{}, &entity.Win{})
	require.NoError(t, err)

	users := []authentity.User{
		{Email: "alice@x.com", Name: "Alice", Password: "h"},
		{Email: "bob@x.com", Name: "Bob", Password: "h"},
	}
	require.NoError(t, db.Create(&users).Error)

	return db
}

func TestWinPostgres_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewWinPostgres(db)
	ctx := context.Background()

	w := &entity.Win{OwnerID: 1, Title: "Ran 5k", Description: "finally", Category: "fitness"}
	err := repo.Create(ctx, w)

	require.NoError(t, err)
	assert.NotZero(t, w.ID)
	assert.False(t, w.CreatedAt.IsZero())
}

func TestWinPostgres_FindAll(t *testing.T) {
	db := setupTestDB(t)
	repo := NewWinPostgres(db)
	ctx := context.Background()

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	seed := []entity.Win{
		{OwnerID: 1, Title: "Oldest", Category: "general", CreatedAt: base},
		{OwnerID: 2, Title: "Middle", Category: "general", CreatedAt: base.Add(time.Hour)},
		{OwnerID: 1, Title: "Newest", Category: "general", CreatedAt: base.Add(2 * time.Hour)},
	}
	for i := range seed {
		require.NoError(t, repo.Create(ctx, &seed[i]))
	}

	wins, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, wins, 3)

	// 新しい順
	assert.Equal(t, "Newest", wins[0].Title)
	assert.Equal(t, "Middle", wins[1].Title)
	assert.Equal(t, "Oldest", wins[2].Title)

	// オーナー表示名はJOINで付加される
	assert.Equal(t, "Alice", wins[0].OwnerName)
	assert.Equal(t, "Bob", wins[1].OwnerName)
}

func TestWinPostgres_FindAll_TiesBrokenByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewWinPostgres(db)
	ctx := context.Background()

	at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	first := &entity.Win{OwnerID: 1, Title: "First", Category: "general", CreatedAt: at}
	second := &entity.Win{OwnerID: 1, Title: "Second", Category: "general", CreatedAt: at}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	wins, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, wins, 2)

	// 同時刻はID降順で後から作られた方が先頭
	assert.Equal(t, "Second", wins[0].Title)
	assert.Equal(t, "First", wins[1].Title)
}

func TestWinPostgres_FindByOwner(t *testing.T) {
	db := setupTestDB(t)
	repo := NewWinPostgres(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.Win{OwnerID: 1, Title: "Alice win", Category: "general"}))
	require.NoError(t, repo.Create(ctx, &entity.Win{OwnerID: 2, Title: "Bob win", Category: "general"}))
	require.NoError(t, repo.Create(ctx, &entity.Win{OwnerID: 1, Title: "Alice again", Category: "general"}))

	wins, err := repo.FindByOwner(ctx, 1)
	require.NoError(t, err)
	require.Len(t, wins, 2)
	for _, w := range wins {
		assert.Equal(t, uint(1), w.OwnerID)
		assert.Equal(t, "Alice", w.OwnerName)
	}
}

func TestWinPostgres_FindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewWinPostgres(db)
	ctx := context.Background()

	seed := &entity.Win{OwnerID: 1, Title: "Ran 5k", Category: "general"}
	require.NoError(t, repo.Create(ctx, seed))

	t.Run("found", func(t *testing.T) {
		got, err := repo.FindByID(ctx, seed.ID)
		require.NoError(t, err)
		assert.Equal(t, "Ran 5k", got.Title)
		assert.Equal(t, uint(1), got.OwnerID)
	})

	t.Run("not found", func(t *testing.T) {
		got, err := repo.FindByID(ctx, 999)
		assert.ErrorIs(t, err, usecase.ErrWinNotFound)
		assert.Nil(t, got)
	})
}

func TestWinPostgres_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewWinPostgres(db)
	ctx := context.Background()

	seed := &entity.Win{OwnerID: 1, Title: "Ran 5k", Description: "old", Category: "general"}
	require.NoError(t, repo.Create(ctx, seed))

	seed.Title = "Ran 10k"
	seed.Description = "even further"
	require.NoError(t, repo.Update(ctx, seed))

	got, err := repo.FindByID(ctx, seed.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ran 10k", got.Title)
	assert.Equal(t, "even further", got.Description)
}

func TestWinPostgres_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewWinPostgres(db)
	ctx := context.Background()

	seed := &entity.Win{OwnerID: 1, Title: "Ran 5k", Category: "general"}
	require.NoError(t, repo.Create(ctx, seed))

	require.NoError(t, repo.Delete(ctx, seed.ID))

	_, err := repo.FindByID(ctx, seed.ID)
	assert.ErrorIs(t, err, usecase.ErrWinNotFound)
}
