// Package adapters はwinsフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"walloffame_backend/internal/feature/wins/domain/entity"
	"walloffame_backend/internal/feature/wins/usecase"
)

// winPostgres はWinRepositoryインターフェースのPostgres実装です。
// GORMを使用してデータベース操作を行います。
type winPostgres struct {
	db *gorm.DB
}

// winPostgresがWinRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.WinRepository = (*winPostgres)(nil)

// NewWinPostgres は指定されたgorm.DB接続でwinPostgresの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタです。
func NewWinPostgres(db *gorm.DB) *winPostgres {
	return &winPostgres{db: db}
}

// Create はWinをデータベースに追加します。
func (r *winPostgres) Create(ctx context.Context, w *entity.Win) error {
	return r.db.WithContext(ctx).Create(w).Error
}

// listQuery はオーナー表示名付きのWin一覧クエリを構築します。
// 並び順は作成日時の降順、同時刻はIDの降順で安定させます。
func (r *winPostgres) listQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("wins").
		Select("wins.*, users.name AS owner_name").
		Joins("JOIN users ON users.id = wins.owner_id").
		Order("wins.created_at DESC, wins.id DESC")
}

// FindAll は全てのWinを新しい順で取得します。
func (r *winPostgres) FindAll(ctx context.Context) ([]entity.Win, error) {
	var wins []entity.Win
	if err := r.listQuery(ctx).Scan(&wins).Error; err != nil {
		return nil, err
	}
	return wins, nil
}

// FindByOwner は指定されたオーナーのWinを新しい順で取得します。
func (r *winPostgres) FindByOwner(ctx context.Context, ownerID uint) ([]entity.Win, error) {
	var wins []entity.Win
	if err := r.listQuery(ctx).Where("wins.owner_id = ?", ownerID).Scan(&wins).Error; err != nil {
		return nil, err
	}
	return wins, nil
}

// FindByID はIDでWinを取得します。
// Winが存在しない場合、usecase.ErrWinNotFoundを返します。
func (r *winPostgres) FindByID(ctx context.Context, id uint) (*entity.Win, error) {
	var w entity.Win
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&w).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrWinNotFound
		}
		return nil, err
	}
	return &w, nil
}

// Update はWinを上書き保存します。最後の書き込みが優先されます。
func (r *winPostgres) Update(ctx context.Context, w *entity.Win) error {
	return r.db.WithContext(ctx).Save(w).Error
}

// Delete は指定されたIDのWinを削除します。
func (r *winPostgres) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Win{}, id).Error
}
