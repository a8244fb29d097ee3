// Package usecase はwinsフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"unicode/utf8"

	"walloffame_backend/internal/feature/wins/domain/entity"
)

const (
	// minTitleLength はタイトルの最低文字数（rune数）を定義します。
	minTitleLength = 3

	// MaxImageSize は証拠画像アップロードの最大サイズ（10MB）です。
	MaxImageSize = 10 * 1024 * 1024

	// DefaultCategory はカテゴリ未指定時のデフォルト値です。
	DefaultCategory = "general"
)

// WinRepository はWinエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type WinRepository interface {
	// Create は新しいWinをストレージに永続化します。
	Create(ctx context.Context, win *entity.Win) error

	// FindAll は全てのWinを作成日時の降順（新しい順）で取得します。
	// 各Winにはオーナーの表示名が付加されます。
	FindAll(ctx context.Context) ([]entity.Win, error)

	// FindByOwner は指定されたオーナーのWinを作成日時の降順で取得します。
	FindByOwner(ctx context.Context, ownerID uint) ([]entity.Win, error)

	// FindByID は指定されたIDに一致するWinを取得します。
	// Winが存在しない場合、ErrWinNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.Win, error)

	// Update は既存のWinを上書き保存します。
	Update(ctx context.Context, win *entity.Win) error

	// Delete は指定されたIDのWinを削除します。
	Delete(ctx context.Context, id uint) error
}

// ImageStore は画像バイナリを永続的な公開URLに変換する外部アセットホスティングを抽象化します。
type ImageStore interface {
	// Upload は画像データをアップロードし、公開URLを返します。
	Upload(ctx context.Context, data []byte, mimeType string) (string, error)
}

// ImageModerator はアップロード画像のコンテンツモデレーションを抽象化します。
type ImageModerator interface {
	// Moderate は画像が掲載可能かを検査し、不適切な場合はErrImageRejectedを返します。
	Moderate(ctx context.Context, data []byte) error
}

// CreateWinInput はWin作成の入力です。ImageがあるときはProofURLより優先されます。
type CreateWinInput struct {
	Title       string
	Description string
	Category    string
	ProofURL    string
	Image       []byte
	ImageMIME   string
}

// UpdateWinInput は部分更新の入力です。nilのフィールドは変更されません。
type UpdateWinInput struct {
	Title       *string
	Description *string
	Category    *string
	ProofURL    *string
}

// winsUsecase はWinレコードのビジネスロジックを実装します。
type winsUsecase struct {
	wins      WinRepository
	images    ImageStore
	moderator ImageModerator // nilの場合モデレーションをスキップ
}

// NewWinsUsecase はwinsUsecaseの新しいインスタンスを生成します。
// moderatorはnil可（モデレーション無効）。
func NewWinsUsecase(wins WinRepository, images ImageStore, moderator ImageModerator) *winsUsecase {
	return &winsUsecase{
		wins:      wins,
		images:    images,
		moderator: moderator,
	}
}

// validateTitle はタイトルがWinとして掲載可能かを検証します。
func validateTitle(title string) error {
	if utf8.RuneCountInString(title) < minTitleLength {
		return ErrTitleTooShort
	}
	return nil
}

// Create は認証済みユーザーのWinを作成します。
// 画像が添付されている場合はモデレーション後にアセットホストへアップロードし、
// 返却されたURLをProofURLとして保存します。
func (u *winsUsecase) Create(ctx context.Context, ownerID uint, in CreateWinInput) (*entity.Win, error) {
	if err := validateTitle(in.Title); err != nil {
		return nil, err
	}

	category := in.Category
	if category == "" {
		category = DefaultCategory
	}

	proofURL := in.ProofURL
	if len(in.Image) > 0 {
		if len(in.Image) > MaxImageSize {
			return nil, ErrImageTooLarge
		}
		if u.moderator != nil {
			if err := u.moderator.Moderate(ctx, in.Image); err != nil {
				return nil, err
			}
		}
		url, err := u.images.Upload(ctx, in.Image, in.ImageMIME)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrImageUploadFailed, err)
		}
		proofURL = url
	}

	win := &entity.Win{
		OwnerID:     ownerID,
		Title:       in.Title,
		Description: in.Description,
		Category:    category,
		ProofURL:    proofURL,
	}
	if err := u.wins.Create(ctx, win); err != nil {
		return nil, err
	}
	return win, nil
}

// ListAll は公開ウォール用に全てのWinを新しい順で返します。
func (u *winsUsecase) ListAll(ctx context.Context) ([]entity.Win, error) {
	return u.wins.FindAll(ctx)
}

// ListByOwner は指定されたオーナーのWinを新しい順で返します。
func (u *winsUsecase) ListByOwner(ctx context.Context, ownerID uint) ([]entity.Win, error) {
	return u.wins.FindByOwner(ctx, ownerID)
}

// Update はオーナー本人によるWinの部分更新を行います。
// 呼び出し元の識別子がWinのオーナーと一致しない場合、ErrNotOwnerを返します。
// 指定されたフィールドのみを変更し、省略されたフィールドは元の値を保持します。
func (u *winsUsecase) Update(ctx context.Context, winID, callerID uint, in UpdateWinInput) error {
	win, err := u.wins.FindByID(ctx, winID)
	if err != nil {
		return err
	}

	// 所有権の検証は書き込み前に必ず行う
	if win.OwnerID != callerID {
		return ErrNotOwner
	}

	if in.Title != nil {
		if err := validateTitle(*in.Title); err != nil {
			return err
		}
		win.Title = *in.Title
	}
	if in.Description != nil {
		win.Description = *in.Description
	}
	if in.Category != nil {
		win.Category = *in.Category
	}
	if in.ProofURL != nil {
		win.ProofURL = *in.ProofURL
	}

	return u.wins.Update(ctx, win)
}

// Delete はオーナー本人によるWinの削除を行います。
// 所有権チェックはUpdateと同一です。
func (u *winsUsecase) Delete(ctx context.Context, winID, callerID uint) error {
	win, err := u.wins.FindByID(ctx, winID)
	if err != nil {
		return err
	}

	if win.OwnerID != callerID {
		return ErrNotOwner
	}

	return u.wins.Delete(ctx, win.ID)
}
