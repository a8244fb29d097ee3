// Package handler はwinsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"walloffame_backend/internal/api"
	"walloffame_backend/internal/feature/wins/domain/entity"
	"walloffame_backend/internal/feature/wins/transport/http/dto"
	"walloffame_backend/internal/feature/wins/usecase"
	jwtmw "walloffame_backend/internal/platform/jwt"
)

// WinsUsecase はWinレコード操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type WinsUsecase interface {
	// Create は認証済みユーザーのWinを作成します。
	Create(ctx context.Context, ownerID uint, in usecase.CreateWinInput) (*entity.Win, error)
	// ListAll は全てのWinを新しい順で返します。
	ListAll(ctx context.Context) ([]entity.Win, error)
	// ListByOwner は指定されたオーナーのWinを新しい順で返します。
	ListByOwner(ctx context.Context, ownerID uint) ([]entity.Win, error)
	// Update はオーナー本人によるWinの部分更新を行います。
	Update(ctx context.Context, winID, callerID uint, in usecase.UpdateWinInput) error
	// Delete はオーナー本人によるWinの削除を行います。
	Delete(ctx context.Context, winID, callerID uint) error
}

// WinsHandler はWinレコード操作のHTTPリクエストを処理します。
type WinsHandler struct {
	wins WinsUsecase
}

// NewWinsHandler はWinsHandlerの新しいインスタンスを生成します。
func NewWinsHandler(wins WinsUsecase) *WinsHandler {
	return &WinsHandler{wins: wins}
}

// ListAll は公開ウォールのWin一覧を返します。認証不要です。
//
// エンドポイント: GET /api/wins
func (h *WinsHandler) ListAll(c *gin.Context) {
	wins, err := h.wins.ListAll(c.Request.Context())
	if err != nil {
		slog.Error("failed to fetch wins", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch wins"})
		return
	}
	c.JSON(http.StatusOK, toWinResponses(wins))
}

// ListMine は認証済みユーザー自身のWin一覧を返します。
//
// エンドポイント: GET /api/wins/me
func (h *WinsHandler) ListMine(c *gin.Context) {
	callerID := c.GetUint(jwtmw.ContextUserID)

	wins, err := h.wins.ListByOwner(c.Request.Context(), callerID)
	if err != nil {
		slog.Error("failed to fetch own wins", "error", err, "user_id", callerID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch wins"})
		return
	}
	c.JSON(http.StatusOK, toWinResponses(wins))
}

// Create は新しいWinを作成します。
// JSONボディに加え、multipart/form-dataでの証拠画像添付（フィールド名: image、最大10MB）に対応します。
//
// エンドポイント: POST /api/wins
func (h *WinsHandler) Create(c *gin.Context) {
	callerID := c.GetUint(jwtmw.ContextUserID)

	in, ok := h.bindCreateInput(c)
	if !ok {
		return
	}

	win, err := h.wins.Create(c.Request.Context(), callerID, in)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrTitleTooShort):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Title must be at least 3 characters"})
		case errors.Is(err, usecase.ErrImageTooLarge):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Image exceeds maximum size of 10MB"})
		case errors.Is(err, usecase.ErrImageRejected):
			slog.Warn("win image rejected by moderation", "user_id", callerID)
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Image was rejected by content moderation"})
		case errors.Is(err, usecase.ErrImageUploadFailed):
			slog.Error("image upload failed", "error", err, "user_id", callerID)
			c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "Failed to store image"})
		default:
			slog.Error("failed to create win", "error", err, "user_id", callerID)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create win"})
		}
		return
	}

	slog.Info("win created", "win_id", win.ID, "user_id", callerID)
	c.JSON(http.StatusCreated, toWinResponse(win))
}

// Update はWinの部分更新を行います。省略されたフィールドは変更されません。
//
// エンドポイント: PUT /api/wins/:id
func (h *WinsHandler) Update(c *gin.Context) {
	callerID := c.GetUint(jwtmw.ContextUserID)

	winID, ok := parseWinID(c)
	if !ok {
		return
	}

	var req dto.UpdateWinReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("update validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	in := usecase.UpdateWinInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		ProofURL:    req.ProofURL,
	}

	if err := h.wins.Update(c.Request.Context(), winID, callerID, in); err != nil {
		h.respondMutationError(c, err, winID, callerID, "update")
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Win updated"})
}

// Delete はWinを削除します。
//
// エンドポイント: DELETE /api/wins/:id
func (h *WinsHandler) Delete(c *gin.Context) {
	callerID := c.GetUint(jwtmw.ContextUserID)

	winID, ok := parseWinID(c)
	if !ok {
		return
	}

	if err := h.wins.Delete(c.Request.Context(), winID, callerID); err != nil {
		h.respondMutationError(c, err, winID, callerID, "delete")
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Win deleted"})
}

// bindCreateInput はJSONまたはmultipart/form-dataのリクエストからCreateWinInputを構築します。
// エラー時はレスポンス済みとしてfalseを返します。
func (h *WinsHandler) bindCreateInput(c *gin.Context) (usecase.CreateWinInput, bool) {
	if !strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		var req dto.CreateWinReq
		if err := c.ShouldBindJSON(&req); err != nil {
			slog.Warn("create validation failed", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
			return usecase.CreateWinInput{}, false
		}
		return usecase.CreateWinInput{
			Title:       req.Title,
			Description: req.Description,
			Category:    req.Category,
			ProofURL:    req.ProofURL,
		}, true
	}

	in := usecase.CreateWinInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Category:    c.PostForm("category"),
	}

	file, err := c.FormFile("image")
	if err != nil {
		// 画像は任意。フォームに無ければJSONパスと同じ扱い。
		return in, true
	}

	f, err := file.Open()
	if err != nil {
		slog.Error("画像ファイルのオープンに失敗", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to read image"})
		return usecase.CreateWinInput{}, false
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("画像ファイルのクローズに失敗", "error", err)
		}
	}()

	imageData, err := io.ReadAll(f)
	if err != nil {
		slog.Error("画像データの読み取りに失敗", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to read image"})
		return usecase.CreateWinInput{}, false
	}

	in.Image = imageData
	in.ImageMIME = file.Header.Get("Content-Type")
	return in, true
}

// respondMutationError はupdate/deleteの失敗をHTTPステータスに対応づけます。
func (h *WinsHandler) respondMutationError(c *gin.Context, err error, winID, callerID uint, op string) {
	switch {
	case errors.Is(err, usecase.ErrWinNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Win not found"})
	case errors.Is(err, usecase.ErrNotOwner):
		slog.Warn("ownership check failed", "op", op, "win_id", winID, "user_id", callerID)
		c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "Not your win"})
	case errors.Is(err, usecase.ErrTitleTooShort):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Title must be at least 3 characters"})
	default:
		slog.Error("win mutation failed", "op", op, "error", err, "win_id", winID, "user_id", callerID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to " + op + " win"})
	}
}

// parseWinID はパスパラメータのWin IDを検証します。
// 不正な形式の場合は400を返却済みとしてfalseを返します。
func parseWinID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid win id"})
		return 0, false
	}
	return uint(id), true
}

// toWinResponse はWinエンティティを公開ビューに変換します。
func toWinResponse(w *entity.Win) api.WinResponse {
	return api.WinResponse{
		Id:          int64(w.ID),
		Title:       w.Title,
		Description: w.Description,
		Category:    w.Category,
		ProofUrl:    w.ProofURL,
		Owner:       api.OwnerResponse{Id: int64(w.OwnerID), Name: w.OwnerName},
		CreatedAt:   w.CreatedAt,
	}
}

func toWinResponses(wins []entity.Win) []api.WinResponse {
	out := make([]api.WinResponse, 0, len(wins))
	for i := range wins {
		out = append(out, toWinResponse(&wins[i]))
	}
	return out
}
