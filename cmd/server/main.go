package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"walloffame_backend/internal/app/di"
	"walloffame_backend/internal/app/router"
	authadapters "walloffame_backend/internal/feature/auth/adapters"
	authhandler "walloffame_backend/internal/feature/auth/transport/handler"
	authusecase "walloffame_backend/internal/feature/auth/usecase"
	winsadapters "walloffame_backend/internal/feature/wins/adapters"
	"walloffame_backend/internal/feature/wins/adapters/vision"
	winshandler "walloffame_backend/internal/feature/wins/transport/handler"
	winsusecase "walloffame_backend/internal/feature/wins/usecase"
	"walloffame_backend/internal/platform/cache"
	infradb "walloffame_backend/internal/platform/db"
	"walloffame_backend/internal/platform/externalapi/imgbb"
	jwtmw "walloffame_backend/internal/platform/jwt"
	infraredis "walloffame_backend/internal/platform/redis"
)

func main() {
	// 起動時設定チェック（不足はフェイルファスト）
	secret := os.Getenv(jwtmw.EnvKeyJWTSecret)
	if secret == "" {
		log.Fatalf("%s must be set", jwtmw.EnvKeyJWTSecret)
	}

	// db（DATABASE_URL未設定時は内部でフェイルファスト）
	db := infradb.OpenDB()

	// Redis（任意。無ければキャッシュなしで稼働）
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without wall cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserPostgres(db)
	winRepo := winsadapters.NewWinPostgres(db)

	// Redisキャッシュでラップ（公開ウォールのみ）
	cachedWinRepo := cache.NewCachingWallRepository(rdb, time.Minute, winRepo, "wall")

	// 画像アセットホスト
	imageStore := di.NewImageStore()
	if os.Getenv(imgbb.EnvKeyAPIKey) == "" {
		log.Println("[WARN] IMGBB_API_KEY is not set. Image uploads will fail.")
	}

	// 画像モデレーション（任意。認証情報が無ければ無効）
	var moderator winsusecase.ImageModerator
	if m, err := vision.NewSafeSearchModerator(context.Background()); err != nil {
		slog.Warn("image moderation disabled", "error", err)
	} else {
		moderator = m
		defer func() {
			if err := m.Close(); err != nil {
				slog.Warn("failed to close vision client", "error", err)
			}
		}()
	}

	// JWT
	jwtGen := jwtmw.NewGenerator(secret, jwtmw.TokenTTL)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, jwtGen)
	winsUC := winsusecase.NewWinsUsecase(cachedWinRepo, imageStore, moderator)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	winsH := winshandler.NewWinsHandler(winsUC)

	// ルータ生成
	r := router.NewRouter(authH, winsH)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
