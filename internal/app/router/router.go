package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "walloffame_backend/internal/feature/auth/transport/handler"
	winshandler "walloffame_backend/internal/feature/wins/transport/handler"
	"walloffame_backend/internal/platform/http/handler"
	jwtmw "walloffame_backend/internal/platform/jwt"
)

func NewRouter(authHandler *authhandler.AuthHandler, wins *winshandler.WinsHandler) *gin.Engine {
	r := gin.Default()

	// フロントエンドは別オリジンのSPAのため全許可
	r.Use(cors.Default())

	// 導通確認用
	r.GET("/healthz", handler.Health)

	api := r.Group("/api")

	// 認証不要
	// 新規ユーザー登録（JWT発行・オートログイン）
	api.POST("/auth/register", authHandler.Register)
	// ログイン（JWT発行）
	api.POST("/auth/login", authHandler.Login)
	// 公開ユーザー一覧
	api.GET("/users", authHandler.ListUsers)
	// 公開ウォール
	api.GET("/wins", wins.ListAll)

	// 認証必須のルート
	// jwtmw.AuthRequired() ミドルウェアを適用
	// → リクエストヘッダーに JWT が必要になる
	auth := api.Group("/")
	auth.Use(jwtmw.AuthRequired())
	{
		auth.GET("/wins/me", wins.ListMine)
		auth.POST("/wins", wins.Create)
		auth.PUT("/wins/:id", wins.Update)
		auth.DELETE("/wins/:id", wins.Delete)
	}

	return r
}
