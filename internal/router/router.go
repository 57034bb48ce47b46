package router

import (
	"net/http"
	"strings"
	"time"

	"recipe-app/internal/api"
	"recipe-app/internal/cache"
	"recipe-app/internal/database"
	"recipe-app/internal/handler"
	"recipe-app/internal/handler/recipe"
	"recipe-app/internal/handler/users"
	"recipe-app/internal/middleware"
	"recipe-app/internal/store"
	"recipe-app/internal/worker"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	_ "recipe-app/docs" // 引入 swag 產出的 docs
)

// Options 是路由層需要的設定
type Options struct {
	TokenTTL          time.Duration
	PrincipalCacheTTL time.Duration
	// TokenRateLimit 是 token endpoint 每個 IP 每秒可用的請求數
	TokenRateLimit float64
	TokenRateBurst int
}

func tokenRateLimiter(opts Options) echo.MiddlewareFunc {
	return echomw.RateLimiterWithConfig(echomw.RateLimiterConfig{
		Store: echomw.NewRateLimiterMemoryStoreWithConfig(echomw.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(opts.TokenRateLimit),
			Burst:     opts.TokenRateBurst,
			ExpiresIn: 3 * time.Minute,
		}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusForbidden, api.ErrorResponse{Message: "unable to identify client"})
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return c.JSON(http.StatusTooManyRequests, api.ErrorResponse{Message: "Request was throttled."})
		},
	})
}

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, cch cache.Cache, wp worker.Pool, opts Options) {
	e.Validator = api.NewValidator()

	// 所有 API 路徑統一以 / 結尾
	e.Pre(echomw.AddTrailingSlashWithConfig(echomw.TrailingSlashConfig{
		Skipper: func(c echo.Context) bool {
			return strings.HasPrefix(c.Request().URL.Path, "/swagger")
		},
	}))

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	apiGroup := e.Group("/api")
	apiGroup.GET("/ping/", handler.PingHandler(db, cch))

	auth := middleware.RequireAuth(db, cch, opts.PrincipalCacheTTL)

	apiUser := apiGroup.Group("/user")
	apiUser.POST("/create/", users.CreateUserHandler(db))
	apiUser.POST("/token/", users.CreateTokenHandler(db, cch, wp, users.TokenConfig{
		TTL:               opts.TokenTTL,
		PrincipalCacheTTL: opts.PrincipalCacheTTL,
	}), tokenRateLimiter(opts))
	apiUser.GET("/me/", users.GetMeHandler(db), auth)
	apiUser.PATCH("/me/", users.PatchMeHandler(db, cch), auth)
	apiUser.PUT("/me/", users.PutMeHandler(db, cch), auth)

	apiRecipe := apiGroup.Group("/recipe")
	apiRecipe.GET("/tags/", recipe.ListAttributesHandler(db, store.Tags), auth)
	apiRecipe.POST("/tags/", recipe.CreateAttributeHandler(db, store.Tags), auth)
	apiRecipe.GET("/ingredients/", recipe.ListAttributesHandler(db, store.Ingredients), auth)
	apiRecipe.POST("/ingredients/", recipe.CreateAttributeHandler(db, store.Ingredients), auth)
}
