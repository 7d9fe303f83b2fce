package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bibleapp/backend/internal/handler"
	"bibleapp/backend/internal/middleware"
	"bibleapp/backend/internal/service"
)

type Handlers struct {
	Auth        *handler.AuthHandler
	Plans       *handler.PlanHandler
	Grass       *handler.GrassHandler
	Annotations *handler.AnnotationHandler
	Settings    *handler.SettingsHandler
	Backup      *handler.BackupHandler
	Books       *handler.BookHandler
}

func New(authService *service.AuthService, h Handlers, corsOrigins []string) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery(), middleware.CORS(corsOrigins))

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group("/api")
	auth := api.Group("/auth")
	auth.POST("/register", h.Auth.Register)
	auth.POST("/login", h.Auth.Login)

	protected := api.Group("")
	protected.Use(middleware.Auth(authService))

	protected.GET("/books", h.Books.List)

	plans := protected.Group("/plans")
	plans.POST("", h.Plans.Create)
	plans.GET("", h.Plans.List)
	plans.GET("/:id", h.Plans.Get)
	plans.PUT("/:id", h.Plans.UpdateMetadata)
	plans.PUT("/:id/goal-status", h.Plans.UpdateGoalStatus)
	plans.DELETE("/:id", h.Plans.Delete)

	grass := protected.Group("/grass")
	grass.GET("/grid/:year", h.Grass.YearGrid)
	grass.GET("/:date", h.Grass.GetDay)
	grass.PUT("/:date/books/:bookCode", h.Grass.ReplaceBookEntry)

	favorites := protected.Group("/favorites")
	favorites.POST("", h.Annotations.AddFavorite)
	favorites.GET("", h.Annotations.ListFavorites)
	favorites.DELETE("/:id", h.Annotations.RemoveFavorite)

	memos := protected.Group("/memos")
	memos.POST("", h.Annotations.AddMemo)
	memos.GET("", h.Annotations.ListMemos)
	memos.PUT("/:id", h.Annotations.UpdateMemo)
	memos.DELETE("/:id", h.Annotations.RemoveMemo)

	prayers := protected.Group("/prayers")
	prayers.POST("", h.Annotations.AddPrayer)
	prayers.GET("", h.Annotations.ListPrayers)
	prayers.PUT("/:id", h.Annotations.UpdatePrayer)
	prayers.DELETE("/:id", h.Annotations.RemovePrayer)

	settings := protected.Group("/settings")
	settings.GET("", h.Settings.Get)
	settings.PUT("", h.Settings.Update)

	backup := protected.Group("/backup")
	backup.GET("/export", h.Backup.Export)
	backup.POST("/import", h.Backup.Import)

	return engine
}
