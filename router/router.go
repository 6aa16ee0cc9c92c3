package router

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/cafefausse/cafe-fausse/config"
	"github.com/cafefausse/cafe-fausse/controllers"
	"github.com/cafefausse/cafe-fausse/middlewares"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares(cfg.CORSAllowOrigins))
	r.Use(middlewares.LoggerMiddleware())

	reservationCtrl := controllers.NewReservationController(db, cfg.TotalTables)
	newsletterCtrl := controllers.NewNewsletterController(db)
	menuCtrl := controllers.NewMenuController(cfg.MenuPath)
	adminCtrl := controllers.NewAdminController(db, cfg.AdminUsername, cfg.AdminPassword)
	userCtrl := controllers.NewUserController(db)

	// ----------------------------------------------------------------
	//                      PUBLIC API ROUTES
	// ----------------------------------------------------------------
	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		api.POST("/reservations", reservationCtrl.CreateReservation)
		api.POST("/newsletter", newsletterCtrl.Subscribe)
		api.GET("/menu", menuCtrl.GetMenu)
		api.POST("/menuchange", menuCtrl.ChangeMenuItem)

		// Hardcoded-credential admin login stub
		api.POST("/admin", adminCtrl.Login)
	}

	// Rate limiter for staff login/register
	authGroup := api.Group("/auth")
	authGroup.Use(middlewares.NewStrictRateLimiter())
	{
		authGroup.POST("/register", userCtrl.Register)
		authGroup.POST("/login", userCtrl.Login)
	}

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	adminGroup := api.Group("/admin")
	adminGroup.Use(middlewares.AuthMiddleware())
	{
		adminGroup.GET("/reservations", reservationCtrl.ListReservations)
		adminGroup.GET("/customers", adminCtrl.ListCustomers)
		adminGroup.GET("/stats", adminCtrl.GetDashboardStats)
		adminGroup.GET("/profile", userCtrl.GetProfile)
		adminGroup.GET("/users", userCtrl.GetAllUsers)
	}

	// SPA static serving: if a built frontend is present, serve it
	// with an index.html fallback for unknown non-API routes.
	distDir := filepath.Join("frontend", "dist")
	if _, err := os.Stat(distDir); err == nil {
		r.Static("/assets", filepath.Join(distDir, "assets"))
		r.GET("/", func(c *gin.Context) {
			c.File(filepath.Join(distDir, "index.html"))
		})
		r.NoRoute(func(c *gin.Context) {
			if strings.HasPrefix(c.Request.URL.Path, "/api/") {
				c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
				return
			}
			c.File(filepath.Join(distDir, "index.html"))
		})
	}

	return r
}
