package router

import (
	"net/http"
	"time"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/auth"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/config"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/controllers"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/database"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/middleware"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Dependencies are the handles every route is built from
type Dependencies struct {
	Config *config.Config
	DB     *gorm.DB
	Logger *logrus.Logger
}

// New builds the gin engine with middleware and every route registered
func New(deps Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.Logger(deps.Logger),
		gin.CustomRecovery(recoveryHandler(deps.Logger)),
		middleware.Metrics(),
		cors.New(corsConfig(deps.Config.CORSOrigins)),
	)

	registerRoutes(router, deps)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, models.NewErrorResponse("Not found"))
	})
	return router
}

func registerRoutes(router *gin.Engine, deps Dependencies) {
	restaurantController := controllers.NewRestaurantController(services.NewRestaurantService(deps.DB))
	pizzaController := controllers.NewPizzaController(services.NewPizzaService(deps.DB))
	restaurantPizzaController := controllers.NewRestaurantPizzaController(services.NewRestaurantPizzaService(deps.DB))
	clientController := controllers.NewClientController(services.NewClientService(deps.DB))
	healthController := controllers.NewHealthController(func() error { return database.Ping(deps.DB) })
	oauthService := auth.NewOAuthService(deps.DB, deps.Config.JWTSecret)

	// System routes
	router.GET("/health", healthController.Check)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.POST("/oauth/token", oauthService.HandleToken)

	// Public API
	router.GET("/restaurants", restaurantController.GetAllRestaurants)
	router.GET("/restaurants/:id", restaurantController.GetRestaurantByID)
	router.DELETE("/restaurants/:id", restaurantController.DeleteRestaurant)
	router.GET("/pizzas", pizzaController.GetAllPizzas)
	router.POST("/restaurant_pizzas", restaurantPizzaController.CreateRestaurantPizza)

	// Admin API, requires an access token of an admin owned client
	admin := router.Group("/api/v1/admin")
	admin.Use(middleware.OAuth2Auth([]byte(deps.Config.JWTSecret)), middleware.RequireRole(models.RoleAdmin))
	{
		admin.POST("/restaurants", restaurantController.CreateRestaurant)
		admin.POST("/pizzas", pizzaController.CreatePizza)
		admin.DELETE("/pizzas/:id", pizzaController.DeletePizza)

		admin.GET("/clients", clientController.ListClients)
		admin.POST("/clients", clientController.CreateClient)
		admin.DELETE("/clients/:id", clientController.DeleteClient)
	}
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

func recoveryHandler(logger *logrus.Logger) gin.RecoveryFunc {
	return func(c *gin.Context, recovered any) {
		logger.WithFields(logrus.Fields{
			"request_id": c.GetString(middleware.ContextRequestID),
			"panic":      recovered,
		}).Error("Recovered from panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError, models.NewErrorResponse("Internal server error"))
	}
}
