package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"foodgram-backend/internal/shared/middleware"
	"foodgram-backend/internal/shared/response"
	"foodgram-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c)
		setupUserRoutes(v1, c)
		setupTagRoutes(v1, c)
		setupIngredientRoutes(v1, c)
		setupRecipeRoutes(v1, c)
	}

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.UserHandler.Register)
		auth.POST("/login", c.UserHandler.Login)
		auth.POST("/refresh", c.UserHandler.Refresh)
	}
}

// ========================================
// USER ROUTES
// ========================================
func setupUserRoutes(v1 *gin.RouterGroup, c *container.Container) {
	users := v1.Group("/users")
	{
		// Reads work anonymously, is_subscribed comes back false
		users.GET("", middleware.OptionalAuthMiddleware(c.JWTManager), c.UserHandler.ListUsers)
		users.GET("/:id", middleware.OptionalAuthMiddleware(c.JWTManager), c.UserHandler.GetProfile)

		authed := users.Group("")
		authed.Use(middleware.AuthMiddleware(c.JWTManager))
		{
			authed.GET("/me", c.UserHandler.GetMe)
			authed.POST("/set_password", c.UserHandler.SetPassword)
			authed.GET("/subscriptions", c.SubscriptionHandler.ListSubscriptions)
			authed.POST("/:id/subscribe", c.SubscriptionHandler.Subscribe)
			authed.DELETE("/:id/subscribe", c.SubscriptionHandler.Unsubscribe)
		}
	}
}

// ========================================
// TAG ROUTES
// ========================================
func setupTagRoutes(v1 *gin.RouterGroup, c *container.Container) {
	tags := v1.Group("/tags")
	{
		tags.GET("", c.TagHandler.List)
		tags.GET("/:id", c.TagHandler.GetByID)
	}
}

// ========================================
// INGREDIENT ROUTES
// ========================================
func setupIngredientRoutes(v1 *gin.RouterGroup, c *container.Container) {
	ingredients := v1.Group("/ingredients")
	{
		ingredients.GET("", c.IngredientHandler.List)
		ingredients.GET("/:id", c.IngredientHandler.GetByID)
	}
}

// ========================================
// RECIPE ROUTES
// ========================================
func setupRecipeRoutes(v1 *gin.RouterGroup, c *container.Container) {
	recipes := v1.Group("/recipes")
	{
		// Reads work anonymously, viewer-relative flags come back false
		recipes.GET("", middleware.OptionalAuthMiddleware(c.JWTManager), c.RecipeHandler.List)
		recipes.GET("/:id", middleware.OptionalAuthMiddleware(c.JWTManager), c.RecipeHandler.GetByID)

		authed := recipes.Group("")
		authed.Use(middleware.AuthMiddleware(c.JWTManager))
		{
			authed.POST("", c.RecipeHandler.Create)
			authed.PATCH("/:id", c.RecipeHandler.Update)
			authed.DELETE("/:id", c.RecipeHandler.Delete)

			authed.POST("/:id/favorite", c.FavoriteHandler.Add)
			authed.DELETE("/:id/favorite", c.FavoriteHandler.Remove)

			authed.GET("/download_shopping_cart", c.CartHandler.DownloadShoppingList)
			authed.POST("/:id/shopping_cart", c.CartHandler.Add)
			authed.DELETE("/:id/shopping_cart", c.CartHandler.Remove)
		}
	}
}

// healthCheckHandler reports liveness plus database reachability
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := "ok"
		dbStatus := "ok"
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			status = "degraded"
			dbStatus = err.Error()
		}

		response.Success(ctx, http.StatusOK, gin.H{
			"status":   status,
			"version":  c.Config.App.Version,
			"database": dbStatus,
		})
	}
}
