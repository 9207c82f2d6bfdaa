package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"foodgram-backend/internal/config"
	"foodgram-backend/internal/infrastructure/database"
	"foodgram-backend/internal/infrastructure/queue"
	"foodgram-backend/internal/infrastructure/storage"
	"foodgram-backend/internal/shared/relation"
	"foodgram-backend/pkg/jwt"

	"foodgram-backend/internal/domains/cart"
	cartHandler "foodgram-backend/internal/domains/cart/handler"
	cartRepo "foodgram-backend/internal/domains/cart/repository"
	cartService "foodgram-backend/internal/domains/cart/service"
	"foodgram-backend/internal/domains/favorite"
	favoriteHandler "foodgram-backend/internal/domains/favorite/handler"
	favoriteRepo "foodgram-backend/internal/domains/favorite/repository"
	favoriteService "foodgram-backend/internal/domains/favorite/service"
	"foodgram-backend/internal/domains/ingredient"
	ingredientHandler "foodgram-backend/internal/domains/ingredient/handler"
	ingredientRepo "foodgram-backend/internal/domains/ingredient/repository"
	recipeHandler "foodgram-backend/internal/domains/recipe/handler"
	recipeRepo "foodgram-backend/internal/domains/recipe/repository"
	recipeService "foodgram-backend/internal/domains/recipe/service"
	"foodgram-backend/internal/domains/subscription"
	subscriptionHandler "foodgram-backend/internal/domains/subscription/handler"
	subscriptionRepo "foodgram-backend/internal/domains/subscription/repository"
	subscriptionService "foodgram-backend/internal/domains/subscription/service"
	"foodgram-backend/internal/domains/tag"
	tagHandler "foodgram-backend/internal/domains/tag/handler"
	tagRepo "foodgram-backend/internal/domains/tag/repository"
	"foodgram-backend/internal/domains/user"
	userHandler "foodgram-backend/internal/domains/user/handler"
	userRepo "foodgram-backend/internal/domains/user/repository"
	userService "foodgram-backend/internal/domains/user/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds every dependency of the application and is the root
// of the dependency graph. All members are singletons.
type Container struct {
	// Infrastructure, shared across domains
	Config     *config.Config
	DB         *database.PostgresDB
	Storage    *storage.MinIOStorage
	Queue      *queue.Client
	JWTManager *jwt.Manager
	Relations  *relation.Checker

	// Repositories
	UserRepo         user.Repository
	TagRepo          tag.Repository
	IngredientRepo   ingredient.Repository
	RecipeRepo       recipeRepo.RepositoryInterface
	FavoriteRepo     favorite.Repository
	CartRepo         cart.Repository
	SubscriptionRepo subscription.Repository

	// Services
	UserService         user.Service
	RecipeService       recipeService.ServiceInterface
	FavoriteService     favorite.Service
	CartService         cart.Service
	SubscriptionService subscription.Service

	// Handlers
	UserHandler         *userHandler.UserHandler
	TagHandler          *tagHandler.TagHandler
	IngredientHandler   *ingredientHandler.IngredientHandler
	RecipeHandler       *recipeHandler.RecipeHandler
	FavoriteHandler     *favoriteHandler.FavoriteHandler
	CartHandler         *cartHandler.CartHandler
	SubscriptionHandler *subscriptionHandler.SubscriptionHandler
}

// NewContainer builds the full dependency graph.
//
// Initialization order matters:
// 1. Config (depends on nothing)
// 2. Infrastructure (DB, MinIO, queue) - depends on Config
// 3. Repositories - depend on Infrastructure
// 4. Services - depend on Repositories
// 5. Handlers - depend on Services
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	log.Println("📋 Loading configuration...")

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	// ========================================
	// STEP 2: INITIALIZE DATABASE
	// ========================================
	log.Println("🗄️  Connecting to PostgreSQL...")

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}

	c.DB = db
	log.Println("✅ Database connected")

	// ========================================
	// STEP 3: INITIALIZE OBJECT STORAGE AND QUEUE
	// ========================================
	log.Println("🪣 Connecting to MinIO...")

	minioStorage, err := storage.NewMinIOStorage(cfg.MinIO)
	if err != nil {
		return nil, fmt.Errorf("failed to init object storage: %w", err)
	}
	c.Storage = minioStorage
	log.Println("✅ Object storage ready")

	c.Queue = queue.NewClient(cfg.Redis)
	log.Println("✅ Task queue client ready")

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)
	c.Relations = relation.NewChecker(c.DB.Pool)

	// ========================================
	// STEP 4: INITIALIZE REPOSITORIES
	// ========================================
	log.Println("📦 Initializing repositories...")
	c.initRepositories()
	log.Println("✅ Repositories initialized")

	// ========================================
	// STEP 5: INITIALIZE SERVICES
	// ========================================
	log.Println("⚙️  Initializing services...")
	c.initServices()
	log.Println("✅ Services initialized")

	// ========================================
	// STEP 6: INITIALIZE HANDLERS
	// ========================================
	log.Println("🎯 Initializing handlers...")
	c.initHandlers()
	log.Println("✅ Handlers initialized")

	log.Println("🎉 DI Container initialized successfully")
	return c, nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.UserRepo = userRepo.NewPostgresRepository(pool)
	c.TagRepo = tagRepo.NewPostgresTagRepository(pool)
	c.IngredientRepo = ingredientRepo.NewPostgresIngredientRepository(pool)
	c.RecipeRepo = recipeRepo.NewPostgresRecipeRepository(pool)
	c.FavoriteRepo = favoriteRepo.NewPostgresFavoriteRepository(pool)
	c.CartRepo = cartRepo.NewPostgresCartRepository(pool)
	c.SubscriptionRepo = subscriptionRepo.NewPostgresSubscriptionRepository(pool)
}

func (c *Container) initServices() {
	c.UserService = userService.NewUserService(
		c.UserRepo,
		c.Relations,
		c.JWTManager,
	)

	c.RecipeService = recipeService.NewRecipeService(
		c.RecipeRepo,
		c.TagRepo,
		c.IngredientRepo,
		c.Storage,
		c.Queue,
		c.Relations,
	)

	c.FavoriteService = favoriteService.NewFavoriteService(c.FavoriteRepo, c.RecipeRepo)
	c.CartService = cartService.NewCartService(c.CartRepo, c.RecipeRepo)

	c.SubscriptionService = subscriptionService.NewSubscriptionService(
		c.SubscriptionRepo,
		c.UserRepo,
		c.RecipeRepo,
	)
}

func (c *Container) initHandlers() {
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.TagHandler = tagHandler.NewTagHandler(c.TagRepo)
	c.IngredientHandler = ingredientHandler.NewIngredientHandler(c.IngredientRepo)
	c.RecipeHandler = recipeHandler.NewRecipeHandler(c.RecipeService)
	c.FavoriteHandler = favoriteHandler.NewFavoriteHandler(c.FavoriteService)
	c.CartHandler = cartHandler.NewCartHandler(c.CartService)
	c.SubscriptionHandler = subscriptionHandler.NewSubscriptionHandler(c.SubscriptionService)
}

// Cleanup releases container resources during graceful shutdown
func (c *Container) Cleanup() {
	log.Println("🧹 Cleaning up container resources...")

	if c.Queue != nil {
		if err := c.Queue.Close(); err != nil {
			log.Printf("⚠️  Failed to close queue client: %v", err)
		} else {
			log.Println("✅ Queue client closed")
		}
	}

	if c.DB != nil && c.DB.Pool != nil {
		c.DB.Close()
		log.Println("✅ Database connections closed")
	}

	log.Println("✅ Container cleanup completed")
}
