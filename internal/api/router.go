package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/commercebook/commerce-api/docs"
	"github.com/commercebook/commerce-api/internal/api/handler"
	"github.com/commercebook/commerce-api/internal/api/middleware"
	"github.com/commercebook/commerce-api/internal/core/ports"
	"github.com/commercebook/commerce-api/internal/core/service"
	mongorepo "github.com/commercebook/commerce-api/internal/infrastructure/db/mongo"
	redisrepo "github.com/commercebook/commerce-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(client *mongo.Client, db *mongo.Database, rdb *redis.Client, payments ports.PaymentProvider, tokenSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("commerce"))

	// --- Dependencies ---
	userRepo := mongorepo.NewUserRepository(db)
	productRepo := mongorepo.NewProductRepository(db)
	cartRepo := mongorepo.NewCartRepository(client, db)
	countCache := redisrepo.NewCountCache(rdb)

	tokenService := service.NewTokenService(tokenSecret, 24*time.Hour)
	userService := service.NewUserService(userRepo, log)
	productService := service.NewProductService(productRepo, countCache, log)
	cartService := service.NewCartService(cartRepo, log)
	paymentService := service.NewPaymentService(payments, log)

	tokenHandler := handler.NewTokenHandler(tokenService)
	userHandler := handler.NewUserHandler(userService)
	productHandler := handler.NewProductHandler(productService)
	cartHandler := handler.NewCartHandler(cartService)
	paymentHandler := handler.NewPaymentHandler(paymentService)

	auth := middleware.Auth(tokenService)
	seller := middleware.RequireSeller(userService)

	// --- Open routes ---
	e.POST("/jwt", tokenHandler.Issue)
	e.POST("/users", userHandler.Register)
	e.GET("/userRole/:email", userHandler.Role)
	e.GET("/products", productHandler.List)
	e.GET("/productCount", productHandler.Count)
	e.GET("/singleProduct/:id", productHandler.GetOne)
	e.POST("/create-payment-intent", paymentHandler.CreateIntent)

	// --- Protected routes ---
	e.POST("/products", productHandler.Create, auth, seller)
	e.PUT("/like/:id", productHandler.Like, auth)
	e.PUT("/disLike/:id", productHandler.Unlike, auth)
	e.PUT("/comment/:id", productHandler.Comment, auth)
	e.DELETE("/deleteComments/:id", productHandler.DeleteComments, auth)

	e.PUT("/addTocart", cartHandler.Add, auth)
	e.GET("/cartnumber", cartHandler.Count, auth)
	e.GET("/myCart/:email", cartHandler.List, auth)
	e.DELETE("/removeCart", cartHandler.Remove, auth)

	// --- Liveness / observability ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/", healthHandler.Root)
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
