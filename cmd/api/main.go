package main

import (
	"fmt"
	"net/http"
	"os"

	"monexel/internal/config"
	"monexel/internal/database"
	"monexel/internal/handlers"
	"monexel/internal/logger"
	"monexel/internal/middleware"
	"monexel/internal/services"
	"monexel/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "monexel/internal/docs" // Import swagger docs
)

// @title           Monexel API
// @version         1.0
// @description     Monexel is a personal finance tracker that lets users record income, expenses, and borrowed money, and keeps spending within the available balance.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Register custom request validators
	validator.Register()

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	categoryService := services.NewCategoryService(db)
	balanceService := services.NewBalanceService(db)
	incomeService := services.NewIncomeService(db)
	expenseService := services.NewExpenseService(db, balanceService)
	borrowedService := services.NewBorrowedMoneyService(db)
	dashboardService := services.NewDashboardService(db, balanceService)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	userHandler := handlers.NewUserHandler(userService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	incomeHandler := handlers.NewIncomeHandler(incomeService)
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	borrowedHandler := handlers.NewBorrowedMoneyHandler(borrowedService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Every route goes through the auth middleware; the unauthenticated
	// surface is the configured allow-list.
	router.Use(middleware.AuthMiddleware())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Auth routes
	auth := v1.Group("/auth")
	auth.POST("/signin", authHandler.SignIn)
	auth.POST("/signout", authHandler.SignOut)
	auth.PUT("/forgot-password", authHandler.ForgotPassword)

	// User routes (registration is on the allow-list)
	users := v1.Group("/users")
	users.POST("", userHandler.CreateUser)
	users.GET("", userHandler.GetAllUsers)
	users.GET("/profile", userHandler.GetProfile)
	users.GET("/:id", userHandler.GetUserByID)
	users.PUT("/:id", userHandler.UpdateUser)
	users.DELETE("/:id", userHandler.DeleteUser)

	// Category routes
	categories := v1.Group("/categories")
	categories.POST("", categoryHandler.CreateCategory)
	categories.GET("", categoryHandler.GetCategories)
	categories.GET("/:id", categoryHandler.GetCategoryByID)
	categories.PUT("/:id", categoryHandler.UpdateCategory)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)

	// Income routes
	income := v1.Group("/income")
	income.POST("", incomeHandler.CreateIncome)
	income.GET("", incomeHandler.GetUserIncomes)
	income.GET("/:id", incomeHandler.GetIncomeByID)
	income.PUT("/:id", incomeHandler.UpdateIncome)
	income.DELETE("/:id", incomeHandler.DeleteIncome)

	// Expense routes
	expenses := v1.Group("/expenses")
	expenses.POST("", expenseHandler.CreateExpense)
	expenses.GET("", expenseHandler.GetUserExpenses)
	expenses.GET("/:id", expenseHandler.GetExpenseByID)
	expenses.PUT("/:id", expenseHandler.UpdateExpense)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)

	// Borrowed money routes
	borrowed := v1.Group("/borrowed-money")
	borrowed.POST("", borrowedHandler.CreateBorrowedMoney)
	borrowed.GET("", borrowedHandler.GetUserBorrowedMoney)
	borrowed.GET("/:id", borrowedHandler.GetBorrowedMoneyByID)
	borrowed.PUT("/:id", borrowedHandler.UpdateBorrowedMoney)
	borrowed.DELETE("/:id", borrowedHandler.DeleteBorrowedMoney)

	// Dashboard routes
	dashboard := v1.Group("/dashboard")
	dashboard.GET("/summary", dashboardHandler.GetSummary)

	log.Infof("Starting Monexel backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
