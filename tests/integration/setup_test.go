package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"monexel/internal/config"
	"monexel/internal/handlers"
	"monexel/internal/logger"
	"monexel/internal/middleware"
	"monexel/internal/models"
	"monexel/internal/services"
	"monexel/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

// testNow pins the clock so the default dashboard window (current calendar
// month) is deterministic.
var testNow = time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
	config.Set(&config.Config{
		Port:             "8080",
		Env:              "test",
		JWTSecret:        "integration-test-secret",
		JWTExpirationDur: time.Hour,
		CookieName:       "jwt",
		OpenPaths: []string{
			"GET /api/health",
			"POST /api/v1/users",
			"POST /api/v1/auth/signin",
			"PUT /api/v1/auth/forgot-password",
		},
		Now: func() time.Time { return testNow },
	})
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.User{},
		&models.Category{},
		&models.Income{},
		&models.Expense{},
		&models.BorrowedMoney{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	// Services
	userService := services.NewUserService(db)
	categoryService := services.NewCategoryService(db)
	balanceService := services.NewBalanceService(db)
	incomeService := services.NewIncomeService(db)
	expenseService := services.NewExpenseService(db, balanceService)
	borrowedService := services.NewBorrowedMoneyService(db)
	dashboardService := services.NewDashboardService(db, balanceService)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService)
	userHandler := handlers.NewUserHandler(userService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	incomeHandler := handlers.NewIncomeHandler(incomeService)
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	borrowedHandler := handlers.NewBorrowedMoneyHandler(borrowedService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Router, mirroring cmd/api
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.AuthMiddleware())

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.POST("/signin", authHandler.SignIn)
	auth.POST("/signout", authHandler.SignOut)
	auth.PUT("/forgot-password", authHandler.ForgotPassword)

	users := v1.Group("/users")
	users.POST("", userHandler.CreateUser)
	users.GET("", userHandler.GetAllUsers)
	users.GET("/profile", userHandler.GetProfile)
	users.GET("/:id", userHandler.GetUserByID)
	users.PUT("/:id", userHandler.UpdateUser)
	users.DELETE("/:id", userHandler.DeleteUser)

	categories := v1.Group("/categories")
	categories.POST("", categoryHandler.CreateCategory)
	categories.GET("", categoryHandler.GetCategories)
	categories.GET("/:id", categoryHandler.GetCategoryByID)
	categories.PUT("/:id", categoryHandler.UpdateCategory)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)

	income := v1.Group("/income")
	income.POST("", incomeHandler.CreateIncome)
	income.GET("", incomeHandler.GetUserIncomes)
	income.GET("/:id", incomeHandler.GetIncomeByID)
	income.PUT("/:id", incomeHandler.UpdateIncome)
	income.DELETE("/:id", incomeHandler.DeleteIncome)

	expenses := v1.Group("/expenses")
	expenses.POST("", expenseHandler.CreateExpense)
	expenses.GET("", expenseHandler.GetUserExpenses)
	expenses.GET("/:id", expenseHandler.GetExpenseByID)
	expenses.PUT("/:id", expenseHandler.UpdateExpense)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)

	borrowed := v1.Group("/borrowed-money")
	borrowed.POST("", borrowedHandler.CreateBorrowedMoney)
	borrowed.GET("", borrowedHandler.GetUserBorrowedMoney)
	borrowed.GET("/:id", borrowedHandler.GetBorrowedMoneyByID)
	borrowed.PUT("/:id", borrowedHandler.UpdateBorrowedMoney)
	borrowed.DELETE("/:id", borrowedHandler.DeleteBorrowedMoney)

	dashboard := v1.Group("/dashboard")
	dashboard.GET("/summary", dashboardHandler.GetSummary)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// errorCode extracts the error code from an error response.
func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	result := parseJSON(t, rec)
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object, got: %s", rec.Body.String())
	}
	code, _ := errObj["code"].(string)
	return code
}

var emailCounter atomic.Int64

// uniqueEmail generates a fresh email for a test user.
func uniqueEmail() string {
	return fmt.Sprintf("user%d@test.com", emailCounter.Add(1))
}

// uniquePhone generates a fresh phone number for a test user.
func uniquePhone() string {
	return fmt.Sprintf("+1555%07d", emailCounter.Add(1))
}

// createUser registers a new user via the public endpoint and returns the user ID.
func (app *testApp) createUser(t *testing.T, email, password string) float64 {
	t.Helper()
	body := fmt.Sprintf(`{"name":"Test User","email":%q,"password":%q,"phone":%q}`, email, password, uniquePhone())
	rec := app.request("POST", "/api/v1/users", body, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("create user failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	user := result["user"].(map[string]interface{})
	return user["id"].(float64)
}

// signIn authenticates and returns the bearer token.
func (app *testApp) signIn(t *testing.T, email, password string) string {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q}`, email, password)
	rec := app.request("POST", "/api/v1/auth/signin", body, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("signin failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	return result["token"].(string)
}

// signUpAndIn registers a fresh user and signs in, returning the token and email.
func (app *testApp) signUpAndIn(t *testing.T) (token, email string) {
	t.Helper()
	email = uniqueEmail()
	app.createUser(t, email, "password123")
	return app.signIn(t, email, "password123"), email
}

// createCategory creates a category and returns its ID.
func (app *testApp) createCategory(t *testing.T, token, name string) float64 {
	t.Helper()
	body := fmt.Sprintf(`{"name":%q,"description":"test category"}`, name)
	rec := app.request("POST", "/api/v1/categories", body, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create category failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	category := result["category"].(map[string]interface{})
	return category["id"].(float64)
}

// addIncome records income for the authenticated user.
func (app *testApp) addIncome(t *testing.T, token, amount, date string) {
	t.Helper()
	body := fmt.Sprintf(`{"source":"Salary","amount":%s,"date":%q}`, amount, date)
	rec := app.request("POST", "/api/v1/income", body, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("add income failed: %d %s", rec.Code, rec.Body.String())
	}
}
