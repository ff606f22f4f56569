package integration

import (
	"fmt"
	"net/http"
	"testing"
)

func TestDashboardFlow_WindowedSummary(t *testing.T) {
	app := setupApp(t)
	token, _ := app.signUpAndIn(t)
	categoryID := app.createCategory(t, token, "Household")

	app.addIncome(t, token, "500.00", "2025-03-03")

	rec := app.request("POST", "/api/v1/borrowed-money",
		`{"amount":100.00,"borrowed_from":"Dana","borrowed_date":"2025-03-08","due_date":"2025-04-08"}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("record borrowed money failed: %d %s", rec.Code, rec.Body.String())
	}

	body := fmt.Sprintf(`{"title":"Supplies","amount":200.00,"date":"2025-03-15","category_id":%d}`, int(categoryID))
	rec = app.request("POST", "/api/v1/expenses", body, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create expense failed: %d %s", rec.Code, rec.Body.String())
	}

	rec = app.request("GET", "/api/v1/dashboard/summary?start_date=2025-03-01&end_date=2025-03-31", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("summary failed: %d %s", rec.Code, rec.Body.String())
	}
	summary := parseJSON(t, rec)["summary"].(map[string]interface{})

	if summary["total_income"] != "500.00" {
		t.Errorf("expected total_income 500.00, got %v", summary["total_income"])
	}
	if summary["total_borrowed"] != "100.00" {
		t.Errorf("expected total_borrowed 100.00, got %v", summary["total_borrowed"])
	}
	if summary["total_expense"] != "200.00" {
		t.Errorf("expected total_expense 200.00, got %v", summary["total_expense"])
	}
	if summary["net_balance"] != "400.00" {
		t.Errorf("expected net_balance 400.00, got %v", summary["net_balance"])
	}
}

func TestDashboardFlow_DefaultsToCurrentMonth(t *testing.T) {
	app := setupApp(t)
	token, _ := app.signUpAndIn(t)

	// The pinned clock puts "now" in March 2025; February income must be
	// excluded from the default window.
	app.addIncome(t, token, "999.00", "2025-02-20")
	app.addIncome(t, token, "50.00", "2025-03-10")

	rec := app.request("GET", "/api/v1/dashboard/summary", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("summary failed: %d %s", rec.Code, rec.Body.String())
	}
	summary := parseJSON(t, rec)["summary"].(map[string]interface{})

	if summary["start_date"] != "2025-03-01" {
		t.Errorf("expected default start 2025-03-01, got %v", summary["start_date"])
	}
	if summary["end_date"] != "2025-03-31" {
		t.Errorf("expected default end 2025-03-31, got %v", summary["end_date"])
	}
	if summary["total_income"] != "50.00" {
		t.Errorf("expected total_income 50.00, got %v", summary["total_income"])
	}
}

func TestDashboardFlow_InvalidRange(t *testing.T) {
	app := setupApp(t)
	token, _ := app.signUpAndIn(t)

	rec := app.request("GET", "/api/v1/dashboard/summary?start_date=2025-03-31&end_date=2025-03-01", "", token)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	if code := errorCode(t, rec); code != "INVALID_DATE_RANGE" {
		t.Errorf("expected INVALID_DATE_RANGE, got %v", code)
	}
}

func TestDashboardFlow_EmptyMonthIsZero(t *testing.T) {
	app := setupApp(t)
	token, _ := app.signUpAndIn(t)

	rec := app.request("GET", "/api/v1/dashboard/summary?start_date=2024-01-01&end_date=2024-01-31", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("summary failed: %d %s", rec.Code, rec.Body.String())
	}
	summary := parseJSON(t, rec)["summary"].(map[string]interface{})
	if summary["net_balance"] != "0.00" {
		t.Errorf("expected net_balance 0.00, got %v", summary["net_balance"])
	}
}

func TestDashboardFlow_ScopedToCaller(t *testing.T) {
	app := setupApp(t)
	token1, _ := app.signUpAndIn(t)
	token2, _ := app.signUpAndIn(t)

	app.addIncome(t, token1, "1000.00", "2025-03-10")

	rec := app.request("GET", "/api/v1/dashboard/summary?start_date=2025-03-01&end_date=2025-03-31", "", token2)
	if rec.Code != http.StatusOK {
		t.Fatalf("summary failed: %d %s", rec.Code, rec.Body.String())
	}
	summary := parseJSON(t, rec)["summary"].(map[string]interface{})
	if summary["total_income"] != "0.00" {
		t.Errorf("expected total_income 0.00 for other user, got %v", summary["total_income"])
	}
}
