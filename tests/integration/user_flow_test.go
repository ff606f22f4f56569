package integration

import (
	"fmt"
	"net/http"
	"testing"
)

func TestUserFlow_RegistrationValidation(t *testing.T) {
	app := setupApp(t)

	cases := []struct {
		name string
		body string
	}{
		{"missing_email", `{"name":"Test","password":"password123","phone":"+15551234567"}`},
		{"bad_email", `{"name":"Test","email":"not-an-email","password":"password123","phone":"+15551234567"}`},
		{"short_password", `{"name":"Test","email":"short@test.com","password":"123","phone":"+15551234567"}`},
		{"bad_phone", `{"name":"Test","email":"phone@test.com","password":"password123","phone":"not-a-phone"}`},
		{"short_name", `{"name":"T","email":"name@test.com","password":"password123","phone":"+15551234567"}`},
		{"bad_role", `{"name":"Test","email":"role@test.com","password":"password123","phone":"+15551234567","role":"ROOT"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := app.request("POST", "/api/v1/users", tc.body, "")
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestUserFlow_DuplicateEmail(t *testing.T) {
	app := setupApp(t)

	email := uniqueEmail()
	app.createUser(t, email, "password123")

	body := fmt.Sprintf(`{"name":"Copy","email":%q,"password":"password123","phone":%q}`, email, uniquePhone())
	rec := app.request("POST", "/api/v1/users", body, "")
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rec.Code, rec.Body.String())
	}
	if code := errorCode(t, rec); code != "DUPLICATE_EMAIL" {
		t.Errorf("expected DUPLICATE_EMAIL, got %v", code)
	}
}

func TestUserFlow_PasswordNeverReturned(t *testing.T) {
	app := setupApp(t)

	email := uniqueEmail()
	body := fmt.Sprintf(`{"name":"Test User","email":%q,"password":"password123","phone":%q}`, email, uniquePhone())
	rec := app.request("POST", "/api/v1/users", body, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("create failed: %d %s", rec.Code, rec.Body.String())
	}

	user := parseJSON(t, rec)["user"].(map[string]interface{})
	if _, present := user["password"]; present {
		t.Error("password field present in response")
	}
}

func TestUserFlow_GetUpdateDelete(t *testing.T) {
	app := setupApp(t)

	email := uniqueEmail()
	userID := app.createUser(t, email, "password123")
	token := app.signIn(t, email, "password123")

	// Get by ID.
	rec := app.request("GET", fmt.Sprintf("/api/v1/users/%d", int(userID)), "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("get failed: %d %s", rec.Code, rec.Body.String())
	}

	// Update name.
	rec = app.request("PUT", fmt.Sprintf("/api/v1/users/%d", int(userID)),
		`{"name":"Renamed User"}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("update failed: %d %s", rec.Code, rec.Body.String())
	}
	updated := parseJSON(t, rec)["user"].(map[string]interface{})
	if updated["name"] != "Renamed User" {
		t.Errorf("expected name Renamed User, got %v", updated["name"])
	}

	// Delete, then gone.
	rec = app.request("DELETE", fmt.Sprintf("/api/v1/users/%d", int(userID)), "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete failed: %d %s", rec.Code, rec.Body.String())
	}
	rec = app.request("GET", fmt.Sprintf("/api/v1/users/%d", int(userID)), "", token)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", rec.Code)
	}
}

func TestUserFlow_ListUsersRequiresAuth(t *testing.T) {
	app := setupApp(t)

	// Registration is open, listing is not.
	rec := app.request("GET", "/api/v1/users", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	token, _ := app.signUpAndIn(t)
	rec = app.request("GET", "/api/v1/users", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with token, got %d: %s", rec.Code, rec.Body.String())
	}
}
