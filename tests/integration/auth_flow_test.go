package integration

import (
	"net/http"
	"testing"
)

func TestAuthFlow_RegisterLoginAndProfile(t *testing.T) {
	app := setupApp(t)
	token, _, userID := app.registerUser(t, "owner@test.com", "password123")

	// Profile reflects registration data
	rec := app.request("GET", "/api/v1/profile", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	user := parseJSON(t, rec)["user"].(map[string]interface{})
	if user["id"].(string) != userID {
		t.Errorf("expected user id %s, got %v", userID, user["id"])
	}
	if user["business_name"] != "Test Business" {
		t.Errorf("expected business name 'Test Business', got %v", user["business_name"])
	}

	// Update the business name
	rec = app.request("PUT", "/api/v1/profile", `{"business_name":"Renamed Co"}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	user = parseJSON(t, rec)["user"].(map[string]interface{})
	if user["business_name"] != "Renamed Co" {
		t.Errorf("expected updated business name, got %v", user["business_name"])
	}

	// Email is immutable through this endpoint
	if user["email"] != "owner@test.com" {
		t.Errorf("expected unchanged email, got %v", user["email"])
	}

	// A fresh login still works and yields a usable token
	newToken, _ := app.loginUser(t, "owner@test.com", "password123")
	rec = app.request("GET", "/api/v1/profile", "", newToken)
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 with new token, got %d", rec.Code)
	}
}

func TestAuthFlow_SignedOutUserIsRedirectedToSignIn(t *testing.T) {
	app := setupApp(t)

	for _, path := range []string{"/api/v1/profile", "/api/v1/dashboard", "/api/v1/transactions"} {
		rec := app.request("GET", path, "", "")
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s: expected 401, got %d: %s", path, rec.Code, rec.Body.String())
			continue
		}
		result := parseJSON(t, rec)
		if result["redirect"] != "/signin" {
			t.Errorf("%s: expected redirect /signin, got %v", path, result["redirect"])
		}
		errObj := result["error"].(map[string]interface{})
		if errObj["code"] != "UNAUTHORIZED" {
			t.Errorf("%s: expected code UNAUTHORIZED, got %v", path, errObj["code"])
		}
	}
}

func TestAuthFlow_SignedInUserIsRedirectedFromAuthPages(t *testing.T) {
	app := setupApp(t)
	token, _, _ := app.registerUser(t, "signedin@test.com", "password123")

	rec := app.request("POST", "/api/v1/auth/login",
		`{"email":"signedin@test.com","password":"password123"}`, token)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	if result["redirect"] != "/dashboard" {
		t.Errorf("expected redirect /dashboard, got %v", result["redirect"])
	}
	errObj := result["error"].(map[string]interface{})
	if errObj["code"] != "ALREADY_AUTHENTICATED" {
		t.Errorf("expected code ALREADY_AUTHENTICATED, got %v", errObj["code"])
	}

	// Same gate applies to register
	rec = app.request("POST", "/api/v1/auth/register",
		`{"email":"other@test.com","password":"password123"}`, token)
	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403 on register while signed in, got %d", rec.Code)
	}
}

func TestAuthFlow_GarbageTokenIsTreatedAsSignedOut(t *testing.T) {
	app := setupApp(t)

	rec := app.request("GET", "/api/v1/dashboard", "", "not-a-real-token")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", rec.Code, rec.Body.String())
	}
	if parseJSON(t, rec)["redirect"] != "/signin" {
		t.Errorf("expected redirect /signin")
	}
}

func TestAuthFlow_RefreshRotatesAndRejectsReuse(t *testing.T) {
	app := setupApp(t)
	_, refreshToken, _ := app.registerUser(t, "refresh@test.com", "password123")

	// First refresh succeeds and rotates the pair
	rec := app.request("POST", "/api/v1/auth/refresh",
		`{"refresh_token":"`+refreshToken+`"}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	newAccess := result["access_token"].(string)
	if newAccess == "" {
		t.Fatal("expected a new access token")
	}

	// The rotated-out token is no longer accepted
	rec = app.request("POST", "/api/v1/auth/refresh",
		`{"refresh_token":"`+refreshToken+`"}`, "")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 on refresh token reuse, got %d: %s", rec.Code, rec.Body.String())
	}

	// The new access token works on protected routes
	rec = app.request("GET", "/api/v1/profile", "", newAccess)
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 with refreshed access token, got %d", rec.Code)
	}
}

func TestAuthFlow_AccessTokenCannotRefresh(t *testing.T) {
	app := setupApp(t)
	accessToken, _, _ := app.registerUser(t, "wrongtype@test.com", "password123")

	rec := app.request("POST", "/api/v1/auth/refresh",
		`{"refresh_token":"`+accessToken+`"}`, "")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 when access token used as refresh, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAuthFlow_DuplicateEmailRejected(t *testing.T) {
	app := setupApp(t)
	app.registerUser(t, "dup@test.com", "password123")

	rec := app.request("POST", "/api/v1/auth/register",
		`{"email":"dup@test.com","password":"password456"}`, "")
	if rec.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d: %s", rec.Code, rec.Body.String())
	}
}
