package apiclient

import (
	"FoodShare-Backend/domain"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func ok(data any) map[string]any {
	return map[string]any{"status": true, "message": "ok", "data": data}
}

func newTestClient(t *testing.T, baseURL string) (*Client, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.yaml")
	c, err := New(baseURL, WithSessionStore(NewSessionStore(path)))
	require.NoError(t, err)
	return c, path
}

func authResponse(access, refresh string) domain.AuthResponse {
	return domain.AuthResponse{
		User: domain.UserResponse{User: domain.User{
			ID:    "u-1",
			Name:  "Ada",
			Email: "ada@campus.edu",
			Role:  "FoodProvider",
		}},
		Access:  access,
		Refresh: refresh,
	}
}

func TestLoginPersistsAndRehydratesSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login/", r.URL.Path)
		writeJSON(w, http.StatusOK, ok(authResponse("access-1", "refresh-1")))
	}))
	defer srv.Close()

	c, path := newTestClient(t, srv.URL)
	_, err := c.Login(context.Background(), domain.LoginRequest{Email: "ada@campus.edu", Password: "secret1"})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), SessionKey)

	again, err := New(srv.URL, WithSessionStore(NewSessionStore(path)))
	require.NoError(t, err)
	user, signedIn := again.CurrentUser()
	require.True(t, signedIn)
	assert.Equal(t, "Ada", user.Name)

	require.NoError(t, again.Logout(context.Background()))
	_, signedIn = again.CurrentUser()
	assert.False(t, signedIn)
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestUnauthorizedRefreshesOnceAndRetries(t *testing.T) {
	var refreshes int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login/":
			writeJSON(w, http.StatusOK, ok(authResponse("stale", "refresh-1")))
		case "/auth/refresh/":
			atomic.AddInt32(&refreshes, 1)
			var req domain.RefreshRequest
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "refresh-1", req.Refresh)
			writeJSON(w, http.StatusOK, ok(domain.RefreshResponse{Access: "fresh"}))
		case "/auth/profile/":
			if r.Header.Get("Authorization") != "Bearer fresh" {
				writeJSON(w, http.StatusUnauthorized, map[string]any{"message": "unauthorized"})
				return
			}
			writeJSON(w, http.StatusOK, ok(domain.UserResponse{User: domain.User{ID: "u-1", Name: "Ada"}}))
		}
	}))
	defer srv.Close()

	c, _ := newTestClient(t, srv.URL)
	_, err := c.Login(context.Background(), domain.LoginRequest{Email: "ada@campus.edu", Password: "secret1"})
	require.NoError(t, err)

	profile, err := c.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Ada", profile.Name)
	assert.Equal(t, int32(1), atomic.LoadInt32(&refreshes))
	assert.Equal(t, "fresh", c.accessToken())
}

func TestRepeatedUnauthorizedExpiresSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login/":
			writeJSON(w, http.StatusOK, ok(authResponse("stale", "refresh-1")))
		case "/auth/refresh/":
			writeJSON(w, http.StatusOK, ok(domain.RefreshResponse{Access: "still-bad"}))
		default:
			writeJSON(w, http.StatusUnauthorized, map[string]any{"message": "unauthorized"})
		}
	}))
	defer srv.Close()

	c, path := newTestClient(t, srv.URL)
	_, err := c.Login(context.Background(), domain.LoginRequest{Email: "ada@campus.edu", Password: "secret1"})
	require.NoError(t, err)

	_, err = c.Profile(context.Background())
	assert.ErrorIs(t, err, ErrSessionExpired)
	_, signedIn := c.CurrentUser()
	assert.False(t, signedIn)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestFailedRefreshExpiresSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login/":
			writeJSON(w, http.StatusOK, ok(authResponse("stale", "refresh-1")))
		default:
			writeJSON(w, http.StatusUnauthorized, map[string]any{"message": "unauthorized"})
		}
	}))
	defer srv.Close()

	c, _ := newTestClient(t, srv.URL)
	_, err := c.Login(context.Background(), domain.LoginRequest{Email: "ada@campus.edu", Password: "secret1"})
	require.NoError(t, err)

	_, err = c.ListFood(context.Background(), nil)
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestForbiddenSurfacesDetailVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusForbidden, map[string]any{
			"message": "failed to delete food item",
			"detail":  "only the provider may delete this listing",
		})
	}))
	defer srv.Close()

	c, _ := newTestClient(t, srv.URL)
	err := c.DeleteFood(context.Background(), "f-1")

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusForbidden, apiErr.Status)
	assert.Equal(t, "only the provider may delete this listing", err.Error())
}

func TestValidationErrorsAreFlattened(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"message": "failed to register user",
			"errors": map[string][]string{
				"password": {"must be at least 6 characters", "too common"},
				"email":    {"must be a valid email"},
			},
		})
	}))
	defer srv.Close()

	c, _ := newTestClient(t, srv.URL)
	_, err := c.Register(context.Background(), domain.RegisterRequest{Email: "nope"})
	require.Error(t, err)
	assert.Equal(t, "email: must be a valid email, password: must be at least 6 characters", err.Error())
}

func TestIdentityErrorUsesDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]any{
			"message": "failed to login",
			"code":    domain.AuthCodeWrongPassword,
			"detail":  domain.AuthErrorMessage(domain.AuthCodeWrongPassword),
		})
	}))
	defer srv.Close()

	c, _ := newTestClient(t, srv.URL)
	_, err := c.Login(context.Background(), domain.LoginRequest{Email: "ada@campus.edu", Password: "wrong"})

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, domain.AuthCodeWrongPassword, apiErr.Code)
	assert.Equal(t, "Incorrect password. Please try again.", err.Error())
}

func TestCreateFoodFallsBackLocallyWhenOffline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := srv.URL
	srv.Close()

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	path := filepath.Join(t.TempDir(), "session.yaml")
	c, err := New(baseURL, WithSessionStore(NewSessionStore(path)), WithClock(func() time.Time { return now }))
	require.NoError(t, err)

	res, err := c.CreateFood(context.Background(), domain.CreateFoodItemRequest{
		Title:       "Veg biryani",
		Type:        domain.TypeCookedFood,
		Quantity:    4,
		Unit:        "kg",
		Location:    "Hostel B",
		SafetyHours: 6,
	})

	var degraded *DegradedError
	require.True(t, errors.As(err, &degraded))
	assert.ErrorIs(t, err, ErrNetwork)
	assert.Equal(t, domain.MessageWarningLocalOnly, res.Warning)
	assert.Equal(t, domain.StatusAvailable, res.Item.Status)
	assert.Equal(t, now.Add(6*time.Hour), res.Item.ExpiresAt)
	assert.Equal(t, localProviderID, res.Item.ProviderID)

	local := c.LocalFood()
	require.Len(t, local, 1)
	assert.Equal(t, degraded.Item.ID, local[0].ID)
}

func TestCreateFoodDoesNotFallBackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"message": "failed to add food item"})
	}))
	defer srv.Close()

	c, _ := newTestClient(t, srv.URL)
	_, err := c.CreateFood(context.Background(), domain.CreateFoodItemRequest{Title: "Bread"})

	var degraded *DegradedError
	assert.False(t, errors.As(err, &degraded))
	assert.EqualError(t, err, "failed to add food item")
	assert.Empty(t, c.LocalFood())
}

func TestSessionStoreKeepsOtherKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")
	require.NoError(t, os.WriteFile(path, []byte("otherUser:\n  access: keep\n"), 0o600))

	store := NewSessionStore(path)
	require.NoError(t, store.Save(Session{User: SessionUser{ID: "u-1"}, Access: "a", Refresh: "r"}))
	require.NoError(t, store.Clear())

	session, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, session)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "otherUser")
}
