package handlers

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/internal/api/presenters"
	"FoodShare-Backend/internal/middleware"
	"FoodShare-Backend/internal/utils"
	"FoodShare-Backend/pkg/jwt"
	"FoodShare-Backend/pkg/listing"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type userDirectory map[string]domain.User

func (d userDirectory) GetUserByID(_ context.Context, id string) (domain.User, error) {
	u, ok := d[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	return u, nil
}

type nopNotifier struct{}

func (nopNotifier) Emit(context.Context, domain.Notification) error { return nil }

type testAPI struct {
	app    *fiber.App
	jwt    jwt.JWTService
	store  *listing.Store
	tokens map[string]string
}

func newTestAPI(t *testing.T, items ...domain.FoodItem) testAPI {
	t.Helper()
	users := userDirectory{
		"provider-1": {ID: "provider-1", Name: "Central Canteen", Role: domain.RoleFoodProvider},
		"user-1":     {ID: "user-1", Name: "Ayu", Role: domain.RoleIndividual},
	}
	store := listing.NewStore(items...)
	ctrl := listing.NewController(store, nopNotifier{}, nil)
	svc := listing.NewFoodService(ctrl, users, nil, nil)
	jwtService := jwt.NewJWTServiceWithSecret("test", time.Hour, time.Hour)
	mw := middleware.NewMiddleware()
	h := NewFoodHandler(svc, utils.NewValidator())

	app := fiber.New()
	auth := mw.AuthMiddleware(jwtService)
	food := app.Group("/api/v1/food", mw.OptionalAuthMiddleware(jwtService))
	food.Get("/", h.GetFoodItems)
	food.Get("/:id", h.GetFoodItemDetails)
	food.Post("/", auth, h.AddFoodItem)
	food.Post("/:id/reserve", auth, h.ReserveFoodItem)
	food.Post("/:id/rate", auth, h.RateFoodItem)

	tokens := make(map[string]string)
	for id, u := range users {
		token, err := jwtService.GenerateAccessToken(id, u.Role)
		require.NoError(t, err)
		tokens[id] = token
	}
	return testAPI{app: app, jwt: jwtService, store: store, tokens: tokens}
}

func (a testAPI) do(t *testing.T, method, path, userID, body string) (int, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	if userID != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+a.tokens[userID])
	}
	resp, err := a.app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func availableItem(id string) domain.FoodItem {
	now := time.Now()
	return domain.FoodItem{
		ID:         id,
		Title:      "Pasta",
		Type:       domain.TypeCookedFood,
		Quantity:   3,
		Unit:       "kg",
		Provider:   "Central Canteen",
		ProviderID: "provider-1",
		Location:   "Hall A",
		ListedAt:   now,
		ExpiresAt:  now.Add(5 * time.Hour),
		Status:     domain.StatusAvailable,
	}
}

func TestCreateFoodRequiresToken(t *testing.T) {
	api := newTestAPI(t)

	status, body := api.do(t, http.MethodPost, "/api/v1/food/", "", `{}`)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, false, body["status"])
}

func TestCreateFoodValidationErrors(t *testing.T) {
	api := newTestAPI(t)

	status, body := api.do(t, http.MethodPost, "/api/v1/food/", "provider-1", `{"title":"Soup","quantity":0}`)
	assert.Equal(t, http.StatusBadRequest, status)
	fields, ok := body["errors"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, fields, "quantity")
	assert.Contains(t, fields, "type")
}

func TestCreateFoodByIndividualIsForbidden(t *testing.T) {
	api := newTestAPI(t)

	payload := `{"title":"Soup","type":"Cooked Food","quantity":2,"unit":"kg","location":"Hall A","safety_hours":4}`
	status, body := api.do(t, http.MethodPost, "/api/v1/food/", "user-1", payload)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, domain.ErrPermissionDenied.Error(), body["detail"])

	status, body = api.do(t, http.MethodPost, "/api/v1/food/", "provider-1", payload)
	assert.Equal(t, http.StatusCreated, status)
	data := body["data"].(map[string]any)
	item := data["item"].(map[string]any)
	assert.Equal(t, "Available", item["status"])
	assert.Equal(t, "fresh", item["freshness"])
	assert.Equal(t, 1, api.store.Len())
}

func TestReserveTwiceIsNoOp(t *testing.T) {
	api := newTestAPI(t, availableItem("a"))

	status, body := api.do(t, http.MethodPost, "/api/v1/food/a/reserve", "user-1", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, domain.MessageSuccessReserveFoodItem, body["message"])

	status, body = api.do(t, http.MethodPost, "/api/v1/food/a/reserve", "user-1", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, domain.MessageNotAvailableFoodItem, body["message"])
	assert.Equal(t, false, body["data"].(map[string]any)["changed"])
}

func TestRateRangeCheckedAtBoundary(t *testing.T) {
	api := newTestAPI(t, availableItem("a"))

	status, _ := api.do(t, http.MethodPost, "/api/v1/food/a/rate", "user-1", `{"rating":6}`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = api.do(t, http.MethodPost, "/api/v1/food/a/rate", "user-1", `{"rating":4.5,"comment":"tasty"}`)
	assert.Equal(t, http.StatusOK, status)
}

func TestGetUnknownFoodIsNotFound(t *testing.T) {
	api := newTestAPI(t)

	status, body := api.do(t, http.MethodGet, "/api/v1/food/missing", "", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, domain.MessageFailedGetFoodItems, body["message"])
}

func TestListIsPublic(t *testing.T) {
	api := newTestAPI(t, availableItem("a"), availableItem("b"))

	status, body := api.do(t, http.MethodGet, "/api/v1/food/?limit=1", "", "")
	assert.Equal(t, http.StatusOK, status)
	data := body["data"].(map[string]any)
	assert.Len(t, data["items"], 1)
	assert.Equal(t, float64(2), data["pagination"].(map[string]any)["total"])
}

func TestAuthErrorCarriesIdentityCode(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedLogin, domain.ErrWrongPassword)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	var body presenters.ErrorBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, domain.AuthCodeWrongPassword, body.Code)
	assert.Equal(t, "Incorrect password. Please try again.", body.Detail)
}

func TestListRejectsOutOfRangePage(t *testing.T) {
	api := newTestAPI(t, availableItem("a"), availableItem("b"))

	for _, query := range []string{"page=922337203685477580", "page=-1", "limit=500"} {
		status, body := api.do(t, http.MethodGet, "/api/v1/food/?"+query, "", "")
		assert.Equal(t, http.StatusBadRequest, status, query)
		assert.Equal(t, false, body["status"], query)
	}

	status, body := api.do(t, http.MethodGet, "/api/v1/food/?page=100000&limit=100", "", "")
	assert.Equal(t, http.StatusOK, status)
	data := body["data"].(map[string]any)
	assert.Empty(t, data["items"])
	assert.Equal(t, float64(100000), data["pagination"].(map[string]any)["page"])
}
