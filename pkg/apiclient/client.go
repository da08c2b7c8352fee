// Package apiclient talks to the FoodShare REST API with bearer tokens and
// keeps the signed-in session in a local file.
package apiclient

import (
	"FoodShare-Backend/domain"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultSessionFile = ".foodshare/session.yaml"
	defaultTimeout     = 30 * time.Second
	localProviderID    = "local-user"
	localProviderName  = "Local User"
)

type (
	Option func(*Client)

	Client struct {
		baseURL    string
		httpClient *http.Client
		sessions   *SessionStore
		logger     *zap.Logger
		clock      func() time.Time

		mu      sync.Mutex
		session *Session
		local   []domain.FoodItem
	}

	envelope struct {
		Status  bool            `json:"status"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}

	// FoodPage is one page of listings.
	FoodPage struct {
		Items      []domain.FoodItemResponse `json:"items"`
		Pagination domain.Pagination         `json:"pagination"`
	}
)

func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) { c.httpClient = client }
}

func WithSessionStore(store *SessionStore) Option {
	return func(c *Client) { c.sessions = store }
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

func WithClock(clock func() time.Time) Option {
	return func(c *Client) { c.clock = clock }
}

// New builds a client for baseURL (for example http://localhost:8080/api/v1)
// and rehydrates any stored session.
func New(baseURL string, opts ...Option) (*Client, error) {
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		sessions:   NewSessionStore(DefaultSessionFile),
		logger:     zap.NewNop(),
		clock:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	session, err := c.sessions.Load()
	if err != nil {
		return nil, err
	}
	c.session = session
	return c, nil
}

// CurrentUser returns the signed-in user, if any.
func (c *Client) CurrentUser() (SessionUser, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return SessionUser{}, false
	}
	return c.session.User, true
}

func (c *Client) Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error) {
	var res domain.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login/", req, &res); err != nil {
		return domain.AuthResponse{}, err
	}
	return res, c.signIn(res)
}

func (c *Client) Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResponse, error) {
	var res domain.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register/", req, &res); err != nil {
		return domain.AuthResponse{}, err
	}
	return res, c.signIn(res)
}

// Logout forgets the session locally and on disk.
func (c *Client) Logout(ctx context.Context) error {
	return c.clearSession()
}

func (c *Client) Profile(ctx context.Context) (domain.UserResponse, error) {
	var res domain.UserResponse
	err := c.do(ctx, http.MethodGet, "/auth/profile/", nil, &res)
	return res, err
}

func (c *Client) ListFood(ctx context.Context, query url.Values) (FoodPage, error) {
	path := "/food/"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}
	var page FoodPage
	err := c.do(ctx, http.MethodGet, path, nil, &page)
	return page, err
}

func (c *Client) GetFood(ctx context.Context, id string) (domain.FoodItemResponse, error) {
	var res domain.FoodItemResponse
	err := c.do(ctx, http.MethodGet, "/food/"+url.PathEscape(id), nil, &res)
	return res, err
}

// CreateFood posts a listing. If the server cannot be reached the listing
// is kept in the local list and a *DegradedError is returned with it.
func (c *Client) CreateFood(ctx context.Context, req domain.CreateFoodItemRequest) (domain.MutationResponse, error) {
	var res domain.MutationResponse
	err := c.do(ctx, http.MethodPost, "/food/", req, &res)
	if err == nil {
		return res, nil
	}
	if !errors.Is(err, ErrNetwork) || ctx.Err() != nil {
		return domain.MutationResponse{}, err
	}

	item := c.keepLocal(req)
	c.logger.Warn("listing kept locally",
		zap.String("id", item.ID),
		zap.Error(err),
	)
	return domain.MutationResponse{
		Item:    domain.FoodItemResponse{FoodItem: item},
		Changed: true,
		Warning: domain.MessageWarningLocalOnly,
	}, &DegradedError{Item: item, Cause: err}
}

func (c *Client) UpdateFood(ctx context.Context, id string, req domain.UpdateFoodItemRequest) (domain.MutationResponse, error) {
	var res domain.MutationResponse
	err := c.do(ctx, http.MethodPut, "/food/"+url.PathEscape(id), req, &res)
	return res, err
}

func (c *Client) DeleteFood(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/food/"+url.PathEscape(id), nil, nil)
}

func (c *Client) ReserveFood(ctx context.Context, id string) (domain.MutationResponse, error) {
	var res domain.MutationResponse
	err := c.do(ctx, http.MethodPost, "/food/"+url.PathEscape(id)+"/reserve", nil, &res)
	return res, err
}

// LocalFood returns the listings that were created while offline.
func (c *Client) LocalFood() []domain.FoodItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.FoodItem, len(c.local))
	for i, item := range c.local {
		out[i] = item.Clone()
	}
	return out
}

func (c *Client) keepLocal(req domain.CreateFoodItemRequest) domain.FoodItem {
	now := c.clock()
	item := domain.FoodItem{
		ID:              "local-" + uuid.NewString(),
		Title:           req.Title,
		Type:            req.Type,
		Quantity:        req.Quantity,
		Unit:            req.Unit,
		Provider:        localProviderName,
		ProviderID:      localProviderID,
		Location:        req.Location,
		SafetyHours:     req.SafetyHours,
		ListedAt:        now,
		ExpiresAt:       now.Add(time.Duration(req.SafetyHours * float64(time.Hour))),
		Description:     req.Description,
		ImageURL:        req.ImageURL,
		Status:          domain.StatusAvailable,
		Tags:            req.Tags,
		Allergens:       req.Allergens,
		NutritionalInfo: req.NutritionalInfo,
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session != nil {
		item.Provider = c.session.User.Name
		item.ProviderID = c.session.User.ID
	}
	c.local = append([]domain.FoodItem{item.Clone()}, c.local...)
	return item
}

// do sends one request. A 401 on an authenticated call triggers a single
// token refresh and retry; if either fails the session is cleared.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}

	access := c.accessToken()
	status, data, err := c.send(ctx, method, path, payload, access)
	if err != nil {
		return err
	}

	if status == http.StatusUnauthorized && access != "" {
		if err := c.refresh(ctx); err != nil {
			if errors.Is(err, ErrNetwork) {
				return err
			}
			c.expire()
			return ErrSessionExpired
		}
		status, data, err = c.send(ctx, method, path, payload, c.accessToken())
		if err != nil {
			return err
		}
		if status == http.StatusUnauthorized {
			c.expire()
			return ErrSessionExpired
		}
	}

	if status < 200 || status >= 300 {
		return decodeError(status, data)
	}
	if out == nil {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode response data: %w", err)
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, path string, payload []byte, access string) (int, []byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if access != "" {
		req.Header.Set("Authorization", "Bearer "+access)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %s %s: %w", ErrNetwork, method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: read response: %w", ErrNetwork, err)
	}
	return resp.StatusCode, data, nil
}

func (c *Client) refresh(ctx context.Context) error {
	c.mu.Lock()
	var token string
	if c.session != nil {
		token = c.session.Refresh
	}
	c.mu.Unlock()
	if token == "" {
		return ErrNotSignedIn
	}

	payload, err := json.Marshal(domain.RefreshRequest{Refresh: token})
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	status, data, err := c.send(ctx, http.MethodPost, "/auth/refresh/", payload, "")
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return decodeError(status, data)
	}

	var env envelope
	var res domain.RefreshResponse
	if err := json.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("decode refresh response: %w", err)
	}
	if err := json.Unmarshal(env.Data, &res); err != nil || res.Access == "" {
		return errors.New("decode refresh response: missing access token")
	}

	c.mu.Lock()
	if c.session == nil {
		c.mu.Unlock()
		return ErrNotSignedIn
	}
	c.session.Access = res.Access
	session := *c.session
	c.mu.Unlock()

	if err := c.sessions.Save(session); err != nil {
		c.logger.Warn("failed to persist refreshed session", zap.Error(err))
	}
	return nil
}

func (c *Client) signIn(res domain.AuthResponse) error {
	session := Session{
		User: SessionUser{
			ID:           res.User.ID,
			Name:         res.User.Name,
			Email:        res.User.Email,
			Role:         res.User.Role,
			Organization: res.User.Organization,
		},
		Access:  res.Access,
		Refresh: res.Refresh,
	}

	c.mu.Lock()
	c.session = &session
	c.mu.Unlock()

	return c.sessions.Save(session)
}

func (c *Client) accessToken() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return ""
	}
	return c.session.Access
}

func (c *Client) expire() {
	if err := c.clearSession(); err != nil {
		c.logger.Warn("failed to clear expired session", zap.Error(err))
	}
}

func (c *Client) clearSession() error {
	c.mu.Lock()
	c.session = nil
	c.mu.Unlock()
	return c.sessions.Clear()
}
