package request

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/entities"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type memoryRepo struct {
	rows map[string]entities.FoodRequest
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{rows: make(map[string]entities.FoodRequest)}
}

func (r *memoryRepo) CreateRequest(_ context.Context, req *entities.FoodRequest) error {
	r.rows[req.ID.String()] = *req
	return nil
}

func (r *memoryRepo) GetRequestByID(_ context.Context, id string) (*entities.FoodRequest, error) {
	req, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &req, nil
}

func (r *memoryRepo) GetRequests(_ context.Context, ngoID string, status string) ([]entities.FoodRequest, error) {
	var out []entities.FoodRequest
	for _, req := range r.rows {
		if (ngoID == "" || req.NGOID == ngoID) && (status == "" || req.Status == status) {
			out = append(out, req)
		}
	}
	return out, nil
}

func (r *memoryRepo) UpdateStatus(_ context.Context, id string, status string) error {
	req := r.rows[id]
	req.Status = status
	r.rows[id] = req
	return nil
}

func (r *memoryRepo) CountByStatus(context.Context) (map[string]int, error) {
	counts := make(map[string]int)
	for _, req := range r.rows {
		counts[req.Status]++
	}
	return counts, nil
}

type recordingNotifier struct {
	sent []domain.Notification
}

func (n *recordingNotifier) Emit(_ context.Context, note domain.Notification) error {
	n.sent = append(n.sent, note)
	return nil
}

func createRequest(ngoID string) domain.CreateFoodRequestRequest {
	return domain.CreateFoodRequestRequest{
		NGOID:          ngoID,
		NGOName:        "Food For All",
		RequestedItems: []string{"rice", "bread"},
		Quantity:       "50 servings",
		Urgency:        domain.UrgencyHigh,
		Location:       "Shelter A",
		ContactPerson:  "Rina",
		Phone:          "+62 812 3456 7890",
		Deadline:       time.Now().Add(48 * time.Hour),
	}
}

func TestCreateRequestNotifies(t *testing.T) {
	notifier := &recordingNotifier{}
	svc := NewRequestService(newMemoryRepo(), notifier, nil)

	req, err := svc.CreateRequest(context.Background(), createRequest("ngo-1"), "user-ngo", domain.RoleNGO)
	require.NoError(t, err)
	assert.Equal(t, domain.RequestPending, req.Status)
	assert.Equal(t, "user-ngo", req.RequestedBy)

	require.Len(t, notifier.sent, 1)
	n := notifier.sent[0]
	assert.Equal(t, domain.NotificationNGORequest, n.Type)
	assert.Equal(t, "ngo-1", n.NGOID)
	assert.Equal(t, domain.PriorityHigh, n.Priority)
	assert.Equal(t, "Food For All needs 50 servings: rice, bread", n.Message)
}

func TestCreateRequestPermissions(t *testing.T) {
	svc := NewRequestService(newMemoryRepo(), nil, nil)
	ctx := context.Background()

	_, err := svc.CreateRequest(ctx, createRequest("ngo-1"), "", domain.RoleNGO)
	assert.ErrorIs(t, err, domain.ErrAuthRequired)
	_, err = svc.CreateRequest(ctx, createRequest("ngo-1"), "provider-1", domain.RoleFoodProvider)
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to string
		ok       bool
	}{
		{domain.RequestPending, domain.RequestMatched, true},
		{domain.RequestPending, domain.RequestCancelled, true},
		{domain.RequestPending, domain.RequestFulfilled, false},
		{domain.RequestMatched, domain.RequestFulfilled, true},
		{domain.RequestMatched, domain.RequestCancelled, true},
		{domain.RequestMatched, domain.RequestPending, false},
		{domain.RequestFulfilled, domain.RequestCancelled, false},
		{domain.RequestCancelled, domain.RequestPending, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.ok, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestUpdateStatusFlow(t *testing.T) {
	svc := NewRequestService(newMemoryRepo(), nil, nil)
	ctx := context.Background()

	req, err := svc.CreateRequest(ctx, createRequest("ngo-1"), "user-ngo", domain.RoleNGO)
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, req.ID, domain.UpdateFoodRequestRequest{Status: domain.RequestFulfilled}, "provider-1", domain.RoleFoodProvider)
	assert.ErrorIs(t, err, domain.ErrInvalidStatusTransition)

	updated, err := svc.UpdateStatus(ctx, req.ID, domain.UpdateFoodRequestRequest{Status: domain.RequestMatched}, "provider-1", domain.RoleFoodProvider)
	require.NoError(t, err)
	assert.Equal(t, domain.RequestMatched, updated.Status)

	_, err = svc.UpdateStatus(ctx, req.ID, domain.UpdateFoodRequestRequest{Status: domain.RequestCancelled}, "provider-1", domain.RoleFoodProvider)
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)

	updated, err = svc.UpdateStatus(ctx, req.ID, domain.UpdateFoodRequestRequest{Status: domain.RequestCancelled}, "user-ngo", domain.RoleNGO)
	require.NoError(t, err)
	assert.Equal(t, domain.RequestCancelled, updated.Status)

	_, err = svc.UpdateStatus(ctx, "missing", domain.UpdateFoodRequestRequest{Status: domain.RequestMatched}, "user-ngo", domain.RoleNGO)
	assert.ErrorIs(t, err, domain.ErrRequestNotFound)
}

func TestCountsAndListing(t *testing.T) {
	svc := NewRequestService(newMemoryRepo(), nil, nil)
	ctx := context.Background()

	a, err := svc.CreateRequest(ctx, createRequest("ngo-1"), "user-ngo", domain.RoleNGO)
	require.NoError(t, err)
	_, err = svc.CreateRequest(ctx, createRequest("ngo-1"), "user-ngo", domain.RoleNGO)
	require.NoError(t, err)
	_, err = svc.CreateRequest(ctx, createRequest("ngo-2"), "admin-1", domain.RoleAdmin)
	require.NoError(t, err)
	_, err = svc.UpdateStatus(ctx, a.ID, domain.UpdateFoodRequestRequest{Status: domain.RequestMatched}, "admin-1", domain.RoleAdmin)
	require.NoError(t, err)

	counts, err := svc.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.RequestCounts{Total: 3, Pending: 2, Approved: 1}, counts)

	list, err := svc.GetRequests(ctx, domain.ListFoodRequestsRequest{NGOID: "ngo-1", Status: domain.RequestPending})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
