package request

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/entities"
	"FoodShare-Backend/pkg/permission"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var transitions = map[string][]string{
	domain.RequestPending: {domain.RequestMatched, domain.RequestCancelled},
	domain.RequestMatched: {domain.RequestFulfilled, domain.RequestCancelled},
}

type (
	RequestService interface {
		CreateRequest(ctx context.Context, req domain.CreateFoodRequestRequest, userID string, role string) (domain.FoodRequest, error)
		GetRequests(ctx context.Context, req domain.ListFoodRequestsRequest) ([]domain.FoodRequest, error)
		UpdateStatus(ctx context.Context, id string, req domain.UpdateFoodRequestRequest, userID string, role string) (domain.FoodRequest, error)
		Counts(ctx context.Context) (domain.RequestCounts, error)
	}

	Notifier interface {
		Emit(ctx context.Context, n domain.Notification) error
	}

	requestService struct {
		requestRepository RequestRepository
		notifier          Notifier
		logger            *zap.Logger
		now               func() time.Time
	}
)

func NewRequestService(requestRepository RequestRepository, notifier Notifier, logger *zap.Logger) RequestService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &requestService{
		requestRepository: requestRepository,
		notifier:          notifier,
		logger:            logger,
		now:               time.Now,
	}
}

// CanTransition reports whether a request may move from one status to
// another. Fulfilled and cancelled requests are final.
func CanTransition(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func (s *requestService) CreateRequest(ctx context.Context, req domain.CreateFoodRequestRequest, userID string, role string) (domain.FoodRequest, error) {
	if userID == "" {
		return domain.FoodRequest{}, domain.ErrAuthRequired
	}
	if !permission.For(role).Allows(permission.DistributeFood) {
		return domain.FoodRequest{}, domain.ErrPermissionDenied
	}

	row := &entities.FoodRequest{
		ID:             uuid.New(),
		NGOID:          req.NGOID,
		NGOName:        req.NGOName,
		RequestedBy:    userID,
		RequestedItems: req.RequestedItems,
		Quantity:       req.Quantity,
		Urgency:        req.Urgency,
		Description:    req.Description,
		Location:       req.Location,
		ContactPerson:  req.ContactPerson,
		Phone:          req.Phone,
		Status:         domain.RequestPending,
		Deadline:       req.Deadline,
	}
	row.CreatedAt = s.now()
	if err := s.requestRepository.CreateRequest(ctx, row); err != nil {
		return domain.FoodRequest{}, fmt.Errorf("create food request: %w", err)
	}

	if s.notifier != nil {
		err := s.notifier.Emit(ctx, domain.Notification{
			Title:     "New Food Request",
			Message:   fmt.Sprintf("%s needs %s: %s", req.NGOName, req.Quantity, strings.Join(req.RequestedItems, ", ")),
			Type:      domain.NotificationNGORequest,
			NGOID:     req.NGOID,
			Timestamp: row.CreatedAt,
			Priority:  urgencyPriority(req.Urgency),
		})
		if err != nil {
			s.logger.Warn("failed to emit request notification", zap.String("request_id", row.ID.String()), zap.Error(err))
		}
	}
	return toDomain(*row), nil
}

func (s *requestService) GetRequests(ctx context.Context, req domain.ListFoodRequestsRequest) ([]domain.FoodRequest, error) {
	rows, err := s.requestRepository.GetRequests(ctx, req.NGOID, req.Status)
	if err != nil {
		return nil, err
	}
	out := make([]domain.FoodRequest, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDomain(row))
	}
	return out, nil
}

// UpdateStatus moves a request along pending → matched → fulfilled.
// Cancelling is reserved to the requester and Admin.
func (s *requestService) UpdateStatus(ctx context.Context, id string, req domain.UpdateFoodRequestRequest, userID string, role string) (domain.FoodRequest, error) {
	if userID == "" {
		return domain.FoodRequest{}, domain.ErrAuthRequired
	}
	if !permission.For(role).Allows(permission.ManageRequests) {
		return domain.FoodRequest{}, domain.ErrPermissionDenied
	}
	if _, err := uuid.Parse(id); err != nil {
		return domain.FoodRequest{}, domain.ErrRequestNotFound
	}

	row, err := s.requestRepository.GetRequestByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FoodRequest{}, domain.ErrRequestNotFound
		}
		return domain.FoodRequest{}, err
	}

	if req.Status == domain.RequestCancelled && row.RequestedBy != userID && role != domain.RoleAdmin {
		return domain.FoodRequest{}, domain.ErrPermissionDenied
	}
	if !CanTransition(row.Status, req.Status) {
		return domain.FoodRequest{}, fmt.Errorf("%w: %s to %s", domain.ErrInvalidStatusTransition, row.Status, req.Status)
	}

	if err := s.requestRepository.UpdateStatus(ctx, id, req.Status); err != nil {
		return domain.FoodRequest{}, err
	}
	row.Status = req.Status
	return toDomain(*row), nil
}

// Counts reports totals for analytics. Matched and fulfilled requests
// count as approved.
func (s *requestService) Counts(ctx context.Context) (domain.RequestCounts, error) {
	byStatus, err := s.requestRepository.CountByStatus(ctx)
	if err != nil {
		return domain.RequestCounts{}, err
	}
	var counts domain.RequestCounts
	for _, n := range byStatus {
		counts.Total += n
	}
	counts.Pending = byStatus[domain.RequestPending]
	counts.Approved = byStatus[domain.RequestMatched] + byStatus[domain.RequestFulfilled]
	return counts, nil
}

func urgencyPriority(urgency string) string {
	switch urgency {
	case domain.UrgencyHigh:
		return domain.PriorityHigh
	case domain.UrgencyLow:
		return domain.PriorityLow
	default:
		return domain.PriorityMedium
	}
}

func toDomain(e entities.FoodRequest) domain.FoodRequest {
	return domain.FoodRequest{
		ID:             e.ID.String(),
		NGOID:          e.NGOID,
		NGOName:        e.NGOName,
		RequestedBy:    e.RequestedBy,
		RequestedItems: append([]string{}, e.RequestedItems...),
		Quantity:       e.Quantity,
		Urgency:        e.Urgency,
		Description:    e.Description,
		Location:       e.Location,
		ContactPerson:  e.ContactPerson,
		Phone:          e.Phone,
		Status:         e.Status,
		CreatedAt:      e.CreatedAt,
		Deadline:       e.Deadline,
	}
}
