package listing

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/internal/utils/storage"
	"FoodShare-Backend/pkg/freshness"
	"FoodShare-Backend/pkg/qr"
	"context"
	"fmt"

	"go.uber.org/zap"
)

type (
	FoodService interface {
		ListFoodItems(ctx context.Context, req domain.ListFoodItemsRequest, userID string) ([]domain.FoodItemResponse, domain.Pagination)
		GetAvailableFoodItems(ctx context.Context) []domain.FoodItemResponse
		GetFoodItemByID(ctx context.Context, id string) (domain.FoodItemResponse, error)
		AddFoodItem(ctx context.Context, req domain.CreateFoodItemRequest, userID string) (domain.MutationResponse, error)
		UpdateFoodItem(ctx context.Context, id string, req domain.UpdateFoodItemRequest, userID string) (domain.MutationResponse, error)
		DeleteFoodItem(ctx context.Context, id string, userID string) (domain.MutationResponse, error)
		ReserveFoodItem(ctx context.Context, id string, userID string) (domain.MutationResponse, error)
		CollectFoodItem(ctx context.Context, id string, userID string) (domain.MutationResponse, error)
		RateFoodItem(ctx context.Context, id string, req domain.RateFoodItemRequest, userID string) (domain.MutationResponse, error)
		UploadFoodImage(ctx context.Context, id string, req domain.UploadFoodImageRequest, userID string) (domain.MutationResponse, error)
		GenerateQRCode(ctx context.Context, id string, size int) ([]byte, error)
		ScanQRCode(ctx context.Context, req domain.ScanQRCodeRequest, userID string) (domain.MutationResponse, error)
	}

	// UserLookup resolves the acting user for a request.
	UserLookup interface {
		GetUserByID(ctx context.Context, userID string) (domain.User, error)
	}

	foodService struct {
		controller *Controller
		users      UserLookup
		s3         storage.AwsS3
		logger     *zap.Logger
	}
)

func NewFoodService(controller *Controller, users UserLookup, s3 storage.AwsS3, logger *zap.Logger) FoodService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &foodService{
		controller: controller,
		users:      users,
		s3:         s3,
		logger:     logger,
	}
}

func (s *foodService) ListFoodItems(ctx context.Context, req domain.ListFoodItemsRequest, userID string) ([]domain.FoodItemResponse, domain.Pagination) {
	q := Query{
		Search: req.Search,
		Filter: req.Filter,
		Status: req.Status,
		Page:   req.Page,
		Limit:  req.Limit,
	}
	if req.Mine {
		q.ProviderID = userID
	}
	page := s.controller.List(q)
	return s.responses(page.Items), page.Pagination
}

func (s *foodService) GetAvailableFoodItems(ctx context.Context) []domain.FoodItemResponse {
	return s.responses(s.controller.Available())
}

func (s *foodService) GetFoodItemByID(ctx context.Context, id string) (domain.FoodItemResponse, error) {
	item, err := s.controller.Get(id)
	if err != nil {
		return domain.FoodItemResponse{}, err
	}
	return s.response(item), nil
}

func (s *foodService) AddFoodItem(ctx context.Context, req domain.CreateFoodItemRequest, userID string) (domain.MutationResponse, error) {
	actor, err := s.actor(ctx, userID)
	if err != nil {
		return domain.MutationResponse{}, err
	}
	res, err := s.controller.Create(ctx, actor, domain.FoodItem{
		Title:           req.Title,
		Type:            req.Type,
		Quantity:        req.Quantity,
		Unit:            req.Unit,
		Location:        req.Location,
		SafetyHours:     req.SafetyHours,
		Description:     req.Description,
		ImageURL:        req.ImageURL,
		Tags:            req.Tags,
		Allergens:       req.Allergens,
		NutritionalInfo: req.NutritionalInfo,
	})
	return s.mutation(res, err)
}

func (s *foodService) UpdateFoodItem(ctx context.Context, id string, req domain.UpdateFoodItemRequest, userID string) (domain.MutationResponse, error) {
	actor, err := s.actor(ctx, userID)
	if err != nil {
		return domain.MutationResponse{}, err
	}
	return s.mutation(s.controller.Edit(ctx, id, actor, req.Patch()))
}

func (s *foodService) DeleteFoodItem(ctx context.Context, id string, userID string) (domain.MutationResponse, error) {
	actor, err := s.actor(ctx, userID)
	if err != nil {
		return domain.MutationResponse{}, err
	}
	res, err := s.controller.Delete(ctx, id, actor)
	if err != nil {
		return domain.MutationResponse{}, err
	}

	if s.s3 != nil && res.Item.ImageURL != "" {
		if key := s.s3.GetObjectKeyFromLink(res.Item.ImageURL); key != "" {
			if err := s.s3.DeleteFile(key); err != nil {
				s.logger.Warn("failed to delete listing image", zap.String("key", key), zap.Error(err))
			}
		}
	}
	return s.mutation(res, nil)
}

func (s *foodService) ReserveFoodItem(ctx context.Context, id string, userID string) (domain.MutationResponse, error) {
	actor, err := s.actor(ctx, userID)
	if err != nil {
		return domain.MutationResponse{}, err
	}
	return s.mutation(s.controller.Reserve(ctx, id, actor))
}

func (s *foodService) CollectFoodItem(ctx context.Context, id string, userID string) (domain.MutationResponse, error) {
	actor, err := s.actor(ctx, userID)
	if err != nil {
		return domain.MutationResponse{}, err
	}
	return s.mutation(s.controller.Collect(ctx, id, actor))
}

func (s *foodService) RateFoodItem(ctx context.Context, id string, req domain.RateFoodItemRequest, userID string) (domain.MutationResponse, error) {
	actor, err := s.actor(ctx, userID)
	if err != nil {
		return domain.MutationResponse{}, err
	}
	return s.mutation(s.controller.Rate(ctx, id, actor, req.Rating, req.Comment))
}

func (s *foodService) UploadFoodImage(ctx context.Context, id string, req domain.UploadFoodImageRequest, userID string) (domain.MutationResponse, error) {
	if s.s3 == nil {
		return domain.MutationResponse{}, storage.ErrStorageDisabled
	}
	actor, err := s.actor(ctx, userID)
	if err != nil {
		return domain.MutationResponse{}, err
	}
	item, err := s.controller.Get(id)
	if err != nil {
		return domain.MutationResponse{}, err
	}
	if !canModify(actor, item) {
		return domain.MutationResponse{}, domain.ErrPermissionDenied
	}

	var objectKey string
	if existing := s.s3.GetObjectKeyFromLink(item.ImageURL); existing != "" {
		objectKey, err = s.s3.UpdateFile(existing, req.Image, storage.AllowImage...)
	} else {
		objectKey, err = s.s3.UploadFile(fmt.Sprintf("food-item-%s", item.ID), req.Image, "food-items", storage.AllowImage...)
	}
	if err != nil {
		return domain.MutationResponse{}, err
	}

	link := s.s3.GetPublicLinkKey(objectKey)
	return s.mutation(s.controller.Edit(ctx, id, actor, domain.FoodItemPatch{ImageURL: &link}))
}

func (s *foodService) GenerateQRCode(ctx context.Context, id string, size int) ([]byte, error) {
	item, err := s.controller.Get(id)
	if err != nil {
		return nil, err
	}
	return qr.PNG(item, s.controller.Now(), size)
}

// ScanQRCode collects the listing referenced by a scanned payload.
func (s *foodService) ScanQRCode(ctx context.Context, req domain.ScanQRCodeRequest, userID string) (domain.MutationResponse, error) {
	payload, err := qr.Decode([]byte(req.Payload))
	if err != nil {
		return domain.MutationResponse{}, err
	}
	return s.CollectFoodItem(ctx, payload.ID, userID)
}

// actor returns nil for anonymous callers so the controller reports
// ErrAuthRequired.
func (s *foodService) actor(ctx context.Context, userID string) (*domain.User, error) {
	if userID == "" {
		return nil, nil
	}
	u, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *foodService) mutation(res Result, err error) (domain.MutationResponse, error) {
	if err != nil {
		return domain.MutationResponse{}, err
	}
	return domain.MutationResponse{
		Item:    s.response(res.Item),
		Changed: res.Changed,
		Warning: res.Warning,
	}, nil
}

func (s *foodService) response(item domain.FoodItem) domain.FoodItemResponse {
	now := s.controller.Now()
	return domain.FoodItemResponse{
		FoodItem:      item,
		Freshness:     string(freshness.Of(item.ExpiresAt, now)),
		TimeRemaining: freshness.TimeRemaining(item.ExpiresAt, now),
	}
}

func (s *foodService) responses(items []domain.FoodItem) []domain.FoodItemResponse {
	out := make([]domain.FoodItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, s.response(item))
	}
	return out
}
