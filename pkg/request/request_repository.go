package request

import (
	"FoodShare-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	RequestRepository interface {
		CreateRequest(ctx context.Context, req *entities.FoodRequest) error
		GetRequestByID(ctx context.Context, id string) (*entities.FoodRequest, error)
		GetRequests(ctx context.Context, ngoID string, status string) ([]entities.FoodRequest, error)
		UpdateStatus(ctx context.Context, id string, status string) error
		CountByStatus(ctx context.Context) (map[string]int, error)
	}

	requestRepository struct {
		db *gorm.DB
	}
)

func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &requestRepository{db: db}
}

func (r *requestRepository) CreateRequest(ctx context.Context, req *entities.FoodRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *requestRepository) GetRequestByID(ctx context.Context, id string) (*entities.FoodRequest, error) {
	var req entities.FoodRequest
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&req).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *requestRepository) GetRequests(ctx context.Context, ngoID string, status string) ([]entities.FoodRequest, error) {
	var reqs []entities.FoodRequest
	query := r.db.WithContext(ctx).Model(&entities.FoodRequest{})
	if ngoID != "" {
		query = query.Where("ngo_id = ?", ngoID)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Order("created_at desc").Find(&reqs).Error; err != nil {
		return nil, err
	}
	return reqs, nil
}

func (r *requestRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	return r.db.WithContext(ctx).Model(&entities.FoodRequest{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": status}).Error
}

func (r *requestRepository) CountByStatus(ctx context.Context) (map[string]int, error) {
	var rows []struct {
		Status string
		Count  int
	}
	err := r.db.WithContext(ctx).Model(&entities.FoodRequest{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
