package ngo

import (
	"FoodShare-Backend/entities"
	"context"
	"strings"

	"gorm.io/gorm"
)

type (
	NGORepository interface {
		CreateNGO(ctx context.Context, ngo *entities.NGO) error
		GetNGOByID(ctx context.Context, id string) (*entities.NGO, error)
		GetNGOs(ctx context.Context, area string, search string) ([]entities.NGO, error)
	}

	ngoRepository struct {
		db *gorm.DB
	}
)

func NewNGORepository(db *gorm.DB) NGORepository {
	return &ngoRepository{db: db}
}

func (r *ngoRepository) CreateNGO(ctx context.Context, ngo *entities.NGO) error {
	return r.db.WithContext(ctx).Create(ngo).Error
}

func (r *ngoRepository) GetNGOByID(ctx context.Context, id string) (*entities.NGO, error) {
	var ngo entities.NGO
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&ngo).Error; err != nil {
		return nil, err
	}
	return &ngo, nil
}

func (r *ngoRepository) GetNGOs(ctx context.Context, area string, search string) ([]entities.NGO, error) {
	var ngos []entities.NGO
	query := r.db.WithContext(ctx).Model(&entities.NGO{})

	if area = strings.TrimSpace(area); area != "" {
		query = query.Where("EXISTS (SELECT 1 FROM unnest(service_area) AS a WHERE a ILIKE ?)", "%"+area+"%")
	}
	if search = strings.TrimSpace(search); search != "" {
		like := "%" + search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", like, like)
	}

	if err := query.Order("name asc").Find(&ngos).Error; err != nil {
		return nil, err
	}
	return ngos, nil
}
