package listing

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	// FoodRepository is the durable side of the store: the initial load and
	// write-through of single listings.
	FoodRepository interface {
		LoadAll(ctx context.Context) ([]domain.FoodItem, error)
		Save(ctx context.Context, item domain.FoodItem) error
		Delete(ctx context.Context, id string) error
	}

	foodRepository struct {
		db *gorm.DB
	}
)

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) LoadAll(ctx context.Context) ([]domain.FoodItem, error) {
	var rows []entities.FoodItem
	err := r.db.WithContext(ctx).
		Preload("Reviews", func(db *gorm.DB) *gorm.DB { return db.Order("reviewed_at asc") }).
		Order("listed_at desc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	items := make([]domain.FoodItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, toDomain(row))
	}
	return items, nil
}

func (r *foodRepository) Save(ctx context.Context, item domain.FoodItem) error {
	row := toEntity(item)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Reviews").Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error; err != nil {
			return err
		}
		if len(row.Reviews) == 0 {
			return nil
		}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&row.Reviews).Error
	})
}

func (r *foodRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.FoodItem{}).Error
}

func toEntity(item domain.FoodItem) entities.FoodItem {
	row := entities.FoodItem{
		ID:              item.ID,
		Title:           item.Title,
		Type:            item.Type,
		Quantity:        item.Quantity,
		Unit:            item.Unit,
		Provider:        item.Provider,
		ProviderID:      item.ProviderID,
		Location:        item.Location,
		SafetyHours:     item.SafetyHours,
		ListedAt:        item.ListedAt,
		ExpiresAt:       item.ExpiresAt,
		Description:     item.Description,
		ImageURL:        item.ImageURL,
		Status:          item.Status,
		Tags:            item.Tags,
		Allergens:       item.Allergens,
		NutritionalInfo: item.NutritionalInfo,
		ReservedBy:      optional(item.ReservedBy),
		CollectedBy:     optional(item.CollectedBy),
		CollectedAt:     item.CollectedAt,
		Rating:          item.Rating,
	}
	for _, rv := range item.Reviews {
		id, err := uuid.Parse(rv.ID)
		if err != nil {
			id = uuid.NewSHA1(uuid.NameSpaceOID, []byte(item.ID+"/"+rv.ID))
		}
		row.Reviews = append(row.Reviews, entities.Review{
			ID:         id,
			FoodItemID: item.ID,
			UserID:     rv.UserID,
			UserName:   rv.UserName,
			Rating:     rv.Rating,
			Comment:    rv.Comment,
			ReviewedAt: rv.Timestamp,
		})
	}
	return row
}

func toDomain(row entities.FoodItem) domain.FoodItem {
	item := domain.FoodItem{
		ID:              row.ID,
		Title:           row.Title,
		Type:            row.Type,
		Quantity:        row.Quantity,
		Unit:            row.Unit,
		Provider:        row.Provider,
		ProviderID:      row.ProviderID,
		Location:        row.Location,
		SafetyHours:     row.SafetyHours,
		ListedAt:        row.ListedAt,
		ExpiresAt:       row.ExpiresAt,
		Description:     row.Description,
		ImageURL:        row.ImageURL,
		Status:          row.Status,
		Tags:            append([]string{}, row.Tags...),
		Allergens:       append([]string{}, row.Allergens...),
		NutritionalInfo: row.NutritionalInfo,
		CollectedAt:     row.CollectedAt,
		Rating:          row.Rating,
	}
	if row.ReservedBy != nil {
		item.ReservedBy = *row.ReservedBy
	}
	if row.CollectedBy != nil {
		item.CollectedBy = *row.CollectedBy
	}
	for _, rv := range row.Reviews {
		item.Reviews = append(item.Reviews, domain.Review{
			ID:        rv.ID.String(),
			UserID:    rv.UserID,
			UserName:  rv.UserName,
			Rating:    rv.Rating,
			Comment:   rv.Comment,
			Timestamp: rv.ReviewedAt,
		})
	}
	return item
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
