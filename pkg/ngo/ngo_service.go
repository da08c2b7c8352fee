package ngo

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/entities"
	"FoodShare-Backend/pkg/permission"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	NGOService interface {
		CreateNGO(ctx context.Context, req domain.CreateNGORequest, role string) (domain.NGO, error)
		GetNGOByID(ctx context.Context, id string) (domain.NGO, error)
		GetNGOs(ctx context.Context, req domain.ListNGOsRequest) ([]domain.NGO, error)
	}

	ngoService struct {
		ngoRepository NGORepository
	}
)

func NewNGOService(ngoRepository NGORepository) NGOService {
	return &ngoService{ngoRepository: ngoRepository}
}

// CreateNGO registers an organisation. Only roles that distribute food
// may register one; it starts unverified.
func (s *ngoService) CreateNGO(ctx context.Context, req domain.CreateNGORequest, role string) (domain.NGO, error) {
	if !permission.For(role).Allows(permission.DistributeFood) {
		return domain.NGO{}, domain.ErrPermissionDenied
	}

	ngo := &entities.NGO{
		ID:               uuid.New(),
		Name:             req.Name,
		Description:      req.Description,
		ContactPerson:    req.ContactPerson,
		Email:            req.Email,
		Phone:            req.Phone,
		Address:          req.Address,
		ServiceArea:      req.ServiceArea,
		BeneficiaryCount: req.BeneficiaryCount,
		Categories:       req.Categories,
	}
	if err := s.ngoRepository.CreateNGO(ctx, ngo); err != nil {
		return domain.NGO{}, err
	}
	return toDomain(*ngo), nil
}

func (s *ngoService) GetNGOByID(ctx context.Context, id string) (domain.NGO, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.NGO{}, domain.ErrNGONotFound
	}
	ngo, err := s.ngoRepository.GetNGOByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NGO{}, domain.ErrNGONotFound
		}
		return domain.NGO{}, err
	}
	return toDomain(*ngo), nil
}

func (s *ngoService) GetNGOs(ctx context.Context, req domain.ListNGOsRequest) ([]domain.NGO, error) {
	rows, err := s.ngoRepository.GetNGOs(ctx, req.Area, req.Search)
	if err != nil {
		return nil, err
	}
	out := make([]domain.NGO, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDomain(row))
	}
	return out, nil
}

func toDomain(e entities.NGO) domain.NGO {
	return domain.NGO{
		ID:                   e.ID.String(),
		Name:                 e.Name,
		Description:          e.Description,
		ContactPerson:        e.ContactPerson,
		Email:                e.Email,
		Phone:                e.Phone,
		Address:              e.Address,
		ServiceArea:          append([]string{}, e.ServiceArea...),
		BeneficiaryCount:     e.BeneficiaryCount,
		Verified:             e.Verified,
		Rating:               e.Rating,
		TotalFoodDistributed: e.TotalFoodDistributed,
		JoinedAt:             e.CreatedAt,
		Categories:           append([]string{}, e.Categories...),
	}
}
