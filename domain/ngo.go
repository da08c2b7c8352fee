package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateNGO = "ngo registered successfully"
	MessageSuccessGetNGOs   = "ngos retrieved successfully"
	MessageFailedCreateNGO  = "failed to register ngo"
	MessageFailedGetNGOs    = "failed to retrieve ngos"

	ErrNGONotFound = errors.New("ngo not found")
)

type (
	NGO struct {
		ID                   string    `json:"id"`
		Name                 string    `json:"name"`
		Description          string    `json:"description"`
		ContactPerson        string    `json:"contact_person"`
		Email                string    `json:"email"`
		Phone                string    `json:"phone"`
		Address              string    `json:"address"`
		ServiceArea          []string  `json:"service_area"`
		BeneficiaryCount     int       `json:"beneficiary_count"`
		Verified             bool      `json:"verified"`
		Rating               float64   `json:"rating"`
		TotalFoodDistributed float64   `json:"total_food_distributed"`
		JoinedAt             time.Time `json:"joined_at"`
		Categories           []string  `json:"categories"`
	}

	CreateNGORequest struct {
		Name             string   `json:"name" validate:"required,max=255"`
		Description      string   `json:"description" validate:"omitempty"`
		ContactPerson    string   `json:"contact_person" validate:"required,max=255"`
		Email            string   `json:"email" validate:"required,email"`
		Phone            string   `json:"phone" validate:"required,phone"`
		Address          string   `json:"address" validate:"required"`
		ServiceArea      []string `json:"service_area" validate:"omitempty,dive,required"`
		BeneficiaryCount int      `json:"beneficiary_count" validate:"gte=0"`
		Categories       []string `json:"categories" validate:"omitempty,dive,required"`
	}

	ListNGOsRequest struct {
		Area   string `query:"area"`
		Search string `query:"search"`
	}
)
