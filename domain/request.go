package domain

import (
	"errors"
	"time"
)

const (
	RequestPending   = "pending"
	RequestMatched   = "matched"
	RequestFulfilled = "fulfilled"
	RequestCancelled = "cancelled"

	UrgencyLow    = "low"
	UrgencyMedium = "medium"
	UrgencyHigh   = "high"
)

var (
	MessageSuccessCreateRequest = "food request created successfully"
	MessageSuccessGetRequests   = "food requests retrieved successfully"
	MessageSuccessUpdateRequest = "food request updated successfully"
	MessageFailedCreateRequest  = "failed to create food request"
	MessageFailedGetRequests    = "failed to retrieve food requests"
	MessageFailedUpdateRequest  = "failed to update food request"

	ErrRequestNotFound         = errors.New("food request not found")
	ErrInvalidStatusTransition = errors.New("invalid food request status transition")
)

type (
	FoodRequest struct {
		ID             string    `json:"id"`
		NGOID          string    `json:"ngo_id"`
		NGOName        string    `json:"ngo_name"`
		RequestedBy    string    `json:"requested_by"`
		RequestedItems []string  `json:"requested_items"`
		Quantity       string    `json:"quantity"`
		Urgency        string    `json:"urgency"`
		Description    string    `json:"description"`
		Location       string    `json:"location"`
		ContactPerson  string    `json:"contact_person"`
		Phone          string    `json:"phone"`
		Status         string    `json:"status"`
		CreatedAt      time.Time `json:"created_at"`
		Deadline       time.Time `json:"deadline"`
	}

	CreateFoodRequestRequest struct {
		NGOID          string    `json:"ngo_id" validate:"required"`
		NGOName        string    `json:"ngo_name" validate:"required,max=255"`
		RequestedItems []string  `json:"requested_items" validate:"required,min=1,dive,required"`
		Quantity       string    `json:"quantity" validate:"required"`
		Urgency        string    `json:"urgency" validate:"required,oneof=low medium high"`
		Description    string    `json:"description" validate:"omitempty"`
		Location       string    `json:"location" validate:"required"`
		ContactPerson  string    `json:"contact_person" validate:"required"`
		Phone          string    `json:"phone" validate:"required,phone"`
		Deadline       time.Time `json:"deadline" validate:"required"`
	}

	UpdateFoodRequestRequest struct {
		Status string `json:"status" validate:"required,oneof=pending matched fulfilled cancelled"`
	}

	ListFoodRequestsRequest struct {
		NGOID  string `query:"ngo_id"`
		Status string `query:"status" validate:"omitempty,oneof=pending matched fulfilled cancelled"`
	}

	RequestCounts struct {
		Total    int `json:"total"`
		Pending  int `json:"pending"`
		Approved int `json:"approved"`
	}
)
