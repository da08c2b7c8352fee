package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

const (
	StatusAvailable = "Available"
	StatusReserved  = "Reserved"
	StatusCollected = "Collected"
	StatusExpired   = "Expired"

	TypeCookedFood     = "Cooked Food"
	TypeRawIngredients = "Raw Ingredients"
	TypePackaged       = "Packaged"
	TypeBakery         = "Bakery"
	TypeBeverages      = "Beverages"
)

var (
	MessageSuccessAddFoodItem     = "food item listed successfully"
	MessageSuccessUpdateFoodItem  = "food item updated successfully"
	MessageSuccessDeleteFoodItem  = "food item deleted successfully"
	MessageSuccessGetFoodItems    = "food items retrieved successfully"
	MessageSuccessReserveFoodItem = "food item reserved successfully"
	MessageSuccessCollectFoodItem = "food item collected successfully"
	MessageSuccessRateFoodItem    = "thank you for your rating"
	MessageSuccessUploadImage     = "image uploaded successfully"
	MessageSuccessScanQRCode      = "qr code scanned successfully"
	MessageNotAvailableFoodItem   = "food item is no longer available"

	MessageFailedAddFoodItem     = "failed to add food item"
	MessageFailedUpdateFoodItem  = "failed to update food item"
	MessageFailedDeleteFoodItem  = "failed to delete food item"
	MessageFailedGetFoodItems    = "failed to retrieve food items"
	MessageFailedReserveFoodItem = "failed to reserve food item"
	MessageFailedCollectFoodItem = "failed to collect food item"
	MessageFailedRateFoodItem    = "failed to rate food item"
	MessageFailedUploadImage     = "failed to upload image"
	MessageFailedGenerateQRCode  = "failed to generate qr code"
	MessageFailedScanQRCode      = "failed to scan qr code"

	MessageWarningLocalOnly = "saved locally; syncing with the backend failed"

	ErrFoodItemNotFound   = errors.New("food item not found")
	ErrFoodItemExists     = errors.New("food item already exists")
	ErrInvalidExpiryDate  = errors.New("invalid expiry date")
	ErrInvalidQuantity    = errors.New("quantity must be positive")
	ErrUnauthorizedAccess = errors.New("unauthorized access to food item")
)

type (
	FoodItem struct {
		ID              string     `json:"id"`
		Title           string     `json:"title"`
		Type            string     `json:"type"`
		Quantity        float64    `json:"quantity"`
		Unit            string     `json:"unit"`
		Provider        string     `json:"provider"`
		ProviderID      string     `json:"provider_id"`
		Location        string     `json:"location"`
		SafetyHours     float64    `json:"safety_hours"`
		ListedAt        time.Time  `json:"listed_at"`
		ExpiresAt       time.Time  `json:"expires_at"`
		Description     string     `json:"description"`
		ImageURL        string     `json:"image_url,omitempty"`
		Status          string     `json:"status"`
		Tags            []string   `json:"tags"`
		Allergens       []string   `json:"allergens"`
		NutritionalInfo string     `json:"nutritional_info,omitempty"`
		ReservedBy      string     `json:"reserved_by,omitempty"`
		CollectedBy     string     `json:"collected_by,omitempty"`
		CollectedAt     *time.Time `json:"collected_at,omitempty"`
		Rating          *float64   `json:"rating,omitempty"`
		Reviews         []Review   `json:"reviews,omitempty"`
	}

	Review struct {
		ID        string    `json:"id"`
		UserID    string    `json:"user_id"`
		UserName  string    `json:"user_name"`
		Rating    float64   `json:"rating"`
		Comment   string    `json:"comment"`
		Timestamp time.Time `json:"timestamp"`
	}

	// FoodItemPatch carries the fields an edit may change. Nil means unchanged.
	FoodItemPatch struct {
		Title           *string
		Type            *string
		Quantity        *float64
		Unit            *string
		Location        *string
		SafetyHours     *float64
		ExpiresAt       *time.Time
		Description     *string
		ImageURL        *string
		Tags            []string
		Allergens       []string
		NutritionalInfo *string
	}

	CreateFoodItemRequest struct {
		Title           string   `json:"title" validate:"required,max=255"`
		Type            string   `json:"type" validate:"required,oneof='Cooked Food' 'Raw Ingredients' Packaged Bakery Beverages"`
		Quantity        float64  `json:"quantity" validate:"required,gt=0"`
		Unit            string   `json:"unit" validate:"required"`
		Location        string   `json:"location" validate:"required,max=255"`
		SafetyHours     float64  `json:"safety_hours" validate:"required,gt=0,lte=168"`
		Description     string   `json:"description" validate:"omitempty"`
		ImageURL        string   `json:"image_url" validate:"omitempty,url"`
		Tags            []string `json:"tags" validate:"omitempty,dive,required"`
		Allergens       []string `json:"allergens" validate:"omitempty,dive,required"`
		NutritionalInfo string   `json:"nutritional_info" validate:"omitempty"`
	}

	UpdateFoodItemRequest struct {
		Title           *string    `json:"title" validate:"omitempty,max=255"`
		Type            *string    `json:"type" validate:"omitempty,oneof='Cooked Food' 'Raw Ingredients' Packaged Bakery Beverages"`
		Quantity        *float64   `json:"quantity" validate:"omitempty,gt=0"`
		Unit            *string    `json:"unit" validate:"omitempty"`
		Location        *string    `json:"location" validate:"omitempty,max=255"`
		SafetyHours     *float64   `json:"safety_hours" validate:"omitempty,gt=0,lte=168"`
		ExpiresAt       *time.Time `json:"expires_at" validate:"omitempty"`
		Description     *string    `json:"description" validate:"omitempty"`
		ImageURL        *string    `json:"image_url" validate:"omitempty,url"`
		Tags            []string   `json:"tags" validate:"omitempty,dive,required"`
		Allergens       []string   `json:"allergens" validate:"omitempty,dive,required"`
		NutritionalInfo *string    `json:"nutritional_info" validate:"omitempty"`
	}

	RateFoodItemRequest struct {
		Rating  float64 `json:"rating" validate:"required,min=1,max=5"`
		Comment string  `json:"comment" validate:"omitempty,max=1000"`
	}

	UploadFoodImageRequest struct {
		Image *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	ScanQRCodeRequest struct {
		Payload string `json:"payload" validate:"required"`
	}

	ListFoodItemsRequest struct {
		Search string `query:"search"`
		Filter string `query:"filter" validate:"omitempty,oneof=all available fresh"`
		Status string `query:"status" validate:"omitempty,oneof=Available Reserved Collected Expired"`
		Mine   bool   `query:"mine"`
		Page   int    `query:"page" validate:"omitempty,min=1,max=100000"`
		Limit  int    `query:"limit" validate:"omitempty,min=1,max=100"`
	}

	FoodItemResponse struct {
		FoodItem
		Freshness     string `json:"freshness"`
		TimeRemaining string `json:"time_remaining"`
	}

	MutationResponse struct {
		Item    FoodItemResponse `json:"item"`
		Changed bool             `json:"changed"`
		Warning string           `json:"warning,omitempty"`
	}
)

func (r UpdateFoodItemRequest) Patch() FoodItemPatch {
	return FoodItemPatch{
		Title:           r.Title,
		Type:            r.Type,
		Quantity:        r.Quantity,
		Unit:            r.Unit,
		Location:        r.Location,
		SafetyHours:     r.SafetyHours,
		ExpiresAt:       r.ExpiresAt,
		Description:     r.Description,
		ImageURL:        r.ImageURL,
		Tags:            r.Tags,
		Allergens:       r.Allergens,
		NutritionalInfo: r.NutritionalInfo,
	}
}

// Clone returns a deep copy so snapshots never share mutable state with the store.
func (f FoodItem) Clone() FoodItem {
	out := f
	if f.Tags != nil {
		out.Tags = append([]string(nil), f.Tags...)
	}
	if f.Allergens != nil {
		out.Allergens = append([]string(nil), f.Allergens...)
	}
	if f.Reviews != nil {
		out.Reviews = append([]Review(nil), f.Reviews...)
	}
	if f.CollectedAt != nil {
		t := *f.CollectedAt
		out.CollectedAt = &t
	}
	if f.Rating != nil {
		r := *f.Rating
		out.Rating = &r
	}
	return out
}
