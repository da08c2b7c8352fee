package handlers

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/internal/api/presenters"
	"FoodShare-Backend/pkg/listing"
	"FoodShare-Backend/pkg/qr"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FoodHandler interface {
		AddFoodItem(c *fiber.Ctx) error
		UpdateFoodItem(c *fiber.Ctx) error
		DeleteFoodItem(c *fiber.Ctx) error
		GetFoodItems(c *fiber.Ctx) error
		GetAvailableFoodItems(c *fiber.Ctx) error
		GetFoodItemDetails(c *fiber.Ctx) error
		ReserveFoodItem(c *fiber.Ctx) error
		CollectFoodItem(c *fiber.Ctx) error
		RateFoodItem(c *fiber.Ctx) error
		UploadFoodImage(c *fiber.Ctx) error
		GetQRCode(c *fiber.Ctx) error
		ScanQRCode(c *fiber.Ctx) error
	}

	foodHandler struct {
		foodService listing.FoodService
		validator   *validator.Validate
	}
)

func NewFoodHandler(foodService listing.FoodService, validator *validator.Validate) FoodHandler {
	return &foodHandler{
		foodService: foodService,
		validator:   validator,
	}
}

func (h *foodHandler) AddFoodItem(c *fiber.Ctx) error {
	userID := localString(c, "user_id")
	req := new(domain.CreateFoodItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFoodItem, err)
	}

	res, err := h.foodService.AddFoodItem(c.UserContext(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedAddFoodItem, err)
	}

	message := domain.MessageSuccessAddFoodItem
	if res.Warning != "" {
		message = res.Warning
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, message)
}

func (h *foodHandler) UpdateFoodItem(c *fiber.Ctx) error {
	userID := localString(c, "user_id")
	itemID := c.Params("id")
	req := new(domain.UpdateFoodItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateFoodItem, err)
	}

	res, err := h.foodService.UpdateFoodItem(c.UserContext(), itemID, *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedUpdateFoodItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateFoodItem)
}

func (h *foodHandler) DeleteFoodItem(c *fiber.Ctx) error {
	userID := localString(c, "user_id")
	itemID := c.Params("id")

	res, err := h.foodService.DeleteFoodItem(c.UserContext(), itemID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedDeleteFoodItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessDeleteFoodItem)
}

func (h *foodHandler) GetFoodItems(c *fiber.Ctx) error {
	userID := localString(c, "user_id")
	req := new(domain.ListFoodItemsRequest)

	if err := c.QueryParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFoodItems, err)
	}

	items, pagination := h.foodService.ListFoodItems(c.UserContext(), *req, userID)

	return presenters.SuccessResponse(c, fiber.Map{
		"items":      items,
		"pagination": pagination,
	}, fiber.StatusOK, domain.MessageSuccessGetFoodItems)
}

func (h *foodHandler) GetAvailableFoodItems(c *fiber.Ctx) error {
	items := h.foodService.GetAvailableFoodItems(c.UserContext())
	return presenters.SuccessResponse(c, items, fiber.StatusOK, domain.MessageSuccessGetFoodItems)
}

func (h *foodHandler) GetFoodItemDetails(c *fiber.Ctx) error {
	itemID := c.Params("id")

	item, err := h.foodService.GetFoodItemByID(c.UserContext(), itemID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedGetFoodItems, err)
	}

	return presenters.SuccessResponse(c, item, fiber.StatusOK, domain.MessageSuccessGetFoodItems)
}

func (h *foodHandler) ReserveFoodItem(c *fiber.Ctx) error {
	userID := localString(c, "user_id")
	itemID := c.Params("id")

	res, err := h.foodService.ReserveFoodItem(c.UserContext(), itemID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedReserveFoodItem, err)
	}

	if !res.Changed {
		return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageNotAvailableFoodItem)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessReserveFoodItem)
}

func (h *foodHandler) CollectFoodItem(c *fiber.Ctx) error {
	userID := localString(c, "user_id")
	itemID := c.Params("id")

	res, err := h.foodService.CollectFoodItem(c.UserContext(), itemID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedCollectFoodItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessCollectFoodItem)
}

func (h *foodHandler) RateFoodItem(c *fiber.Ctx) error {
	userID := localString(c, "user_id")
	itemID := c.Params("id")
	req := new(domain.RateFoodItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRateFoodItem, err)
	}

	res, err := h.foodService.RateFoodItem(c.UserContext(), itemID, *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedRateFoodItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRateFoodItem)
}

func (h *foodHandler) UploadFoodImage(c *fiber.Ctx) error {
	userID := localString(c, "user_id")
	itemID := c.Params("id")
	req := new(domain.UploadFoodImageRequest)

	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	req.Image = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadImage, err)
	}

	res, err := h.foodService.UploadFoodImage(c.UserContext(), itemID, *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedUploadImage, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUploadImage)
}

func (h *foodHandler) GetQRCode(c *fiber.Ctx) error {
	itemID := c.Params("id")
	size := c.QueryInt("size", qr.DefaultSize)

	png, err := h.foodService.GenerateQRCode(c.UserContext(), itemID, size)
	if err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedGenerateQRCode, err)
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}

func (h *foodHandler) ScanQRCode(c *fiber.Ctx) error {
	userID := localString(c, "user_id")
	req := new(domain.ScanQRCodeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedScanQRCode, err)
	}

	res, err := h.foodService.ScanQRCode(c.UserContext(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedScanQRCode, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessScanQRCode)
}
