package handlers

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/internal/api/presenters"
	"FoodShare-Backend/pkg/ngo"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	NGOHandler interface {
		CreateNGO(c *fiber.Ctx) error
		GetNGOs(c *fiber.Ctx) error
	}

	ngoHandler struct {
		ngoService ngo.NGOService
		validator  *validator.Validate
	}
)

func NewNGOHandler(ngoService ngo.NGOService, validator *validator.Validate) NGOHandler {
	return &ngoHandler{
		ngoService: ngoService,
		validator:  validator,
	}
}

func (h *ngoHandler) CreateNGO(c *fiber.Ctx) error {
	role := localString(c, "role")
	req := new(domain.CreateNGORequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateNGO, err)
	}

	res, err := h.ngoService.CreateNGO(c.UserContext(), *req, role)
	if err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedCreateNGO, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateNGO)
}

func (h *ngoHandler) GetNGOs(c *fiber.Ctx) error {
	req := new(domain.ListNGOsRequest)

	if err := c.QueryParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.ngoService.GetNGOs(c.UserContext(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedGetNGOs, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetNGOs)
}
