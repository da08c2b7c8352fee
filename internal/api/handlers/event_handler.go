package handlers

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/internal/api/presenters"
	"FoodShare-Backend/pkg/event"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	EventHandler interface {
		CreateEvent(c *fiber.Ctx) error
		GetEvents(c *fiber.Ctx) error
		MarkFoodLogged(c *fiber.Ctx) error
	}

	eventHandler struct {
		eventService event.EventService
		validator    *validator.Validate
	}
)

func NewEventHandler(eventService event.EventService, validator *validator.Validate) EventHandler {
	return &eventHandler{
		eventService: eventService,
		validator:    validator,
	}
}

func (h *eventHandler) CreateEvent(c *fiber.Ctx) error {
	role := localString(c, "role")
	req := new(domain.CreateEventRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateEvent, err)
	}

	res, err := h.eventService.CreateEvent(c.UserContext(), *req, role)
	if err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedCreateEvent, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateEvent)
}

func (h *eventHandler) GetEvents(c *fiber.Ctx) error {
	res, err := h.eventService.GetUpcomingEvents(c.UserContext())
	if err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedGetEvents, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetEvents)
}

func (h *eventHandler) MarkFoodLogged(c *fiber.Ctx) error {
	role := localString(c, "role")

	res, err := h.eventService.MarkFoodLogged(c.UserContext(), c.Params("id"), role)
	if err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedLogEventFood, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessLogEventFood)
}
