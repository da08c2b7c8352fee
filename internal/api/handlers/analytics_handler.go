package handlers

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/internal/api/presenters"
	"FoodShare-Backend/pkg/analytics"
	"FoodShare-Backend/pkg/freshness"
	"FoodShare-Backend/pkg/user"
	"time"

	"github.com/gofiber/fiber/v2"
)

type (
	AnalyticsHandler interface {
		GetAnalytics(c *fiber.Ctx) error
		GetDashboard(c *fiber.Ctx) error
		GetImpact(c *fiber.Ctx) error
	}

	analyticsHandler struct {
		aggregator  *analytics.Aggregator
		userService user.UserService
		now         func() time.Time
	}
)

func NewAnalyticsHandler(aggregator *analytics.Aggregator, userService user.UserService) AnalyticsHandler {
	return &analyticsHandler{
		aggregator:  aggregator,
		userService: userService,
		now:         time.Now,
	}
}

// GetAnalytics returns the cached bundle for the caller's scope.
// ?refresh=true forces a recompute.
func (h *analyticsHandler) GetAnalytics(c *fiber.Ctx) error {
	u, err := h.userService.GetUserByID(c.UserContext(), localString(c, "user_id"))
	if err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedGetAnalytics, err)
	}

	var bundle analytics.Bundle
	if c.QueryBool("refresh") {
		bundle = h.aggregator.Refresh(c.UserContext(), &u)
	} else {
		bundle = h.aggregator.Stats(c.UserContext(), &u)
	}
	return presenters.SuccessResponse(c, bundle, fiber.StatusOK, domain.MessageSuccessGetAnalytics)
}

func (h *analyticsHandler) GetDashboard(c *fiber.Ctx) error {
	u, err := h.userService.GetUserByID(c.UserContext(), localString(c, "user_id"))
	if err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedGetDashboard, err)
	}

	stats := analytics.Dashboard(h.aggregator.Items(), &u, h.now())
	return presenters.SuccessResponse(c, stats, fiber.StatusOK, domain.MessageSuccessGetDashboard)
}

func (h *analyticsHandler) GetImpact(c *fiber.Ctx) error {
	impact := freshness.EnvironmentalImpact(h.aggregator.Items())
	return presenters.SuccessResponse(c, impact, fiber.StatusOK, domain.MessageSuccessGetImpact)
}
