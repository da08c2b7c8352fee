package presenters

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type (
	Response struct {
		Status  bool   `json:"status"`
		Message string `json:"message"`
		Data    any    `json:"data,omitempty"`
	}

	ErrorBody struct {
		Status  bool                `json:"status"`
		Message string              `json:"message"`
		Error   string              `json:"error,omitempty"`
		Code    string              `json:"code,omitempty"`
		Detail  string              `json:"detail,omitempty"`
		Errors  map[string][]string `json:"errors,omitempty"`
	}
)

func SuccessResponse(c *fiber.Ctx, data any, status int, message string) error {
	return c.Status(status).JSON(Response{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponse writes the failure envelope. Validation errors are listed
// per field, identity errors carry their code and user-facing text, and
// permission failures surface the reason as detail.
func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	body := ErrorBody{Message: message}
	if err != nil {
		body.Error = err.Error()
		body.Errors = utils.FieldErrors(err)
		if code := domain.AuthErrorCode(err); code != "" {
			body.Code = code
			body.Detail = domain.AuthErrorMessage(code)
		}
	}
	if status == fiber.StatusForbidden && body.Detail == "" && err != nil {
		body.Detail = err.Error()
	}
	return c.Status(status).JSON(body)
}
