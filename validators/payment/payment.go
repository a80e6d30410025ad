package paymentValidator

import (
	"lms/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// CheckoutRequest is the card detail payload for a checkout attempt
type CheckoutRequest struct {
	CourseID   uint   `json:"course_id" validate:"required,gt=0"`
	Method     string `json:"method" validate:"omitempty,oneof=CreditCard DebitCard"`
	CardNumber string `json:"card_number" validate:"required,numeric,min=12,max=19"`
	Expiry     string `json:"expiry" validate:"required"`
	CVV        string `json:"cvv" validate:"required,numeric,min=3,max=4"`
	HolderName string `json:"holder_name" validate:"required,min=2"`
}

// Checkout validates a checkout request body
func Checkout() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CheckoutRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Method == "" {
			reqData.Method = "CreditCard"
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "CourseID":
					errors["course_id"] = "Course ID is required!"
				case "Method":
					errors["method"] = "Method must be CreditCard or DebitCard!"
				case "CardNumber":
					errors["card_number"] = "Card number must be 12-19 digits!"
				case "Expiry":
					errors["expiry"] = "Expiry date is required!"
				case "CVV":
					errors["cvv"] = "CVV must be 3-4 digits!"
				case "HolderName":
					errors["holder_name"] = "Card holder name is required!"
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCheckout", reqData)
		return c.Next()
	}
}
