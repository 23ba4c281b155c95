package token

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

// the maximum accepted token lifetime, a year plus leap margin
const maxExpiresInMinutes = 525600

// createTokenRequest is the body of POST /api/tokens.
// ExpiresInMinutes is decoded as json.Number so a fractional value can be
// reported as a field error instead of a blunt decode failure.
type createTokenRequest struct {
	UserID           string      `json:"userId"           validate:"required"`
	Scopes           []string    `json:"scopes"           validate:"required,min=1,dive,required"`
	ExpiresInMinutes json.Number `json:"expiresInMinutes"`
}

type validationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error      string             `json:"error"`
	Details    []validationDetail `json:"details,omitempty"`
	StatusCode int                `json:"-"`
}

func (e *errorResponse) Render(_ http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.StatusCode)
	return nil
}

func createValidationError(details []validationDetail) *errorResponse {
	return &errorResponse{
		Error:      "Validation failed",
		Details:    details,
		StatusCode: http.StatusBadRequest,
	}
}

func createInternalError() *errorResponse {
	return &errorResponse{
		Error:      "Internal server error",
		StatusCode: http.StatusInternalServerError,
	}
}

func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required and must not be empty"
	case "min":
		return "must contain at least " + fe.Param() + " element(s)"
	default:
		return "is invalid"
	}
}

func validationDetails(errs validator.ValidationErrors) []validationDetail {
	details := make([]validationDetail, 0, len(errs))
	for _, fe := range errs {
		details = append(details, validationDetail{
			Field:   fe.Field(),
			Message: messageForTag(fe),
		})
	}
	return details
}
