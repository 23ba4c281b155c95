package token

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/tokenmint/tokenmint/api/auth"
	"github.com/tokenmint/tokenmint/tokens"
	"go.uber.org/zap"
)

// TokenRessource issues and lists access tokens
type TokenRessource struct {
	log      *zap.Logger
	service  TokenLifecycle
	validate *validator.Validate
	apiKey   string
}

// NewTokenRessource returns a new token resource instance
func NewTokenRessource(
	logger *zap.Logger,
	service TokenLifecycle,
	validate *validator.Validate,
	apiKey string,
) *TokenRessource {
	return &TokenRessource{
		log:      logger,
		service:  service,
		validate: validate,
		apiKey:   apiKey,
	}
}

func (t *TokenRessource) Router() *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", auth.APIKeyHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(auth.APIKeyAuthenticator(t.log, t.apiKey))

	r.Post("/", t.create)
	r.Get("/", t.list)

	return r
}

func (t *TokenRessource) create(w http.ResponseWriter, r *http.Request) {
	var req createTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		t.log.Debug("could not decode create token request", zap.Error(err))
		t.renderError(w, r, createValidationError([]validationDetail{
			{Field: "body", Message: "must be a valid JSON document"},
		}))
		return
	}
	details := make([]validationDetail, 0)
	if err := t.validate.Struct(&req); err != nil {
		var errs validator.ValidationErrors
		if !errors.As(err, &errs) {
			t.log.Error("unexpected validation failure", zap.Error(err))
			t.renderError(w, r, createInternalError())
			return
		}
		details = append(details, validationDetails(errs)...)
	}
	minutes, minuteDetails := expiresInMinutes(req.ExpiresInMinutes)
	details = append(details, minuteDetails...)
	if len(details) > 0 {
		t.renderError(w, r, createValidationError(details))
		return
	}
	issued, err := t.service.Issue(r.Context(), req.UserID, req.Scopes, minutes)
	if err != nil {
		// no caller actionable detail in here, the full error is in the server log
		t.renderError(w, r, createInternalError())
		return
	}
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, tokens.Serialize(issued))
}

func (t *TokenRessource) list(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		t.renderError(w, r, createValidationError([]validationDetail{
			{Field: "userId", Message: "is required and must not be empty"},
		}))
		return
	}
	active, err := t.service.ListActive(r.Context(), userID)
	if err != nil {
		t.renderError(w, r, createInternalError())
		return
	}
	render.Status(r, http.StatusOK)
	render.JSON(w, r, tokens.SerializeAll(active))
}

// expiresInMinutes normalizes the raw json number into a validated amount
// of minutes, the boundary is inclusive: 525600 passes, 525601 does not
func expiresInMinutes(raw json.Number) (int, []validationDetail) {
	if raw.String() == "" {
		return 0, []validationDetail{
			{Field: "expiresInMinutes", Message: "is required and must not be empty"},
		}
	}
	minutes, err := raw.Int64()
	if err != nil {
		return 0, []validationDetail{
			{Field: "expiresInMinutes", Message: "must be an integer"},
		}
	}
	if minutes <= 0 {
		return 0, []validationDetail{
			{Field: "expiresInMinutes", Message: "must be greater than zero"},
		}
	}
	if minutes > maxExpiresInMinutes {
		return 0, []validationDetail{
			{Field: "expiresInMinutes", Message: "must not exceed 525600"},
		}
	}
	return int(minutes), nil
}

func (t *TokenRessource) renderError(w http.ResponseWriter, r *http.Request, resp *errorResponse) {
	if err := render.Render(w, r, resp); err != nil {
		t.log.Error("unable to render response", zap.Error(err))
	}
}
