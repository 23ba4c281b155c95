package api

import (
	"embed"
	"reflect"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/tokenmint/tokenmint/api/app/playground"
	"github.com/tokenmint/tokenmint/api/app/token"
	"github.com/tokenmint/tokenmint/config"
	"github.com/tokenmint/tokenmint/tokens"

	"go.uber.org/zap"
)

var validate *validator.Validate

func compose(logger *zap.Logger,
	cfg *config.Configuration,
	issuer *tokens.Issuer,
	templates embed.FS) (*chi.Mux, error) {
	validate = validator.New()
	// report json field names in validation details, not Go field names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)

	r.Use(loggerMiddleware(logger))

	r.Use(middleware.Recoverer)

	r.Use(middleware.Timeout(50 * time.Second))

	tokenRessource := token.NewTokenRessource(
		logger.Named("token_ressource"),
		issuer,
		validate,
		cfg.Server.APIKey,
	)
	tokenRouter := tokenRessource.Router()
	r.Mount("/api/tokens", tokenRouter)
	r.Mount("/tokens", tokenRouter)

	playgroundRessource, err := playground.NewPlaygroundRessource(
		logger.Named("playground_ressource"),
		templates,
	)
	if err != nil {
		return nil, err
	}
	r.Get("/", playgroundRessource.Index)

	return r, nil
}
