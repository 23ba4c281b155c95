package auth

import (
	"net/http"
	"testing"

	"github.com/steinfletcher/apitest"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestAuthorize(t *testing.T) {
	assert := assert.New(t)
	// open mode, no configured key
	assert.True(Authorize("", ""))
	assert.True(Authorize("whatever", ""))
	// configured key
	assert.True(Authorize("sekret", "sekret"))
	assert.False(Authorize("", "sekret"))
	assert.False(Authorize("Sekret", "sekret"))
	assert.False(Authorize("sekret ", "sekret"))
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
}

func TestAuthenticatorRejectsWrongKey(t *testing.T) {
	guarded := APIKeyAuthenticator(zap.NewNop(), "sekret")(okHandler())
	apitest.New().
		Handler(guarded).
		Get("/").
		Header(APIKeyHeader, "wrong").
		Expect(t).
		Body(`{"error":"Unauthorized"}`).
		Status(http.StatusUnauthorized).
		End()
}

func TestAuthenticatorRejectsMissingKey(t *testing.T) {
	guarded := APIKeyAuthenticator(zap.NewNop(), "sekret")(okHandler())
	apitest.New().
		Handler(guarded).
		Get("/").
		Expect(t).
		Body(`{"error":"Unauthorized"}`).
		Status(http.StatusUnauthorized).
		End()
}

func TestAuthenticatorPassesMatchingKey(t *testing.T) {
	guarded := APIKeyAuthenticator(zap.NewNop(), "sekret")(okHandler())
	apitest.New().
		Handler(guarded).
		Get("/").
		Header(APIKeyHeader, "sekret").
		Expect(t).
		Body(`{"ok":true}`).
		Status(http.StatusOK).
		End()
}

func TestAuthenticatorOpenMode(t *testing.T) {
	guarded := APIKeyAuthenticator(zap.NewNop(), "")(okHandler())
	apitest.New().
		Handler(guarded).
		Get("/").
		Expect(t).
		Body(`{"ok":true}`).
		Status(http.StatusOK).
		End()
}
