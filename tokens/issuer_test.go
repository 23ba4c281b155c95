package tokens

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/tokenmint/tokenmint/db"
	"github.com/tokenmint/tokenmint/db/tables"
	"github.com/tokenmint/tokenmint/tokens/mocks"
	"go.uber.org/zap/zaptest"
)

func TestIssuePersistsAndReturnsRecord(t *testing.T) {
	assert := assert.New(t)
	logger := zaptest.NewLogger(t)
	store := mocks.NewAccessTokenStorer(t)
	dispatcher := mocks.NewDispatcher(t)
	source := mocks.NewSecretSource(t)
	ctx := context.Background()
	issuer := NewIssuer(logger, store, dispatcher, source)

	secret := "token_0b952814-74a1-4b49-80b8-29e995d09d50"
	source.On("Generate").Return(secret)
	store.On("InsertAccessToken",
		ctx,
		"user123",
		secret,
		tables.StringList{"read", "write"},
		mock.Anything,
		mock.Anything,
	).Return(7, nil)
	dispatcher.On("Dispatch", mock.Anything).Return()

	issued, err := issuer.Issue(ctx, "user123", []string{"read", "write"}, 60)
	assert.NoError(err)
	assert.Equal(7, issued.ID())
	assert.Equal(secret, issued.Token())
	assert.Equal("user123", issued.UserID())
	assert.Equal([]string{"read", "write"}, issued.Scopes())
	assert.Equal(60*time.Minute, issued.ExpiresAt().Sub(issued.CreatedAt()))
	assert.True(issued.ExpiresAt().After(issued.CreatedAt()))
	// wire format precision
	assert.Equal(issued.CreatedAt(), issued.CreatedAt().Truncate(time.Millisecond))
}

func TestIssueFailsWhenStoreRejects(t *testing.T) {
	assert := assert.New(t)
	logger := zaptest.NewLogger(t)
	store := mocks.NewAccessTokenStorer(t)
	dispatcher := mocks.NewDispatcher(t)
	source := mocks.NewSecretSource(t)
	ctx := context.Background()
	issuer := NewIssuer(logger, store, dispatcher, source)

	source.On("Generate").Return("token_x")
	store.On("InsertAccessToken",
		ctx,
		"user123",
		"token_x",
		mock.Anything,
		mock.Anything,
		mock.Anything,
	).Return(0, db.ErrTokenExists)

	issued, err := issuer.Issue(ctx, "user123", []string{"read"}, 60)
	assert.Nil(issued)
	assert.ErrorIs(err, db.ErrTokenExists)
	dispatcher.AssertNotCalled(t, "Dispatch", mock.Anything)
}

func TestListActiveMapsRecords(t *testing.T) {
	assert := assert.New(t)
	logger := zaptest.NewLogger(t)
	store := mocks.NewAccessTokenStorer(t)
	dispatcher := mocks.NewDispatcher(t)
	source := mocks.NewSecretSource(t)
	ctx := context.Background()
	issuer := NewIssuer(logger, store, dispatcher, source)

	createdAt := time.Now().UTC().Truncate(time.Millisecond)
	store.On("ActiveAccessTokens", ctx, "user123", mock.Anything).
		Return([]tables.TokenTable{
			{
				ID:        2,
				UserID:    "user123",
				Token:     "token_b",
				Scopes:    tables.StringList{"write"},
				CreatedAt: createdAt,
				ExpiresAt: createdAt.Add(time.Hour),
			},
			{
				ID:        1,
				UserID:    "user123",
				Token:     "token_a",
				Scopes:    tables.StringList{"read"},
				CreatedAt: createdAt.Add(-time.Minute),
				ExpiresAt: createdAt.Add(time.Hour),
			},
		}, nil)

	active, err := issuer.ListActive(ctx, "user123")
	assert.NoError(err)
	assert.Len(active, 2)
	assert.Equal("token_b", active[0].Token())
	assert.Equal("token_a", active[1].Token())
	assert.Equal([]string{"write"}, active[0].Scopes())
}

func TestListActiveEmptyResult(t *testing.T) {
	assert := assert.New(t)
	logger := zaptest.NewLogger(t)
	store := mocks.NewAccessTokenStorer(t)
	dispatcher := mocks.NewDispatcher(t)
	source := mocks.NewSecretSource(t)
	ctx := context.Background()
	issuer := NewIssuer(logger, store, dispatcher, source)

	store.On("ActiveAccessTokens", ctx, "nobody", mock.Anything).
		Return([]tables.TokenTable{}, nil)

	active, err := issuer.ListActive(ctx, "nobody")
	assert.NoError(err)
	assert.NotNil(active)
	assert.Len(active, 0)
}

func TestListActivePropagatesStoreError(t *testing.T) {
	assert := assert.New(t)
	logger := zaptest.NewLogger(t)
	store := mocks.NewAccessTokenStorer(t)
	dispatcher := mocks.NewDispatcher(t)
	source := mocks.NewSecretSource(t)
	ctx := context.Background()
	issuer := NewIssuer(logger, store, dispatcher, source)

	store.On("ActiveAccessTokens", ctx, "user123", mock.Anything).
		Return(nil, errors.New("dummy"))

	active, err := issuer.ListActive(ctx, "user123")
	assert.Nil(active)
	assert.Error(err)
}

func TestPurgeExpiredDispatchesCount(t *testing.T) {
	assert := assert.New(t)
	logger := zaptest.NewLogger(t)
	store := mocks.NewAccessTokenStorer(t)
	dispatcher := mocks.NewDispatcher(t)
	source := mocks.NewSecretSource(t)
	ctx := context.Background()
	issuer := NewIssuer(logger, store, dispatcher, source)

	store.On("DeleteExpiredAccessTokens", ctx, mock.Anything).Return(3, nil)
	dispatcher.On("Dispatch", mock.Anything).Return()

	count, err := issuer.PurgeExpired(ctx)
	assert.NoError(err)
	assert.Equal(3, count)
}
