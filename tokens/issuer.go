package tokens

import (
	"context"
	"time"

	"github.com/tokenmint/tokenmint/db/tables"
	"github.com/tokenmint/tokenmint/events"
	"github.com/tokenmint/tokenmint/events/event"
	"go.uber.org/zap"
)

// AccessTokenStorer is the slice of the datastore the issuer needs
type AccessTokenStorer interface {
	InsertAccessToken(
		ctx context.Context,
		userID string,
		token string,
		scopes tables.StringList,
		createdAt time.Time,
		expiresAt time.Time,
	) (int, error)
	ActiveAccessTokens(
		ctx context.Context,
		userID string,
		now time.Time,
	) ([]tables.TokenTable, error)
	DeleteExpiredAccessTokens(ctx context.Context, now time.Time) (int, error)
}

// Dispatcher dispatches audit events
type Dispatcher interface {
	Dispatch(ev events.Event)
}

// SecretSource generates the opaque bearer secrets
type SecretSource interface {
	Generate() string
}

// Issuer orchestrates secret generation, expiry computation and persistence
type Issuer struct {
	log        *zap.Logger
	store      AccessTokenStorer
	dispatcher Dispatcher
	generator  SecretSource
}

// NewIssuer returns a new token issuer instance
func NewIssuer(
	logger *zap.Logger,
	store AccessTokenStorer,
	dispatcher Dispatcher,
	generator SecretSource,
) *Issuer {
	return &Issuer{
		log:        logger,
		store:      store,
		dispatcher: dispatcher,
		generator:  generator,
	}
}

// Issue creates and persists a new access token for the given user.
// Inputs are expected to be validated already. Either the full record
// is persisted and returned or nothing is.
func (i *Issuer) Issue(
	ctx context.Context,
	userID string,
	scopes []string,
	expiresInMinutes int,
) (*AccessToken, error) {
	secret := i.generator.Generate()
	// truncated to milliseconds so the stored instant survives the wire format
	createdAt := time.Now().UTC().Truncate(time.Millisecond)
	expiresAt := ComputeExpiry(createdAt, expiresInMinutes)
	id, err := i.store.InsertAccessToken(
		ctx,
		userID,
		secret,
		tables.StringList(scopes),
		createdAt,
		expiresAt,
	)
	if err != nil {
		i.log.Error("could not issue token", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	i.dispatcher.Dispatch(&event.TokenIssued{
		TokenID:   id,
		UserID:    userID,
		ExpiresAt: expiresAt,
	})
	return &AccessToken{
		id:        id,
		token:     secret,
		userID:    userID,
		scopes:    scopes,
		createdAt: createdAt,
		expiresAt: expiresAt,
	}, nil
}

// ListActive returns all unexpired tokens of the given user, newest first.
// The query itself filters on expiry so an expired record never surfaces,
// listing mutates nothing.
func (i *Issuer) ListActive(ctx context.Context, userID string) ([]*AccessToken, error) {
	now := time.Now().UTC()
	entities, err := i.store.ActiveAccessTokens(ctx, userID, now)
	if err != nil {
		i.log.Error("could not list tokens", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	result := make([]*AccessToken, 0, len(entities))
	for idx := range entities {
		result = append(result, fromTable(&entities[idx]))
	}
	return result, nil
}

// PurgeExpired removes all expired tokens from the store, this is the
// maintenance sweep triggered from the cli, the api never calls it
func (i *Issuer) PurgeExpired(ctx context.Context) (int, error) {
	now := time.Now().UTC()
	count, err := i.store.DeleteExpiredAccessTokens(ctx, now)
	if err != nil {
		i.log.Error("could not purge expired tokens", zap.Error(err))
		return 0, err
	}
	if count > 0 {
		i.dispatcher.Dispatch(&event.ExpiredTokensPurged{Purged: count})
	}
	return count, nil
}

func fromTable(t *tables.TokenTable) *AccessToken {
	return &AccessToken{
		id:        t.ID,
		token:     t.Token,
		userID:    t.UserID,
		scopes:    t.Scopes,
		createdAt: t.CreatedAt,
		expiresAt: t.ExpiresAt,
	}
}
