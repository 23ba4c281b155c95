package tokens

import (
	"time"
)

// TimestampFormat is the wire format for all token timestamps,
// ISO-8601 with millisecond precision, Z for UTC instants
const TimestampFormat = "2006-01-02T15:04:05.000Z07:00"

// AccessToken is one issued bearer token record
type AccessToken struct {
	id        int
	token     string
	userID    string
	scopes    []string
	createdAt time.Time
	expiresAt time.Time
}

// NewAccessToken rehydrates a token record, the store assigns ids and
// timestamps so there is no reason to call this outside of persistence
// plumbing and tests
func NewAccessToken(
	id int,
	token string,
	userID string,
	scopes []string,
	createdAt time.Time,
	expiresAt time.Time,
) *AccessToken {
	return &AccessToken{
		id:        id,
		token:     token,
		userID:    userID,
		scopes:    scopes,
		createdAt: createdAt,
		expiresAt: expiresAt,
	}
}

func (a *AccessToken) ID() int {
	return a.id
}

func (a *AccessToken) Token() string {
	return a.token
}

func (a *AccessToken) UserID() string {
	return a.userID
}

func (a *AccessToken) Scopes() []string {
	return a.scopes
}

func (a *AccessToken) CreatedAt() time.Time {
	return a.createdAt
}

func (a *AccessToken) ExpiresAt() time.Time {
	return a.expiresAt
}

// WireToken is the transport form of an access token record
type WireToken struct {
	ID        int      `json:"id"`
	Token     string   `json:"token"`
	UserID    string   `json:"userId"`
	Scopes    []string `json:"scopes"`
	CreatedAt string   `json:"createdAt"`
	ExpiresAt string   `json:"expiresAt"`
}

// Serialize maps a token record to its wire form, id, token, userId and
// scopes pass through unchanged, timestamps are rendered as ISO-8601 UTC
func Serialize(token *AccessToken) WireToken {
	return WireToken{
		ID:        token.id,
		Token:     token.token,
		UserID:    token.userID,
		Scopes:    token.scopes,
		CreatedAt: token.createdAt.UTC().Format(TimestampFormat),
		ExpiresAt: token.expiresAt.UTC().Format(TimestampFormat),
	}
}

// SerializeAll maps a list of token records to their wire form,
// the result is never nil so empty lists render as [] and not null
func SerializeAll(tokens []*AccessToken) []WireToken {
	wire := make([]WireToken, 0, len(tokens))
	for _, t := range tokens {
		wire = append(wire, Serialize(t))
	}
	return wire
}
