package event

import (
	"time"

	"github.com/tokenmint/tokenmint/events"
)

// TokenIssuedEvent occurs when a new access token was persisted
const TokenIssuedEvent events.EventName = "token_issued"

// TokenIssued contains the audit payload of a successful issue
type TokenIssued struct {
	TokenID   int
	UserID    string
	ExpiresAt time.Time
}

func (*TokenIssued) Name() events.EventName {
	return TokenIssuedEvent
}

// ExpiredTokensPurgedEvent occurs when the maintenance sweep removed expired tokens
const ExpiredTokensPurgedEvent events.EventName = "expired_tokens_purged"

// ExpiredTokensPurged contains the amount of removed rows
type ExpiredTokensPurged struct {
	Purged int
}

func (*ExpiredTokensPurged) Name() events.EventName {
	return ExpiredTokensPurgedEvent
}
