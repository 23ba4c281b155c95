package db

import (
	"github.com/tokenmint/tokenmint/db/tables"
	"github.com/tokenmint/tokenmint/events"
	"github.com/tokenmint/tokenmint/events/event"
	"go.uber.org/zap"
)

// BootstrapListeners registers all the event listeners from this package
func BootstrapListeners(store Auditor, log *zap.Logger) []events.EventListener {
	return []events.EventListener{
		&tokenIssuedListener{
			log:   log,
			store: store,
		},
		&expiredTokensPurgedListener{
			log:   log,
			store: store,
		},
	}
}

type tokenIssuedListener struct {
	store Auditor
	log   *zap.Logger
}

func (*tokenIssuedListener) ForEvent() events.EventName {
	return event.TokenIssuedEvent
}

func (l *tokenIssuedListener) Handle(ev events.Event) error {
	e := ev.(*event.TokenIssued)
	err := l.store.addToAuditLog(string(l.ForEvent()), map[string]interface{}{
		"token_id":   e.TokenID,
		"user_id":    e.UserID,
		"expires_at": e.ExpiresAt.String(),
	})
	if err != nil {
		l.log.Warn("Could not persist event to audit log", zap.Error(err))
	}
	return nil
}

type expiredTokensPurgedListener struct {
	store Auditor
	log   *zap.Logger
}

func (*expiredTokensPurgedListener) ForEvent() events.EventName {
	return event.ExpiredTokensPurgedEvent
}

func (l *expiredTokensPurgedListener) Handle(ev events.Event) error {
	e := ev.(*event.ExpiredTokensPurged)
	err := l.store.addToAuditLog(string(l.ForEvent()), tables.MapStructure{
		"purged": e.Purged,
	})
	if err != nil {
		l.log.Warn("Could not persist event to audit log", zap.Error(err))
	}
	return nil
}
