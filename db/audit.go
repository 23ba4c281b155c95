package db

import (
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/tokenmint/tokenmint/db/tables"

	sq "github.com/Masterminds/squirrel"
)

// Auditor is a way to write audit log events into a persistent store
type Auditor interface {
	addToAuditLog(event string, payload tables.MapStructure) error
}

type auditor struct {
	db *sqlx.DB
}

// addToAuditLog adds a audit log entry
func (d *auditor) addToAuditLog(event string, payload tables.MapStructure) error {
	insert := sq.
		Insert("audit_logs").
		Columns("event_type", "event", "created_at").
		Values(event, payload, time.Now().UTC())
	_, err := insert.RunWith(d.db).Exec()
	return err
}
