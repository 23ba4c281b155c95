package db

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/tokenmint/tokenmint/db/tables"
	"go.uber.org/zap"
)

// all token related things in store

// InsertAccessToken persists a freshly issued token and returns the store assigned id.
// The unique constraint on the token column is the final word on collisions,
// the exists check just gives a nicer error for the common path.
func (d *DataStore) InsertAccessToken(
	ctx context.Context,
	userID string,
	token string,
	scopes tables.StringList,
	createdAt time.Time,
	expiresAt time.Time,
) (int, error) {
	exists, err := d.exists(
		ctx,
		"tokens",
		sq.Eq{"token": token},
	)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, ErrTokenExists
	}
	m := map[string]interface{}{
		"user_id":    userID,
		"token":      token,
		"scopes":     scopes,
		"created_at": createdAt,
		"expires_at": expiresAt,
	}
	insert := sq.Insert("tokens").SetMap(m)
	insert = insert.Suffix("RETURNING id")
	var id int
	err = d.returningInsertStatement(ctx, &id, insert, nil)
	if err != nil {
		d.log.Error("could not insert token", zap.Error(err))
		return 0, err
	}
	return id, nil
}

// ActiveAccessTokens returns every token of the given user whose expiry
// is strictly in the future, newest first.
func (d *DataStore) ActiveAccessTokens(
	ctx context.Context,
	userID string,
	now time.Time,
) ([]tables.TokenTable, error) {
	s := sq.Select("id",
		"user_id",
		"token",
		"scopes",
		"created_at",
		"expires_at").
		From("tokens").
		Where(sq.And{
			sq.Eq{"user_id": userID},
			sq.Gt{"expires_at": now},
		}).OrderBy("created_at DESC")
	entities := make([]tables.TokenTable, 0)
	err := d.selectStatement(ctx, &entities, s, nil)
	if err != nil {
		return nil, err
	}
	return entities, nil
}

// DeleteExpiredAccessTokens removes every token whose expiry has passed,
// this is the out-of-band maintenance sweep and is never called by the API
func (d *DataStore) DeleteExpiredAccessTokens(ctx context.Context, now time.Time) (int, error) {
	del := sq.Delete("tokens").Where(sq.LtOrEq{"expires_at": now})
	rs, err := d.deleteStatement(ctx, del, nil)
	if err != nil {
		return 0, err
	}
	count, err := rs.RowsAffected()
	return int(count), err
}
