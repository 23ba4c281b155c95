//go:build integration
// +build integration

package db

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/tokenmint/tokenmint/config"
	"github.com/tokenmint/tokenmint/db/tables"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v4/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

type DatabaseIntegrationTestSuite struct {
	suite.Suite
	dataStore *DataStore
	dbType    string
	dsn       string
}

func (s *DatabaseIntegrationTestSuite) SetupTest() {
	//reset to clean state
	switch s.dbType {
	case "sqlite":
		//just reopen for :memory:
		dataStore, err := NewSqliteStore(zap.NewNop(), &config.DatabaseConfiguration{
			Type: s.dbType,
			DSN:  s.dsn,
		})
		if err != nil {
			log.Fatal("error creating database store")
		}
		s.dataStore = dataStore
	case "pg":
		s.dataStore.db.MustExec("DROP TABLE IF EXISTS tokens, audit_logs, schema_migrations;")
	case "mysql":
		s.dataStore.db.MustExec("DROP DATABASE IF EXISTS tokenmint;")
		s.dataStore.db.MustExec("CREATE DATABASE tokenmint;")
		s.dataStore.db.MustExec("USE tokenmint;")
	}

	err := s.dataStore.EnsureUsable()
	assert.NoError(s.T(), err)
}

func (s *DatabaseIntegrationTestSuite) TestInsertAndListActive() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	first, err := s.dataStore.InsertAccessToken(ctx, "user123", "token_a",
		tables.StringList{"read"}, now.Add(-time.Minute), now.Add(time.Hour))
	assert.NoError(s.T(), err)
	second, err := s.dataStore.InsertAccessToken(ctx, "user123", "token_b",
		tables.StringList{"read", "write"}, now, now.Add(time.Hour))
	assert.NoError(s.T(), err)
	assert.NotEqual(s.T(), first, second)

	active, err := s.dataStore.ActiveAccessTokens(ctx, "user123", now)
	assert.NoError(s.T(), err)
	if assert.Len(s.T(), active, 2) {
		//newest first
		assert.Equal(s.T(), "token_b", active[0].Token)
		assert.Equal(s.T(), "token_a", active[1].Token)
		assert.Equal(s.T(), tables.StringList{"read", "write"}, active[0].Scopes)
		assert.Equal(s.T(), "user123", active[0].UserID)
	}
}

func (s *DatabaseIntegrationTestSuite) TestListFiltersOtherUsersAndExpired() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	_, err := s.dataStore.InsertAccessToken(ctx, "user123", "token_live",
		tables.StringList{"read"}, now, now.Add(time.Hour))
	assert.NoError(s.T(), err)
	_, err = s.dataStore.InsertAccessToken(ctx, "user123", "token_dead",
		tables.StringList{"read"}, now.Add(-2*time.Hour), now.Add(-time.Hour))
	assert.NoError(s.T(), err)
	_, err = s.dataStore.InsertAccessToken(ctx, "someone-else", "token_other",
		tables.StringList{"read"}, now, now.Add(time.Hour))
	assert.NoError(s.T(), err)

	active, err := s.dataStore.ActiveAccessTokens(ctx, "user123", now)
	assert.NoError(s.T(), err)
	if assert.Len(s.T(), active, 1) {
		assert.Equal(s.T(), "token_live", active[0].Token)
	}

	none, err := s.dataStore.ActiveAccessTokens(ctx, "nobody", now)
	assert.NoError(s.T(), err)
	assert.Len(s.T(), none, 0)
}

func (s *DatabaseIntegrationTestSuite) TestDuplicateTokenRejected() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	_, err := s.dataStore.InsertAccessToken(ctx, "user123", "token_dup",
		tables.StringList{"read"}, now, now.Add(time.Hour))
	assert.NoError(s.T(), err)
	_, err = s.dataStore.InsertAccessToken(ctx, "someone-else", "token_dup",
		tables.StringList{"write"}, now, now.Add(time.Hour))
	assert.ErrorIs(s.T(), err, ErrTokenExists)
}

func (s *DatabaseIntegrationTestSuite) TestDeleteExpiredSweep() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	_, err := s.dataStore.InsertAccessToken(ctx, "user123", "token_live",
		tables.StringList{"read"}, now, now.Add(time.Hour))
	assert.NoError(s.T(), err)
	_, err = s.dataStore.InsertAccessToken(ctx, "user123", "token_dead",
		tables.StringList{"read"}, now.Add(-2*time.Hour), now.Add(-time.Hour))
	assert.NoError(s.T(), err)

	count, err := s.dataStore.DeleteExpiredAccessTokens(ctx, now)
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), 1, count)

	active, err := s.dataStore.ActiveAccessTokens(ctx, "user123", now)
	assert.NoError(s.T(), err)
	assert.Len(s.T(), active, 1)
}

func (s *DatabaseIntegrationTestSuite) TestAuditLogWrite() {
	err := s.dataStore.Auditor().addToAuditLog("token_issued", tables.MapStructure{
		"token_id": 1,
		"user_id":  "user123",
	})
	assert.NoError(s.T(), err)
}

func TestDatabaseSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping database integration tests")
	}
	s := &DatabaseIntegrationTestSuite{}
	logger := zaptest.NewLogger(t)
	dbType := os.Getenv("INTEGRATION_TEST_DB_TYPE")
	dsn := os.Getenv("INTEGRATION_TEST_DB_DSN")
	if dbType == "" {
		dbType = "sqlite"
		dsn = ":memory:"
	}
	switch dbType {
	case "mysql":
		dataStore, err := NewMysqlStore(logger, &config.DatabaseConfiguration{
			Type: dbType,
			DSN:  dsn,
		})
		if err != nil {
			log.Fatal("error creating database store")
		}
		s.dataStore = dataStore
	case "pg":
		dataStore, err := NewPostgrestore(logger, &config.DatabaseConfiguration{
			Type: dbType,
			DSN:  dsn,
		})
		if err != nil {
			log.Fatal("error creating database store")
		}
		s.dataStore = dataStore
	default:
		dataStore, err := NewSqliteStore(logger, &config.DatabaseConfiguration{
			Type: dbType,
			DSN:  dsn,
		})
		if err != nil {
			log.Fatal("error creating database store")
		}
		s.dataStore = dataStore
	}
	s.dbType = dbType
	s.dsn = dsn
	suite.Run(t, s)
}
