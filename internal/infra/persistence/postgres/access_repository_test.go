package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"dashboard/config"
	domainerrors "dashboard/internal/domain/errors"
	"dashboard/internal/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessControlRepository_FindGrantedByUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccessControlRepository(db, newTestDBConfig())

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "guild_access_control" WHERE user_id = $1 AND has_access = $2`)).
		WithArgs("u1", true).
		WillReturnRows(sqlmock.NewRows([]string{"guild_id", "user_id", "has_access"}).
			AddRow("g1", "u1", true).
			AddRow("g2", "u1", true))

	records, err := repo.FindGrantedByUser(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "g1", records[0].GuildID)
	assert.Equal(t, "g2", records[1].GuildID)
	assert.True(t, records[1].HasAccess)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccessControlRepository_FindGrantedByUser_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccessControlRepository(db, newTestDBConfig())

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "guild_access_control"`)).
		WithArgs("nobody", true).
		WillReturnRows(sqlmock.NewRows([]string{"guild_id", "user_id", "has_access"}))

	records, err := repo.FindGrantedByUser(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccessControlRepository_FindGrantedByUser_DBError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccessControlRepository(db, newTestDBConfig())

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "guild_access_control"`)).
		WillReturnError(errors.New("connection reset"))

	records, err := repo.FindGrantedByUser(context.Background(), "u1")
	assert.Nil(t, records)

	var dbErr *domainerrors.DatabaseExecuteError
	require.ErrorAs(t, err, &dbErr)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestRolePermissionRepository_FindAppRolesByGuild(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRolePermissionRepository(db, newTestDBConfig())

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "guild_role_permissions" WHERE guild_id = $1 AND can_use_app = $2`)).
		WithArgs("g1", true).
		WillReturnRows(sqlmock.NewRows([]string{"guild_id", "role_id", "can_use_app"}).
			AddRow("g1", "roleA", true).
			AddRow("g1", "roleB", true))

	rules, err := repo.FindAppRolesByGuild(context.Background(), "g1")
	require.NoError(t, err)
	require.Len(t, rules, 2)
	assert.Equal(t, "roleA", rules[0].RoleID)
	assert.Equal(t, "roleB", rules[1].RoleID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRolePermissionRepository_FindAppRolesByGuild_DBError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRolePermissionRepository(db, newTestDBConfig())

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "guild_role_permissions"`)).
		WillReturnError(errors.New("timeout"))

	_, err := repo.FindAppRolesByGuild(context.Background(), "g1")
	var dbErr *domainerrors.DatabaseExecuteError
	assert.ErrorAs(t, err, &dbErr)
}

func TestAccessControlRepository_FindGrantedByUser_QueryTimeout(t *testing.T) {
	db, mock := newMockDB(t)
	cfg := &config.Config{Database: &config.DatabaseConfig{QueryTimeout: 20 * time.Millisecond}}
	repo := NewAccessControlRepository(db, cfg)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "guild_access_control"`)).
		WithArgs("u1", true).
		WillDelayFor(time.Second).
		WillReturnRows(sqlmock.NewRows([]string{"guild_id", "user_id", "has_access"}))

	start := time.Now()
	_, err := repo.FindGrantedByUser(context.Background(), "u1")
	require.Error(t, err)
	assert.Less(t, time.Since(start), 500*time.Millisecond)

	var dbErr *domainerrors.DatabaseExecuteError
	assert.True(t, errors.As(err, &dbErr))
}
