package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrijs2005/launchkeeper/internal/common"
	"github.com/dmitrijs2005/launchkeeper/internal/dbx"
	"github.com/dmitrijs2005/launchkeeper/internal/server/models"
)

const loginBatchSize = 500

// SQLRepository stores identities in a PostgreSQL or SQLite table described
// by a Schema. Queries are rendered once at construction.
type SQLRepository struct {
	db      dbx.DBTX
	dialect dbx.Dialect
	q       quoted

	selectCols   string
	qCreate      string
	qByLogin     string
	qByUUID      string
	qUpdateToken string
	qUpsertToken string
	qBindServer  string
}

func NewSQLRepository(db dbx.DBTX, dialect dbx.Dialect, schema Schema) (*SQLRepository, error) {
	q, err := schema.quote()
	if err != nil {
		return nil, fmt.Errorf("users schema: %w", err)
	}

	r := &SQLRepository{db: db, dialect: dialect, q: q}
	p := dialect.Placeholder

	password := "''"
	if q.password != "" {
		password = fmt.Sprintf("COALESCE(%s, '')", q.password)
	}
	r.selectCols = fmt.Sprintf("%s, %s, %s, COALESCE(%s, ''), COALESCE(%s, '')",
		q.uuid, q.username, password, q.accessToken, q.serverID)

	if q.password != "" {
		r.qCreate = fmt.Sprintf("INSERT INTO %s (%s, %s, %s, %s, %s) VALUES (%s)",
			q.table, q.uuid, q.username, q.password, q.accessToken, q.serverID, dialect.Placeholders(1, 5))
	} else {
		r.qCreate = fmt.Sprintf("INSERT INTO %s (%s, %s, %s, %s) VALUES (%s)",
			q.table, q.uuid, q.username, q.accessToken, q.serverID, dialect.Placeholders(1, 4))
	}

	r.qByLogin = fmt.Sprintf("SELECT %s FROM %s WHERE %s = %s", r.selectCols, q.table, q.username, p(1))
	r.qByUUID = fmt.Sprintf("SELECT %s FROM %s WHERE %s = %s", r.selectCols, q.table, q.uuid, p(1))

	r.qUpdateToken = fmt.Sprintf("UPDATE %s SET %s = %s WHERE %s = %s",
		q.table, q.accessToken, p(1), q.uuid, p(2))

	r.qUpsertToken = fmt.Sprintf("INSERT INTO %s (%s, %s, %s) VALUES (%s) ON CONFLICT (%s) DO UPDATE SET %s = EXCLUDED.%s RETURNING %s",
		q.table, q.uuid, q.username, q.accessToken, dialect.Placeholders(1, 3),
		q.username, q.accessToken, q.accessToken, r.selectCols)

	r.qBindServer = fmt.Sprintf("UPDATE %s SET %s = %s WHERE %s = %s AND %s = %s",
		q.table, q.serverID, p(1), q.accessToken, p(2), q.uuid, p(3))

	return r, nil
}

func scanUser(row interface{ Scan(...any) error }) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(&user.UserUUID, &user.UserName, &user.Password, &user.AccessToken, &user.ServerID)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *SQLRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	args := []any{user.UserUUID, user.UserName}
	if r.q.password != "" {
		args = append(args, user.Password)
	}
	args = append(args, user.AccessToken, user.ServerID)

	if _, err := r.db.ExecContext(ctx, r.qCreate, args...); err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *SQLRepository) getOne(ctx context.Context, query, arg string) (*models.User, error) {
	user, err := scanUser(r.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}

func (r *SQLRepository) GetUserByLogin(ctx context.Context, userName string) (*models.User, error) {
	return r.getOne(ctx, r.qByLogin, userName)
}

func (r *SQLRepository) GetUserByUUID(ctx context.Context, userUUID string) (*models.User, error) {
	return r.getOne(ctx, r.qByUUID, userUUID)
}

// GetUsersByLogins queries in batches of at most loginBatchSize names, which
// keeps every statement well under the bind parameter limits of both backends.
func (r *SQLRepository) GetUsersByLogins(ctx context.Context, userNames []string) ([]*models.User, error) {
	result := make([]*models.User, 0, len(userNames))

	for batch := range slices.Chunk(userNames, loginBatchSize) {
		found, err := r.getUsersBatch(ctx, batch)
		if err != nil {
			return nil, err
		}
		result = append(result, found...)
	}

	return result, nil
}

func (r *SQLRepository) getUsersBatch(ctx context.Context, userNames []string) ([]*models.User, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s IN (%s)",
		r.selectCols, r.q.table, r.q.username, r.dialect.Placeholders(1, len(userNames)))

	args := make([]any, len(userNames))
	for i, n := range userNames {
		args[i] = n
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *SQLRepository) UpdateAccessToken(ctx context.Context, userUUID, accessToken string) error {
	res, err := r.db.ExecContext(ctx, r.qUpdateToken, accessToken, userUUID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *SQLRepository) UpsertAccessToken(ctx context.Context, userUUID, userName, accessToken string) (*models.User, error) {
	user, err := scanUser(r.db.QueryRowContext(ctx, r.qUpsertToken, userUUID, userName, accessToken))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}

func (r *SQLRepository) BindServer(ctx context.Context, accessToken, userUUID, serverID string) (bool, error) {
	if strings.TrimSpace(accessToken) == "" {
		return false, nil
	}

	res, err := r.db.ExecContext(ctx, r.qBindServer, serverID, accessToken, userUUID)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return n > 0, nil
}
