package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrijs2005/launchkeeper/internal/common"
	"github.com/dmitrijs2005/launchkeeper/internal/server/models"
)

const (
	fieldUsername    = "username"
	fieldPassword    = "password"
	fieldAccessToken = "access_token"
	fieldServerID    = "server_id"
)

// Each mutation runs as one script so that the check and the write cannot
// interleave with a concurrent client.
var (
	createScript = redis.NewScript(`
if redis.call('SETNX', KEYS[1], ARGV[1]) == 0 then
  return 0
end
if redis.call('EXISTS', KEYS[2]) == 1 then
  redis.call('DEL', KEYS[1])
  return 0
end
redis.call('HSET', KEYS[2], 'username', ARGV[2], 'password', ARGV[3], 'access_token', ARGV[4], 'server_id', ARGV[5])
return 1
`)

	rotateScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
  return 0
end
redis.call('HSET', KEYS[1], 'access_token', ARGV[1])
return 1
`)

	bindScript = redis.NewScript(`
local cur = redis.call('HGET', KEYS[1], 'access_token')
if not cur or cur ~= ARGV[1] then
  return 0
end
redis.call('HSET', KEYS[1], 'server_id', ARGV[2])
return 1
`)

	// upsertScript writes the uuid hash it resolves, a key outside KEYS, so it
	// needs a standalone server; Redis Cluster rejects it.
	upsertScript = redis.NewScript(`
local id = redis.call('GET', KEYS[1])
if not id then
  id = ARGV[1]
  redis.call('SET', KEYS[1], id)
end
local key = ARGV[4] .. id
redis.call('HSET', key, 'username', ARGV[2], 'access_token', ARGV[3])
local pw = redis.call('HGET', key, 'password') or ''
local srv = redis.call('HGET', key, 'server_id') or ''
return {id, pw, srv}
`)
)

// RedisRepository keeps each identity in a hash under <prefix>:uuid:<uuid>
// and indexes usernames with <prefix>:name:<username>.
type RedisRepository struct {
	client *redis.Client
	prefix string
}

func NewRedisRepository(client *redis.Client, prefix string) *RedisRepository {
	if prefix == "" {
		prefix = DefaultSchema().TableName
	}
	return &RedisRepository{client: client, prefix: prefix}
}

func (r *RedisRepository) uuidKey(userUUID string) string {
	return r.uuidPrefix() + userUUID
}

func (r *RedisRepository) uuidPrefix() string {
	return r.prefix + ":uuid:"
}

func (r *RedisRepository) nameKey(userName string) string {
	return r.prefix + ":name:" + userName
}

func (r *RedisRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	keys := []string{r.nameKey(user.UserName), r.uuidKey(user.UserUUID)}
	ok, err := createScript.Run(ctx, r.client, keys,
		user.UserUUID, user.UserName, user.Password, user.AccessToken, user.ServerID).Int()
	if err != nil {
		return nil, fmt.Errorf("redis error: %w", err)
	}
	if ok == 0 {
		return nil, common.ErrorAlreadyExists
	}
	return user, nil
}

func userFromHash(userUUID string, h map[string]string) *models.User {
	return &models.User{
		UserUUID:    userUUID,
		UserName:    h[fieldUsername],
		Password:    h[fieldPassword],
		AccessToken: h[fieldAccessToken],
		ServerID:    h[fieldServerID],
	}
}

func (r *RedisRepository) GetUserByUUID(ctx context.Context, userUUID string) (*models.User, error) {
	h, err := r.client.HGetAll(ctx, r.uuidKey(userUUID)).Result()
	if err != nil {
		return nil, fmt.Errorf("redis error: %w", err)
	}
	if len(h) == 0 {
		return nil, common.ErrorNotFound
	}
	return userFromHash(userUUID, h), nil
}

func (r *RedisRepository) GetUserByLogin(ctx context.Context, userName string) (*models.User, error) {
	id, err := r.client.Get(ctx, r.nameKey(userName)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("redis error: %w", err)
	}
	return r.GetUserByUUID(ctx, id)
}

func (r *RedisRepository) GetUsersByLogins(ctx context.Context, userNames []string) ([]*models.User, error) {
	result := make([]*models.User, 0, len(userNames))
	if len(userNames) == 0 {
		return result, nil
	}

	keys := make([]string, len(userNames))
	for i, n := range userNames {
		keys[i] = r.nameKey(n)
	}
	ids, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("redis error: %w", err)
	}

	pipe := r.client.Pipeline()
	found := make([]string, 0, len(ids))
	cmds := make([]*redis.MapStringStringCmd, 0, len(ids))
	for _, v := range ids {
		id, ok := v.(string)
		if !ok {
			continue
		}
		found = append(found, id)
		cmds = append(cmds, pipe.HGetAll(ctx, r.uuidKey(id)))
	}
	if len(cmds) == 0 {
		return result, nil
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("redis error: %w", err)
	}

	for i, cmd := range cmds {
		h := cmd.Val()
		if len(h) == 0 {
			continue
		}
		result = append(result, userFromHash(found[i], h))
	}
	return result, nil
}

func (r *RedisRepository) UpdateAccessToken(ctx context.Context, userUUID, accessToken string) error {
	ok, err := rotateScript.Run(ctx, r.client, []string{r.uuidKey(userUUID)}, accessToken).Int()
	if err != nil {
		return fmt.Errorf("redis error: %w", err)
	}
	if ok == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *RedisRepository) UpsertAccessToken(ctx context.Context, userUUID, userName, accessToken string) (*models.User, error) {
	res, err := upsertScript.Run(ctx, r.client, []string{r.nameKey(userName)},
		userUUID, userName, accessToken, r.uuidPrefix()).StringSlice()
	if err != nil {
		return nil, fmt.Errorf("redis error: %w", err)
	}
	if len(res) != 3 {
		return nil, fmt.Errorf("redis error: unexpected upsert reply %v", res)
	}
	return &models.User{
		UserUUID:    res[0],
		UserName:    userName,
		Password:    res[1],
		AccessToken: accessToken,
		ServerID:    res[2],
	}, nil
}

func (r *RedisRepository) BindServer(ctx context.Context, accessToken, userUUID, serverID string) (bool, error) {
	if strings.TrimSpace(accessToken) == "" {
		return false, nil
	}
	ok, err := bindScript.Run(ctx, r.client, []string{r.uuidKey(userUUID)}, accessToken, serverID).Int()
	if err != nil {
		return false, fmt.Errorf("redis error: %w", err)
	}
	return ok == 1, nil
}

// Close releases the underlying client.
func (r *RedisRepository) Close() error {
	return r.client.Close()
}
