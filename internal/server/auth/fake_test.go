package auth

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/launchkeeper/internal/common"
	"github.com/dmitrijs2005/launchkeeper/internal/server/models"
)

// memRepo is an in-memory users.Repository. Setting err makes every call fail.
type memRepo struct {
	mu     sync.Mutex
	byUUID map[string]*models.User
	err    error
}

func newMemRepo(us ...*models.User) *memRepo {
	r := &memRepo{byUUID: map[string]*models.User{}}
	for _, u := range us {
		cp := *u
		r.byUUID[u.UserUUID] = &cp
	}
	return r
}

func (r *memRepo) byName(name string) *models.User {
	for _, u := range r.byUUID {
		if u.UserName == name {
			return u
		}
	}
	return nil
}

func (r *memRepo) Create(_ context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	if r.byName(user.UserName) != nil || r.byUUID[user.UserUUID] != nil {
		return nil, common.ErrorAlreadyExists
	}
	cp := *user
	r.byUUID[user.UserUUID] = &cp
	return user, nil
}

func (r *memRepo) GetUserByLogin(_ context.Context, userName string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	u := r.byName(userName)
	if u == nil {
		return nil, common.ErrorNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memRepo) GetUserByUUID(_ context.Context, userUUID string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	u, ok := r.byUUID[userUUID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memRepo) GetUsersByLogins(_ context.Context, userNames []string) ([]*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	out := []*models.User{}
	for _, n := range userNames {
		if u := r.byName(n); u != nil {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memRepo) UpdateAccessToken(_ context.Context, userUUID, accessToken string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	u, ok := r.byUUID[userUUID]
	if !ok {
		return common.ErrorNotFound
	}
	u.AccessToken = accessToken
	return nil
}

func (r *memRepo) UpsertAccessToken(_ context.Context, userUUID, userName, accessToken string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	u := r.byName(userName)
	if u == nil {
		u = &models.User{UserUUID: userUUID, UserName: userName}
		r.byUUID[userUUID] = u
	}
	u.AccessToken = accessToken
	cp := *u
	return &cp, nil
}

func (r *memRepo) BindServer(_ context.Context, accessToken, userUUID, serverID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return false, r.err
	}
	u, ok := r.byUUID[userUUID]
	if !ok || accessToken == "" || u.AccessToken != accessToken {
		return false, nil
	}
	u.ServerID = serverID
	return true, nil
}

func (r *memRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byUUID)
}
