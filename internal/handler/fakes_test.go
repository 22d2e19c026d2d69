package handler

import (
	"context"

	"github.com/quillbox/quillbox-go/internal/model"
	"github.com/quillbox/quillbox-go/internal/repository"
)

type fakeUserStore struct {
	users map[string]*model.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]*model.User{}}
}

func (f *fakeUserStore) Create(_ context.Context, user *model.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
		if u.ProfileName == user.ProfileName {
			return repository.ErrDuplicateProfileName
		}
	}
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeUserStore) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := f.users[id]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeUserStore) GetByProfileName(_ context.Context, profileName string) (*model.User, error) {
	for _, u := range f.users {
		if u.ProfileName == profileName {
			clone := *u
			return &clone, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeUserStore) Update(_ context.Context, user *model.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return repository.ErrUserNotFound
	}
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

type fakeTokenStore struct {
	rows map[string]string // token -> userID
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{rows: map[string]string{}}
}

func (f *fakeTokenStore) Insert(_ context.Context, userID, token string) error {
	f.rows[token] = userID
	return nil
}

func (f *fakeTokenStore) Rotate(_ context.Context, userID, oldToken, newToken string) (bool, error) {
	owner, ok := f.rows[oldToken]
	if !ok || owner != userID {
		return false, nil
	}
	delete(f.rows, oldToken)
	f.rows[newToken] = userID
	return true, nil
}

func (f *fakeTokenStore) Delete(_ context.Context, token string) error {
	delete(f.rows, token)
	return nil
}

type fakeBlogStore struct {
	blogs     map[string]*model.Blog
	reactions map[string]map[string]int
}

func newFakeBlogStore() *fakeBlogStore {
	return &fakeBlogStore{
		blogs:     map[string]*model.Blog{},
		reactions: map[string]map[string]int{},
	}
}

func (f *fakeBlogStore) Create(_ context.Context, blog *model.Blog) error {
	clone := *blog
	f.blogs[blog.ID] = &clone
	return nil
}

func (f *fakeBlogStore) List(_ context.Context) ([]model.Blog, error) {
	out := []model.Blog{}
	for id, b := range f.blogs {
		blog := *b
		sets := f.sets(id)
		blog.Likers = sets.Likers
		blog.Dislikers = sets.Dislikers
		out = append(out, blog)
	}
	return out, nil
}

func (f *fakeBlogStore) ToggleReaction(_ context.Context, blogID, userID string, value int) (*model.ReactionResult, error) {
	if _, ok := f.blogs[blogID]; !ok {
		return nil, repository.ErrBlogNotFound
	}
	m := f.reactions[blogID]
	if m == nil {
		m = map[string]int{}
		f.reactions[blogID] = m
	}
	if m[userID] == value {
		m[userID] = 0
	} else {
		m[userID] = value
	}
	return f.sets(blogID), nil
}

func (f *fakeBlogStore) sets(blogID string) *model.ReactionResult {
	result := &model.ReactionResult{Likers: []string{}, Dislikers: []string{}}
	for userID, value := range f.reactions[blogID] {
		switch {
		case value > 0:
			result.Likers = append(result.Likers, userID)
		case value < 0:
			result.Dislikers = append(result.Dislikers, userID)
		}
	}
	return result
}
