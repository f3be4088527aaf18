package service

import (
	"context"
	"sync"

	"github.com/gamecho/gamecho-backend/internal/model"
	"github.com/gamecho/gamecho-backend/internal/repository"
)

// fakeStore is an in-memory UserStore honoring the same uniqueness rules
// as the real repository, so service tests can run end-to-end scenarios
// without a database.
type fakeStore struct {
	mu     sync.Mutex
	users  map[uint64]model.User
	nextID uint64
	err    error // when set, every call fails with this error
}

func newFakeStore() *fakeStore {
	return &fakeStore{users: map[uint64]model.User{}}
}

func (f *fakeStore) findBy(match func(model.User) bool) (model.User, bool) {
	for _, u := range f.users {
		if match(u) {
			return u, true
		}
	}
	return model.User{}, false
}

func (f *fakeStore) Create(ctx context.Context, u model.User) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	if _, taken := f.findBy(func(e model.User) bool {
		return e.Username == u.Username || e.Email == u.Email
	}); taken {
		return 0, repository.ErrDuplicate
	}
	f.nextID++
	u.ID = f.nextID
	f.users[u.ID] = u
	return u.ID, nil
}

func (f *fakeStore) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.findBy(func(e model.User) bool {
		return e.Username == username || e.Email == email
	})
	return ok, nil
}

func (f *fakeStore) GetByUsername(ctx context.Context, username string) (model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return model.User{}, f.err
	}
	u, ok := f.findBy(func(e model.User) bool { return e.Username == username })
	if !ok {
		return model.User{}, repository.ErrNotFound
	}
	return u, nil
}

func (f *fakeStore) GetByToken(ctx context.Context, token string) (model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return model.User{}, f.err
	}
	u, ok := f.findBy(func(e model.User) bool { return e.Token == token })
	if !ok {
		return model.User{}, repository.ErrNotFound
	}
	return u, nil
}

func (f *fakeStore) UpdateToken(ctx context.Context, username, token string) error {
	return f.update(func(e model.User) bool { return e.Username == username },
		func(e *model.User) error { e.Token = token; return nil })
}

func (f *fakeStore) UpdateUsername(ctx context.Context, current, next string) error {
	return f.update(func(e model.User) bool { return e.Username == current },
		func(e *model.User) error {
			if _, taken := f.findBy(func(o model.User) bool {
				return o.Username == next && o.ID != e.ID
			}); taken {
				return repository.ErrDuplicate
			}
			e.Username = next
			return nil
		})
}

func (f *fakeStore) UpdateEmail(ctx context.Context, current, next string) error {
	return f.update(func(e model.User) bool { return e.Email == current },
		func(e *model.User) error {
			if _, taken := f.findBy(func(o model.User) bool {
				return o.Email == next && o.ID != e.ID
			}); taken {
				return repository.ErrDuplicate
			}
			e.Email = next
			return nil
		})
}

func (f *fakeStore) update(match func(model.User) bool, apply func(*model.User) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	u, ok := f.findBy(match)
	if !ok {
		return repository.ErrNotFound
	}
	if err := apply(&u); err != nil {
		return err
	}
	f.users[u.ID] = u
	return nil
}

func (f *fakeStore) DeleteByUsername(ctx context.Context, username string) (model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return model.User{}, f.err
	}
	u, ok := f.findBy(func(e model.User) bool { return e.Username == username })
	if !ok {
		return model.User{}, repository.ErrNotFound
	}
	delete(f.users, u.ID)
	return u, nil
}
