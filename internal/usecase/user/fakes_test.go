package user

import (
	"context"
	"sort"
	"sync"

	"github.com/BruksfildServices01/shift-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/shift-scheduler/internal/domain/user"
	"github.com/BruksfildServices01/shift-scheduler/internal/models"
)

type memoryStore struct {
	mu    sync.Mutex
	users map[uint]models.User
}

func newMemoryStore(seed ...models.User) *memoryStore {
	s := &memoryStore{users: make(map[uint]models.User)}
	for _, u := range seed {
		s.users[u.ID] = u
	}
	return s
}

func (s *memoryStore) FindByID(ctx context.Context, id uint) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

func (s *memoryStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *memoryStore) Create(ctx context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u.ID = uint(len(s.users) + 1)
	s.users[u.ID] = *u
	return nil
}

func (s *memoryStore) List(ctx context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.User
	for _, u := range s.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *memoryStore) Update(ctx context.Context, id uint, changes domain.Changes) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if changes.Name != nil {
		u.Name = *changes.Name
	}
	if changes.Role != nil {
		u.Role = *changes.Role
	}
	if changes.IsActive != nil {
		u.IsActive = *changes.IsActive
	}
	s.users[id] = u
	return &u, nil
}

func (s *memoryStore) Delete(ctx context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.users, id)
	return nil
}

type recordingAuditor struct {
	mu     sync.Mutex
	events []audit.Event
}

func (a *recordingAuditor) Dispatch(ev audit.Event) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.events = append(a.events, ev)
}
