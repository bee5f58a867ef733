package shift

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/BruksfildServices01/shift-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/shift-scheduler/internal/domain/shift"
	"github.com/BruksfildServices01/shift-scheduler/internal/domain/user"
	"github.com/BruksfildServices01/shift-scheduler/internal/models"
)

// memoryRepo mirrors the conditional-update semantics of the gorm repository.
type memoryRepo struct {
	mu     sync.Mutex
	nextID uint
	shifts map[uint]models.Shift
}

func newMemoryRepo(seed ...models.Shift) *memoryRepo {
	r := &memoryRepo{shifts: make(map[uint]models.Shift)}
	for _, s := range seed {
		if s.ID > r.nextID {
			r.nextID = s.ID
		}
		r.shifts[s.ID] = s
	}
	return r
}

func (r *memoryRepo) get(id uint) models.Shift {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.shifts[id]
}

func (r *memoryRepo) ListShifts(ctx context.Context) ([]models.Shift, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Shift, 0, len(r.shifts))
	for _, s := range r.shifts {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memoryRepo) GetShift(ctx context.Context, id uint) (*models.Shift, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.shifts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &s, nil
}

func (r *memoryRepo) ListShiftsByUser(ctx context.Context, userID uint) ([]models.Shift, error) {
	all, _ := r.ListShifts(ctx)
	var out []models.Shift
	for _, s := range all {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *memoryRepo) FindShiftByNameAndDate(ctx context.Context, name string, date time.Time) (*models.Shift, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.shifts {
		if s.Name == name && s.ShiftDate.Equal(date) {
			return &s, nil
		}
	}
	return nil, nil
}

func (r *memoryRepo) CreateShift(ctx context.Context, s *models.Shift) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.shifts {
		if existing.Name == s.Name && existing.ShiftDate.Equal(s.ShiftDate) {
			return domain.ErrDuplicate(s.Name, s.ShiftDate)
		}
	}
	r.nextID++
	s.ID = r.nextID
	r.shifts[s.ID] = *s
	return nil
}

func (r *memoryRepo) DeleteShift(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.shifts, id)
	return nil
}

func (r *memoryRepo) MarkCheckedIn(ctx context.Context, id, userID uint, at time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.shifts[id]
	if !ok || s.UserID != userID || s.Checkin != nil || s.Completed {
		return false, nil
	}
	s.Checkin = &at
	r.shifts[id] = s
	return true, nil
}

func (r *memoryRepo) MarkCompleted(ctx context.Context, id, userID uint, at time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.shifts[id]
	if !ok || s.UserID != userID || s.Checkin == nil || s.Completed {
		return false, nil
	}
	s.Checkout = &at
	s.Completed = true
	r.shifts[id] = s
	return true, nil
}

func (r *memoryRepo) ForceComplete(ctx context.Context, id uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.shifts[id]
	if !ok {
		return false, nil
	}
	s.Completed = true
	r.shifts[id] = s
	return true, nil
}

var _ domain.Repository = (*memoryRepo)(nil)

type memoryDirectory struct {
	users map[uint]models.User
}

func newMemoryDirectory(users ...models.User) *memoryDirectory {
	d := &memoryDirectory{users: make(map[uint]models.User)}
	for _, u := range users {
		d.users[u.ID] = u
	}
	return d
}

func (d *memoryDirectory) FindByID(ctx context.Context, id uint) (*models.User, error) {
	u, ok := d.users[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	return &u, nil
}

func (d *memoryDirectory) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range d.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, user.ErrNotFound
}

func (d *memoryDirectory) Create(ctx context.Context, u *models.User) error {
	u.ID = uint(len(d.users) + 1)
	d.users[u.ID] = *u
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

func (a *recordingAuditor) actions() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]string, 0, len(a.events))
	for _, ev := range a.events {
		out = append(out, ev.Action)
	}
	return out
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
