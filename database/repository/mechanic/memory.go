package mechanicRepo

import (
	"context"
	"sync"
	"time"

	"github.com/Mareeswari-2005/Sara-The-road-assist/models"
)

// MemoryMechanicRepo is an in-process MechanicRepository. It applies the same
// validation, defaults and matching rules as the MongoDB implementation.
type MemoryMechanicRepo struct {
	mu        sync.RWMutex
	mechanics []models.Mechanic
	now       func() time.Time
}

// NewMemoryMechanicRepo returns an empty in-memory repository.
func NewMemoryMechanicRepo() *MemoryMechanicRepo {
	return &MemoryMechanicRepo{now: func() time.Time { return time.Now().UTC() }}
}

func (r *MemoryMechanicRepo) Search(ctx context.Context, criteria SearchCriteria) ([]models.Mechanic, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []models.Mechanic{}
	for _, m := range r.mechanics {
		if criteria.Matches(m) {
			out = append(out, clone(m))
		}
	}
	return out, nil
}

func (r *MemoryMechanicRepo) Create(ctx context.Context, mechanic *models.Mechanic) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := prepare(mechanic, r.now()); err != nil {
		return err
	}
	r.mu.Lock()
	r.mechanics = append(r.mechanics, clone(*mechanic))
	r.mu.Unlock()
	return nil
}

func (r *MemoryMechanicRepo) InsertMany(ctx context.Context, mechanics []models.Mechanic) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	now := r.now()
	batch := make([]models.Mechanic, 0, len(mechanics))
	for i := range mechanics {
		if err := prepare(&mechanics[i], now); err != nil {
			return 0, err
		}
		batch = append(batch, clone(mechanics[i]))
	}
	r.mu.Lock()
	r.mechanics = append(r.mechanics, batch...)
	r.mu.Unlock()
	return len(batch), nil
}

func (r *MemoryMechanicRepo) Count(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.mechanics)), nil
}

// clone copies m so callers never share slices or pointers with the store.
func clone(m models.Mechanic) models.Mechanic {
	m.Services = append([]string{}, m.Services...)
	if m.Rating != nil {
		v := *m.Rating
		m.Rating = &v
	}
	if m.Lat != nil {
		v := *m.Lat
		m.Lat = &v
	}
	if m.Lng != nil {
		v := *m.Lng
		m.Lng = &v
	}
	if m.Open != nil {
		v := *m.Open
		m.Open = &v
	}
	return m
}
