package services

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"roam-backend/internal/domain"
	"roam-backend/internal/domain/entities"
)

// In-memory repositories honoring the same contracts as the mongodb
// package: store-generated opaque ids, (nil, nil) on missing documents, and
// an atomic IncrementOrCreate.

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*entities.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*entities.User{}}
}

func (r *memUserRepo) Create(_ context.Context, user *entities.ValidatedUser) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Username == user.Username {
			return nil, fmt.Errorf("username %q: %w", user.Username, domain.ErrAlreadyExists)
		}
	}

	created := *user.GetUser()
	created.ID = uuid.NewString()
	r.users[created.ID] = &created

	result := created
	return &result, nil
}

func (r *memUserRepo) FindByID(_ context.Context, id string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (r *memUserRepo) FindByUsername(_ context.Context, username string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

type memEntryRepo struct {
	mu      sync.Mutex
	order   []string
	entries map[string]*entities.Entry
	unique  bool // history collection has the (user, place) unique index
}

func newMemEntryRepo(unique bool) *memEntryRepo {
	return &memEntryRepo{entries: map[string]*entities.Entry{}, unique: unique}
}

func (r *memEntryRepo) Create(_ context.Context, entry *entities.ValidatedEntry) (*entities.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entity := entry.GetEntry()
	if r.unique {
		for _, existing := range r.entries {
			if existing.UserID == entity.UserID && existing.PlaceID == entity.PlaceID {
				return nil, fmt.Errorf("place %q for user %q: %w", entity.PlaceID, entity.UserID, domain.ErrAlreadyExists)
			}
		}
	}

	created := *entity
	created.ID = uuid.NewString()
	r.entries[created.ID] = &created
	r.order = append(r.order, created.ID)

	result := created
	return &result, nil
}

func (r *memEntryRepo) FindByID(_ context.Context, id string) (*entities.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[id]
	if !ok {
		return nil, nil
	}
	copied := *entry
	return &copied, nil
}

func (r *memEntryRepo) FindByUser(_ context.Context, userID string) ([]*entities.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := []*entities.Entry{}
	for _, id := range r.order {
		entry, ok := r.entries[id]
		if ok && entry.UserID == userID {
			copied := *entry
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *memEntryRepo) FindByUserAndPlace(_ context.Context, userID, placeID string) (*entities.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, entry := range r.entries {
		if entry.UserID == userID && entry.PlaceID == placeID {
			copied := *entry
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *memEntryRepo) Replace(_ context.Context, entry *entities.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[entry.ID]; !ok {
		return fmt.Errorf("entry %q: %w", entry.ID, domain.ErrNotFound)
	}
	copied := *entry
	r.entries[entry.ID] = &copied
	return nil
}

func (r *memEntryRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[id]; !ok {
		return fmt.Errorf("entry %q: %w", id, domain.ErrNotFound)
	}
	delete(r.entries, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *memEntryRepo) DistinctByUser(_ context.Context, userID, field string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := map[string]struct{}{}
	for _, entry := range r.entries {
		if entry.UserID != userID {
			continue
		}
		var value string
		switch field {
		case "city":
			value = entry.City
		case "country":
			value = entry.Country
		case "us_state":
			value = entry.USState
		}
		if value != "" {
			seen[value] = struct{}{}
		}
	}

	values := make([]string, 0, len(seen))
	for value := range seen {
		values = append(values, value)
	}
	return values, nil
}

type memRankRepo struct {
	mu    sync.Mutex
	order []string
	ranks map[string]*entities.RankEntry
}

func newMemRankRepo() *memRankRepo {
	return &memRankRepo{ranks: map[string]*entities.RankEntry{}}
}

func (r *memRankRepo) IncrementOrCreate(_ context.Context, placeID, city, country string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.ranks[placeID]; ok {
		existing.Counter++
		return nil
	}
	r.ranks[placeID] = &entities.RankEntry{
		ID:      uuid.NewString(),
		PlaceID: placeID,
		City:    city,
		Country: country,
		Counter: 1,
	}
	r.order = append(r.order, placeID)
	return nil
}

func (r *memRankRepo) TopRanked(_ context.Context, n int) ([]*entities.RankEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := make([]*entities.RankEntry, 0, len(r.ranks))
	for _, placeID := range r.order {
		copied := *r.ranks[placeID]
		all = append(all, &copied)
	}
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].Counter != all[j].Counter {
			return all[i].Counter > all[j].Counter
		}
		return all[i].ID < all[j].ID
	})

	if n < len(all) {
		all = all[:n]
	}
	return all, nil
}

type memCounterRepo struct {
	mu        sync.Mutex
	summaries map[string]*entities.CounterSummary
}

func newMemCounterRepo() *memCounterRepo {
	return &memCounterRepo{summaries: map[string]*entities.CounterSummary{}}
}

func (r *memCounterRepo) Create(_ context.Context, summary *entities.CounterSummary) (*entities.CounterSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.summaries[summary.UserID]; ok {
		return nil, fmt.Errorf("counters for user %q: %w", summary.UserID, domain.ErrAlreadyExists)
	}

	created := *summary
	created.ID = uuid.NewString()
	r.summaries[created.UserID] = &created

	result := created
	return &result, nil
}

func (r *memCounterRepo) FindByUser(_ context.Context, userID string) (*entities.CounterSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	summary, ok := r.summaries[userID]
	if !ok {
		return nil, nil
	}
	copied := *summary
	return &copied, nil
}

func (r *memCounterRepo) Save(_ context.Context, summary *entities.CounterSummary) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *summary
	if existing, ok := r.summaries[summary.UserID]; ok {
		copied.ID = existing.ID
	} else {
		copied.ID = uuid.NewString()
	}
	r.summaries[summary.UserID] = &copied
	return nil
}
