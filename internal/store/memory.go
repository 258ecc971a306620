package store

import (
	"context"
	"sync"

	"github.com/localnerve/guardroster/internal/models"
)

// Memory keeps everything in process. Used for dev and tests.
type Memory struct {
	mu          sync.RWMutex
	guards      []models.Guard
	inspections []models.Inspection
	exercises   []models.Exercise
	user        *models.User
}

// NewMemory creates an empty in-process store
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) ListGuards(_ context.Context) ([]models.Guard, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]models.Guard{}, m.guards...), nil
}

func (m *Memory) AddGuard(_ context.Context, g models.Guard) (models.Guard, error) {
	g.ID = newID()
	g.CreatedAt = now()

	m.mu.Lock()
	m.guards = append(m.guards, g)
	m.mu.Unlock()
	return g, nil
}

// DeleteGuard removes dependents first and the guard last
func (m *Memory) DeleteGuard(_ context.Context, guardID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.inspections = removeWhere(m.inspections, func(i models.Inspection) bool { return i.GuardID == guardID })
	m.exercises = removeWhere(m.exercises, func(e models.Exercise) bool { return e.GuardID == guardID })
	m.guards = removeWhere(m.guards, func(g models.Guard) bool { return g.ID == guardID })
	return nil
}

func (m *Memory) ListInspections(_ context.Context) ([]models.Inspection, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]models.Inspection{}, m.inspections...), nil
}

func (m *Memory) AddInspection(_ context.Context, i models.Inspection) (models.Inspection, error) {
	i.ID = newID()
	i.Date = now()

	m.mu.Lock()
	m.inspections = append(m.inspections, i)
	m.mu.Unlock()
	return i, nil
}

func (m *Memory) DeleteInspection(_ context.Context, inspectionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inspections = removeWhere(m.inspections, func(i models.Inspection) bool { return i.ID == inspectionID })
	return nil
}

func (m *Memory) ListExercises(_ context.Context) ([]models.Exercise, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]models.Exercise{}, m.exercises...), nil
}

func (m *Memory) AddExercise(_ context.Context, e models.Exercise) (models.Exercise, error) {
	e.ID = newID()
	e.Date = now()

	m.mu.Lock()
	m.exercises = append(m.exercises, e)
	m.mu.Unlock()
	return e, nil
}

func (m *Memory) DeleteExercise(_ context.Context, exerciseID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.exercises = removeWhere(m.exercises, func(e models.Exercise) bool { return e.ID == exerciseID })
	return nil
}

// SeedCredential stores u unless a credential already exists, and returns the stored one
func (m *Memory) SeedCredential(_ context.Context, u models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		u.CreatedAt = now()
		m.user = &u
	}
	return *m.user, nil
}

func (m *Memory) VerifyCredential(_ context.Context, username, password string) (string, error) {
	m.mu.RLock()
	u := m.user
	m.mu.RUnlock()
	if u == nil {
		return verify(models.User{}, false, username, password)
	}
	return verify(*u, true, username, password)
}

func (m *Memory) Ping(_ context.Context) error { return nil }

func (m *Memory) Close() error { return nil }

func removeWhere[T any](items []T, match func(T) bool) []T {
	kept := items[:0:0]
	for _, item := range items {
		if !match(item) {
			kept = append(kept, item)
		}
	}
	return kept
}
