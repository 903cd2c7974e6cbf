// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Memory is an in-memory Store used when no database URL is set.
type Memory struct {
	mu    sync.Mutex
	runs  map[string]RunRecord
	order []string // insertion order
}

var _ Store = (*Memory)(nil)

// NewMemory returns an empty store.
func NewMemory() *Memory {
	return &Memory{runs: map[string]RunRecord{}}
}

func (m *Memory) SaveRun(_ context.Context, rec RunRecord) (string, error) {
	if err := validateRecord(rec); err != nil {
		return "", err
	}
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.runs[rec.ID]; !exists {
		m.order = append(m.order, rec.ID)
	}
	m.runs[rec.ID] = cloneRecord(rec)

	return rec.ID, nil
}

func (m *Memory) GetRun(_ context.Context, id string) (RunRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.runs[id]
	if !ok {
		return RunRecord{}, ErrNotFound
	}

	return cloneRecord(rec), nil
}

func (m *Memory) ListRuns(_ context.Context, instance string, limit int) ([]RunRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]RunRecord, 0, len(m.order))
	for i := len(m.order) - 1; i >= 0; i-- {
		rec := m.runs[m.order[i]]
		if instance != "" && rec.Instance != instance {
			continue
		}
		out = append(out, cloneRecord(rec))
	}
	// newest first; insertion order breaks CreatedAt ties
	sort.SliceStable(out, func(a, b int) bool { return out[a].CreatedAt.After(out[b].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}

func (m *Memory) BestRun(_ context.Context, instance string) (RunRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var (
		best  RunRecord
		found bool
	)
	for _, id := range m.order {
		rec := m.runs[id]
		if rec.Instance != instance {
			continue
		}
		if !found || rec.Length < best.Length ||
			(rec.Length == best.Length && rec.CreatedAt.Before(best.CreatedAt)) {
			best, found = rec, true
		}
	}
	if !found {
		return RunRecord{}, ErrNotFound
	}

	return cloneRecord(best), nil
}

// Close is a no-op.
func (m *Memory) Close() error { return nil }
