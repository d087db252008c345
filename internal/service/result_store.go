package service

import (
	"sort"
	"sync"

	"riordino/internal/domain"
)

// ResultStore keeps completed runs in memory so the API can serve
// summaries, previews and artifact downloads after the upload response.
type ResultStore struct {
	mu   sync.RWMutex
	runs map[string]*storedRun
}

type storedRun struct {
	result  *domain.AnalysisResult
	records []domain.ReorderRecord
}

func NewResultStore() *ResultStore {
	return &ResultStore{runs: make(map[string]*storedRun)}
}

func (s *ResultStore) Put(result *domain.AnalysisResult, records []domain.ReorderRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[result.ID] = &storedRun{result: result, records: records}
}

func (s *ResultStore) Get(id string) (*domain.AnalysisResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	run, ok := s.runs[id]
	if !ok {
		return nil, false
	}
	return run.result, true
}

// Records returns the full computed table of a run.
func (s *ResultStore) Records(id string) ([]domain.ReorderRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	run, ok := s.runs[id]
	if !ok {
		return nil, false
	}
	return run.records, true
}

// List returns all run summaries, newest first.
func (s *ResultStore) List() []*domain.AnalysisResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.AnalysisResult, 0, len(s.runs))
	for _, run := range s.runs {
		out = append(out, run.result)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
