package storage

import (
	"fmt"
	"sync"
	"time"

	"github.com/candidate-compare/backend/models"
)

// MemoryStore holds the single current JD and the imported candidate list.
// All mutations are whole-record replacements; last writer wins. The store
// is deliberately non-durable: the system is a single-process demo.
type MemoryStore struct {
	mu         sync.RWMutex
	jd         *models.JobDescription
	candidates []models.Candidate
}

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// SetJD replaces the current JD. A nil value clears it.
func (s *MemoryStore) SetJD(jd *models.JobDescription) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if jd == nil {
		s.jd = nil
		return
	}
	cp := *jd
	s.jd = &cp
}

// GetJD returns a copy of the current JD, or nil when none is loaded
func (s *MemoryStore) GetJD() *models.JobDescription {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.jd == nil {
		return nil
	}
	cp := *s.jd
	return &cp
}

// ClearJD removes the current JD
func (s *MemoryStore) ClearJD() {
	s.SetJD(nil)
}

// SetCandidates replaces the whole candidate list
func (s *MemoryStore) SetCandidates(candidates []models.Candidate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.candidates = make([]models.Candidate, len(candidates))
	copy(s.candidates, candidates)
}

// GetCandidates returns a copy of the candidate list
func (s *MemoryStore) GetCandidates() []models.Candidate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Candidate, len(s.candidates))
	copy(out, s.candidates)
	return out
}

// GetCandidateByID returns the candidate with the given id
func (s *MemoryStore) GetCandidateByID(id string) (*models.Candidate, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.candidates {
		if s.candidates[i].ID == id {
			cp := s.candidates[i]
			return &cp, true
		}
	}
	return nil, false
}

// UpdateCandidate replaces the stored record for the given id
func (s *MemoryStore) UpdateCandidate(id string, candidate models.Candidate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.candidates {
		if s.candidates[i].ID == id {
			candidate.ID = id
			s.candidates[i] = candidate
			return nil
		}
	}
	return fmt.Errorf("candidate %s not found", id)
}

// Clear drops the JD and all candidates
func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jd = nil
	s.candidates = nil
}

// Status reports what the store currently holds
func (s *MemoryStore) Status() models.StoreStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.StoreStatus{
		HasJD:           s.jd != nil,
		CandidatesCount: len(s.candidates),
		LastUpdated:     time.Now().UTC(),
	}
}
