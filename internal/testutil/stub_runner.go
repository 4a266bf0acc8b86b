package testutil

import (
	"context"
	"sync"

	"github.com/ihn-hpc/ihn-hpc-sbatch/internal/slurm"
)

// StubSubmitter records submissions instead of running sbatch.
type StubSubmitter struct {
	mu    sync.Mutex
	err   error
	calls []Submission
}

// Submission is one recorded Submit call.
type Submission struct {
	Request slurm.Request
	Script  string
}

func NewStubSubmitter() *StubSubmitter {
	return &StubSubmitter{}
}

// Fail makes every later Submit return err.
func (s *StubSubmitter) Fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

func (s *StubSubmitter) Submit(ctx context.Context, req slurm.Request, script string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, Submission{Request: req, Script: script})
	return s.err
}

// Calls returns the recorded submissions in order.
func (s *StubSubmitter) Calls() []Submission {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Submission, len(s.calls))
	copy(out, s.calls)
	return out
}

var _ slurm.Submitter = (*StubSubmitter)(nil)
