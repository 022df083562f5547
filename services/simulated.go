package services

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"streammax/models"
)

// LogSubmitter accepts every lead and only writes it to the log. It is used
// when no delivery channel is configured.
type LogSubmitter struct {
	log *zap.Logger
}

func NewLogSubmitter(log *zap.Logger) *LogSubmitter {
	return &LogSubmitter{log: log.Named("lead.simulated")}
}

func (s *LogSubmitter) Submit(_ context.Context, lead models.Lead) error {
	s.log.Info("lead accepted without delivery",
		zap.String("name", lead.Name),
		zap.String("email", lead.Email),
		zap.String("plan", lead.Plan))
	return nil
}

// Recorder keeps submitted leads in memory. Err, when set, is returned from
// every Submit and the lead is not recorded.
type Recorder struct {
	mu    sync.Mutex
	leads []models.Lead
	Err   error
}

func (r *Recorder) Submit(_ context.Context, lead models.Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.leads = append(r.leads, lead)
	return nil
}

func (r *Recorder) Leads() []models.Lead {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Lead(nil), r.leads...)
}
