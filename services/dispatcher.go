package services

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"streammax/models"
)

// Dispatcher delivers a lead to the primary submitter, whose result decides
// the outcome, and then fires best-effort copies at the notifiers in the
// background. Notifier failures are only logged.
type Dispatcher struct {
	primary   LeadSubmitter
	notifiers []LeadSubmitter
	timeout   time.Duration
	log       *zap.Logger
	wg        sync.WaitGroup
}

func NewDispatcher(primary LeadSubmitter, notifiers []LeadSubmitter, timeout time.Duration, log *zap.Logger) *Dispatcher {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Dispatcher{
		primary:   primary,
		notifiers: notifiers,
		timeout:   timeout,
		log:       log.Named("lead.dispatch"),
	}
}

func (d *Dispatcher) Submit(ctx context.Context, lead models.Lead) error {
	if err := d.primary.Submit(ctx, lead); err != nil {
		return err
	}

	for _, n := range d.notifiers {
		d.wg.Add(1)
		go d.notify(context.WithoutCancel(ctx), n, lead)
	}
	return nil
}

func (d *Dispatcher) notify(ctx context.Context, n LeadSubmitter, lead models.Lead) {
	defer d.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			d.log.Error("lead notifier panic recovered", zap.Any("panic", r))
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	if err := n.Submit(ctx, lead); err != nil {
		d.log.Warn("lead notifier failed", zap.String("email", lead.Email), zap.Error(err))
	}
}

// Wait blocks until in-flight notifications are done.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
