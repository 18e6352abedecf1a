// internal/service/notify/mailer.go
package notify

import (
	"context"

	"voltride-service/internal/service/email"

	"go.uber.org/zap"
)

// Job is one outbound email.
type Job struct {
	To      string
	Subject string
	Body    string
}

// Mailer is the background email queue. Submissions enqueue jobs without
// blocking; a single worker drains the queue and delivers best-effort.
// Delivery failures are logged and swallowed, never surfaced to the
// request that queued them.
type Mailer struct {
	sender email.Sender
	logger *zap.Logger
	jobs   chan Job
}

func NewMailer(sender email.Sender, logger *zap.Logger, queueSize int) *Mailer {
	if queueSize <= 0 {
		queueSize = 64
	}
	return &Mailer{
		sender: sender,
		logger: logger,
		jobs:   make(chan Job, queueSize),
	}
}

// Enqueue adds a job without blocking. When the queue is full the job is
// dropped and logged.
func (m *Mailer) Enqueue(job Job) {
	select {
	case m.jobs <- job:
	default:
		m.logger.Warn("mail queue full, dropping notification",
			zap.String("to", job.To),
			zap.String("subject", job.Subject),
		)
	}
}

// Run drains the queue until the context is cancelled. Call in a goroutine.
func (m *Mailer) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			m.drain()
			return
		case job := <-m.jobs:
			m.deliver(job)
		}
	}
}

func (m *Mailer) deliver(job Job) {
	if err := m.sender.Send(job.To, job.Subject, job.Body); err != nil {
		m.logger.Error("failed to send notification email",
			zap.String("to", job.To),
			zap.String("subject", job.Subject),
			zap.Error(err),
		)
		return
	}
	m.logger.Info("notification email sent",
		zap.String("to", job.To),
		zap.String("subject", job.Subject),
	)
}

// drain flushes whatever is already queued before shutdown.
func (m *Mailer) drain() {
	for {
		select {
		case job := <-m.jobs:
			m.deliver(job)
		default:
			return
		}
	}
}
