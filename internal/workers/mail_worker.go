// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/pro-directory/internal/config"
	"github.com/MKhiriev/pro-directory/internal/logger"
	"github.com/MKhiriev/pro-directory/internal/mailer"
)

// MailWorker drains a bounded queue of messages through a [mailer.Sender].
// Delivery failures are logged and dropped.
type MailWorker struct {
	sender  mailer.Sender
	queue   chan mailer.Message
	workers int
	logger  *logger.Logger
	wg      sync.WaitGroup
}

func NewMailWorker(sender mailer.Sender, cfg config.Workers, log *logger.Logger) *MailWorker {
	return &MailWorker{
		sender:  sender,
		queue:   make(chan mailer.Message, cfg.MailQueueSize),
		workers: max(cfg.MailWorkers, 1),
		logger:  log,
	}
}

// Enqueue schedules msg without blocking. Returns ErrMailQueueFull when the
// queue has no free slot.
func (w *MailWorker) Enqueue(msg mailer.Message) error {
	select {
	case w.queue <- msg:
		return nil
	default:
		return ErrMailQueueFull
	}
}

func (w *MailWorker) Run(ctx context.Context) {
	for range w.workers {
		w.wg.Go(func() {
			w.loop(ctx)
		})
	}
}

func (w *MailWorker) Wait() {
	w.wg.Wait()
}

func (w *MailWorker) loop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			w.drain()
			return
		case msg := <-w.queue:
			w.send(ctx, msg)
		}
	}
}

// drain sends what is still queued at shutdown.
func (w *MailWorker) drain() {
	for {
		select {
		case msg := <-w.queue:
			w.send(context.Background(), msg)
		default:
			return
		}
	}
}

func (w *MailWorker) send(ctx context.Context, msg mailer.Message) {
	if err := w.sender.Send(ctx, msg); err != nil {
		w.logger.Err(err).
			Str("func", "*MailWorker.send").
			Str("to", msg.To).
			Str("subject", msg.Subject).
			Msg("failed to deliver email")
		return
	}

	w.logger.Debug().Str("to", msg.To).Str("subject", msg.Subject).Msg("email delivered")
}
