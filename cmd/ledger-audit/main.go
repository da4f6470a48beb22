// ledger-audit consumes change events from the broker and writes an audit
// log of every mutation. It is a sidecar: the ledger server runs fine
// without it, and it can be restarted at any time since the queue is
// durable.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"ledger/internal/config"
	"ledger/internal/events"
	"ledger/internal/ledger"
	applog "ledger/internal/log"
)

func main() {
	_ = godotenv.Load()

	logger := applog.New(applog.Config{
		Level:     applog.DefaultConfig().Level,
		Component: applog.ComponentAudit,
	})
	applog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}
	if cfg.AMQPURL == "" {
		logger.Error("AMQP_URL is required: the audit consumer is nothing without a broker")
		os.Exit(1)
	}

	client, err := events.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Error("Failed to initialize AMQP client", "error", err)
		os.Exit(1)
	}
	defer client.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("Starting audit consumer", "queue", cfg.AMQPQueue)

	err = client.ConsumeChanges(ctx, func(ch ledger.Change) error {
		logger.Info("Ledger change",
			applog.FieldCollection, ch.Collection,
			"op", ch.Op,
			applog.FieldRecordID, ch.ID,
			"at", ch.At)
		return nil
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Consumer stopped with error", "error", err)
		os.Exit(1)
	}

	logger.Info("Audit consumer stopped")
}
