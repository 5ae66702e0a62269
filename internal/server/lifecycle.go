// Package server runs the binary's long-lived components and shuts them down
// on quit, end of input, or a termination signal.
package server

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

// Service is a component that blocks in Start until it finishes or is stopped.
type Service interface {
	// Start runs the service. Returning nil means it finished on its own.
	Start() error
	// Stop asks a running service to finish. It must be safe to call from
	// another goroutine and more than once.
	Stop()
}

// Lifecycle starts services together and stops them in reverse order.
type Lifecycle struct {
	logger   *zap.Logger
	services []namedService
}

type namedService struct {
	name    string
	service Service
}

type exit struct {
	name string
	err  error
}

// NewLifecycle creates a Lifecycle. A nil logger discards output.
func NewLifecycle(logger *zap.Logger) *Lifecycle {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Lifecycle{logger: logger}
}

// Add registers a named service. Services start in the order they are added.
//
// Precondition: name must be non-empty; svc must be non-nil.
func (l *Lifecycle) Add(name string, svc Service) {
	l.services = append(l.services, namedService{name: name, service: svc})
}

// Run starts every service and blocks until one of them returns, ctx is
// cancelled, or SIGINT/SIGTERM arrives. It then stops all services in reverse
// order.
//
// Postcondition: Returns the error of the service that ended the run, or nil.
func (l *Lifecycle) Run(ctx context.Context) error {
	start := time.Now()
	if len(l.services) == 0 {
		return nil
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	exits := make(chan exit, len(l.services))
	for _, ns := range l.services {
		ns := ns
		go func() {
			l.logger.Debug("starting service", zap.String("service", ns.name))
			exits <- exit{name: ns.name, err: ns.service.Start()}
		}()
	}

	var runErr error
	select {
	case ex := <-exits:
		if ex.err != nil {
			l.logger.Error("service failed", zap.String("service", ex.name), zap.Error(ex.err))
			runErr = fmt.Errorf("service %s: %w", ex.name, ex.err)
		} else {
			l.logger.Debug("service finished", zap.String("service", ex.name))
		}
	case <-ctx.Done():
		l.logger.Info("shutting down", zap.Error(context.Cause(ctx)))
	}

	l.shutdown()
	l.logger.Debug("shutdown complete", zap.Duration("uptime", time.Since(start)))
	return runErr
}

func (l *Lifecycle) shutdown() {
	for i := len(l.services) - 1; i >= 0; i-- {
		ns := l.services[i]
		l.logger.Debug("stopping service", zap.String("service", ns.name))
		ns.service.Stop()
	}
}
