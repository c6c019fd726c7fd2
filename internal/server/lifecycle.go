// Package server runs the long-lived parts of a process together and stops
// them in reverse order once the first one fails or the context ends.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultStopTimeout bounds the whole shutdown sequence.
const DefaultStopTimeout = 30 * time.Second

// Service is a long-running component.
type Service interface {
	// Start blocks until the service ends. A nil return after Stop is a
	// clean exit.
	Start(ctx context.Context) error
	// Stop asks the service to end within ctx.
	Stop(ctx context.Context) error
}

// FuncService adapts a start/stop function pair into a Service. A nil StartFn
// waits for the context; a nil StopFn does nothing.
type FuncService struct {
	StartFn func(ctx context.Context) error
	StopFn  func(ctx context.Context) error
}

// Start implements Service.
func (f *FuncService) Start(ctx context.Context) error {
	if f.StartFn == nil {
		<-ctx.Done()
		return nil
	}
	return f.StartFn(ctx)
}

// Stop implements Service.
func (f *FuncService) Stop(ctx context.Context) error {
	if f.StopFn == nil {
		return nil
	}
	return f.StopFn(ctx)
}

// HTTPService runs srv until Stop shuts it down.
func HTTPService(srv *http.Server) Service {
	return &FuncService{
		StartFn: func(context.Context) error {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
		StopFn: srv.Shutdown,
	}
}

// Lifecycle starts services together and stops them in reverse order.
type Lifecycle struct {
	logger      *zap.Logger
	stopTimeout time.Duration

	mu       sync.Mutex
	services []namedService
}

type namedService struct {
	name    string
	service Service
}

// NewLifecycle creates an empty Lifecycle. A non-positive stopTimeout takes
// DefaultStopTimeout.
//
// Precondition: logger must be non-nil.
func NewLifecycle(logger *zap.Logger, stopTimeout time.Duration) *Lifecycle {
	if stopTimeout <= 0 {
		stopTimeout = DefaultStopTimeout
	}
	return &Lifecycle{logger: logger, stopTimeout: stopTimeout}
}

// Add registers a named service. Services stop in the reverse of the order
// they were added.
//
// Precondition: name must be non-empty; svc must be non-nil.
func (l *Lifecycle) Add(name string, svc Service) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.services = append(l.services, namedService{name: name, service: svc})
}

// Run starts every service and blocks until ctx ends or a service returns.
// Either way every service is then stopped.
//
// Postcondition: all services are stopped; the first start or stop error is returned.
func (l *Lifecycle) Run(ctx context.Context) error {
	start := time.Now()
	l.mu.Lock()
	services := append([]namedService(nil), l.services...)
	l.mu.Unlock()

	g, gctx := errgroup.WithContext(ctx)
	for _, ns := range services {
		g.Go(func() error {
			l.logger.Info("starting service", zap.String("service", ns.name))
			if err := ns.service.Start(gctx); err != nil {
				l.logger.Error("service failed", zap.String("service", ns.name), zap.Error(err))
				return fmt.Errorf("service %s: %w", ns.name, err)
			}
			// A service ending on its own takes the rest down with it.
			return errServiceExited
		})
	}
	l.logger.Info("all services started",
		zap.Int("count", len(services)),
		zap.Duration("startup", time.Since(start)),
	)

	stopErr := make(chan error, 1)
	go func() {
		<-gctx.Done()
		stopErr <- l.shutdown(services)
	}()

	err := g.Wait()
	if errors.Is(err, errServiceExited) {
		err = nil
	}
	err = errors.Join(err, <-stopErr)
	l.logger.Info("shutdown complete", zap.Duration("uptime", time.Since(start)))
	return err
}

var errServiceExited = errors.New("service exited")

func (l *Lifecycle) shutdown(services []namedService) error {
	ctx, cancel := context.WithTimeout(context.Background(), l.stopTimeout)
	defer cancel()

	var errs []error
	for i := len(services) - 1; i >= 0; i-- {
		ns := services[i]
		svcStart := time.Now()
		if err := ns.service.Stop(ctx); err != nil {
			l.logger.Warn("service stop failed", zap.String("service", ns.name), zap.Error(err))
			errs = append(errs, fmt.Errorf("stopping %s: %w", ns.name, err))
			continue
		}
		l.logger.Info("service stopped",
			zap.String("service", ns.name),
			zap.Duration("elapsed", time.Since(svcStart)),
		)
	}
	return errors.Join(errs...)
}
