// Package startup sequences external dependencies (database, Redis, Kafka)
// during service boot, retrying the full sequence with fibonacci backoff.
package startup

import (
	"context"
	"fmt"
	"time"

	"github.com/Gobusters/ectologger"
)

// Dependency is an external resource that must be up before the service
// can accept traffic. Dependencies start in registration order and stop
// in reverse order.
type Dependency interface {
	Name() string
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

// Startup starts registered dependencies in order, retrying the whole
// sequence on failure.
type Startup struct {
	dependencies []Dependency
	started      map[string]bool
	logger       ectologger.Logger
	maxAttempts  int
}

func NewStartup(logger ectologger.Logger, maxAttempts int) *Startup {
	return &Startup{
		logger:      logger,
		started:     make(map[string]bool),
		maxAttempts: maxAttempts,
	}
}

func (s *Startup) AddDependency(dependency Dependency) {
	s.dependencies = append(s.dependencies, dependency)
}

// Start brings up every registered dependency. Already-started
// dependencies are skipped on retry attempts.
func (s *Startup) Start(ctx context.Context) error {
	var lastErr error

	a, b := 1, 1
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		s.logger.WithField("attempt", attempt).Infof("Beginning startup attempt %d", attempt)

		lastErr = s.startAll(ctx)
		if lastErr == nil {
			return nil
		}

		if attempt >= s.maxAttempts {
			break
		}

		s.logger.Infof("Retrying in %d seconds (attempt %d/%d)", a, attempt, s.maxAttempts)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(a) * time.Second):
		}
		a, b = b, a+b
	}

	return fmt.Errorf("startup failed after %d attempts: %w", s.maxAttempts, lastErr)
}

func (s *Startup) startAll(ctx context.Context) error {
	for _, dependency := range s.dependencies {
		if s.started[dependency.Name()] {
			continue
		}

		s.logger.WithField("dependency", dependency.Name()).Infof("Starting dependency '%s'", dependency.Name())
		if err := dependency.Start(ctx); err != nil {
			s.logger.WithError(err).WithField("dependency", dependency.Name()).Errorf("Failed to start dependency '%s'", dependency.Name())
			return err
		}
		s.started[dependency.Name()] = true
	}
	return nil
}

// Stop shuts down started dependencies in reverse registration order.
// Shutdown continues past individual failures; the first error is returned.
func (s *Startup) Stop(ctx context.Context) error {
	var firstErr error
	for i := len(s.dependencies) - 1; i >= 0; i-- {
		dependency := s.dependencies[i]
		if !s.started[dependency.Name()] {
			continue
		}

		s.logger.WithField("dependency", dependency.Name()).Infof("Stopping dependency '%s'", dependency.Name())
		if err := dependency.Stop(ctx); err != nil {
			s.logger.WithError(err).WithField("dependency", dependency.Name()).Errorf("Failed to stop dependency '%s'", dependency.Name())
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		s.started[dependency.Name()] = false
	}
	return firstErr
}
