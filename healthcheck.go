package mongokit

import (
	"context"
	"errors"
)

// Healthcheck returns a probe function suitable for Kubernetes
// readiness/liveness endpoints. The probe pings the manager's connection and
// wraps any failure in ErrHealthcheckFailed; a closed manager fails the
// probe rather than opening a connection as a side effect.
func Healthcheck(m *Manager) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := m.Ping(ctx); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}
