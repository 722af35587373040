package test

import (
	"go.uber.org/fx"
)

// LifecycleRecorder collects hooks so tests can fire them by hand.
type LifecycleRecorder struct {
	Hooks []fx.Hook
}

// Append records the hook without running it.
func (l *LifecycleRecorder) Append(h fx.Hook) {
	l.Hooks = append(l.Hooks, h)
}

// ShutdownerStub signals on Called when a shutdown is requested.
type ShutdownerStub struct {
	Called chan struct{}
}

func (s *ShutdownerStub) Shutdown(...fx.ShutdownOption) error {
	if s.Called != nil {
		select {
		case s.Called <- struct{}{}:
		default:
		}
	}
	return nil
}
