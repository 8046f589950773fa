package health

import "time"

// Service encapsulates health-related checks.
type Service struct {
	now func() time.Time
}

// NewService constructs a new health service.
func NewService() *Service {
	return &Service{now: time.Now}
}

// Status returns the liveness payload. It never fails and has no side effects.
func (s *Service) Status() map[string]any {
	return map[string]any{
		"status":    "ok",
		"timestamp": s.now().UTC().Format(time.RFC3339),
	}
}
