package alerts

import (
	"fmt"
	"sort"
	"sync"
	"time"

	pkgerrors "github.com/haulfront/haulfront-backend/pkg/errors"

	"github.com/haulfront/haulfront-backend/internal/views"
)

// Counts summarizes the feed for the page header badges.
type Counts struct {
	Active   int `json:"active"`
	High     int `json:"high"`
	Resolved int `json:"resolved"`
	Total    int `json:"total"`
}

// Service owns the alert feed. All mutation goes through the transition
// rules: only ACTIVE alerts move, and they move exactly once.
type Service struct {
	mu    sync.RWMutex
	byID  map[string]*Alert
	order []string
	nowFn func() time.Time
}

// Option configures the service.
type Option func(*Service)

// WithClock overrides the time source.
func WithClock(nowFn func() time.Time) Option {
	return func(s *Service) {
		if nowFn != nil {
			s.nowFn = nowFn
		}
	}
}

// NewService builds a feed seeded with the given alerts. Seed order is
// preserved in listings.
func NewService(seed []Alert, opts ...Option) *Service {
	s := &Service{
		byID:  make(map[string]*Alert, len(seed)),
		order: make([]string, 0, len(seed)),
		nowFn: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	for i := range seed {
		alert := seed[i]
		if _, dup := s.byID[alert.ID]; dup {
			continue
		}
		s.byID[alert.ID] = &alert
		s.order = append(s.order, alert.ID)
	}
	return s
}

// List returns the alerts in the given tab matching query, newest first.
// The query searches title, message, and category.
func (s *Service) List(query string, tab Tab) []Alert {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Alert, 0, len(s.order))
	for _, id := range s.order {
		alert := *s.byID[id]
		if !alert.InTab(tab) {
			continue
		}
		if !views.MatchesQuery(query, alert.Title, alert.Message, alert.Category) {
			continue
		}
		out = append(out, alert)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// Get returns one alert by ID.
func (s *Service) Get(id string) (Alert, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	alert, ok := s.byID[id]
	if !ok {
		return Alert{}, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("alert %s not found", id))
	}
	return *alert, nil
}

// Resolve moves an ACTIVE alert to RESOLVED and stamps ResolvedAt.
func (s *Service) Resolve(id string) (Alert, error) {
	return s.transition(id, StatusResolved)
}

// Dismiss moves an ACTIVE alert to DISMISSED.
func (s *Service) Dismiss(id string) (Alert, error) {
	return s.transition(id, StatusDismissed)
}

func (s *Service) transition(id string, target Status) (Alert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	alert, ok := s.byID[id]
	if !ok {
		return Alert{}, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("alert %s not found", id))
	}
	if alert.Status != StatusActive {
		return Alert{}, pkgerrors.New(
			pkgerrors.CodeStateConflict,
			fmt.Sprintf("alert %s is %s and cannot move to %s", id, alert.Status, target),
		).WithDetails(map[string]any{"from": alert.Status, "to": target})
	}

	alert.Status = target
	if target == StatusResolved {
		now := s.nowFn().UTC()
		alert.ResolvedAt = &now
	}
	return *alert, nil
}

// CountsNow tallies the feed for header badges.
func (s *Service) CountsNow() Counts {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var c Counts
	for _, id := range s.order {
		alert := s.byID[id]
		c.Total++
		switch alert.Status {
		case StatusActive:
			c.Active++
			if alert.Priority == PriorityHigh {
				c.High++
			}
		case StatusResolved:
			c.Resolved++
		}
	}
	return c
}
