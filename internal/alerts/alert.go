// Package alerts holds the operational alert feed: a small state machine
// over in-memory records seeded from fixture data. There is no persistent
// store; the feed resets on restart.
package alerts

import "time"

// Status is the alert lifecycle state. ACTIVE is the only state with
// outgoing transitions; RESOLVED and DISMISSED are terminal.
type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusResolved  Status = "RESOLVED"
	StatusDismissed Status = "DISMISSED"
)

// Priority ranks how urgently an alert needs attention.
type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

// Type classifies the alert's origin domain.
type Type string

const (
	TypeOptimization Type = "OPTIMIZATION_ALERT"
	TypeException    Type = "EXCEPTION_ALERT"
	TypeCompliance   Type = "COMPLIANCE_ALERT"
	TypePerformance  Type = "PERFORMANCE_ALERT"
	TypeCapacity     Type = "CAPACITY_ALERT"
	TypeFinancial    Type = "FINANCIAL_ALERT"
)

// Alert is one entry in the operational feed. Data carries the
// type-specific payload (lane, carrier, invoice details) as loose keys.
type Alert struct {
	ID         string         `json:"id"`
	Type       Type           `json:"type"`
	Title      string         `json:"title"`
	Message    string         `json:"message"`
	Priority   Priority       `json:"priority"`
	Status     Status         `json:"status"`
	Category   string         `json:"category"`
	Actionable bool           `json:"actionable"`
	Data       map[string]any `json:"data,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
	ResolvedAt *time.Time     `json:"resolvedAt,omitempty"`
}

// Tab selects a partition of the feed.
type Tab string

const (
	TabActive   Tab = "active"
	TabResolved Tab = "resolved"
	TabAll      Tab = "all"
)

// InTab reports whether the alert belongs to the given partition. Unknown
// tabs behave like TabAll. Dismissed alerts show up only under "all".
func (a Alert) InTab(tab Tab) bool {
	switch tab {
	case TabActive:
		return a.Status == StatusActive
	case TabResolved:
		return a.Status == StatusResolved
	default:
		return true
	}
}
