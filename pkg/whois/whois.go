// Package whois defines the registration data lookup used next to DGA
// predictions when analysing a domain.
package whois

import (
	"context"
	"time"
)

// Record is the registration data of a domain. Zero times mean the registry
// did not publish the event.
type Record struct {
	Domain         string
	Registrar      string
	CreationDate   time.Time
	ExpirationDate time.Time
}

// Age returns how long ago the domain was registered relative to now, or 0
// when the creation date is unknown.
func (r *Record) Age(now time.Time) time.Duration {
	if r.CreationDate.IsZero() || now.Before(r.CreationDate) {
		return 0
	}

	return now.Sub(r.CreationDate)
}

// Client looks up registration data.
//
//go:generate mockgen -package mockwhois -source=whois.go -destination=mock/mockwhois.go *
type Client interface {
	// Query returns the record of domain, or an error of kind
	// serrors.ErrNotFound when the domain is not registered.
	Query(ctx context.Context, domain string) (*Record, error)
}
