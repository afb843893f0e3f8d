package jobs

import (
	"context"
	"dgaintel/pkg/domain"
)

//go:generate mockgen -package mockjobs -source=interface.go -destination=mock/mockjobs.go *
type Service interface {
	Submit(ctx context.Context, subject string, domains []string) (*domain.Job, error)
	List(ctx context.Context, subject string, cursor string, limit uint) ([]domain.Job, string, error)
	Get(ctx context.Context, subject string, id domain.JobID) (*domain.Job, error)
	Delete(ctx context.Context, subject string, id domain.JobID) error
}
