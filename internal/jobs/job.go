package jobs

import (
	"dgaintel/pkg/domain"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// PredictArgs are the arguments of a river job classifying the domains of one
// stored prediction job.
type PredictArgs struct {
	// JobID references the prediction job row holding the domains.
	JobID domain.JobID `json:"jobId" river:"unique"`

	// maxAttempts configures the maximum number of times river should run the job.
	maxAttempts int
}

// Kind returns the river job kind used to register and dispatch the predict worker.
func (args PredictArgs) Kind() string { return "PredictDomainsJob" }

// InsertOpts returns the river options used when the job is enqueued. A
// prediction job is never queued twice while a previous run is still live.
func (args PredictArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
