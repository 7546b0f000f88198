package jobs

import (
	"fmt"
	"log/slog"

	"restaurant/internal/core/application/usecases/queries"
)

// Job is a scheduled background task.
type Job interface {
	Start() error
	Stop()
}

// JobManager starts and stops the configured background jobs as one unit.
type JobManager struct {
	jobs    []Job
	started []Job
}

// NewJobManager creates a job manager. An empty reportSchedule disables the
// order report.
func NewJobManager(
	listOrdersHandler queries.ListOrdersQueryHandler,
	reportSchedule string,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{}
	if reportSchedule != "" {
		jm.jobs = append(jm.jobs, NewOrderReportJob(listOrdersHandler, reportSchedule, logger))
	}
	return jm
}

// StartAll starts every job in order. On failure the jobs already started are
// stopped again.
func (jm *JobManager) StartAll() error {
	for _, job := range jm.jobs {
		if err := job.Start(); err != nil {
			jm.StopAll()
			return fmt.Errorf("failed to start job %T: %w", job, err)
		}
		jm.started = append(jm.started, job)
	}
	return nil
}

// StopAll stops all started jobs gracefully.
func (jm *JobManager) StopAll() {
	for i := len(jm.started) - 1; i >= 0; i-- {
		jm.started[i].Stop()
	}
	jm.started = nil
}

// Len reports how many jobs are configured.
func (jm *JobManager) Len() int {
	return len(jm.jobs)
}
