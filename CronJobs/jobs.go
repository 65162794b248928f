package CronJobs

import (
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"CarWash/ManipulateData"
)

// Refresher periodically reloads the document tree from Firebase so
// a long-running server does not drift from edits made out of band.
type Refresher struct {
	cronScheduler  *cron.Cron
	manager        *ManipulateData.Manager
	runImmediately bool
	jobID          cron.EntryID
}

// NewRefresher creates a refresher with the given configuration
func NewRefresher(manager *ManipulateData.Manager, runImmediately bool) *Refresher {
	return &Refresher{
		cronScheduler:  cron.New(cron.WithSeconds()),
		manager:        manager,
		runImmediately: runImmediately,
	}
}

// Start initiates the refresh cron job
func (r *Refresher) Start() error {
	var err error
	r.jobID, err = r.cronScheduler.AddFunc("0 */30 * * * *", func() {
		log.Println("Running scheduled data refresh")
		r.runRefresh()
	})

	if err != nil {
		return fmt.Errorf("error scheduling cron job: %w", err)
	}

	r.cronScheduler.Start()
	fmt.Println("Data refresh scheduler started - will run every 30 minutes")

	if r.runImmediately {
		fmt.Println("Running initial data refresh")
		r.runRefresh()
	}

	return nil
}

// Stop terminates the refresher
func (r *Refresher) Stop() {
	if r.cronScheduler != nil {
		r.cronScheduler.Stop()
		log.Println("Data refresh scheduler stopped")
	}
}

// UpdateSchedule changes the refresh schedule
// Format: "0 */30 * * * *" = every 30 minutes
func (r *Refresher) UpdateSchedule(schedule string) error {
	r.cronScheduler.Remove(r.jobID)

	var err error
	r.jobID, err = r.cronScheduler.AddFunc(schedule, func() {
		log.Println("Running scheduled data refresh")
		r.runRefresh()
	})

	if err != nil {
		return fmt.Errorf("error updating schedule: %w", err)
	}

	log.Printf("Data refresh schedule updated to: %s\n", schedule)
	return nil
}

// RunManualRefresh executes a refresh outside the schedule
func (r *Refresher) RunManualRefresh() {
	log.Println("Running manual data refresh")
	r.runRefresh()
}

func (r *Refresher) runRefresh() {
	if err := r.manager.Reload(); err != nil {
		log.Printf("Error in data refresh: %v\n", err)
		return
	}
	log.Println("Successfully refreshed data from Firebase")
}
