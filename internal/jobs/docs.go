// Package jobs provides scheduled background tasks for the marketplace ledger.
//
// Jobs are cron-based, using github.com/robfig/cron/v3 with the seconds
// field enabled, so both six-field expressions and descriptors such as
// "@every 30s" are accepted.
//
// # Available Jobs
//
// OrderStateReportJob counts orders per current state and exports the counts
// as the ledger_orders_by_state gauge.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(summaryHandler, cfg.ReportSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs
