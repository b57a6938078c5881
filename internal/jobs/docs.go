// Package jobs provides scheduled background tasks for the webshop.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order and case handling.
//
// # Available Jobs
//
// 1. CaseEscalationJob - Runs every minute to re-prioritize open cases and escalate the overdue ones
// 2. LowStockReportJob - Runs every morning to report products that are running low and suggest restock amounts
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(escalateHandler, lowStockHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The escalation job uses the cron expression "0 * * * * *" (every minute) so
// that a case crossing an age threshold is picked up quickly. The low stock
// report runs once a day at 06:00 with "0 0 6 * * *".
//
// # Error Handling
//
// - Escalation job logs sweep failures; the next run retries the whole sweep
// - Low stock report logs query failures and otherwise only reports
// - Failed job starts will stop any already running jobs
package jobs
