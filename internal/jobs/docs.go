// Package jobs provides scheduled background tasks for the restaurant service.
//
// Jobs are cron based, using github.com/robfig/cron/v3 with a leading seconds
// field in every schedule.
//
// # Available Jobs
//
// OrderReportJob logs the number of orders per status. It is enabled by setting
// ORDER_REPORT_SCHEDULE, for example "0 */5 * * * *" for every five minutes.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(listOrdersHandler, cfg.OrderReportSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// A job that fails to start stops the jobs started before it.
package jobs
