package worker

// Log Messages - Worker Pool
const LogMsgWorkerJobFailed = "Worker job failed"

// Log Messages - Income Worker
const (
	LogMsgIncomeTickStarting  = "Income tick starting"
	LogMsgIncomeTickCompleted = "Income tick completed"
	LogMsgIncomeAccrualFailed = "Income accrual failed for user"
)
