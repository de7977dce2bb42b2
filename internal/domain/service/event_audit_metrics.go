package service

// EventAuditMetrics records the verdicts of the transaction event auditor.
type EventAuditMetrics interface {
	ObserveAudit(eventType, result string)
}
