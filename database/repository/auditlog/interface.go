package auditlogRepo

import "healthverse/models"

// AuditLogRepository defines persistence operations for security logs.
type AuditLogRepository interface {
	Insert(entry *models.SecurityLog) error
	Recent(limit int64) ([]models.SecurityLog, error)
}
