package logger

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// AuditAction mô tả một hành động cần audit (tạo đơn, đổi trạng thái...)
type AuditAction struct {
	Action       string                 `json:"action"`        // Tên hành động (ví dụ: "order_create", "order_status_update")
	ActorID      string                 `json:"actor_id"`      // ID người thực hiện (customer hoặc vendor)
	ResourceID   string                 `json:"resource_id"`   // ID tài nguyên bị ảnh hưởng
	ResourceType string                 `json:"resource_type"` // Loại tài nguyên (ví dụ: "order", "cart")
	IP           string                 `json:"ip"`            // IP address
	Details      map[string]interface{} `json:"details"`       // Chi tiết bổ sung
	Timestamp    time.Time              `json:"timestamp"`     // Thời gian
}

// LogAction ghi một hành động audit vào audit log.
// ActorID được lấy từ context nếu middleware auth đã set.
func LogAction(action string, resourceType string, resourceID string, c fiber.Ctx, details map[string]interface{}) {
	audit := AuditAction{
		Action:       action,
		ResourceID:   resourceID,
		ResourceType: resourceType,
		IP:           c.IP(),
		Details:      details,
		Timestamp:    time.Now(),
	}

	if actorID, ok := c.Locals("actor_id").(string); ok {
		audit.ActorID = actorID
	}

	GetAuditLogger().WithFields(logrus.Fields{
		"action":        audit.Action,
		"actor_id":      audit.ActorID,
		"resource_id":   audit.ResourceID,
		"resource_type": audit.ResourceType,
		"ip":            audit.IP,
		"details":       audit.Details,
	}).Info("audit")
}
