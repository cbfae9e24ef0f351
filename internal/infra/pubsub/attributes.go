package pubsub

import (
	"strconv"

	"pushrelay/internal/domain/service"
)

// eventAttributes are the routing attributes attached to every published event.
func eventAttributes(event *service.DispatchEvent) map[string]string {
	attributes := map[string]string{
		"notification_id": strconv.FormatInt(event.NotificationID, 10),
		"status":          event.Status,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
