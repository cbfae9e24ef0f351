// Package entity contains the core business objects of the project.
package entity

import "time"

// Platform identifies the kind of installation a push token belongs to.
type Platform string

// Supported platforms.
const (
	PlatformWeb     Platform = "web"
	PlatformAndroid Platform = "android"
	PlatformIOS     Platform = "ios"
)

// IsValid reports whether p is one of the supported platforms.
func (p Platform) IsValid() bool {
	switch p {
	case PlatformWeb, PlatformAndroid, PlatformIOS:
		return true
	default:
		return false
	}
}

// DeviceToken is a provider-issued push token registered by a client.
// The token string is the identity key; a token is never hard-deleted.
type DeviceToken struct {
	Token     string    `json:"token"`               // Opaque provider-issued token.
	OwnerID   *string   `json:"ownerId,omitempty"`   // Client-supplied grouping identifier.
	Platform  Platform  `json:"platform"`            // web, android or ios.
	UserAgent *string   `json:"userAgent,omitempty"` // Registering client's user agent.
	Active    bool      `json:"active"`              // False once deactivated.
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DeviceStats aggregates the active token population.
type DeviceStats struct {
	TotalActive         int64              `json:"totalActive"`
	PerPlatformCounts   map[Platform]int64 `json:"perPlatformCounts"`
	RecentRegistrations int64              `json:"recentRegistrations"` // Active tokens created inside the stats window.
}
