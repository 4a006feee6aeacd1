package snapshot

import "marketing-dashboard/models"

const (
	PLATFORM_EMAIL     = "email"
	PLATFORM_FACEBOOK  = "facebook"
	PLATFORM_INSTAGRAM = "instagram"
	PLATFORM_YOUTUBE   = "youtube"
	PLATFORM_WEB       = "web"
	PLATFORM_UTM       = "utm"
)

// PlatformSnapshots is everything the rendering layer receives for one
// selection, keyed by platform.
type PlatformSnapshots struct {
	Generation uint64                    `json:"generation"`
	Selection  models.DateRangeSelection `json:"selection"`
	Email      EmailSnapshot             `json:"email"`
	Facebook   FacebookSnapshot          `json:"facebook"`
	Instagram  InstagramSnapshot         `json:"instagram"`
	YouTube    YouTubeSnapshot           `json:"youtube"`
	Web        WebSnapshot               `json:"web"`
	UTM        UTMSnapshot               `json:"utm"`
}
