// internal/model/platform.go
package model

// Platform is the closed set of social networks we post to.
type Platform string

const (
    PlatformFacebook  Platform = "facebook"
    PlatformInstagram Platform = "instagram"
    PlatformTwitter   Platform = "twitter"
    PlatformWhatsApp  Platform = "whatsapp"
    PlatformTelegram  Platform = "telegram"
)

// AllPlatforms is the single source of truth for the platform set.
// Content generation, scheduling and aggregation all iterate this list.
var AllPlatforms = []Platform{
    PlatformFacebook,
    PlatformInstagram,
    PlatformTwitter,
    PlatformWhatsApp,
    PlatformTelegram,
}

func (p Platform) Valid() bool {
    for _, known := range AllPlatforms {
        if p == known {
            return true
        }
    }
    return false
}
