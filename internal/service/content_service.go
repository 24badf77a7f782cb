// internal/service/content_service.go
package service

import (
    "github.com/unclebandit/adleopard-backend/internal/model"
)

// twitterBaseLimit is how much of the base template survives on twitter;
// the ellipsis and hashtag suffix come on top of it.
const twitterBaseLimit = 237

// GeneratePostContent renders a campaign's message template for one
// platform. Deterministic, no side effects.
func GeneratePostContent(c *model.Campaign, platform model.Platform) string {
    base := c.MessageTemplate

    var content string
    switch platform {
    case model.PlatformFacebook:
        content = base + "\n\n#SpecialOffer\n#GrowWithUs"
    case model.PlatformInstagram:
        content = base + "\n.\n.\n.\n#marketing\n#leads\n#growth\n#offer"
    case model.PlatformTwitter:
        tweet := base
        if runes := []rune(tweet); len(runes) > twitterBaseLimit {
            tweet = string(runes[:twitterBaseLimit]) + "..."
        }
        content = tweet + "\n#SpecialOffer"
    case model.PlatformWhatsApp:
        content = "*" + c.Name + "*\n\n" + base
    case model.PlatformTelegram:
        content = "<b>" + c.Name + "</b>\n\n" + base
    default:
        content = base
    }

    if c.FormURL != "" {
        content += "\n\n👉 Sign up here: " + c.FormURL
    }

    return content
}
