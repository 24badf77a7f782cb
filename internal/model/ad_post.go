// internal/model/ad_post.go
package model

import "time"

const (
    AdPostStatusScheduled = "scheduled"
    AdPostStatusPosted    = "posted"
    AdPostStatusFailed    = "failed"
)

// DefaultLocation is the targeting label stamped on every scheduled post.
const DefaultLocation = "Global"

type AdPost struct {
    ID            int       `db:"id" json:"id"`
    CampaignID    int       `db:"campaign_id" json:"campaign_id"`
    Platform      Platform  `db:"platform" json:"platform"`
    Content       string    `db:"content" json:"content"`
    ScheduledAt   time.Time `db:"scheduled_at" json:"scheduled_at"`
    Status        string    `db:"status" json:"status"` // scheduled, posted, failed
    Location      string    `db:"location" json:"location"`
    Impressions   int       `db:"impressions" json:"impressions"`
    Clicks        int       `db:"clicks" json:"clicks"`
    LeadsCaptured int       `db:"leads_captured" json:"leads_captured"`
    CreatedAt     time.Time `db:"created_at" json:"created_at"`
    UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}
