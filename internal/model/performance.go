// internal/model/performance.go
package model

// PlatformAnalytics is a derived per-platform rollup. Never persisted,
// recomputed on every aggregation call.
type PlatformAnalytics struct {
    Impressions    int     `json:"impressions"`
    Clicks         int     `json:"clicks"`
    LeadsCaptured  int     `json:"leads_captured"`
    CTR            float64 `json:"ctr"`
    ConversionRate float64 `json:"conversion_rate"`
}

// CampaignPerformance sums a campaign's posts across all platforms.
// All five platform keys are always present, even with zero posts.
type CampaignPerformance struct {
    CampaignID       int                             `json:"campaign_id"`
    CampaignName     string                          `json:"campaign_name"`
    TotalPosts       int                             `json:"total_posts"`
    TotalImpressions int                             `json:"total_impressions"`
    TotalClicks      int                             `json:"total_clicks"`
    TotalLeads       int                             `json:"total_leads"`
    CTR              float64                         `json:"ctr"`
    ConversionRate   float64                         `json:"conversion_rate"`
    Platforms        map[Platform]*PlatformAnalytics `json:"platforms"`
}
