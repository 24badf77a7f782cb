// internal/service/performance_service.go
package service

import (
    "github.com/unclebandit/adleopard-backend/internal/model"
    "github.com/unclebandit/adleopard-backend/internal/repository"
)

// PerformanceService rolls a campaign's posts up into campaign-level and
// per-platform analytics. Everything here is recomputed per call, nothing
// is cached or persisted.
type PerformanceService struct {
    CampaignRepo repository.CampaignRepositoryInterface
    AdPostRepo   repository.AdPostRepositoryInterface
}

// GetCampaignPerformance sums impressions, clicks and captured leads across
// all of a campaign's posts regardless of status (scheduled posts carry zero
// metrics and do not skew the sums). All five platform buckets are present
// even for a campaign with no posts.
func (s *PerformanceService) GetCampaignPerformance(campaignID int) (*model.CampaignPerformance, error) {
    campaign, err := s.CampaignRepo.GetByID(campaignID)
    if err != nil {
        return nil, err
    }

    posts, err := s.AdPostRepo.ListByCampaign(campaignID)
    if err != nil {
        return nil, err
    }

    perf := &model.CampaignPerformance{
        CampaignID:   campaign.ID,
        CampaignName: campaign.Name,
        TotalPosts:   len(posts),
        Platforms:    make(map[model.Platform]*model.PlatformAnalytics, len(model.AllPlatforms)),
    }
    for _, platform := range model.AllPlatforms {
        perf.Platforms[platform] = &model.PlatformAnalytics{}
    }

    for _, post := range posts {
        perf.TotalImpressions += post.Impressions
        perf.TotalClicks += post.Clicks
        perf.TotalLeads += post.LeadsCaptured

        bucket, ok := perf.Platforms[post.Platform]
        if !ok {
            // unrecognized platform value, skip rather than error
            continue
        }
        bucket.Impressions += post.Impressions
        bucket.Clicks += post.Clicks
        bucket.LeadsCaptured += post.LeadsCaptured
    }

    perf.CTR = rate(perf.TotalClicks, perf.TotalImpressions)
    perf.ConversionRate = rate(perf.TotalLeads, perf.TotalClicks)
    for _, bucket := range perf.Platforms {
        bucket.CTR = rate(bucket.Clicks, bucket.Impressions)
        bucket.ConversionRate = rate(bucket.LeadsCaptured, bucket.Clicks)
    }

    return perf, nil
}

// rate returns numerator/denominator as a percentage, 0 when the
// denominator is 0.
func rate(numerator, denominator int) float64 {
    if denominator == 0 {
        return 0
    }
    return float64(numerator) / float64(denominator) * 100
}
