// internal/service/ad_scheduler_service.go
package service

import (
    "log"
    "sync"
    "time"

    "github.com/unclebandit/adleopard-backend/internal/model"
    "github.com/unclebandit/adleopard-backend/internal/repository"
)

// AdSchedulerService decides, for every active campaign and platform,
// whether a post needs to be scheduled in the next 24 hours.
type AdSchedulerService struct {
    CampaignRepo repository.CampaignRepositoryInterface
    AdPostRepo   repository.AdPostRepositoryInterface

    // Now is swappable in tests. Defaults to time.Now.
    Now func() time.Time

    mu sync.Mutex
}

func NewAdSchedulerService(campaignRepo repository.CampaignRepositoryInterface, adPostRepo repository.AdPostRepositoryInterface) *AdSchedulerService {
    return &AdSchedulerService{
        CampaignRepo: campaignRepo,
        AdPostRepo:   adPostRepo,
        Now:          time.Now,
    }
}

// CheckAndSchedulePosts runs one scheduling pass: for each active campaign
// and each platform without a post scheduled inside [now, now+24h), it
// generates content and inserts a new scheduled post. Passes are serialized
// so the cron trigger and a manual trigger cannot interleave the
// read-then-insert check. A failure on one campaign/platform pair is logged
// and the pass continues; posts already inserted stay committed.
func (s *AdSchedulerService) CheckAndSchedulePosts() error {
    s.mu.Lock()
    defer s.mu.Unlock()

    now := s.Now()

    campaigns, err := s.CampaignRepo.ListByStatus(model.CampaignStatusActive)
    if err != nil {
        return err
    }

    for _, campaign := range campaigns {
        posts, err := s.AdPostRepo.ListByCampaign(campaign.ID)
        if err != nil {
            log.Println("⚠️ failed to load posts for campaign", campaign.ID, ":", err)
            continue
        }

        for _, platform := range model.AllPlatforms {
            if hasUpcomingPost(posts, platform, now) {
                continue
            }

            post := &model.AdPost{
                CampaignID:  campaign.ID,
                Platform:    platform,
                Content:     GeneratePostContent(campaign, platform),
                ScheduledAt: nextPostTime(now),
                Status:      model.AdPostStatusScheduled,
                Location:    model.DefaultLocation,
            }

            if err := s.AdPostRepo.Create(post); err != nil {
                log.Println("⚠️ failed to schedule", platform, "post for campaign", campaign.ID, ":", err)
                continue
            }

            log.Printf("🗓 Scheduled %s post for campaign %d at %s", platform, campaign.ID, post.ScheduledAt.Format(time.RFC3339))
        }
    }

    return nil
}

// hasUpcomingPost reports whether a post for the platform is already
// scheduled inside the rolling 24h lookahead window.
func hasUpcomingPost(posts []*model.AdPost, platform model.Platform, now time.Time) bool {
    windowEnd := now.Add(24 * time.Hour)
    for _, p := range posts {
        if p.Platform != platform {
            continue
        }
        if p.ScheduledAt.After(now) && p.ScheduledAt.Before(windowEnd) {
            return true
        }
    }
    return false
}

// nextPostTime picks the publish slot: 09:00 today before business hours,
// 09:00 tomorrow after 18:00, otherwise the top of the next hour.
func nextPostTime(now time.Time) time.Time {
    switch {
    case now.Hour() < 9:
        return time.Date(now.Year(), now.Month(), now.Day(), 9, 0, 0, 0, now.Location())
    case now.Hour() >= 18:
        tomorrow := now.AddDate(0, 0, 1)
        return time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 9, 0, 0, 0, now.Location())
    default:
        next := now.Add(time.Hour)
        return time.Date(next.Year(), next.Month(), next.Day(), next.Hour(), 0, 0, 0, now.Location())
    }
}
