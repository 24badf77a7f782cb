// internal/service/ad_execution_service.go
package service

import (
    "log"
    "math/rand"
    "time"

    "github.com/unclebandit/adleopard-backend/internal/model"
    "github.com/unclebandit/adleopard-backend/internal/repository"
)

// AdExecutionService simulates delivering a scheduled post to its platform
// and records the engagement outcome. No real network call is made.
type AdExecutionService struct {
    AdPostRepo repository.AdPostRepositoryInterface
    rng        *rand.Rand
}

// NewAdExecutionService builds the service. Pass a seeded rng for
// reproducible metrics in tests; nil falls back to a wall-clock seed.
func NewAdExecutionService(adPostRepo repository.AdPostRepositoryInterface, rng *rand.Rand) *AdExecutionService {
    if rng == nil {
        rng = rand.New(rand.NewSource(time.Now().UnixNano()))
    }
    return &AdExecutionService{
        AdPostRepo: adPostRepo,
        rng:        rng,
    }
}

// RunSocialPost executes one post: draws simulated engagement metrics and
// marks it posted. A persistence failure is absorbed: the post is marked
// failed with its metrics untouched and the failed record is returned.
func (s *AdExecutionService) RunSocialPost(post *model.AdPost) *model.AdPost {
    impressions := 200 + s.rng.Intn(1000)
    clicks := 50 + s.rng.Intn(200)
    leads := 5 + s.rng.Intn(50)

    updated, err := s.AdPostRepo.UpdateOutcome(post.ID, model.AdPostStatusPosted, impressions, clicks, leads)
    if err != nil {
        log.Println("⚠️ failed to record outcome for ad post", post.ID, ":", err)
        post.Status = model.AdPostStatusFailed
        if _, ferr := s.AdPostRepo.UpdateOutcome(post.ID, model.AdPostStatusFailed, post.Impressions, post.Clicks, post.LeadsCaptured); ferr != nil {
            log.Println("⚠️ failed to mark ad post", post.ID, "as failed:", ferr)
        }
        return post
    }

    log.Printf("📣 Posted ad %d to %s (%d impressions, %d clicks, %d leads)",
        updated.ID, updated.Platform, updated.Impressions, updated.Clicks, updated.LeadsCaptured)
    return updated
}

// RunAllSocialPosts executes every post still in scheduled status and passes
// the rest through untouched. Output preserves input order and length.
func (s *AdExecutionService) RunAllSocialPosts(posts []*model.AdPost) []*model.AdPost {
    results := make([]*model.AdPost, 0, len(posts))
    for _, post := range posts {
        if post.Status != model.AdPostStatusScheduled {
            results = append(results, post)
            continue
        }
        results = append(results, s.RunSocialPost(post))
    }
    return results
}
