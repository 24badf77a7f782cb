package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/unclebandit/adleopard-backend/internal/errors"
	"github.com/unclebandit/adleopard-backend/internal/model"
	"github.com/unclebandit/adleopard-backend/internal/service"
)

// Mock repositories

type schedCampaignRepo struct {
	active []*model.Campaign
}

func (m *schedCampaignRepo) ListByStatus(status string) ([]*model.Campaign, error) {
	if status != model.CampaignStatusActive {
		return []*model.Campaign{}, nil
	}
	return m.active, nil
}

// Stub implementations to satisfy the interface
func (m *schedCampaignRepo) Create(c *model.Campaign) error          { return nil }
func (m *schedCampaignRepo) Update(c *model.Campaign) error          { return nil }
func (m *schedCampaignRepo) UpdateStatus(id int, status string) error { return nil }
func (m *schedCampaignRepo) GetByID(id int) (*model.Campaign, error) {
	return nil, appErrors.NewCampaignNotFound(id)
}
func (m *schedCampaignRepo) GetActiveCampaign() (*model.Campaign, error) { return nil, nil }
func (m *schedCampaignRepo) ListCampaigns(offset, limit int, status string) ([]*model.Campaign, int, error) {
	return []*model.Campaign{}, 0, nil
}

type schedAdPostRepo struct {
	existing   map[int][]*model.AdPost // by campaign id
	listErrFor map[int]error
	created    []*model.AdPost
}

func (m *schedAdPostRepo) ListByCampaign(campaignID int) ([]*model.AdPost, error) {
	if err := m.listErrFor[campaignID]; err != nil {
		return nil, err
	}
	return m.existing[campaignID], nil
}

func (m *schedAdPostRepo) Create(p *model.AdPost) error {
	p.ID = len(m.created) + 1
	m.created = append(m.created, p)
	return nil
}

func (m *schedAdPostRepo) GetByID(id int) (*model.AdPost, error) {
	return nil, appErrors.NewAdPostNotFound(id)
}
func (m *schedAdPostRepo) ListAdPosts(offset, limit int, campaignID int, status string) ([]*model.AdPost, int, error) {
	return []*model.AdPost{}, 0, nil
}
func (m *schedAdPostRepo) UpdateOutcome(id int, status string, impressions, clicks, leadsCaptured int) (*model.AdPost, error) {
	return nil, appErrors.NewAdPostNotFound(id)
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newScheduler(campaigns *schedCampaignRepo, posts *schedAdPostRepo, now time.Time) *service.AdSchedulerService {
	s := service.NewAdSchedulerService(campaigns, posts)
	s.Now = fixedClock(now)
	return s
}

func activeCampaign(id int) *model.Campaign {
	return &model.Campaign{
		ID:              id,
		Name:            "Spring Promo",
		MessageTemplate: "Get 20% off every plan this spring.",
		Status:          model.CampaignStatusActive,
	}
}

func TestCheckAndSchedulePostsCoversAllPlatforms(t *testing.T) {
	now := time.Date(2025, 3, 10, 13, 0, 0, 0, time.UTC)
	campaigns := &schedCampaignRepo{active: []*model.Campaign{activeCampaign(1)}}
	posts := &schedAdPostRepo{existing: map[int][]*model.AdPost{}, listErrFor: map[int]error{}}

	err := newScheduler(campaigns, posts, now).CheckAndSchedulePosts()
	require.NoError(t, err)
	require.Len(t, posts.created, len(model.AllPlatforms))

	seen := map[model.Platform]bool{}
	for _, p := range posts.created {
		seen[p.Platform] = true
		assert.Equal(t, 1, p.CampaignID)
		assert.Equal(t, model.AdPostStatusScheduled, p.Status)
		assert.Equal(t, model.DefaultLocation, p.Location)
		assert.NotEmpty(t, p.Content)
		assert.Zero(t, p.Impressions)
		assert.Zero(t, p.Clicks)
		assert.Zero(t, p.LeadsCaptured)
	}
	assert.Len(t, seen, len(model.AllPlatforms))
}

func TestCheckAndSchedulePostsSkipsCoveredPlatform(t *testing.T) {
	now := time.Date(2025, 3, 10, 13, 0, 0, 0, time.UTC)
	campaigns := &schedCampaignRepo{active: []*model.Campaign{activeCampaign(1)}}
	posts := &schedAdPostRepo{
		existing: map[int][]*model.AdPost{
			1: {{
				ID:          99,
				CampaignID:  1,
				Platform:    model.PlatformFacebook,
				ScheduledAt: now.Add(2 * time.Hour),
				Status:      model.AdPostStatusScheduled,
			}},
		},
		listErrFor: map[int]error{},
	}

	err := newScheduler(campaigns, posts, now).CheckAndSchedulePosts()
	require.NoError(t, err)
	require.Len(t, posts.created, len(model.AllPlatforms)-1)
	for _, p := range posts.created {
		assert.NotEqual(t, model.PlatformFacebook, p.Platform)
	}
}

func TestCheckAndSchedulePostsIgnoresPostsOutsideWindow(t *testing.T) {
	now := time.Date(2025, 3, 10, 13, 0, 0, 0, time.UTC)
	campaigns := &schedCampaignRepo{active: []*model.Campaign{activeCampaign(1)}}
	posts := &schedAdPostRepo{
		existing: map[int][]*model.AdPost{
			1: {
				// already executed yesterday
				{CampaignID: 1, Platform: model.PlatformFacebook, ScheduledAt: now.Add(-20 * time.Hour), Status: model.AdPostStatusPosted},
				// beyond the lookahead window
				{CampaignID: 1, Platform: model.PlatformTwitter, ScheduledAt: now.Add(30 * time.Hour), Status: model.AdPostStatusScheduled},
			},
		},
		listErrFor: map[int]error{},
	}

	err := newScheduler(campaigns, posts, now).CheckAndSchedulePosts()
	require.NoError(t, err)
	assert.Len(t, posts.created, len(model.AllPlatforms))
}

func TestCheckAndSchedulePostsPostTimeBoundaries(t *testing.T) {
	cases := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "before business hours",
			now:  time.Date(2025, 3, 10, 8, 59, 0, 0, time.UTC),
			want: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
		},
		{
			name: "after business hours",
			now:  time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC),
			want: time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC),
		},
		{
			name: "mid day rolls to next hour",
			now:  time.Date(2025, 3, 10, 13, 0, 0, 0, time.UTC),
			want: time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			campaigns := &schedCampaignRepo{active: []*model.Campaign{activeCampaign(1)}}
			posts := &schedAdPostRepo{existing: map[int][]*model.AdPost{}, listErrFor: map[int]error{}}

			err := newScheduler(campaigns, posts, tc.now).CheckAndSchedulePosts()
			require.NoError(t, err)
			require.NotEmpty(t, posts.created)
			for _, p := range posts.created {
				assert.True(t, p.ScheduledAt.Equal(tc.want), "got %s, want %s", p.ScheduledAt, tc.want)
			}
		})
	}
}

func TestCheckAndSchedulePostsContinuesPastFailingCampaign(t *testing.T) {
	now := time.Date(2025, 3, 10, 13, 0, 0, 0, time.UTC)
	campaigns := &schedCampaignRepo{active: []*model.Campaign{activeCampaign(1), activeCampaign(2)}}
	posts := &schedAdPostRepo{
		existing:   map[int][]*model.AdPost{},
		listErrFor: map[int]error{1: errors.New("db down")},
	}

	err := newScheduler(campaigns, posts, now).CheckAndSchedulePosts()
	require.NoError(t, err)
	// campaign 1 is skipped, campaign 2 still gets its posts
	require.Len(t, posts.created, len(model.AllPlatforms))
	for _, p := range posts.created {
		assert.Equal(t, 2, p.CampaignID)
	}
}
