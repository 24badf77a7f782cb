package service_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/unclebandit/adleopard-backend/internal/errors"
	"github.com/unclebandit/adleopard-backend/internal/model"
	"github.com/unclebandit/adleopard-backend/internal/service"
)

type execAdPostRepo struct {
	updateErr error
	updated   map[int]*model.AdPost
}

func (m *execAdPostRepo) UpdateOutcome(id int, status string, impressions, clicks, leadsCaptured int) (*model.AdPost, error) {
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	p := &model.AdPost{
		ID:            id,
		Status:        status,
		Impressions:   impressions,
		Clicks:        clicks,
		LeadsCaptured: leadsCaptured,
	}
	if m.updated == nil {
		m.updated = map[int]*model.AdPost{}
	}
	m.updated[id] = p
	return p, nil
}

func (m *execAdPostRepo) Create(p *model.AdPost) error { return nil }
func (m *execAdPostRepo) GetByID(id int) (*model.AdPost, error) {
	return nil, appErrors.NewAdPostNotFound(id)
}
func (m *execAdPostRepo) ListByCampaign(campaignID int) ([]*model.AdPost, error) {
	return []*model.AdPost{}, nil
}
func (m *execAdPostRepo) ListAdPosts(offset, limit int, campaignID int, status string) ([]*model.AdPost, int, error) {
	return []*model.AdPost{}, 0, nil
}

func scheduledPost(id int) *model.AdPost {
	return &model.AdPost{
		ID:         id,
		CampaignID: 1,
		Platform:   model.PlatformFacebook,
		Status:     model.AdPostStatusScheduled,
	}
}

func TestRunSocialPostMetricsWithinBounds(t *testing.T) {
	repo := &execAdPostRepo{}
	exec := service.NewAdExecutionService(repo, rand.New(rand.NewSource(1)))

	for i := 1; i <= 50; i++ {
		result := exec.RunSocialPost(scheduledPost(i))
		require.Equal(t, model.AdPostStatusPosted, result.Status)
		assert.GreaterOrEqual(t, result.Impressions, 200)
		assert.LessOrEqual(t, result.Impressions, 1199)
		assert.GreaterOrEqual(t, result.Clicks, 50)
		assert.LessOrEqual(t, result.Clicks, 249)
		assert.GreaterOrEqual(t, result.LeadsCaptured, 5)
		assert.LessOrEqual(t, result.LeadsCaptured, 54)
	}
}

func TestRunSocialPostReproducibleWithSeed(t *testing.T) {
	first := service.NewAdExecutionService(&execAdPostRepo{}, rand.New(rand.NewSource(42))).RunSocialPost(scheduledPost(1))
	second := service.NewAdExecutionService(&execAdPostRepo{}, rand.New(rand.NewSource(42))).RunSocialPost(scheduledPost(1))

	assert.Equal(t, first.Impressions, second.Impressions)
	assert.Equal(t, first.Clicks, second.Clicks)
	assert.Equal(t, first.LeadsCaptured, second.LeadsCaptured)
}

func TestRunSocialPostAbsorbsPersistenceFailure(t *testing.T) {
	repo := &execAdPostRepo{updateErr: errors.New("db down")}
	exec := service.NewAdExecutionService(repo, rand.New(rand.NewSource(1)))

	post := scheduledPost(1)
	result := exec.RunSocialPost(post)

	assert.Equal(t, model.AdPostStatusFailed, result.Status)
	assert.Zero(t, result.Impressions)
	assert.Zero(t, result.Clicks)
	assert.Zero(t, result.LeadsCaptured)
}

func TestRunAllSocialPostsMixedSequence(t *testing.T) {
	repo := &execAdPostRepo{}
	exec := service.NewAdExecutionService(repo, rand.New(rand.NewSource(1)))

	alreadyPosted := &model.AdPost{
		ID:          2,
		Status:      model.AdPostStatusPosted,
		Impressions: 500,
		Clicks:      60,
	}
	input := []*model.AdPost{scheduledPost(1), alreadyPosted, scheduledPost(3)}

	results := exec.RunAllSocialPosts(input)
	require.Len(t, results, 3)

	assert.NotEqual(t, model.AdPostStatusScheduled, results[0].Status)
	assert.NotEqual(t, model.AdPostStatusScheduled, results[2].Status)

	// the posted entry passes through untouched, in place
	assert.Same(t, alreadyPosted, results[1])
	assert.Equal(t, 500, results[1].Impressions)
}
