// internal/service/campaign_service.go
package service

import (
    "fmt"
    "time"

    "github.com/unclebandit/adleopard-backend/internal/model"
    "github.com/unclebandit/adleopard-backend/internal/repository"
)

type CampaignService struct {
    CampaignRepo repository.CampaignRepositoryInterface
}

var validCampaignStatuses = map[string]bool{
    model.CampaignStatusDraft:     true,
    model.CampaignStatusActive:    true,
    model.CampaignStatusPaused:    true,
    model.CampaignStatusCompleted: true,
}

func (s *CampaignService) CreateCampaign(name, messageTemplate, formURL string, startDate, endDate *string) (*model.Campaign, error) {
    c := &model.Campaign{
        Name:            name,
        MessageTemplate: messageTemplate,
        FormURL:         formURL,
        Status:          model.CampaignStatusDraft,
    }

    if startDate != nil {
        t, err := time.Parse(time.RFC3339, *startDate)
        if err != nil {
            return nil, err
        }
        c.StartDate = &t
    }
    if endDate != nil {
        t, err := time.Parse(time.RFC3339, *endDate)
        if err != nil {
            return nil, err
        }
        c.EndDate = &t
    }

    if err := s.CampaignRepo.Create(c); err != nil {
        return nil, err
    }

    return c, nil
}

// ListCampaigns fetches campaigns with pagination
func (s *CampaignService) ListCampaigns(page, pageSize int, status string) ([]model.Campaign, map[string]int, error) {
    if page < 1 {
        page = 1
    }
    if pageSize < 1 {
        pageSize = 20
    }
    if pageSize > 100 {
        pageSize = 100
    }
    offset := (page - 1) * pageSize

    ptrs, total, err := s.CampaignRepo.ListCampaigns(offset, pageSize, status)
    if err != nil {
        return nil, nil, err
    }

    campaigns := make([]model.Campaign, len(ptrs))
    for i, c := range ptrs {
        campaigns[i] = *c
    }

    totalPages := (total + pageSize - 1) / pageSize
    pagination := map[string]int{
        "page":        page,
        "page_size":   pageSize,
        "total_count": total,
        "total_pages": totalPages,
    }

    return campaigns, pagination, nil
}

func (s *CampaignService) GetCampaignDetails(id int) (*model.Campaign, error) {
    return s.CampaignRepo.GetByID(id)
}

// GetActiveCampaign is a convenience view over the multi-active state: it
// returns the newest active campaign, or nil when none is active.
func (s *CampaignService) GetActiveCampaign() (*model.Campaign, error) {
    return s.CampaignRepo.GetActiveCampaign()
}

func (s *CampaignService) UpdateCampaignStatus(id int, status string) (*model.Campaign, error) {
    if !validCampaignStatuses[status] {
        return nil, fmt.Errorf("invalid campaign status: %s", status)
    }

    if _, err := s.CampaignRepo.GetByID(id); err != nil {
        return nil, err
    }

    if err := s.CampaignRepo.UpdateStatus(id, status); err != nil {
        return nil, err
    }

    return s.CampaignRepo.GetByID(id)
}
