package repository

import (
    "database/sql"
    "fmt"
    "time"

    appErrors "github.com/unclebandit/adleopard-backend/internal/errors"
    "github.com/unclebandit/adleopard-backend/internal/model"
)

type CampaignRepositoryInterface interface {
    Create(c *model.Campaign) error
    GetByID(id int) (*model.Campaign, error)
    Update(c *model.Campaign) error
    UpdateStatus(campaignID int, status string) error
    ListCampaigns(offset, limit int, status string) ([]*model.Campaign, int, error)
    ListByStatus(status string) ([]*model.Campaign, error)
    GetActiveCampaign() (*model.Campaign, error)
}

type CampaignRepository struct {
    DB *sql.DB
}

const campaignColumns = `id, name, message_template, form_url, status, start_date, end_date, created_at, updated_at`

func scanCampaign(row interface{ Scan(...any) error }) (*model.Campaign, error) {
    var c model.Campaign
    err := row.Scan(&c.ID, &c.Name, &c.MessageTemplate, &c.FormURL, &c.Status,
        &c.StartDate, &c.EndDate, &c.CreatedAt, &c.UpdatedAt)
    if err != nil {
        return nil, err
    }
    return &c, nil
}

func (r *CampaignRepository) Create(c *model.Campaign) error {
    c.CreatedAt = time.Now()
    if c.Status == "" {
        c.Status = model.CampaignStatusDraft
    }
    query := `
        INSERT INTO campaigns (name, message_template, form_url, status, start_date, end_date, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id
    `
    return r.DB.QueryRow(query, c.Name, c.MessageTemplate, c.FormURL, c.Status, c.StartDate, c.EndDate, c.CreatedAt).Scan(&c.ID)
}

func (r *CampaignRepository) Update(c *model.Campaign) error {
    query := `
        UPDATE campaigns
        SET name=$1, message_template=$2, form_url=$3, status=$4, start_date=$5, end_date=$6, updated_at=NOW()
        WHERE id=$7
    `
    _, err := r.DB.Exec(query, c.Name, c.MessageTemplate, c.FormURL, c.Status, c.StartDate, c.EndDate, c.ID)
    return err
}

func (r *CampaignRepository) UpdateStatus(campaignID int, status string) error {
    query := `UPDATE campaigns SET status=$1, updated_at=$2 WHERE id=$3`
    _, err := r.DB.Exec(query, status, time.Now(), campaignID)
    return err
}

func (r *CampaignRepository) GetByID(id int) (*model.Campaign, error) {
    query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE id=$1`
    c, err := scanCampaign(r.DB.QueryRow(query, id))
    if err != nil {
        if err == sql.ErrNoRows {
            return nil, appErrors.NewCampaignNotFound(id)
        }
        return nil, err
    }
    return c, nil
}

// ListByStatus fetches every campaign in the given status, no paging.
// The ad scheduler uses this with status=active.
func (r *CampaignRepository) ListByStatus(status string) ([]*model.Campaign, error) {
    query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE status=$1 ORDER BY id`
    rows, err := r.DB.Query(query, status)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    campaigns := []*model.Campaign{}
    for rows.Next() {
        c, err := scanCampaign(rows)
        if err != nil {
            return nil, err
        }
        campaigns = append(campaigns, c)
    }
    return campaigns, rows.Err()
}

// GetActiveCampaign returns the most recently created active campaign.
// Convenience view for the dashboard; scheduling iterates all active
// campaigns via ListByStatus instead.
func (r *CampaignRepository) GetActiveCampaign() (*model.Campaign, error) {
    query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE status=$1 ORDER BY created_at DESC LIMIT 1`
    c, err := scanCampaign(r.DB.QueryRow(query, model.CampaignStatusActive))
    if err != nil {
        if err == sql.ErrNoRows {
            return nil, nil
        }
        return nil, err
    }
    return c, nil
}

func (r *CampaignRepository) ListCampaigns(offset, limit int, status string) ([]*model.Campaign, int, error) {
    campaigns := []*model.Campaign{}
    query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE 1=1`
    args := []interface{}{}
    argPos := 1

    if status != "" {
        query += fmt.Sprintf(" AND status=$%d", argPos)
        args = append(args, status)
        argPos++
    }

    query += fmt.Sprintf(" ORDER BY id DESC LIMIT $%d OFFSET $%d", argPos, argPos+1)
    args = append(args, limit, offset)

    rows, err := r.DB.Query(query, args...)
    if err != nil {
        return nil, 0, err
    }
    defer rows.Close()

    for rows.Next() {
        c, err := scanCampaign(rows)
        if err != nil {
            return nil, 0, err
        }
        campaigns = append(campaigns, c)
    }

    countQuery := `SELECT COUNT(*) FROM campaigns WHERE 1=1`
    argsCount := []interface{}{}
    if status != "" {
        countQuery += " AND status=$1"
        argsCount = append(argsCount, status)
    }

    var total int
    if err := r.DB.QueryRow(countQuery, argsCount...).Scan(&total); err != nil {
        return nil, 0, err
    }

    return campaigns, total, nil
}

var _ CampaignRepositoryInterface = (*CampaignRepository)(nil)
