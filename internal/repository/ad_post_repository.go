package repository

import (
    "database/sql"
    "fmt"

    appErrors "github.com/unclebandit/adleopard-backend/internal/errors"
    "github.com/unclebandit/adleopard-backend/internal/model"
)

type AdPostRepositoryInterface interface {
    Create(p *model.AdPost) error
    GetByID(id int) (*model.AdPost, error)
    ListByCampaign(campaignID int) ([]*model.AdPost, error)
    ListAdPosts(offset, limit int, campaignID int, status string) ([]*model.AdPost, int, error)
    UpdateOutcome(id int, status string, impressions, clicks, leadsCaptured int) (*model.AdPost, error)
}

type AdPostRepository struct {
    DB *sql.DB
}

const adPostColumns = `id, campaign_id, platform, content, scheduled_at, status, location, impressions, clicks, leads_captured, created_at, updated_at`

func scanAdPost(row interface{ Scan(...any) error }) (*model.AdPost, error) {
    var p model.AdPost
    err := row.Scan(&p.ID, &p.CampaignID, &p.Platform, &p.Content, &p.ScheduledAt,
        &p.Status, &p.Location, &p.Impressions, &p.Clicks, &p.LeadsCaptured,
        &p.CreatedAt, &p.UpdatedAt)
    if err != nil {
        return nil, err
    }
    return &p, nil
}

// Create inserts a new ad post and fills in the assigned id and timestamps.
func (r *AdPostRepository) Create(p *model.AdPost) error {
    query := `
        INSERT INTO ad_posts
        (campaign_id, platform, content, scheduled_at, status, location, impressions, clicks, leads_captured, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
        RETURNING id, created_at, updated_at
    `
    return r.DB.QueryRow(
        query,
        p.CampaignID,
        p.Platform,
        p.Content,
        p.ScheduledAt,
        p.Status,
        p.Location,
        p.Impressions,
        p.Clicks,
        p.LeadsCaptured,
    ).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *AdPostRepository) GetByID(id int) (*model.AdPost, error) {
    query := `SELECT ` + adPostColumns + ` FROM ad_posts WHERE id=$1`
    p, err := scanAdPost(r.DB.QueryRow(query, id))
    if err != nil {
        if err == sql.ErrNoRows {
            return nil, appErrors.NewAdPostNotFound(id)
        }
        return nil, err
    }
    return p, nil
}

// ListByCampaign fetches all of a campaign's posts, any status.
func (r *AdPostRepository) ListByCampaign(campaignID int) ([]*model.AdPost, error) {
    query := `SELECT ` + adPostColumns + ` FROM ad_posts WHERE campaign_id=$1 ORDER BY scheduled_at`
    rows, err := r.DB.Query(query, campaignID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    posts := []*model.AdPost{}
    for rows.Next() {
        p, err := scanAdPost(rows)
        if err != nil {
            return nil, err
        }
        posts = append(posts, p)
    }
    return posts, rows.Err()
}

func (r *AdPostRepository) ListAdPosts(offset, limit int, campaignID int, status string) ([]*model.AdPost, int, error) {
    posts := []*model.AdPost{}
    query := `SELECT ` + adPostColumns + ` FROM ad_posts WHERE 1=1`
    args := []interface{}{}
    argPos := 1

    if campaignID > 0 {
        query += fmt.Sprintf(" AND campaign_id=$%d", argPos)
        args = append(args, campaignID)
        argPos++
    }
    if status != "" {
        query += fmt.Sprintf(" AND status=$%d", argPos)
        args = append(args, status)
        argPos++
    }

    query += fmt.Sprintf(" ORDER BY scheduled_at DESC LIMIT $%d OFFSET $%d", argPos, argPos+1)
    args = append(args, limit, offset)

    rows, err := r.DB.Query(query, args...)
    if err != nil {
        return nil, 0, err
    }
    defer rows.Close()

    for rows.Next() {
        p, err := scanAdPost(rows)
        if err != nil {
            return nil, 0, err
        }
        posts = append(posts, p)
    }

    countQuery := `SELECT COUNT(*) FROM ad_posts WHERE 1=1`
    argsCount := []interface{}{}
    argPosCount := 1
    if campaignID > 0 {
        countQuery += fmt.Sprintf(" AND campaign_id=$%d", argPosCount)
        argsCount = append(argsCount, campaignID)
        argPosCount++
    }
    if status != "" {
        countQuery += fmt.Sprintf(" AND status=$%d", argPosCount)
        argsCount = append(argsCount, status)
    }

    var total int
    if err := r.DB.QueryRow(countQuery, argsCount...).Scan(&total); err != nil {
        return nil, 0, err
    }

    return posts, total, nil
}

// UpdateOutcome records an execution result (status + metrics) and returns
// the updated row, or a typed not-found error when the id does not exist.
func (r *AdPostRepository) UpdateOutcome(id int, status string, impressions, clicks, leadsCaptured int) (*model.AdPost, error) {
    query := `
        UPDATE ad_posts
        SET status=$1, impressions=$2, clicks=$3, leads_captured=$4, updated_at=NOW()
        WHERE id=$5
        RETURNING ` + adPostColumns
    p, err := scanAdPost(r.DB.QueryRow(query, status, impressions, clicks, leadsCaptured, id))
    if err != nil {
        if err == sql.ErrNoRows {
            return nil, appErrors.NewAdPostNotFound(id)
        }
        return nil, err
    }
    return p, nil
}

var _ AdPostRepositoryInterface = (*AdPostRepository)(nil)
