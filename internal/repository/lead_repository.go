package repository

import (
    "database/sql"
    "fmt"
    "time"

    appErrors "github.com/unclebandit/adleopard-backend/internal/errors"
    "github.com/unclebandit/adleopard-backend/internal/model"
)

// LeadRepositoryInterface defines the lead persistence operations used by
// the capture handler and the CSV export.
type LeadRepositoryInterface interface {
    Create(l *model.Lead) error
    GetByID(id int) (*model.Lead, error)
    UpdateStatus(id int, status string) error
    ListLeads(offset, limit int, status string, campaignID int) ([]*model.Lead, int, error)
    ListAll() ([]*model.Lead, error)
}

type LeadRepository struct {
    DB *sql.DB
}

const leadColumns = `id, name, email, phone, source, campaign_id, score, score_label, status, created_at, updated_at`

func scanLead(row interface{ Scan(...any) error }) (*model.Lead, error) {
    var l model.Lead
    err := row.Scan(&l.ID, &l.Name, &l.Email, &l.Phone, &l.Source, &l.CampaignID,
        &l.Score, &l.ScoreLabel, &l.Status, &l.CreatedAt, &l.UpdatedAt)
    if err != nil {
        return nil, err
    }
    return &l, nil
}

func (r *LeadRepository) Create(l *model.Lead) error {
    now := time.Now()
    l.CreatedAt = now
    l.UpdatedAt = now
    if l.Status == "" {
        l.Status = model.LeadStatusNew
    }
    query := `
        INSERT INTO leads (name, email, phone, source, campaign_id, score, score_label, status, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id
    `
    return r.DB.QueryRow(query, l.Name, l.Email, l.Phone, l.Source, l.CampaignID,
        l.Score, l.ScoreLabel, l.Status, l.CreatedAt, l.UpdatedAt).Scan(&l.ID)
}

func (r *LeadRepository) GetByID(id int) (*model.Lead, error) {
    query := `SELECT ` + leadColumns + ` FROM leads WHERE id=$1`
    l, err := scanLead(r.DB.QueryRow(query, id))
    if err != nil {
        if err == sql.ErrNoRows {
            return nil, appErrors.NewLeadNotFound(id)
        }
        return nil, err
    }
    return l, nil
}

func (r *LeadRepository) UpdateStatus(id int, status string) error {
    query := `UPDATE leads SET status=$1, updated_at=NOW() WHERE id=$2`
    _, err := r.DB.Exec(query, status, id)
    return err
}

func (r *LeadRepository) ListLeads(offset, limit int, status string, campaignID int) ([]*model.Lead, int, error) {
    leads := []*model.Lead{}
    query := `SELECT ` + leadColumns + ` FROM leads WHERE 1=1`
    args := []interface{}{}
    argPos := 1

    if status != "" {
        query += fmt.Sprintf(" AND status=$%d", argPos)
        args = append(args, status)
        argPos++
    }
    if campaignID > 0 {
        query += fmt.Sprintf(" AND campaign_id=$%d", argPos)
        args = append(args, campaignID)
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
        l, err := scanLead(rows)
        if err != nil {
            return nil, 0, err
        }
        leads = append(leads, l)
    }

    countQuery := `SELECT COUNT(*) FROM leads WHERE 1=1`
    argsCount := []interface{}{}
    argPosCount := 1
    if status != "" {
        countQuery += fmt.Sprintf(" AND status=$%d", argPosCount)
        argsCount = append(argsCount, status)
        argPosCount++
    }
    if campaignID > 0 {
        countQuery += fmt.Sprintf(" AND campaign_id=$%d", argPosCount)
        argsCount = append(argsCount, campaignID)
    }

    var total int
    if err := r.DB.QueryRow(countQuery, argsCount...).Scan(&total); err != nil {
        return nil, 0, err
    }

    return leads, total, nil
}

// ListAll fetches every lead, used by the CSV export.
func (r *LeadRepository) ListAll() ([]*model.Lead, error) {
    query := `SELECT ` + leadColumns + ` FROM leads ORDER BY id`
    rows, err := r.DB.Query(query)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    leads := []*model.Lead{}
    for rows.Next() {
        l, err := scanLead(rows)
        if err != nil {
            return nil, err
        }
        leads = append(leads, l)
    }
    return leads, rows.Err()
}

var _ LeadRepositoryInterface = (*LeadRepository)(nil)
