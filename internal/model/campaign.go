// internal/model/campaign.go
package model

import "time"

const (
    CampaignStatusDraft     = "draft"
    CampaignStatusActive    = "active"
    CampaignStatusPaused    = "paused"
    CampaignStatusCompleted = "completed"
)

type Campaign struct {
    ID              int        `db:"id" json:"id"`
    Name            string     `db:"name" json:"name"`
    MessageTemplate string     `db:"message_template" json:"message_template"`
    FormURL         string     `db:"form_url" json:"form_url,omitempty"`
    Status          string     `db:"status" json:"status"`
    StartDate       *time.Time `db:"start_date" json:"start_date,omitempty"`
    EndDate         *time.Time `db:"end_date" json:"end_date,omitempty"`
    CreatedAt       time.Time  `db:"created_at" json:"created_at"`
    UpdatedAt       *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}
