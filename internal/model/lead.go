// internal/model/lead.go
package model

import "time"

const (
    LeadStatusNew       = "new"
    LeadStatusContacted = "contacted"
    LeadStatusQualified = "qualified"
    LeadStatusConverted = "converted"
)

type Lead struct {
    ID         int       `db:"id" json:"id"`
    Name       string    `db:"name" json:"name"`
    Email      string    `db:"email" json:"email"`
    Phone      string    `db:"phone" json:"phone"`
    Source     string    `db:"source" json:"source"` // form, referral, import, manual
    CampaignID *int      `db:"campaign_id" json:"campaign_id,omitempty"`
    Score      int       `db:"score" json:"score"`
    ScoreLabel string    `db:"score_label" json:"score_label"` // hot, warm, cold
    Status     string    `db:"status" json:"status"`
    CreatedAt  time.Time `db:"created_at" json:"created_at"`
    UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}
