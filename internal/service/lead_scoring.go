// internal/service/lead_scoring.go
package service

import (
    "strings"

    "github.com/unclebandit/adleopard-backend/internal/model"
)

const (
    LeadLabelHot  = "hot"
    LeadLabelWarm = "warm"
    LeadLabelCold = "cold"
)

// ScoreLead assigns a quality score and label to a lead. Pure helper used
// by the capture handler; the scheduling core never calls it.
func ScoreLead(l *model.Lead) (int, string) {
    score := 0
    if strings.TrimSpace(l.Email) != "" {
        score += 30
    }
    if strings.TrimSpace(l.Phone) != "" {
        score += 25
    }
    if len(strings.TrimSpace(l.Name)) > 2 {
        score += 20
    }
    if l.Source == "form" || l.Source == "referral" {
        score += 15
    }
    if l.CampaignID != nil {
        score += 10
    }

    label := LeadLabelCold
    switch {
    case score >= 80:
        label = LeadLabelHot
    case score >= 50:
        label = LeadLabelWarm
    }
    return score, label
}
