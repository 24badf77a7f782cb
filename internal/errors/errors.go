// internal/errors/errors.go
package appErrors

import "fmt"

// ErrCampaignNotFound is a sentinel error
type ErrCampaignNotFound struct {
    CampaignID int
}

func (e *ErrCampaignNotFound) Error() string {
    return fmt.Sprintf("campaign with ID %d not found", e.CampaignID)
}

// Helper constructor
func NewCampaignNotFound(id int) error {
    return &ErrCampaignNotFound{CampaignID: id}
}

type ErrAdPostNotFound struct {
    AdPostID int
}

func (e *ErrAdPostNotFound) Error() string {
    return fmt.Sprintf("ad post with ID %d not found", e.AdPostID)
}

func NewAdPostNotFound(id int) error {
    return &ErrAdPostNotFound{AdPostID: id}
}

type ErrLeadNotFound struct {
    LeadID int
}

func (e *ErrLeadNotFound) Error() string {
    return fmt.Sprintf("lead with ID %d not found", e.LeadID)
}

func NewLeadNotFound(id int) error {
    return &ErrLeadNotFound{LeadID: id}
}

type ErrFormNotFound struct {
    Slug string
}

func (e *ErrFormNotFound) Error() string {
    return fmt.Sprintf("form %q not found", e.Slug)
}

func NewFormNotFound(slug string) error {
    return &ErrFormNotFound{Slug: slug}
}
