// internal/handler/lead_handler.go
package handler

import (
    "encoding/csv"
    "encoding/json"
    "errors"
    "net/http"
    "strconv"
    "time"

    "github.com/go-chi/chi/v5"
    "github.com/go-playground/validator/v10"

    appErrors "github.com/unclebandit/adleopard-backend/internal/errors"
    "github.com/unclebandit/adleopard-backend/internal/model"
    "github.com/unclebandit/adleopard-backend/internal/repository"
    "github.com/unclebandit/adleopard-backend/internal/service"
)

var validate = validator.New()

// LeadHandler holds the dependencies for lead-related HTTP handlers
type LeadHandler struct {
    LeadRepo     repository.LeadRepositoryInterface
    FormRepo     repository.FormRepositoryInterface
    CampaignRepo repository.CampaignRepositoryInterface
}

// CaptureLeadHandler receives a public form submission, scores the lead and
// stores it attributed to the current active campaign.
func (h *LeadHandler) CaptureLeadHandler(w http.ResponseWriter, r *http.Request) {
    slug := chi.URLParam(r, "slug")

    form, err := h.FormRepo.GetBySlug(slug)
    if err != nil {
        var notFound *appErrors.ErrFormNotFound
        if errors.As(err, &notFound) {
            http.Error(w, err.Error(), http.StatusNotFound)
            return
        }
        http.Error(w, "failed to fetch form: "+err.Error(), http.StatusInternalServerError)
        return
    }
    if !form.Active {
        http.Error(w, "form is not accepting submissions", http.StatusGone)
        return
    }

    var payload struct {
        Name  string `json:"name" validate:"required"`
        Email string `json:"email" validate:"required,email"`
        Phone string `json:"phone"`
    }
    if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
        http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
        return
    }
    if err := validate.Struct(payload); err != nil {
        http.Error(w, err.Error(), http.StatusBadRequest)
        return
    }

    lead := &model.Lead{
        Name:   payload.Name,
        Email:  payload.Email,
        Phone:  payload.Phone,
        Source: "form",
        Status: model.LeadStatusNew,
    }

    // Attribute to the current active campaign when one exists
    if campaign, err := h.CampaignRepo.GetActiveCampaign(); err == nil && campaign != nil {
        lead.CampaignID = &campaign.ID
    }

    lead.Score, lead.ScoreLabel = service.ScoreLead(lead)

    if err := h.LeadRepo.Create(lead); err != nil {
        http.Error(w, "failed to store lead: "+err.Error(), http.StatusInternalServerError)
        return
    }

    w.Header().Set("Content-Type", "application/json")
    w.WriteHeader(http.StatusCreated)
    json.NewEncoder(w).Encode(lead)
}

// ListLeadsHandler returns a paginated list of leads
func (h *LeadHandler) ListLeadsHandler(w http.ResponseWriter, r *http.Request) {
    page := 1
    pageSize := 20

    if p, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && p > 0 {
        page = p
    }
    if ps, err := strconv.Atoi(r.URL.Query().Get("page_size")); err == nil && ps > 0 {
        pageSize = ps
    }
    status := r.URL.Query().Get("status")
    campaignID, _ := strconv.Atoi(r.URL.Query().Get("campaign_id"))

    offset := (page - 1) * pageSize
    leads, total, err := h.LeadRepo.ListLeads(offset, pageSize, status, campaignID)
    if err != nil {
        http.Error(w, "failed to fetch leads: "+err.Error(), http.StatusInternalServerError)
        return
    }

    totalPages := (total + pageSize - 1) / pageSize
    response := map[string]interface{}{
        "data": leads,
        "pagination": map[string]int{
            "page":        page,
            "page_size":   pageSize,
            "total_count": total,
            "total_pages": totalPages,
        },
    }

    w.Header().Set("Content-Type", "application/json")
    json.NewEncoder(w).Encode(response)
}

// GetLeadHandler returns a single lead by ID
func (h *LeadHandler) GetLeadHandler(w http.ResponseWriter, r *http.Request) {
    idStr := chi.URLParam(r, "id")
    id, err := strconv.Atoi(idStr)
    if err != nil {
        http.Error(w, "invalid lead id", http.StatusBadRequest)
        return
    }

    lead, err := h.LeadRepo.GetByID(id)
    if err != nil {
        var notFound *appErrors.ErrLeadNotFound
        if errors.As(err, &notFound) {
            http.Error(w, err.Error(), http.StatusNotFound)
            return
        }
        http.Error(w, "failed to fetch lead: "+err.Error(), http.StatusInternalServerError)
        return
    }

    w.Header().Set("Content-Type", "application/json")
    json.NewEncoder(w).Encode(lead)
}

// UpdateLeadStatusHandler moves a lead through the pipeline
func (h *LeadHandler) UpdateLeadStatusHandler(w http.ResponseWriter, r *http.Request) {
    idStr := chi.URLParam(r, "id")
    id, err := strconv.Atoi(idStr)
    if err != nil {
        http.Error(w, "invalid lead id", http.StatusBadRequest)
        return
    }

    var payload struct {
        Status string `json:"status" validate:"required,oneof=new contacted qualified converted"`
    }
    if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
        http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
        return
    }
    if err := validate.Struct(payload); err != nil {
        http.Error(w, err.Error(), http.StatusBadRequest)
        return
    }

    if _, err := h.LeadRepo.GetByID(id); err != nil {
        var notFound *appErrors.ErrLeadNotFound
        if errors.As(err, &notFound) {
            http.Error(w, err.Error(), http.StatusNotFound)
            return
        }
        http.Error(w, "failed to fetch lead: "+err.Error(), http.StatusInternalServerError)
        return
    }

    if err := h.LeadRepo.UpdateStatus(id, payload.Status); err != nil {
        http.Error(w, "failed to update lead: "+err.Error(), http.StatusInternalServerError)
        return
    }

    lead, err := h.LeadRepo.GetByID(id)
    if err != nil {
        http.Error(w, "failed to fetch lead: "+err.Error(), http.StatusInternalServerError)
        return
    }

    w.Header().Set("Content-Type", "application/json")
    json.NewEncoder(w).Encode(lead)
}

// ExportLeadsHandler streams every lead as CSV
func (h *LeadHandler) ExportLeadsHandler(w http.ResponseWriter, r *http.Request) {
    leads, err := h.LeadRepo.ListAll()
    if err != nil {
        http.Error(w, "failed to fetch leads: "+err.Error(), http.StatusInternalServerError)
        return
    }

    w.Header().Set("Content-Type", "text/csv")
    w.Header().Set("Content-Disposition", `attachment; filename="leads.csv"`)

    cw := csv.NewWriter(w)
    defer cw.Flush()

    cw.Write([]string{"id", "name", "email", "phone", "source", "campaign_id", "score", "score_label", "status", "created_at"})
    for _, l := range leads {
        campaignID := ""
        if l.CampaignID != nil {
            campaignID = strconv.Itoa(*l.CampaignID)
        }
        cw.Write([]string{
            strconv.Itoa(l.ID),
            l.Name,
            l.Email,
            l.Phone,
            l.Source,
            campaignID,
            strconv.Itoa(l.Score),
            l.ScoreLabel,
            l.Status,
            l.CreatedAt.Format(time.RFC3339),
        })
    }
}
