// internal/handler/ad_handler.go
package handler

import (
    "encoding/json"
    "errors"
    "net/http"
    "strconv"

    "github.com/go-chi/chi/v5"

    appErrors "github.com/unclebandit/adleopard-backend/internal/errors"
    "github.com/unclebandit/adleopard-backend/internal/model"
    "github.com/unclebandit/adleopard-backend/internal/repository"
    "github.com/unclebandit/adleopard-backend/internal/service"
)

// AdHandler holds the dependencies for ad-post HTTP handlers
type AdHandler struct {
    AdPostRepo repository.AdPostRepositoryInterface
    Exec       *service.AdExecutionService
}

// ListAdsHandler returns a paginated list of ad posts, filterable by
// campaign and status
func (h *AdHandler) ListAdsHandler(w http.ResponseWriter, r *http.Request) {
    page := 1
    pageSize := 20

    if p, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && p > 0 {
        page = p
    }
    if ps, err := strconv.Atoi(r.URL.Query().Get("page_size")); err == nil && ps > 0 {
        pageSize = ps
    }
    campaignID, _ := strconv.Atoi(r.URL.Query().Get("campaign_id"))
    status := r.URL.Query().Get("status")

    offset := (page - 1) * pageSize
    posts, total, err := h.AdPostRepo.ListAdPosts(offset, pageSize, campaignID, status)
    if err != nil {
        http.Error(w, "failed to fetch ad posts: "+err.Error(), http.StatusInternalServerError)
        return
    }

    totalPages := (total + pageSize - 1) / pageSize
    response := map[string]interface{}{
        "data": posts,
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

// GetAdHandler returns a single ad post by ID
func (h *AdHandler) GetAdHandler(w http.ResponseWriter, r *http.Request) {
    idStr := chi.URLParam(r, "id")
    id, err := strconv.Atoi(idStr)
    if err != nil {
        http.Error(w, "invalid ad post id", http.StatusBadRequest)
        return
    }

    post, err := h.AdPostRepo.GetByID(id)
    if err != nil {
        var notFound *appErrors.ErrAdPostNotFound
        if errors.As(err, &notFound) {
            http.Error(w, err.Error(), http.StatusNotFound)
            return
        }
        http.Error(w, "failed to fetch ad post: "+err.Error(), http.StatusInternalServerError)
        return
    }

    w.Header().Set("Content-Type", "application/json")
    json.NewEncoder(w).Encode(post)
}

// RunAdHandler executes one scheduled ad post immediately
func (h *AdHandler) RunAdHandler(w http.ResponseWriter, r *http.Request) {
    idStr := chi.URLParam(r, "id")
    id, err := strconv.Atoi(idStr)
    if err != nil {
        http.Error(w, "invalid ad post id", http.StatusBadRequest)
        return
    }

    post, err := h.AdPostRepo.GetByID(id)
    if err != nil {
        var notFound *appErrors.ErrAdPostNotFound
        if errors.As(err, &notFound) {
            http.Error(w, err.Error(), http.StatusNotFound)
            return
        }
        http.Error(w, "failed to fetch ad post: "+err.Error(), http.StatusInternalServerError)
        return
    }

    if post.Status != model.AdPostStatusScheduled {
        http.Error(w, "ad post is not in scheduled status", http.StatusConflict)
        return
    }

    result := h.Exec.RunSocialPost(post)

    w.Header().Set("Content-Type", "application/json")
    json.NewEncoder(w).Encode(result)
}
