// internal/handler/form_handler.go
package handler

import (
    "encoding/json"
    "errors"
    "net/http"
    "os"

    "github.com/go-chi/chi/v5"
    "github.com/google/uuid"

    appErrors "github.com/unclebandit/adleopard-backend/internal/errors"
    "github.com/unclebandit/adleopard-backend/internal/model"
    "github.com/unclebandit/adleopard-backend/internal/repository"
)

// FormHandler holds the dependencies for form HTTP handlers
type FormHandler struct {
    FormRepo repository.FormRepositoryInterface
}

// formURL builds the public capture URL for a form slug.
func formURL(slug string) string {
    base := os.Getenv("PUBLIC_BASE_URL")
    if base == "" {
        base = "http://localhost:8080"
    }
    return base + "/f/" + slug
}

// CreateFormHandler creates a lead capture form with a fresh public slug
func (h *FormHandler) CreateFormHandler(w http.ResponseWriter, r *http.Request) {
    var payload struct {
        Name        string `json:"name" validate:"required"`
        Description string `json:"description"`
    }
    if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
        http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
        return
    }
    if err := validate.Struct(payload); err != nil {
        http.Error(w, err.Error(), http.StatusBadRequest)
        return
    }

    form := &model.Form{
        Name:        payload.Name,
        Slug:        uuid.NewString(),
        Description: payload.Description,
        Active:      true,
    }

    if err := h.FormRepo.Create(form); err != nil {
        http.Error(w, "failed to create form: "+err.Error(), http.StatusInternalServerError)
        return
    }

    w.Header().Set("Content-Type", "application/json")
    w.WriteHeader(http.StatusCreated)
    json.NewEncoder(w).Encode(map[string]interface{}{
        "form": form,
        "url":  formURL(form.Slug),
    })
}

// ListFormsHandler returns all forms with their public URLs
func (h *FormHandler) ListFormsHandler(w http.ResponseWriter, r *http.Request) {
    forms, err := h.FormRepo.ListAll()
    if err != nil {
        http.Error(w, "failed to fetch forms: "+err.Error(), http.StatusInternalServerError)
        return
    }

    type formWithURL struct {
        *model.Form
        URL string `json:"url"`
    }
    out := make([]formWithURL, 0, len(forms))
    for _, f := range forms {
        out = append(out, formWithURL{Form: f, URL: formURL(f.Slug)})
    }

    w.Header().Set("Content-Type", "application/json")
    json.NewEncoder(w).Encode(map[string]interface{}{"data": out})
}

// GetFormHandler returns the public view of a form by slug
func (h *FormHandler) GetFormHandler(w http.ResponseWriter, r *http.Request) {
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

    w.Header().Set("Content-Type", "application/json")
    json.NewEncoder(w).Encode(form)
}
