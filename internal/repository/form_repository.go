package repository

import (
    "database/sql"
    "time"

    appErrors "github.com/unclebandit/adleopard-backend/internal/errors"
    "github.com/unclebandit/adleopard-backend/internal/model"
)

type FormRepositoryInterface interface {
    Create(f *model.Form) error
    GetBySlug(slug string) (*model.Form, error)
    ListAll() ([]*model.Form, error)
}

type FormRepository struct {
    DB *sql.DB
}

const formColumns = `id, name, slug, description, active, created_at, updated_at`

func (r *FormRepository) Create(f *model.Form) error {
    now := time.Now()
    f.CreatedAt = now
    f.UpdatedAt = now
    query := `
        INSERT INTO forms (name, slug, description, active, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `
    return r.DB.QueryRow(query, f.Name, f.Slug, f.Description, f.Active, f.CreatedAt, f.UpdatedAt).Scan(&f.ID)
}

func (r *FormRepository) GetBySlug(slug string) (*model.Form, error) {
    query := `SELECT ` + formColumns + ` FROM forms WHERE slug=$1`
    var f model.Form
    err := r.DB.QueryRow(query, slug).Scan(&f.ID, &f.Name, &f.Slug, &f.Description, &f.Active, &f.CreatedAt, &f.UpdatedAt)
    if err != nil {
        if err == sql.ErrNoRows {
            return nil, appErrors.NewFormNotFound(slug)
        }
        return nil, err
    }
    return &f, nil
}

func (r *FormRepository) ListAll() ([]*model.Form, error) {
    query := `SELECT ` + formColumns + ` FROM forms ORDER BY id`
    rows, err := r.DB.Query(query)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    forms := []*model.Form{}
    for rows.Next() {
        var f model.Form
        if err := rows.Scan(&f.ID, &f.Name, &f.Slug, &f.Description, &f.Active, &f.CreatedAt, &f.UpdatedAt); err != nil {
            return nil, err
        }
        forms = append(forms, &f)
    }
    return forms, rows.Err()
}

var _ FormRepositoryInterface = (*FormRepository)(nil)
