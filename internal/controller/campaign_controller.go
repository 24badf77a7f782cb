// internal/controller/campaign_controller.go
package controller

import (
    "encoding/json"
    "errors"
    "log"
    "net/http"
    "strconv"

    "github.com/go-chi/chi/v5"
    "github.com/go-playground/validator/v10"
    "github.com/streadway/amqp"

    appErrors "github.com/unclebandit/adleopard-backend/internal/errors"
    "github.com/unclebandit/adleopard-backend/internal/model"
    "github.com/unclebandit/adleopard-backend/internal/queue"
    "github.com/unclebandit/adleopard-backend/internal/repository"
    "github.com/unclebandit/adleopard-backend/internal/service"
)

var validate = validator.New()

type CampaignController struct {
    CampaignService    *service.CampaignService
    PerformanceService *service.PerformanceService
    SchedulerService   *service.AdSchedulerService
    AdPostRepo         repository.AdPostRepositoryInterface
    Queue              queue.Queue
    AmqpURL            string
}

func writeNotFoundOr500(w http.ResponseWriter, err error) {
    var campaignErr *appErrors.ErrCampaignNotFound
    var adPostErr *appErrors.ErrAdPostNotFound
    if errors.As(err, &campaignErr) || errors.As(err, &adPostErr) {
        http.Error(w, err.Error(), http.StatusNotFound)
        return
    }
    http.Error(w, err.Error(), http.StatusInternalServerError)
}

func (c *CampaignController) CreateCampaign(w http.ResponseWriter, r *http.Request) {
    var body struct {
        Name            string  `json:"name" validate:"required"`
        MessageTemplate string  `json:"message_template" validate:"required"`
        FormURL         string  `json:"form_url" validate:"omitempty,url"`
        StartDate       *string `json:"start_date"`
        EndDate         *string `json:"end_date"`
    }
    if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
        http.Error(w, "invalid body", http.StatusBadRequest)
        return
    }
    if err := validate.Struct(body); err != nil {
        http.Error(w, err.Error(), http.StatusBadRequest)
        return
    }

    campaign, err := c.CampaignService.CreateCampaign(body.Name, body.MessageTemplate, body.FormURL, body.StartDate, body.EndDate)
    if err != nil {
        http.Error(w, err.Error(), http.StatusInternalServerError)
        return
    }

    json.NewEncoder(w).Encode(campaign)
}

func (c *CampaignController) ListCampaigns(w http.ResponseWriter, r *http.Request) {
    page, _ := strconv.Atoi(r.URL.Query().Get("page"))
    pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))
    status := r.URL.Query().Get("status")

    if page < 1 {
        page = 1
    }
    if pageSize < 1 {
        pageSize = 20
    }

    campaigns, pagination, err := c.CampaignService.ListCampaigns(page, pageSize, status)
    if err != nil {
        http.Error(w, err.Error(), http.StatusInternalServerError)
        return
    }

    json.NewEncoder(w).Encode(map[string]interface{}{
        "data":       campaigns,
        "pagination": pagination,
    })
}

func (c *CampaignController) GetCampaignDetails(w http.ResponseWriter, r *http.Request) {
    idStr := chi.URLParam(r, "id")
    id, err := strconv.Atoi(idStr)
    if err != nil {
        http.Error(w, "invalid campaign id", http.StatusBadRequest)
        return
    }

    campaign, err := c.CampaignService.GetCampaignDetails(id)
    if err != nil {
        writeNotFoundOr500(w, err)
        return
    }

    json.NewEncoder(w).Encode(campaign)
}

func (c *CampaignController) GetActiveCampaign(w http.ResponseWriter, r *http.Request) {
    campaign, err := c.CampaignService.GetActiveCampaign()
    if err != nil {
        http.Error(w, err.Error(), http.StatusInternalServerError)
        return
    }
    if campaign == nil {
        http.Error(w, "no active campaign", http.StatusNotFound)
        return
    }

    json.NewEncoder(w).Encode(campaign)
}

func (c *CampaignController) UpdateCampaignStatus(w http.ResponseWriter, r *http.Request) {
    idStr := chi.URLParam(r, "id")
    id, err := strconv.Atoi(idStr)
    if err != nil {
        http.Error(w, "invalid campaign id", http.StatusBadRequest)
        return
    }

    var body struct {
        Status string `json:"status" validate:"required,oneof=draft active paused completed"`
    }
    if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
        http.Error(w, "invalid body", http.StatusBadRequest)
        return
    }
    if err := validate.Struct(body); err != nil {
        http.Error(w, err.Error(), http.StatusBadRequest)
        return
    }

    campaign, err := c.CampaignService.UpdateCampaignStatus(id, body.Status)
    if err != nil {
        writeNotFoundOr500(w, err)
        return
    }

    json.NewEncoder(w).Encode(campaign)
}

func (c *CampaignController) GetCampaignPerformance(w http.ResponseWriter, r *http.Request) {
    idStr := chi.URLParam(r, "id")
    id, err := strconv.Atoi(idStr)
    if err != nil {
        http.Error(w, "invalid campaign id", http.StatusBadRequest)
        return
    }

    perf, err := c.PerformanceService.GetCampaignPerformance(id)
    if err != nil {
        writeNotFoundOr500(w, err)
        return
    }

    w.Header().Set("Content-Type", "application/json")
    json.NewEncoder(w).Encode(perf)
}

// CheckSchedule triggers one scheduling pass outside the cron cadence.
func (c *CampaignController) CheckSchedule(w http.ResponseWriter, r *http.Request) {
    if err := c.SchedulerService.CheckAndSchedulePosts(); err != nil {
        http.Error(w, err.Error(), http.StatusInternalServerError)
        return
    }

    json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// RunCampaignAds queues every scheduled post of a campaign for execution.
// Jobs go to the in-process queue, whose subscriber runs them through the
// execution simulator; they are mirrored to RabbitMQ for the external
// worker when the broker is reachable (the subscriber's status check keeps
// a post from executing twice).
func (c *CampaignController) RunCampaignAds(w http.ResponseWriter, r *http.Request) {
    idStr := chi.URLParam(r, "id")
    id, err := strconv.Atoi(idStr)
    if err != nil {
        http.Error(w, "invalid campaign id", http.StatusBadRequest)
        return
    }

    if _, err := c.CampaignService.GetCampaignDetails(id); err != nil {
        writeNotFoundOr500(w, err)
        return
    }

    posts, err := c.AdPostRepo.ListByCampaign(id)
    if err != nil {
        http.Error(w, err.Error(), http.StatusInternalServerError)
        return
    }

    queued := 0
    scheduled := []*model.AdPost{}
    for _, post := range posts {
        if post.Status != model.AdPostStatusScheduled {
            continue
        }
        scheduled = append(scheduled, post)
        if err := c.Queue.Publish("ad_executions", post.ID); err != nil {
            log.Println("⚠️ failed to enqueue ad post", post.ID, ":", err)
            continue
        }
        queued++
    }

    c.mirrorToBroker(scheduled)

    json.NewEncoder(w).Encode(map[string]interface{}{
        "campaign_id": id,
        "ads_queued":  queued,
    })
}

// mirrorToBroker publishes execution jobs to RabbitMQ for cmd/worker.
// Best effort: an unreachable broker is logged, the in-process queue has
// already accepted the jobs.
func (c *CampaignController) mirrorToBroker(posts []*model.AdPost) {
    if len(posts) == 0 {
        return
    }

    conn, err := amqp.Dial(c.AmqpURL)
    if err != nil {
        log.Println("⚠️ RabbitMQ unavailable, ads run in-process only:", err)
        return
    }
    defer conn.Close()

    ch, err := conn.Channel()
    if err != nil {
        log.Println("⚠️ Failed to open queue channel:", err)
        return
    }
    defer ch.Close()

    q, err := ch.QueueDeclare(
        "ad_executions",
        true,
        false,
        false,
        false,
        nil,
    )
    if err != nil {
        log.Println("⚠️ Failed to declare queue:", err)
        return
    }

    for _, post := range posts {
        body, _ := json.Marshal(map[string]int{"ad_post_id": post.ID})
        err = ch.Publish(
            "",
            q.Name,
            false,
            false,
            amqp.Publishing{
                ContentType: "application/json",
                Body:        body,
            },
        )
        if err != nil {
            log.Println("Failed to publish ad execution job:", err)
        }
    }
}
