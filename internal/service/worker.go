package service

import (
	"log"

	"github.com/unclebandit/adleopard-backend/internal/model"
)

// AdPostReader defines the lookups the worker needs
type AdPostReader interface {
	GetByID(id int) (*model.AdPost, error)
}

// Worker drains ad post ids off a channel and executes them
type Worker struct {
	AdPostRepo AdPostReader
	JobChan    <-chan int
	Exec       *AdExecutionService
}

// Constructor
func NewWorker(repo AdPostReader, jobChan <-chan int, exec *AdExecutionService) *Worker {
	return &Worker{
		AdPostRepo: repo,
		JobChan:    jobChan,
		Exec:       exec,
	}
}

// Start begins processing jobs
func (w *Worker) Start() {
	for jobID := range w.JobChan {
		post, err := w.AdPostRepo.GetByID(jobID)
		if err != nil {
			log.Println("Failed to get ad post:", err)
			continue
		}

		if post.Status != model.AdPostStatusScheduled {
			log.Println("Skipping ad post", post.ID, "in status", post.Status)
			continue
		}

		w.Exec.RunSocialPost(post)
	}
}
