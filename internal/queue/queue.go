package queue

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/unclebandit/adleopard-backend/internal/model"
	"github.com/unclebandit/adleopard-backend/internal/service"
)

// Queue interface
type Queue interface {
	Publish(topic string, payload any) error
	Subscribe(topic string, handler func(payload any) error) error
}

// InMemoryQueue is a production-ready in-memory queue with retry
type InMemoryQueue struct {
	mu       sync.Mutex
	handlers map[string][]func(payload any) error
}

// NewInMemoryQueue creates a new queue
func NewInMemoryQueue() *InMemoryQueue {
	return &InMemoryQueue{
		handlers: make(map[string][]func(payload any) error),
	}
}

// JobPayload wraps a message payload with retry info
type JobPayload struct {
	Payload    any
	RetryCount int
	MaxRetries int
}

// Publish sends a message to all subscribers
func (q *InMemoryQueue) Publish(topic string, payload any) error {
	q.mu.Lock()
	handlers := q.handlers[topic]
	q.mu.Unlock()

	if len(handlers) == 0 {
		return fmt.Errorf("no subscribers for topic %s", topic)
	}

	job := JobPayload{
		Payload:    payload,
		RetryCount: 0,
		MaxRetries: 3,
	}

	for _, handler := range handlers {
		go q.processJob(handler, job)
	}

	return nil
}

// processJob handles retries and errors
func (q *InMemoryQueue) processJob(handler func(payload any) error, job JobPayload) {
	for job.RetryCount <= job.MaxRetries {
		err := handler(job.Payload)
		if err == nil {
			log.Printf("Job processed successfully: %+v\n", job.Payload)
			return // ACK
		}

		job.RetryCount++
		log.Printf("Job failed (attempt %d/%d): %+v, error: %v\n", job.RetryCount, job.MaxRetries, job.Payload, err)

		if job.RetryCount > job.MaxRetries {
			log.Printf("Job permanently failed after %d attempts: %+v\n", job.MaxRetries, job.Payload)
			return // No requeue
		}

		// Exponential backoff before retry
		time.Sleep(time.Duration(job.RetryCount*500) * time.Millisecond)
	}
}

// Subscribe adds a handler for a topic
func (q *InMemoryQueue) Subscribe(topic string, handler func(payload any) error) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.handlers[topic] = append(q.handlers[topic], handler)
	return nil
}

// StartAdExecutionSubscriber wires the ad_executions topic to the post
// execution simulator. Payloads are ad post ids.
func StartAdExecutionSubscriber(q Queue, adPostRepo service.AdPostReader, exec *service.AdExecutionService) {
	go func() {
		err := q.Subscribe("ad_executions", func(payload any) error {
			// Type assertion: payload should be an int (AdPost ID)
			postID, ok := payload.(int)
			if !ok {
				log.Println("⚠️ Invalid payload type, expected int")
				return nil // or return error to trigger retry
			}

			log.Println("📩 Processing queued ad post ID:", postID)

			post, err := adPostRepo.GetByID(postID)
			if err != nil {
				log.Println("⚠️ Failed to fetch ad post:", err)
				return err
			}

			if post.Status != model.AdPostStatusScheduled {
				log.Println("⚠️ Ad post", postID, "already in status", post.Status, ", skipping")
				return nil // no retry
			}

			result := exec.RunSocialPost(post)
			log.Println("✅ Ad post processed:", postID, "status:", result.Status)
			return nil
		})

		if err != nil {
			log.Println("⚠️ Failed to start subscriber for ad_executions:", err)
		}
	}()
}
