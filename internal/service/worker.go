package service

import (
	"log"

	"github.com/unclebandit/outreachly-backend/internal/model"
)

// OutreachRepo defines the methods the worker needs
type OutreachRepo interface {
	GetByID(id int) (*model.OutreachMessage, error)
	Update(msg *model.OutreachMessage) error
}

// OutreachWorker drains queued outreach message jobs from a channel
type OutreachWorker struct {
	OutreachRepo OutreachRepo
	JobChan      <-chan int
	SendFunc     func(link string) bool
}

// Constructor
func NewOutreachWorker(repo OutreachRepo, jobChan <-chan int, sendFunc func(link string) bool) *OutreachWorker {
	return &OutreachWorker{
		OutreachRepo: repo,
		JobChan:      jobChan,
		SendFunc:     sendFunc,
	}
}

// Start begins processing jobs
func (w *OutreachWorker) Start() {
	for jobID := range w.JobChan {
		msg, err := w.OutreachRepo.GetByID(jobID)
		if err != nil {
			log.Println("Failed to get outreach message:", err)
			continue
		}
		if msg == nil {
			continue
		}

		success := w.SendFunc(msg.RenderedContent)
		if success {
			msg.Status = "sent"
		} else {
			msg.Status = "failed"
		}

		w.OutreachRepo.Update(msg)
	}
}
