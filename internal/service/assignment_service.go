// internal/service/assignment_service.go
package service

import (
    "log"
    "time"

    "github.com/unclebandit/outreachly-backend/internal/model"
    "github.com/unclebandit/outreachly-backend/internal/repository"
)

type AssignmentService struct {
    ContactRepo   repository.ContactRepositoryInterface
    ModeratorRepo repository.ModeratorRepositoryInterface
}

type DistributeResult struct {
    AssignedCount  int `json:"assigned_count"`
    ModeratorCount int `json:"moderator_count"`
}

// Distribute spreads pending unassigned contacts round-robin across the
// active moderators. Contact i goes to moderators[i mod n]. Each assignment
// is its own write, so one failure never blocks the rest; re-running only
// touches contacts that are still unassigned.
func (s *AssignmentService) Distribute() (*DistributeResult, error) {
    moderators, err := s.ModeratorRepo.ListActive()
    if err != nil {
        return nil, err
    }

    contacts, err := s.ContactRepo.ListUnassignedPending()
    if err != nil {
        return nil, err
    }

    result := &DistributeResult{ModeratorCount: len(moderators)}
    if len(moderators) == 0 || len(contacts) == 0 {
        return result, nil
    }

    for i, c := range contacts {
        m := moderators[i%len(moderators)]
        if err := s.ContactRepo.Assign(c.ID, m.ID, time.Now()); err != nil {
            log.Println("⚠️ failed to assign contact", c.ID, "to moderator", m.ID, ":", err)
            continue
        }
        result.AssignedCount++
    }

    return result, nil
}

// DailyAssignments returns a moderator's pending contacts assigned today
// (server-local day), ordered by assignment time.
func (s *AssignmentService) DailyAssignments(moderatorID int) ([]*model.Contact, error) {
    now := time.Now()
    start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
    end := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, now.Location())
    return s.ContactRepo.ListAssignedBetween(moderatorID, start, end)
}
