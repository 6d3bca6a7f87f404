// internal/service/outreach_service.go
package service

import (
    "fmt"
    "log"

    "github.com/unclebandit/outreachly-backend/internal/model"
    "github.com/unclebandit/outreachly-backend/internal/queue"
    "github.com/unclebandit/outreachly-backend/internal/repository"
)

type OutreachService struct {
    ContactRepo  repository.ContactRepositoryInterface
    OutreachRepo repository.OutreachMessageRepositoryInterface
    Queue        queue.Queue
}

// Result struct for QueueOutreach
type QueueOutreachResult struct {
    Channel        string
    MessagesQueued int
    MessageIDs     []int
}

// QueueOutreach creates (idempotently) and enqueues one outreach message per
// contact on the given channel. Per-contact failures are logged and skipped;
// callers only see the aggregate count.
func (s *OutreachService) QueueOutreach(contactIDs []int, channel, template string) (*QueueOutreachResult, error) {
    switch channel {
    case model.ChannelWhatsApp, model.ChannelSMS, model.ChannelCall:
    default:
        return nil, fmt.Errorf("unsupported outreach channel: %s", channel)
    }

    result := &QueueOutreachResult{
        Channel:    channel,
        MessageIDs: []int{},
    }

    for _, contactID := range contactIDs {
        contact, err := s.ContactRepo.GetByID(contactID)
        if err != nil {
            log.Println("⚠️ failed to load contact", contactID, ":", err)
            continue
        }

        msg, err := s.OutreachRepo.CreateForContact(contactID, channel)
        if err != nil {
            log.Println("⚠️ failed to create/get outreach message:", err)
            continue
        }

        // Render content if empty
        if msg.RenderedContent == "" && template != "" {
            rendered := RenderGreeting(template, map[string]string{
                "phone":         contact.PhoneNumber,
                "campaign_type": contact.CampaignType,
            })
            if err := s.OutreachRepo.UpdateContent(msg.ID, rendered); err != nil {
                log.Println("⚠️ failed to update rendered content:", err)
                continue
            }
            msg.RenderedContent = rendered
        }

        if err := s.Queue.Publish(queue.TopicOutreachSends, msg.ID); err != nil {
            log.Println("⚠️ failed to enqueue message ID", msg.ID, ":", err)
            continue
        }

        result.MessageIDs = append(result.MessageIDs, msg.ID)
        result.MessagesQueued++
    }

    return result, nil
}
