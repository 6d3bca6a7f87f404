// internal/handler/contact_handler.go
package handler

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/unclebandit/outreachly-backend/internal/phone"
	"github.com/unclebandit/outreachly-backend/internal/repository"
	"github.com/unclebandit/outreachly-backend/internal/service"
)

// ContactHandler holds the dependencies for contact-related HTTP handlers
type ContactHandler struct {
	ContactRepo       repository.ContactRepositoryInterface
	OutreachRepo      repository.OutreachMessageRepositoryInterface
	AssignmentService *service.AssignmentService
}

func respond(w http.ResponseWriter, status int, payload map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// DailyAssignmentsHandler returns the contacts assigned to a moderator
// during the current calendar day.
func (h *ContactHandler) DailyAssignmentsHandler(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	moderatorID, err := strconv.Atoi(idStr)
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"message": "invalid moderator id",
		})
		return
	}

	contacts, err := h.AssignmentService.DailyAssignments(moderatorID)
	if err != nil {
		log.Println("❌ Error fetching daily assignments:", err)
		respond(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"message": "failed to fetch assignments",
			"error":   err.Error(),
		})
		return
	}

	respond(w, http.StatusOK, map[string]any{
		"success": true,
		"data": map[string]any{
			"moderator_id": moderatorID,
			"count":        len(contacts),
			"contacts":     contacts,
		},
	})
}

// OutreachStatsHandler reports outreach message counts by delivery status.
func (h *ContactHandler) OutreachStatsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := h.OutreachRepo.StatsByStatus()
	if err != nil {
		log.Println("❌ Error fetching outreach stats:", err)
		respond(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"message": "failed to fetch outreach stats",
			"error":   err.Error(),
		})
		return
	}

	total := 0
	for _, count := range stats {
		total += count
	}

	respond(w, http.StatusOK, map[string]any{
		"success": true,
		"data": map[string]any{
			"total":     total,
			"by_status": stats,
		},
	})
}

// ContactActionsHandler returns the outbound deep links for a contact.
// Each link recomputes the dial form; nothing is cached on the record.
func (h *ContactHandler) ContactActionsHandler(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"message": "invalid contact id",
		})
		return
	}

	contact, err := h.ContactRepo.GetByID(id)
	if err != nil {
		respond(w, http.StatusNotFound, map[string]any{
			"success": false,
			"message": "contact not found",
			"error":   err.Error(),
		})
		return
	}

	message := r.URL.Query().Get("message")

	respond(w, http.StatusOK, map[string]any{
		"success": true,
		"data": map[string]any{
			"contact_id": contact.ID,
			"whatsapp":   phone.WhatsAppLink(contact.PhoneNumber, message),
			"call":       phone.TelLink(contact.PhoneNumber),
			"sms":        phone.SMSLink(contact.PhoneNumber, message),
		},
	})
}
