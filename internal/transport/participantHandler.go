package transport

import (
	"errors"
	"os"
	"strconv"

	"github.com/anjalishikhare80/event-management-system/internal/entity"
	"github.com/anjalishikhare80/event-management-system/internal/service"
	"github.com/anjalishikhare80/event-management-system/pkg/session"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ParticipantHandler covers the admin views over registrations: listing,
// removal and CSV export.
type ParticipantHandler struct {
	registrationService service.RegistrationService
	eventService        service.EventService
}

func NewParticipantHandler(
	registrationService service.RegistrationService,
	eventService service.EventService,
) *ParticipantHandler {
	return &ParticipantHandler{
		registrationService: registrationService,
		eventService:        eventService,
	}
}

func (h *ParticipantHandler) List(c *gin.Context) {
	eventID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		session.Flash(c, "danger", "Event not found.")
		redirect(c, "/")
		return
	}

	event, err := h.eventService.GetEvent(c.Request.Context(), eventID)
	if err != nil {
		session.Flash(c, "danger", "Event not found.")
		redirect(c, "/")
		return
	}

	participants, err := h.registrationService.ListParticipants(c.Request.Context(), eventID)
	if err != nil {
		logrus.WithError(err).Error("failed to list participants")
		session.Flash(c, "danger", "Could not load participants.")
		redirect(c, "/")
		return
	}

	total, err := h.registrationService.CountParticipants(c.Request.Context(), eventID)
	if err != nil {
		logrus.WithError(err).Error("failed to count participants")
	}

	render(c, "participants.html", gin.H{
		"Event":        event,
		"Participants": participants,
		"Total":        total,
	})
}

func (h *ParticipantHandler) Remove(c *gin.Context) {
	eventID, err1 := strconv.ParseInt(c.Param("event_id"), 10, 64)
	userID, err2 := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err1 != nil || err2 != nil {
		session.Flash(c, "danger", "Event not found.")
		redirect(c, "/")
		return
	}

	err := h.registrationService.RemoveParticipant(c.Request.Context(), eventID, userID)
	if err != nil && !errors.Is(err, entity.ErrRegistrationNotFound) {
		logrus.WithError(err).Error("failed to remove participant")
		session.Flash(c, "danger", "Could not remove participant.")
		redirect(c, "/participants/"+c.Param("event_id"))
		return
	}

	session.Flash(c, "info", "Participant removed.")
	redirect(c, "/participants/"+c.Param("event_id"))
}

func (h *ParticipantHandler) Export(c *gin.Context) {
	eventID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		session.Flash(c, "danger", "Event not found.")
		redirect(c, "/")
		return
	}

	path, downloadName, err := h.registrationService.ExportParticipants(c.Request.Context(), eventID)
	if err != nil {
		if errors.Is(err, entity.ErrEventNotFound) {
			session.Flash(c, "danger", "Event not found.")
		} else {
			logrus.WithError(err).Error("failed to export participants")
			session.Flash(c, "danger", "Could not export participants.")
		}
		redirect(c, "/")
		return
	}
	defer os.Remove(path)

	c.FileAttachment(path, downloadName)
}
