package transport

import (
	"github.com/anjalishikhare80/event-management-system/internal/service"
	"github.com/anjalishikhare80/event-management-system/pkg/session"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type EventHandler struct {
	eventService service.EventService
}

func NewEventHandler(eventService service.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// Index lists all events for any visitor, logged in or not.
func (h *EventHandler) Index(c *gin.Context) {
	events, err := h.eventService.GetAllEvents(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("failed to list events")
	}

	render(c, "index.html", gin.H{"Events": events})
}

func (h *EventHandler) ShowCreateEvent(c *gin.Context) {
	render(c, "create_event.html", nil)
}

func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req service.CreateEventRequest
	if err := c.ShouldBind(&req); err != nil {
		session.Flash(c, "danger", "Event title is required.")
		redirect(c, "/create_event")
		return
	}

	if _, err := h.eventService.CreateEvent(c.Request.Context(), &req); err != nil {
		logrus.WithError(err).Error("failed to create event")
		session.Flash(c, "danger", "Could not create event, please try again.")
		redirect(c, "/create_event")
		return
	}

	session.Flash(c, "success", "Event created.")
	redirect(c, "/")
}
