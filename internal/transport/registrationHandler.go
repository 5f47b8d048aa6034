package transport

import (
	"errors"
	"strconv"

	"github.com/anjalishikhare80/event-management-system/internal/entity"
	"github.com/anjalishikhare80/event-management-system/internal/service"
	"github.com/anjalishikhare80/event-management-system/internal/transport/middleware"
	"github.com/anjalishikhare80/event-management-system/pkg/session"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type RegistrationHandler struct {
	registrationService service.RegistrationService
	eventService        service.EventService
}

func NewRegistrationHandler(
	registrationService service.RegistrationService,
	eventService service.EventService,
) *RegistrationHandler {
	return &RegistrationHandler{
		registrationService: registrationService,
		eventService:        eventService,
	}
}

func (h *RegistrationHandler) ShowRegister(c *gin.Context) {
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

	render(c, "register_event.html", gin.H{"Event": event})
}

func (h *RegistrationHandler) Register(c *gin.Context) {
	eventID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		session.Flash(c, "danger", "Event not found.")
		redirect(c, "/")
		return
	}
	back := "/register_event/" + c.Param("id")

	event, err := h.eventService.GetEvent(c.Request.Context(), eventID)
	if err != nil {
		session.Flash(c, "danger", "Event not found.")
		redirect(c, "/")
		return
	}

	claims, _ := middleware.CurrentSession(c)

	var req service.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		session.Flash(c, "danger", "Full name is required.")
		redirect(c, back)
		return
	}
	req.EventID = eventID
	req.UserID = claims.UserID

	fileHeader, err := c.FormFile("payment_image")
	if err != nil {
		session.Flash(c, "danger", "Payment proof image is required.")
		redirect(c, back)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logrus.WithError(err).Error("failed to open upload")
		session.Flash(c, "danger", "Could not read the uploaded file.")
		redirect(c, back)
		return
	}
	defer file.Close()

	if _, err := h.registrationService.Register(c.Request.Context(), &req, fileHeader.Filename, file); err != nil {
		switch {
		case errors.Is(err, entity.ErrEventNotFound):
			session.Flash(c, "danger", "Event not found.")
			redirect(c, "/")
		case errors.Is(err, entity.ErrInvalidFileType):
			session.Flash(c, "danger", "Invalid file type. Allowed: png, jpg, jpeg.")
			redirect(c, back)
		case errors.Is(err, entity.ErrPaymentProofMissing):
			session.Flash(c, "danger", "Payment proof image is required.")
			redirect(c, back)
		default:
			logrus.WithError(err).Error("registration failed")
			session.Flash(c, "danger", "Registration failed, please try again.")
			redirect(c, back)
		}
		return
	}

	session.Flash(c, "success", "Registered for "+event.Title+".")
	redirect(c, "/")
}
