package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"chambers/internal/application/calendar/usecases"
	"chambers/internal/domain/calendar"
	"chambers/internal/shared/logger"
	"chambers/internal/shared/utils"
)

type CalendarHandler struct {
	createEventUC *usecases.CreateEventUseCase
	listEventsUC  *usecases.ListEventsUseCase
	logger        logger.Interface
}

func NewCalendarHandler(
	createEventUC *usecases.CreateEventUseCase,
	listEventsUC *usecases.ListEventsUseCase,
) *CalendarHandler {
	return &CalendarHandler{
		createEventUC: createEventUC,
		listEventsUC:  listEventsUC,
		logger:        logger.NewLogger(),
	}
}

type CreateEventRequest struct {
	Category    string `json:"category" binding:"required,oneof=court_appearance consultation internal"`
	Title       string `json:"title" binding:"required,max=255"`
	StartAt     string `json:"start_at" binding:"required"`
	EndAt       string `json:"end_at"`
	MatterSID   string `json:"matter_sid"`
	AttendeeIDs []uint `json:"attendee_ids"`
}

type MatterRefResponse struct {
	SID   string `json:"sid"`
	Title string `json:"title"`
}

type EventResponse struct {
	SID         string             `json:"sid"`
	Category    string             `json:"category"`
	Title       string             `json:"title"`
	StartAt     string             `json:"start_at"`
	EndAt       string             `json:"end_at,omitempty"`
	Matter      *MatterRefResponse `json:"matter,omitempty"`
	AttendeeIDs []uint             `json:"attendee_ids,omitempty"`
}

// CreateEvent creates a calendar event. Court appearances must carry a
// matter and attendees.
func (h *CalendarHandler) CreateEvent(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create event", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	startAt, err := time.Parse(time.RFC3339, req.StartAt)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid start_at, expected RFC3339")
		return
	}
	var endAt time.Time
	if req.EndAt != "" {
		endAt, err = time.Parse(time.RFC3339, req.EndAt)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid end_at, expected RFC3339")
			return
		}
	}

	event, err := h.createEventUC.Execute(c.Request.Context(), usecases.CreateEventRequest{
		FirmID:      c.GetUint("firm_id"),
		Category:    calendar.Category(req.Category),
		Title:       req.Title,
		StartAt:     startAt,
		EndAt:       endAt,
		MatterSID:   req.MatterSID,
		AttendeeIDs: req.AttendeeIDs,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toEventResponse(event))
}

// ListEvents lists the firm's events in a time range
// @Summary List calendar events
// @Tags Calendar
// @Produce json
// @Param from query string true "Range start (RFC3339)"
// @Param to query string true "Range end (RFC3339)"
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Failure 400 {object} utils.APIResponse
// @Router /calendar/events [get]
func (h *CalendarHandler) ListEvents(c *gin.Context) {
	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid from, expected RFC3339")
		return
	}
	to, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid to, expected RFC3339")
		return
	}

	page := utils.ParsePagination(c)

	events, total, err := h.listEventsUC.Execute(c.Request.Context(),
		c.GetUint("firm_id"), from, to, page.Limit(), page.Offset())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]EventResponse, 0, len(events))
	for _, event := range events {
		items = append(items, toEventResponse(event))
	}

	utils.OKResponse(c, utils.ListResponse{
		Items:      items,
		Total:      total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: utils.TotalPages(total, page.PageSize),
	})
}

func toEventResponse(event *calendar.Event) EventResponse {
	resp := EventResponse{
		SID:         event.SID(),
		Category:    string(event.Category()),
		Title:       event.Title(),
		StartAt:     event.StartAt().Format(time.RFC3339),
		AttendeeIDs: event.AttendeeIDs(),
	}
	if !event.EndAt().IsZero() {
		resp.EndAt = event.EndAt().Format(time.RFC3339)
	}
	if ref := event.MatterRef(); ref != nil {
		resp.Matter = &MatterRefResponse{SID: ref.SID, Title: ref.Title}
	}
	return resp
}
