package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"chambers/internal/application/endorsement/usecases"
	"chambers/internal/shared/biztime"
	"chambers/internal/shared/logger"
	"chambers/internal/shared/utils"
)

type EndorsementHandler struct {
	createEndorsementUC *usecases.CreateEndorsementUseCase
	listEndorsementsUC  *usecases.ListEndorsementsUseCase
	logger              logger.Interface
}

func NewEndorsementHandler(
	createEndorsementUC *usecases.CreateEndorsementUseCase,
	listEndorsementsUC *usecases.ListEndorsementsUseCase,
) *EndorsementHandler {
	return &EndorsementHandler{
		createEndorsementUC: createEndorsementUC,
		listEndorsementsUC:  listEndorsementsUC,
		logger:              logger.NewLogger(),
	}
}

type CreateEndorsementRequest struct {
	// Date is the court-appearance day in firm-local time, YYYY-MM-DD.
	Date string `json:"date" binding:"required"`
	Note string `json:"note" binding:"required,max=20000"`
}

type EndorsementResponse struct {
	SID       string `json:"sid"`
	Date      string `json:"date"`
	AuthorID  uint   `json:"author_id"`
	Note      string `json:"note"`
	NoteHTML  string `json:"note_html,omitempty"`
	CreatedAt string `json:"created_at"`
}

// CreateEndorsement records an endorsement against a matter
// @Summary Create endorsement
// @Tags Endorsements
// @Accept json
// @Produce json
// @Param sid path string true "Matter SID"
// @Param request body CreateEndorsementRequest true "Endorsement details"
// @Success 201 {object} utils.APIResponse{data=EndorsementResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /matters/{sid}/endorsements [post]
func (h *EndorsementHandler) CreateEndorsement(c *gin.Context) {
	var req CreateEndorsementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create endorsement", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	date, err := biztime.ParseDateInFirmTimezone(req.Date)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	e, err := h.createEndorsementUC.Execute(c.Request.Context(), usecases.CreateEndorsementRequest{
		FirmID:    c.GetUint("firm_id"),
		MatterSID: c.Param("sid"),
		Date:      date,
		AuthorID:  c.GetUint("user_id"),
		Note:      req.Note,
	}, usecases.Actor{
		UserID:     c.GetUint("user_id"),
		Department: c.GetString("department"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, EndorsementResponse{
		SID:       e.SID(),
		Date:      biztime.FormatInFirmTimezone(e.Date(), "2006-01-02"),
		AuthorID:  e.AuthorID(),
		Note:      e.Note(),
		CreatedAt: e.CreatedAt().Format(time.RFC3339),
	})
}

// ListEndorsements lists a matter's endorsements with notes rendered to
// sanitized HTML.
func (h *EndorsementHandler) ListEndorsements(c *gin.Context) {
	page := utils.ParsePagination(c)

	views, total, err := h.listEndorsementsUC.Execute(c.Request.Context(),
		c.GetUint("firm_id"),
		c.Param("sid"),
		usecases.Actor{
			UserID:     c.GetUint("user_id"),
			Department: c.GetString("department"),
		},
		page.Limit(),
		page.Offset(),
	)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]EndorsementResponse, 0, len(views))
	for _, v := range views {
		items = append(items, EndorsementResponse{
			SID:       v.SID,
			Date:      biztime.FormatInFirmTimezone(v.Date, "2006-01-02"),
			AuthorID:  v.AuthorID,
			Note:      v.Note,
			NoteHTML:  v.NoteHTML,
			CreatedAt: v.CreatedAt.Format(time.RFC3339),
		})
	}

	utils.OKResponse(c, utils.ListResponse{
		Items:      items,
		Total:      total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: utils.TotalPages(total, page.PageSize),
	})
}
