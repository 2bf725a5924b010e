package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chambers/internal/application/matter/usecases"
	"chambers/internal/shared/logger"
	"chambers/internal/shared/utils"
)

type MatterHandler struct {
	createMatterUC *usecases.CreateMatterUseCase
	getMatterUC    *usecases.GetMatterUseCase
	listMattersUC  *usecases.ListMattersUseCase
	logger         logger.Interface
}

func NewMatterHandler(
	createMatterUC *usecases.CreateMatterUseCase,
	getMatterUC *usecases.GetMatterUseCase,
	listMattersUC *usecases.ListMattersUseCase,
) *MatterHandler {
	return &MatterHandler{
		createMatterUC: createMatterUC,
		getMatterUC:    getMatterUC,
		listMattersUC:  listMattersUC,
		logger:         logger.NewLogger(),
	}
}

type CreateMatterRequest struct {
	Title               string   `json:"title" binding:"required,max=255"`
	ReferenceNumber     string   `json:"reference_number" binding:"max=128"`
	AssignedUserIDs     []uint   `json:"assigned_user_ids"`
	AssignedDepartments []string `json:"assigned_departments"`
}

type MatterResponse struct {
	SID                 string   `json:"sid"`
	Title               string   `json:"title"`
	ReferenceNumber     string   `json:"reference_number"`
	Status              string   `json:"status"`
	Restricted          bool     `json:"restricted"`
	AssignedUserIDs     []uint   `json:"assigned_user_ids,omitempty"`
	AssignedDepartments []string `json:"assigned_departments,omitempty"`
	CreatedAt           string   `json:"created_at"`
}

// CreateMatter creates a matter, optionally restricted to assigned users
// and departments
// @Summary Create matter
// @Tags Matters
// @Accept json
// @Produce json
// @Param request body CreateMatterRequest true "Matter details"
// @Success 201 {object} utils.APIResponse{data=MatterResponse}
// @Failure 400 {object} utils.APIResponse
// @Router /matters [post]
func (h *MatterHandler) CreateMatter(c *gin.Context) {
	var req CreateMatterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create matter", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	m, err := h.createMatterUC.Execute(c.Request.Context(), usecases.CreateMatterRequest{
		FirmID:              c.GetUint("firm_id"),
		Title:               req.Title,
		ReferenceNumber:     req.ReferenceNumber,
		AssignedUserIDs:     req.AssignedUserIDs,
		AssignedDepartments: req.AssignedDepartments,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toMatterResponse(m))
}

// GetMatter fetches a matter by its public identifier. Access denial is an
// explicit 403.
func (h *MatterHandler) GetMatter(c *gin.Context) {
	m, err := h.getMatterUC.Execute(c.Request.Context(),
		c.GetUint("firm_id"),
		c.Param("sid"),
		actorFromContext(c),
	)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, toMatterResponse(m))
}

// ListMatters lists the firm's matters with the access scope applied per row.
func (h *MatterHandler) ListMatters(c *gin.Context) {
	page := utils.ParsePagination(c)

	matters, total, err := h.listMattersUC.Execute(c.Request.Context(),
		c.GetUint("firm_id"),
		actorFromContext(c),
		page.Limit(),
		page.Offset(),
	)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]MatterResponse, 0, len(matters))
	for _, m := range matters {
		items = append(items, toMatterResponse(m))
	}

	utils.OKResponse(c, utils.ListResponse{
		Items:      items,
		Total:      total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: utils.TotalPages(total, page.PageSize),
	})
}
