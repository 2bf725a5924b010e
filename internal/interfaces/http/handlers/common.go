package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	matterusecases "chambers/internal/application/matter/usecases"
	"chambers/internal/domain/matter"
)

// actorFromContext builds the access-scope actor from the identity the auth
// middleware placed on the context.
func actorFromContext(c *gin.Context) matterusecases.Actor {
	return matterusecases.Actor{
		UserID:     c.GetUint("user_id"),
		Department: c.GetString("department"),
	}
}

func toMatterResponse(m *matter.Matter) MatterResponse {
	resp := MatterResponse{
		SID:             m.SID(),
		Title:           m.Title(),
		ReferenceNumber: m.ReferenceNumber(),
		Status:          string(m.Status()),
		Restricted:      m.AccessScope().IsRestricted(),
		CreatedAt:       m.CreatedAt().Format(time.RFC3339),
	}
	if resp.Restricted {
		resp.AssignedUserIDs = m.AccessScope().AssignedUserIDs()
		resp.AssignedDepartments = m.AccessScope().AssignedDepartments()
	}
	return resp
}
