package dashboard

import (
	"net/http"

	"mentormatch/internal/api"
	"mentormatch/internal/auth"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Get godoc
// @Summary      Dashboard for the current user
// @Description  Mentors get upcoming confirmed sessions, rating and the latest reviews. Mentees get their next pending or confirmed session.
// @Tags         dashboard
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  MentorStats
// @Router       /dashboard [get]
func (h *Handler) Get(c *gin.Context) {
	p, _ := auth.GetPrincipal(c)

	if p.Role == auth.RoleMentor {
		stats, err := h.service.ForMentor(c.Request.Context(), p.ID)
		if err != nil {
			api.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, stats)
		return
	}

	stats, err := h.service.ForMentee(c.Request.Context(), p.ID)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
