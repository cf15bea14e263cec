package availability

import (
	"net/http"
	"strconv"

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

// Create godoc
// @Summary      Declare an availability slot
// @Description  Duration defaults to 60 minutes. Overlapping slots of the same mentor are rejected.
// @Tags         availability
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateSlotRequest  true  "Slot data"
// @Success      201      {object}  Slot
// @Failure      400      {object}  api.ErrorResponse
// @Router       /availability [post]
func (h *Handler) Create(c *gin.Context) {
	mentorID, _ := auth.GetUserID(c)

	var req CreateSlotRequest
	if !api.BindJSON(c, &req) {
		return
	}

	duration := DefaultDurationMinutes
	if req.Duration != nil {
		duration = *req.Duration
	}

	slot, err := h.service.CreateSlot(c.Request.Context(), mentorID, req.StartTime, duration, req.MeetingLink)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, slot)
}

// ListMine godoc
// @Summary      List my upcoming slots
// @Tags         availability
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  Slot
// @Router       /availability/me [get]
func (h *Handler) ListMine(c *gin.Context) {
	mentorID, _ := auth.GetUserID(c)

	slots, err := h.service.ListUpcomingForMentor(c.Request.Context(), mentorID)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, slots)
}

// Delete godoc
// @Summary      Delete a free slot
// @Tags         availability
// @Security     BearerAuth
// @Param        id   path      int  true  "Slot ID"
// @Success      200  {object}  api.MessageResponse
// @Failure      400  {object}  api.ErrorResponse
// @Router       /availability/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	mentorID, _ := auth.GetUserID(c)

	slotID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		api.BadRequest(c, "invalid slot id")
		return
	}

	if err := h.service.DeleteSlot(c.Request.Context(), slotID, mentorID); err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "slot deleted"})
}

// ListForMentor godoc
// @Summary      List a mentor's free upcoming slots
// @Tags         availability
// @Produce      json
// @Param        mentorId  path   int  true  "Mentor ID"
// @Success      200       {array}  Slot
// @Router       /availability/mentor/{mentorId} [get]
func (h *Handler) ListForMentor(c *gin.Context) {
	mentorID, err := strconv.Atoi(c.Param("mentorId"))
	if err != nil {
		api.BadRequest(c, "invalid mentor id")
		return
	}

	slots, err := h.service.ListPublicUpcoming(c.Request.Context(), mentorID)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, slots)
}
