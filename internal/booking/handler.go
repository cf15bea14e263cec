package booking

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
// @Summary      Book a slot
// @Description  Claims the slot for the calling mentee. Paid sessions start pending until mock payment confirms them.
// @Tags         bookings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateBookingRequest  true  "Slot to book"
// @Success      201      {object}  Booking
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Router       /bookings [post]
func (h *Handler) Create(c *gin.Context) {
	p, ok := auth.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req CreateBookingRequest
	if !api.BindJSON(c, &req) {
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), p, req.AvailabilityID)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, b)
}

// ListMine godoc
// @Summary      List my bookings
// @Description  Bookings where the caller is mentor or mentee, newest session first.
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  View
// @Router       /bookings/me [get]
func (h *Handler) ListMine(c *gin.Context) {
	userID, _ := auth.GetUserID(c)

	views, err := h.service.ListForUser(c.Request.Context(), userID)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// Get godoc
// @Summary      Get one booking
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Booking ID"
// @Success      200  {object}  View
// @Failure      404  {object}  api.ErrorResponse
// @Router       /bookings/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	userID, _ := auth.GetUserID(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		api.BadRequest(c, "invalid booking id")
		return
	}

	v, err := h.service.Get(c.Request.Context(), id, userID)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// Cancel godoc
// @Summary      Cancel a booking
// @Description  Either party may cancel a pending or upcoming confirmed booking. The slot becomes bookable again.
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Booking ID"
// @Success      200  {object}  CancelResponse
// @Failure      400  {object}  api.ErrorResponse
// @Failure      403  {object}  api.ErrorResponse
// @Failure      404  {object}  api.ErrorResponse
// @Router       /bookings/{id}/cancel [put]
func (h *Handler) Cancel(c *gin.Context) {
	userID, _ := auth.GetUserID(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		api.BadRequest(c, "invalid booking id")
		return
	}

	b, err := h.service.CancelBooking(c.Request.Context(), userID, id)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, CancelResponse{Message: "booking canceled", Booking: b})
}
