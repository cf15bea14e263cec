package payment

import (
	"net/http"

	"mentormatch/internal/api"
	"mentormatch/internal/auth"

	"github.com/gin-gonic/gin"
)

type MockPayRequest struct {
	BookingID int `json:"bookingId" validate:"required,gt=0"`
}

type MockPayResponse struct {
	Status    string `json:"status" example:"accepted"`
	BookingID int    `json:"booking_id"`
	Message   string `json:"message"`
}

type Handler struct {
	sim *Simulator
}

func NewHandler(sim *Simulator) *Handler {
	return &Handler{sim: sim}
}

// MockPay godoc
// @Summary      Simulate paying for a pending booking
// @Description  Returns immediately. The booking flips to confirmed after a delay unless it was canceled first.
// @Tags         payments
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      MockPayRequest  true  "Booking to pay"
// @Success      200      {object}  MockPayResponse
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Router       /payments/mock-pay [post]
func (h *Handler) MockPay(c *gin.Context) {
	menteeID, _ := auth.GetUserID(c)

	var req MockPayRequest
	if !api.BindJSON(c, &req) {
		return
	}

	if err := h.sim.MockPay(c.Request.Context(), req.BookingID, menteeID); err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MockPayResponse{
		Status:    "accepted",
		BookingID: req.BookingID,
		Message:   "payment accepted, the booking will be confirmed shortly",
	})
}
