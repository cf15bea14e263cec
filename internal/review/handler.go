package review

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
// @Summary      Review a finished session
// @Tags         reviews
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateReviewRequest  true  "Review"
// @Success      201      {object}  Review
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Router       /reviews [post]
func (h *Handler) Create(c *gin.Context) {
	menteeID, _ := auth.GetUserID(c)

	var req CreateReviewRequest
	if !api.BindJSON(c, &req) {
		return
	}

	created, err := h.service.CreateReview(c.Request.Context(), menteeID, req.BookingID, req.Rating, req.Comment)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ListForMentor godoc
// @Summary      List a mentor's reviews
// @Tags         reviews
// @Produce      json
// @Param        mentorId  path      int  true   "Mentor ID"
// @Param        page      query     int  false  "Page, starting at 1"
// @Param        limit     query     int  false  "Page size"
// @Success      200       {object}  Page
// @Router       /reviews/mentor/{mentorId} [get]
func (h *Handler) ListForMentor(c *gin.Context) {
	mentorID, err := strconv.Atoi(c.Param("mentorId"))
	if err != nil {
		api.BadRequest(c, "invalid mentor id")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(DefaultPageSize)))

	result, err := h.service.ListForMentor(c.Request.Context(), mentorID, page, limit)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
