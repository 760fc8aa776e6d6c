package handlers

import (
	"errors"
	"net/http"

	request "comanda/internal/adapter/http/dto/request"
	response "comanda/internal/adapter/http/dto/response"
	"comanda/internal/usecase"
	"comanda/pkg"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	usecase usecase.IReviewUseCase
}

func NewReviewHandler(uc usecase.IReviewUseCase) *ReviewHandler {
	return &ReviewHandler{usecase: uc}
}

func (h *ReviewHandler) Submit(c *gin.Context) {
	var payload request.ReviewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	review, err := h.usecase.Submit(c.Request.Context(), c.Param("table_id"), payload.GuestID, payload.Rating, payload.Comment)
	if err != nil {
		writeError(c, mapReviewError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromReview(review))
}

func (h *ReviewHandler) List(c *gin.Context) {
	reviews, err := h.usecase.List(c.Request.Context(), c.Param("table_id"))
	if err != nil {
		writeError(c, mapReviewError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromReviews(reviews))
}

func (h *ReviewHandler) RateLine(c *gin.Context) {
	var payload request.RateLineRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	line, err := h.usecase.RateLine(c.Request.Context(), c.Param("table_id"), c.Param("line_id"), payload.Rating)
	if err != nil {
		writeError(c, mapReviewError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLine(line))
}

func mapReviewError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRating):
		return pkg.NewDomainErrorSimple("INVALID_RATING", "Rating must be between 1 and 5", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCommentTooLong):
		return pkg.NewDomainErrorSimple("COMMENT_TOO_LONG", "Comment too long", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLineNotConfirmed):
		return pkg.NewDomainErrorSimple("LINE_NOT_CONFIRMED", "Only sent lines can be rated", http.StatusConflict)
	default:
		return mapCartError(err)
	}
}
