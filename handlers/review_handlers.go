// handlers/review_handlers.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fadhlanhapp/splitbill-backend/models"
	"github.com/fadhlanhapp/splitbill-backend/utils"
)

// CreateReview handles the public POST /api/reviews.
func CreateReview(c *gin.Context) {
	var request models.CreateReviewRequest
	if err := bindJSON(c, &request); err != nil {
		utils.HandleError(c, err)
		return
	}

	review, err := reviewService.Create(&request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, http.StatusCreated, gin.H{
		"message": utils.MsgReviewSaved,
		"data":    review,
	})
}

// ListReviews handles GET /api/reviews for admins. Query params: page, limit,
// rating (0 or absent means all ratings).
func ListReviews(c *gin.Context) {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 10)
	rating := queryInt(c, "rating", 0)

	reviews, pagination, err := reviewService.List(page, limit, rating)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, http.StatusOK, gin.H{
		"data": gin.H{
			"reviews":    reviews,
			"pagination": pagination,
		},
	})
}

func queryInt(c *gin.Context, name string, fallback int) int {
	value, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return fallback
	}
	return value
}
