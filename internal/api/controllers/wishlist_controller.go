package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"voyago/internal/models/request_models"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

type WishlistController struct {
	wishlistService services.WishlistServiceInterface
}

func NewWishlistController(wishlistService services.WishlistServiceInterface) *WishlistController {
	return &WishlistController{
		wishlistService: wishlistService,
	}
}

func (w *WishlistController) AnalyzeHandler(c *gin.Context) {
	var req request_models.AnalyzeContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	item, err := w.wishlistService.AnalyzeAndSave(c.Request.Context(), req.Content)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, item, "Content analyzed successfully")
}

func (w *WishlistController) SimilarHandler(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		utils.RespondError(c, http.StatusBadRequest, "q is required")
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	items, err := w.wishlistService.FindSimilarSaved(c.Request.Context(), query, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, items, "Similar saved spots fetched")
}
