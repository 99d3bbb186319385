package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/avkrasnov/delivery-store/internal/auth"
	"github.com/avkrasnov/delivery-store/internal/favorite/domain"
	"github.com/avkrasnov/delivery-store/internal/favorite/repository"
	"github.com/avkrasnov/delivery-store/internal/favorite/service"
	"github.com/avkrasnov/delivery-store/internal/platform/logger"
)

type FavoriteHandler struct {
	favoriteService service.FavoriteService
}

func NewFavoriteHandler(fs service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: fs}
}

func (h *FavoriteHandler) RegisterRoutes(router *gin.RouterGroup) {
	favoriteRoutes := router.Group("/favorites")
	favoriteRoutes.Use(auth.RequireLogin())
	{
		favoriteRoutes.POST("", h.Add)
		favoriteRoutes.GET("", h.List)
		favoriteRoutes.DELETE("/:article", h.Remove)
	}
	router.GET("/profile/favorites", auth.RequireLogin(), h.ListEntries)
}

func (h *FavoriteHandler) Add(c *gin.Context) {
	login, ok := auth.LoginFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	var req domain.AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Article == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request data"})
		return
	}

	if err := h.favoriteService.Add(c.Request.Context(), login, *req.Article); err != nil {
		switch {
		case errors.Is(err, repository.ErrAlreadyFavorite):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Product is already in favorites"})
		case errors.Is(err, repository.ErrUnknownArticle):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request data"})
		default:
			logger.Error("Favorite Add: service error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add favorite"})
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Product added to favorites"})
}

func (h *FavoriteHandler) List(c *gin.Context) {
	login, ok := auth.LoginFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}
	favorites, err := h.favoriteService.List(c.Request.Context(), login)
	if err != nil {
		logger.Error("Favorite List: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve favorites"})
		return
	}
	c.JSON(http.StatusOK, favorites)
}

func (h *FavoriteHandler) ListEntries(c *gin.Context) {
	login, ok := auth.LoginFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}
	entries, err := h.favoriteService.ListEntries(c.Request.Context(), login)
	if err != nil {
		logger.Error("Favorite ListEntries: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve favorites"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorites": entries})
}

func (h *FavoriteHandler) Remove(c *gin.Context) {
	login, ok := auth.LoginFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}
	article, err := strconv.ParseInt(c.Param("article"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid article"})
		return
	}
	if err := h.favoriteService.Remove(c.Request.Context(), login, article); err != nil {
		logger.Error("Favorite Remove: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove favorite"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product removed from favorites"})
}
