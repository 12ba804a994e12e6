package controllers

import (
	"errors"
	"net/http"
	"sort"

	"github.com/Dailong90/fanta-claus/api/models"
	"github.com/Dailong90/fanta-claus/api/session"
	"github.com/Dailong90/fanta-claus/api/transport"
	"github.com/Dailong90/fanta-claus/logging"
	"github.com/Dailong90/fanta-claus/storage"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CategoryController struct {
	storage        storage.GiftCategoryStorage
	giftsStorage   storage.GiftStorage
	playersStorage storage.PlayerStorage
	sessions       *session.Manager
}

func NewCategoryController(s storage.GiftCategoryStorage, giftsStorage storage.GiftStorage, playersStorage storage.PlayerStorage, sessions *session.Manager) *CategoryController {
	return &CategoryController{
		storage:        s,
		giftsStorage:   giftsStorage,
		playersStorage: playersStorage,
		sessions:       sessions,
	}
}

func (c *CategoryController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/categories")
	admin := transport.AdminAuthMiddleware(c.sessions, c.playersStorage)

	group.GET("", c.getAll)
	group.POST("", admin, c.create)
	group.PUT("/:id", admin, c.update)
	group.DELETE("/:id", admin, c.delete)
}

// @Summary List gift categories
// @Tags categories
// @Produce json
// @Success 200 {array} models.CategoryResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/categories [get]
func (c *CategoryController) getAll(g *gin.Context) {
	categories, err := c.storage.GetAll(g.Request.Context())
	if err != nil {
		logging.Log.Errorf("CATEGORY: failed to get all categories: %v", err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	// Points descending, then label, same for everyone
	sort.SliceStable(categories, func(i, j int) bool {
		if categories[i].Points != categories[j].Points {
			return categories[i].Points > categories[j].Points
		}
		return categories[i].Label < categories[j].Label
	})

	responses := make([]models.CategoryResponse, 0, len(categories))
	for _, cat := range categories {
		responses = append(responses, models.TransformCategoryFromStorage(cat))
	}
	g.JSON(http.StatusOK, responses)
}

// @Summary Create a gift category
// @Tags categories
// @Accept json
// @Produce json
// @Param category body models.CategoryCreateRequest true "Category"
// @Success 200 {object} models.CategoryResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/categories [post]
func (c *CategoryController) create(g *gin.Context) {
	var req models.CategoryCreateRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		logging.Log.Errorf("CATEGORY: invalid create request: %v", err)
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request"})
		return
	}

	if req.Label == "" {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request empty label"})
		return
	}

	id := req.ID
	if id == "" {
		id = uuid.NewString()
	}

	category := &storage.GiftCategory{
		ID:     id,
		Code:   req.Code,
		Label:  req.Label,
		Points: req.Points,
	}

	if err := c.storage.Create(g.Request.Context(), category); err != nil {
		if errors.Is(err, storage.ErrItemWithIDAlreadyExists) {
			g.JSON(http.StatusConflict, models.ErrorResponse{Error: "category with ID already exists"})
			return
		}
		logging.Log.Errorf("CATEGORY: failed to create category: %v", err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}
	g.JSON(http.StatusOK, models.TransformCategoryFromStorage(category))
}

// @Summary Update a gift category
// @Tags categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param category body models.CategoryUpdateRequest true "Category"
// @Success 200 {object} models.CategoryResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/categories/{id} [put]
func (c *CategoryController) update(g *gin.Context) {
	id := g.Param("id")
	if id == "" {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "missing category id"})
		return
	}

	var req models.CategoryUpdateRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		logging.Log.Errorf("CATEGORY: invalid update request: %v", err)
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request"})
		return
	}

	if req.Label == "" {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request empty label"})
		return
	}

	category := &storage.GiftCategory{
		ID:     id,
		Code:   req.Code,
		Label:  req.Label,
		Points: req.Points,
	}

	if err := c.storage.Update(g.Request.Context(), category); err != nil {
		logging.Log.Errorf("CATEGORY: failed to update category: %v", err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}
	g.JSON(http.StatusOK, models.TransformCategoryFromStorage(category))
}

// @Summary Delete a gift category
// @Description Refused while any gift still references the category
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse "Category still in use"
// @Failure 500 {object} models.ErrorResponse
// @Router /api/categories/{id} [delete]
func (c *CategoryController) delete(g *gin.Context) {
	id := g.Param("id")
	if id == "" {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "missing category id"})
		return
	}

	inUse, err := c.giftsStorage.AnyWithCategory(g.Request.Context(), id)
	if err != nil {
		logging.Log.Errorf("CATEGORY: failed to check gifts for category %s: %v", id, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not check linked gifts"})
		return
	}
	if inUse {
		g.JSON(http.StatusConflict, models.ErrorResponse{Error: "category is used by at least one gift"})
		return
	}

	if err := c.storage.Delete(g.Request.Context(), id); err != nil {
		logging.Log.Errorf("CATEGORY: failed to delete category: %v", err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}
	g.JSON(http.StatusOK, gin.H{"message": "category deleted"})
}
