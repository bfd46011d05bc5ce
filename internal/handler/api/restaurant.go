package api

import (
	"net/http"
	"strconv"

	reqdto "tablebook/internal/handler/dto/request"
	resdto "tablebook/internal/handler/dto/response"
	"tablebook/internal/handler/httperr"
	"tablebook/internal/handler/middleware"
	"tablebook/internal/usecase/commands"
	"tablebook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RestaurantHandler struct {
	cmds commands.RestaurantCommands
	q    queries.RestaurantQueries
}

func NewRestaurantHandler(cmds commands.RestaurantCommands, q queries.RestaurantQueries) *RestaurantHandler {
	return &RestaurantHandler{cmds: cmds, q: q}
}

// @Summary Create restaurant
// @Description Create a new restaurant (admin or operator)
// @Tags restaurants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRestaurantRequest true "Create restaurant request"
// @Success 201 {object} resdto.RestaurantResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /restaurants [post]
func (h *RestaurantHandler) Create(c *gin.Context) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	var req reqdto.CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), p, req.ToInput())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load restaurant", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRestaurantView(view))
}

// @Summary Get restaurant
// @Description Get a restaurant by ID (public)
// @Tags restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {object} resdto.RestaurantResponse
// @Failure 404 {object} map[string]string
// @Router /restaurants/{id} [get]
func (h *RestaurantHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRestaurantView(view))
}

// @Summary List restaurants
// @Description List restaurants (public; operators may pass mine=true)
// @Tags restaurants
// @Produce json
// @Param mine query bool false "Only restaurants owned by the caller"
// @Success 200 {object} map[string]any
// @Router /restaurants [get]
func (h *RestaurantHandler) List(c *gin.Context) {
	p, _ := middleware.GetPrincipal(c)
	mineOnly := c.Query("mine") == "true"

	items, err := h.q.List(c.Request.Context(), p, mineOnly)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurants": resdto.FromRestaurantList(items)})
}

// @Summary Update restaurant
// @Description Update restaurant fields (admin or owning operator)
// @Tags restaurants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Restaurant ID"
// @Param request body reqdto.UpdateRestaurantRequest true "Update restaurant request"
// @Success 200 {object} resdto.RestaurantResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /restaurants/{id} [patch]
func (h *RestaurantHandler) Update(c *gin.Context) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.Update(c.Request.Context(), p, id, req.ToInput()); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load restaurant", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRestaurantView(view))
}

// @Summary Delete restaurant
// @Description Delete a restaurant without active reservations (admin only)
// @Tags restaurants
// @Security BearerAuth
// @Param id path int true "Restaurant ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /restaurants/{id} [delete]
func (h *RestaurantHandler) Delete(c *gin.Context) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), p, id); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// parseID reads the numeric :id path param, aborting with 400 on garbage.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return 0, false
	}
	return id, true
}
