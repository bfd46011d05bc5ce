package api

import (
	"net/http"

	reqdto "tablebook/internal/handler/dto/request"
	resdto "tablebook/internal/handler/dto/response"
	"tablebook/internal/handler/httperr"
	"tablebook/internal/handler/middleware"
	"tablebook/internal/usecase/commands"
	"tablebook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type TableHandler struct {
	cmds commands.TableCommands
	q    queries.TableQueries
}

func NewTableHandler(cmds commands.TableCommands, q queries.TableQueries) *TableHandler {
	return &TableHandler{cmds: cmds, q: q}
}

// @Summary Create table
// @Description Add a table to a restaurant (admin or owning operator)
// @Tags tables
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateTableRequest true "Create table request"
// @Success 201 {object} resdto.TableResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tables [post]
func (h *TableHandler) Create(c *gin.Context) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	var req reqdto.CreateTableRequest
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
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load table", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromTableView(view))
}

// @Summary Get table
// @Description Get a table by ID (public)
// @Tags tables
// @Produce json
// @Param id path int true "Table ID"
// @Success 200 {object} resdto.TableResponse
// @Failure 404 {object} map[string]string
// @Router /tables/{id} [get]
func (h *TableHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTableView(view))
}

// @Summary List restaurant tables
// @Description List tables of a restaurant (public)
// @Tags tables
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]string
// @Router /restaurants/{id}/tables [get]
func (h *TableHandler) ListByRestaurant(c *gin.Context) {
	restaurantID, ok := parseID(c)
	if !ok {
		return
	}
	items, err := h.q.ListByRestaurant(c.Request.Context(), restaurantID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tables": resdto.FromTableList(items)})
}

// @Summary Update table
// @Description Update table code or capacity (admin or owning operator)
// @Tags tables
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Table ID"
// @Param request body reqdto.UpdateTableRequest true "Update table request"
// @Success 200 {object} resdto.TableResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tables/{id} [patch]
func (h *TableHandler) Update(c *gin.Context) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateTableRequest
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
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load table", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTableView(view))
}

// @Summary Delete table
// @Description Delete a table without active reservations (admin or owning operator)
// @Tags tables
// @Security BearerAuth
// @Param id path int true "Table ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /tables/{id} [delete]
func (h *TableHandler) Delete(c *gin.Context) {
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
