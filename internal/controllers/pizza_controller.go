package controllers

import (
	"errors"
	"net/http"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/services"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// PizzaController handles HTTP requests related to pizzas
type PizzaController interface {
	// GetAllPizzas retrieves all pizzas
	GetAllPizzas(c *gin.Context)
	// CreatePizza creates a new pizza
	CreatePizza(c *gin.Context)
	// DeletePizza deletes a pizza by its ID
	DeletePizza(c *gin.Context)
}

type pizzaController struct {
	service services.PizzaService
}

// NewPizzaController creates a new instance of PizzaController
func NewPizzaController(service services.PizzaService) PizzaController {
	return &pizzaController{service: service}
}

type createPizzaRequest struct {
	Name        string `json:"name" binding:"required"`
	Ingredients string `json:"ingredients"`
}

// GetAllPizzas godoc
// @Summary Get all pizzas
// @Description Get a list of all pizzas
// @Tags pizzas
// @Produce json
// @Success 200 {array} models.PizzaSummary
// @Failure 500 {object} models.ErrorResponse
// @Router /pizzas [get]
func (pc *pizzaController) GetAllPizzas(ctx *gin.Context) {
	pizzas, err := pc.service.GetAllPizzas()
	if err != nil {
		log.WithError(err).Error("Failed to retrieve pizzas")
		ctx.JSON(http.StatusInternalServerError, models.NewErrorResponse("Failed to retrieve pizzas"))
		return
	}
	ctx.JSON(http.StatusOK, models.NewPizzaSummaries(pizzas))
}

// CreatePizza godoc
// @Summary Create a new pizza
// @Description Create a new pizza, admin only
// @Tags admin
// @Accept json
// @Produce json
// @Param pizza body createPizzaRequest true "Pizza"
// @Success 201 {object} models.PizzaSummary
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/admin/pizzas [post]
func (pc *pizzaController) CreatePizza(ctx *gin.Context) {
	var req createPizzaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		logBindError(ctx, err)
		ctx.JSON(http.StatusBadRequest, models.NewErrorResponse(models.MsgInvalidRequestBody))
		return
	}

	pizza, err := pc.service.CreatePizza(models.Pizza{Name: req.Name, Ingredients: req.Ingredients})
	if err != nil {
		log.WithError(err).Error("Failed to create pizza")
		ctx.JSON(http.StatusInternalServerError, models.NewErrorResponse("Failed to create pizza"))
		return
	}
	ctx.JSON(http.StatusCreated, models.NewPizzaSummary(pizza))
}

// DeletePizza godoc
// @Summary Delete a pizza
// @Description Delete a pizza and every restaurant price for it, admin only
// @Tags admin
// @Param id path int true "Pizza ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/admin/pizzas/{id} [delete]
func (pc *pizzaController) DeletePizza(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		ctx.JSON(http.StatusNotFound, models.NewErrorResponse(models.MsgPizzaNotFound))
		return
	}

	err := pc.service.DeletePizza(id)
	if errors.Is(err, services.ErrPizzaNotFound) {
		ctx.JSON(http.StatusNotFound, models.NewErrorResponse(models.MsgPizzaNotFound))
		return
	}
	if err != nil {
		log.WithError(err).WithField("pizza_id", id).Error("Failed to delete pizza")
		ctx.JSON(http.StatusInternalServerError, models.NewErrorResponse("Failed to delete pizza"))
		return
	}
	ctx.Status(http.StatusNoContent)
}
