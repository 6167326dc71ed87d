package controllers

import (
	"errors"
	"net/http"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/services"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// RestaurantPizzaController handles adding pizzas to restaurant menus
type RestaurantPizzaController interface {
	// CreateRestaurantPizza sells a pizza at a restaurant for a price
	CreateRestaurantPizza(c *gin.Context)
}

type restaurantPizzaController struct {
	service services.RestaurantPizzaService
}

// NewRestaurantPizzaController creates a new instance of RestaurantPizzaController
func NewRestaurantPizzaController(service services.RestaurantPizzaService) RestaurantPizzaController {
	return &restaurantPizzaController{service: service}
}

// Pointers tell a missing field apart from a zero value
type createRestaurantPizzaRequest struct {
	Price        *int  `json:"price" binding:"required"`
	RestaurantID *uint `json:"restaurant_id" binding:"required,min=1"`
	PizzaID      *uint `json:"pizza_id" binding:"required,min=1"`
}

// CreateRestaurantPizza godoc
// @Summary Add a pizza to a restaurant
// @Description Sell a pizza at a restaurant for a price between 1 and 30
// @Tags restaurant_pizzas
// @Accept json
// @Produce json
// @Param restaurant_pizza body createRestaurantPizzaRequest true "Price, restaurant and pizza"
// @Success 201 {object} models.RestaurantPizzaDetail
// @Failure 400 {object} models.ValidationErrorsResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurant_pizzas [post]
func (rpc *restaurantPizzaController) CreateRestaurantPizza(ctx *gin.Context) {
	var req createRestaurantPizzaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		logBindError(ctx, err)
		ctx.JSON(http.StatusBadRequest, models.NewValidationErrorsResponse())
		return
	}

	rp, err := rpc.service.CreateRestaurantPizza(*req.Price, *req.RestaurantID, *req.PizzaID)
	var validationErr *models.ValidationError
	switch {
	case err == nil:
		ctx.JSON(http.StatusCreated, models.NewRestaurantPizzaDetail(rp))
	case errors.As(err, &validationErr):
		log.WithField("field", validationErr.Field).Debug(validationErr.Error())
		ctx.JSON(http.StatusBadRequest, models.NewValidationErrorsResponse())
	case errors.Is(err, services.ErrRestaurantNotFound):
		ctx.JSON(http.StatusNotFound, models.NewErrorResponse(models.MsgRestaurantNotFound))
	case errors.Is(err, services.ErrPizzaNotFound):
		ctx.JSON(http.StatusNotFound, models.NewErrorResponse(models.MsgPizzaNotFound))
	default:
		log.WithError(err).Error("Failed to create restaurant pizza")
		ctx.JSON(http.StatusInternalServerError, models.NewErrorResponse("Failed to create restaurant pizza"))
	}
}
