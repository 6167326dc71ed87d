package controllers

import (
	"errors"
	"net/http"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/services"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// RestaurantController handles HTTP requests related to restaurants
type RestaurantController interface {
	// GetAllRestaurants lists restaurants without their pizzas
	GetAllRestaurants(c *gin.Context)
	// GetRestaurantByID returns a restaurant with the pizzas it sells
	GetRestaurantByID(c *gin.Context)
	// CreateRestaurant creates a new restaurant
	CreateRestaurant(c *gin.Context)
	// DeleteRestaurant deletes a restaurant and its pizza prices
	DeleteRestaurant(c *gin.Context)
}

type restaurantController struct {
	service services.RestaurantService
}

// NewRestaurantController creates a new instance of RestaurantController
func NewRestaurantController(service services.RestaurantService) RestaurantController {
	return &restaurantController{service: service}
}

type createRestaurantRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
}

// GetAllRestaurants godoc
// @Summary Get all restaurants
// @Description Get every restaurant in insertion order, without pizzas
// @Tags restaurants
// @Produce json
// @Success 200 {array} models.RestaurantSummary
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurants [get]
func (rc *restaurantController) GetAllRestaurants(ctx *gin.Context) {
	restaurants, err := rc.service.GetAllRestaurants()
	if err != nil {
		log.WithError(err).Error("Failed to retrieve restaurants")
		ctx.JSON(http.StatusInternalServerError, models.NewErrorResponse("Failed to retrieve restaurants"))
		return
	}
	ctx.JSON(http.StatusOK, models.NewRestaurantSummaries(restaurants))
}

// GetRestaurantByID godoc
// @Summary Get restaurant by ID
// @Description Get a restaurant with the pizzas it sells and their prices
// @Tags restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {object} models.RestaurantDetail
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurants/{id} [get]
func (rc *restaurantController) GetRestaurantByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		ctx.JSON(http.StatusNotFound, models.NewErrorResponse(models.MsgRestaurantNotFound))
		return
	}

	restaurant, err := rc.service.GetRestaurantByID(id)
	if errors.Is(err, services.ErrRestaurantNotFound) {
		ctx.JSON(http.StatusNotFound, models.NewErrorResponse(models.MsgRestaurantNotFound))
		return
	}
	if err != nil {
		log.WithError(err).WithField("restaurant_id", id).Error("Failed to retrieve restaurant")
		ctx.JSON(http.StatusInternalServerError, models.NewErrorResponse("Failed to retrieve restaurant"))
		return
	}
	ctx.JSON(http.StatusOK, models.NewRestaurantDetail(restaurant))
}

// CreateRestaurant godoc
// @Summary Create a restaurant
// @Description Create a new restaurant, admin only
// @Tags admin
// @Accept json
// @Produce json
// @Param restaurant body createRestaurantRequest true "Restaurant"
// @Success 201 {object} models.RestaurantSummary
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/admin/restaurants [post]
func (rc *restaurantController) CreateRestaurant(ctx *gin.Context) {
	var req createRestaurantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		logBindError(ctx, err)
		ctx.JSON(http.StatusBadRequest, models.NewErrorResponse(models.MsgInvalidRequestBody))
		return
	}

	restaurant, err := rc.service.CreateRestaurant(models.Restaurant{Name: req.Name, Address: req.Address})
	if err != nil {
		log.WithError(err).Error("Failed to create restaurant")
		ctx.JSON(http.StatusInternalServerError, models.NewErrorResponse("Failed to create restaurant"))
		return
	}
	ctx.JSON(http.StatusCreated, models.NewRestaurantSummary(restaurant))
}

// DeleteRestaurant godoc
// @Summary Delete a restaurant
// @Description Delete a restaurant and every pizza price it owns
// @Tags restaurants
// @Param id path int true "Restaurant ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurants/{id} [delete]
func (rc *restaurantController) DeleteRestaurant(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		ctx.JSON(http.StatusNotFound, models.NewErrorResponse(models.MsgRestaurantNotFound))
		return
	}

	err := rc.service.DeleteRestaurant(id)
	if errors.Is(err, services.ErrRestaurantNotFound) {
		ctx.JSON(http.StatusNotFound, models.NewErrorResponse(models.MsgRestaurantNotFound))
		return
	}
	if err != nil {
		log.WithError(err).WithField("restaurant_id", id).Error("Failed to delete restaurant")
		ctx.JSON(http.StatusInternalServerError, models.NewErrorResponse("Failed to delete restaurant"))
		return
	}
	ctx.Status(http.StatusNoContent)
}
