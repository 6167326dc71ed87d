package controllers

import (
	"errors"
	"net/http"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/middleware"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type ClientController struct {
	clientService services.ClientService
}

func NewClientController(clientService services.ClientService) *ClientController {
	return &ClientController{clientService: clientService}
}

type createClientRequest struct {
	Name   string `json:"name" binding:"required"`
	Domain string `json:"domain"`
	Scopes string `json:"scopes"`
}

// CreateClient godoc
// @Summary Create OAuth2 client
// @Description Create a new OAuth2 client owned by the caller, the secret is only returned once
// @Tags admin
// @Accept json
// @Produce json
// @Param client body createClientRequest true "Client details"
// @Success 201 {object} map[string]interface{} "Client created with client_id and client_secret"
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/admin/clients [post]
func (cc *ClientController) CreateClient(c *gin.Context) {
	var req createClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logBindError(c, err)
		c.JSON(http.StatusBadRequest, models.NewErrorResponse(models.MsgInvalidRequestBody))
		return
	}

	secret := uuid.New().String()
	hashedSecret, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		log.WithError(err).Error("Failed to hash client secret")
		c.JSON(http.StatusInternalServerError, models.NewErrorResponse("secret_generation_failed"))
		return
	}

	client := &models.OAuthClient{
		ID:         uuid.New().String(),
		Secret:     string(hashedSecret),
		Name:       req.Name,
		Domain:     req.Domain,
		Scopes:     req.Scopes,
		GrantTypes: "client_credentials",
		UserID:     c.GetUint(middleware.ContextUserID),
	}

	if err := cc.clientService.CreateClient(client); err != nil {
		log.WithError(err).Error("Failed to create client")
		c.JSON(http.StatusInternalServerError, models.NewErrorResponse("client_creation_failed"))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"client_id":     client.ID,
		"client_secret": secret,
		"name":          client.Name,
		"scopes":        client.Scopes,
		"grant_types":   client.GrantTypes,
	})
}

// ListClients godoc
// @Summary List OAuth2 clients
// @Description Get all OAuth2 clients owned by the authenticated user
// @Tags admin
// @Produce json
// @Success 200 {array} models.OAuthClient
// @Failure 500 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/admin/clients [get]
func (cc *ClientController) ListClients(c *gin.Context) {
	clients, err := cc.clientService.GetClientsByUserID(c.GetUint(middleware.ContextUserID))
	if err != nil {
		log.WithError(err).Error("Failed to list clients")
		c.JSON(http.StatusInternalServerError, models.NewErrorResponse("failed_to_retrieve_clients"))
		return
	}

	c.JSON(http.StatusOK, clients)
}

// DeleteClient godoc
// @Summary Delete OAuth2 client
// @Description Delete an OAuth2 client owned by the authenticated user
// @Tags admin
// @Param id path string true "Client ID"
// @Success 204 "Client deleted successfully"
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/admin/clients/{id} [delete]
func (cc *ClientController) DeleteClient(c *gin.Context) {
	err := cc.clientService.DeleteClient(c.Param("id"), c.GetUint(middleware.ContextUserID))
	if errors.Is(err, services.ErrClientNotFound) {
		c.JSON(http.StatusNotFound, models.NewErrorResponse(services.ErrClientNotFound.Error()))
		return
	}
	if err != nil {
		log.WithError(err).Error("Failed to delete client")
		c.JSON(http.StatusInternalServerError, models.NewErrorResponse("client_deletion_failed"))
		return
	}

	c.Status(http.StatusNoContent)
}
