package handlers

import (
	"errors"
	"net/http"

	request "buffet_festas/internal/adapter/http/dto/request"
	response "buffet_festas/internal/adapter/http/dto/response"
	"buffet_festas/internal/domain/entities"
	"buffet_festas/internal/usecase"
	"buffet_festas/pkg"

	"github.com/gin-gonic/gin"
)

// ClientHandler serves the client and freelancer registries.
type ClientHandler struct {
	clients     usecase.IClientUseCase
	freelancers usecase.IFreelancerUseCase
}

func NewClientHandler(clients usecase.IClientUseCase, freelancers usecase.IFreelancerUseCase) *ClientHandler {
	return &ClientHandler{clients: clients, freelancers: freelancers}
}

// CreateClient godoc
// @Summary      Create client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        payload  body      request.ClientRequest  true  "Client"
// @Success      201      {object}  response.ClientResponse
// @Failure      400      {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /clients [post]
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var payload request.ClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	client, err := h.clients.Create(c.Request.Context(), payload.Name, payload.Phone, payload.Notes)
	if err != nil {
		writeError(c, mapClientError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromClient(client))
}

// ListClients godoc
// @Summary      List clients
// @Tags         clients
// @Produce      json
// @Success      200  {array}  response.ClientResponse
// @Security     Bearer
// @Router       /clients [get]
func (h *ClientHandler) ListClients(c *gin.Context) {
	clients, err := h.clients.List(c.Request.Context())
	if err != nil {
		writeError(c, mapClientError(err))
		return
	}
	out := make([]response.ClientResponse, 0, len(clients))
	for _, cl := range clients {
		out = append(out, response.FromClient(cl))
	}
	c.JSON(http.StatusOK, out)
}

// GetClient godoc
// @Summary      Get client
// @Tags         clients
// @Produce      json
// @Param        id   path      string  true  "Client ID"
// @Success      200  {object}  response.ClientResponse
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /clients/{id} [get]
func (h *ClientHandler) GetClient(c *gin.Context) {
	client, err := h.clients.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapClientError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromClient(client))
}

// CreateFreelancer godoc
// @Summary      Create freelancer
// @Tags         freelancers
// @Accept       json
// @Produce      json
// @Param        payload  body      request.FreelancerRequest  true  "Freelancer"
// @Success      201      {object}  response.FreelancerResponse
// @Failure      400      {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /freelancers [post]
func (h *ClientHandler) CreateFreelancer(c *gin.Context) {
	var payload request.FreelancerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	f, err := h.freelancers.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, mapClientError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromFreelancer(f))
}

// ListFreelancers godoc
// @Summary      List freelancers
// @Tags         freelancers
// @Produce      json
// @Success      200  {array}  response.FreelancerResponse
// @Security     Bearer
// @Router       /freelancers [get]
func (h *ClientHandler) ListFreelancers(c *gin.Context) {
	list, err := h.freelancers.List(c.Request.Context())
	if err != nil {
		writeError(c, mapClientError(err))
		return
	}
	out := make([]response.FreelancerResponse, 0, len(list))
	for _, f := range list {
		out = append(out, response.FromFreelancer(f))
	}
	c.JSON(http.StatusOK, out)
}

// GetFreelancer godoc
// @Summary      Get freelancer
// @Tags         freelancers
// @Produce      json
// @Param        id   path      string  true  "Freelancer ID"
// @Success      200  {object}  response.FreelancerResponse
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /freelancers/{id} [get]
func (h *ClientHandler) GetFreelancer(c *gin.Context) {
	f, err := h.freelancers.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapClientError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromFreelancer(f))
}

func mapClientError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidClientID), errors.Is(err, usecase.ErrInvalidClientInput),
		errors.Is(err, usecase.ErrInvalidFreelancerID), errors.Is(err, usecase.ErrInvalidFreelancerInput),
		errors.Is(err, entities.ErrInvalidArgument):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrFreelancerNotFound):
		return pkg.NewDomainErrorSimple("FREELANCER_NOT_FOUND", "Freelancer not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
