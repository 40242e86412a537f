package handlers

import (
	"net/http"

	"storeledger/internal/adapter/http/dto/request"
	"storeledger/internal/adapter/http/dto/response"
	"storeledger/internal/usecase"
	"storeledger/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidConfigPayload = pkg.NewDomainErrorSimple("INVALID_CONFIG_INPUT", "Invalid config payload", http.StatusBadRequest)

// FeeConfigHandler handles HTTP requests for the fee configuration.

type FeeConfigHandler struct {
	usecase usecase.IConfigUseCase
}

func NewFeeConfigHandler(uc usecase.IConfigUseCase) *FeeConfigHandler {
	return &FeeConfigHandler{usecase: uc}
}

// GetConfig returns the current fee configuration.
//
// @Summary  Get fee configuration
// @Tags     config
// @Produce  json
// @Success  200 {object} response.FeeConfigResponse
// @Router   /config [get]
func (h *FeeConfigHandler) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromFeeConfig(h.usecase.Get()))
}

// SaveConfig replaces the fee configuration wholesale.
//
// @Summary  Save fee configuration
// @Tags     config
// @Accept   json
// @Produce  json
// @Param    payload body request.FeeConfigRequest true "fee configuration"
// @Success  201 {object} response.FeeConfigResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /config [post]
func (h *FeeConfigHandler) SaveConfig(c *gin.Context) {
	var payload request.FeeConfigRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidConfigPayload.HTTPStatus, errInvalidConfigPayload.ToHTTPError())
		return
	}

	cfg := payload.ToFeeConfig()
	h.usecase.Save(cfg)

	c.JSON(http.StatusCreated, response.FromFeeConfig(cfg))
}
