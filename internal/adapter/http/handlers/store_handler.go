package handlers

import (
	"errors"
	"log"
	"net/http"

	"storeledger/internal/adapter/http/dto/request"
	"storeledger/internal/adapter/http/dto/response"
	"storeledger/internal/usecase"
	"storeledger/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidStorePayload = pkg.NewDomainErrorSimple("INVALID_STORE_INPUT", "Invalid store payload", http.StatusBadRequest)

// StoreHandler handles HTTP requests for merchant stores.

type StoreHandler struct {
	usecase usecase.IStoreUseCase
}

func NewStoreHandler(uc usecase.IStoreUseCase) *StoreHandler {
	return &StoreHandler{usecase: uc}
}

// CreateStore creates a store with zero balances.
//
// @Summary  Create store
// @Tags     stores
// @Accept   json
// @Produce  json
// @Param    payload body request.StoreCreateRequest true "store"
// @Success  201 {object} response.CreatedResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /stores [post]
func (h *StoreHandler) CreateStore(c *gin.Context) {
	var payload request.StoreCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStorePayload.HTTPStatus, errInvalidStorePayload.ToHTTPError())
		return
	}

	store, err := h.usecase.Create(c.Request.Context(), payload.Name, payload.FeeRate)
	if err != nil {
		log.Printf("[store][handler] create failed name=%q err=%v", payload.Name, err)
		appErr := mapStoreError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.CreatedResponse{ID: store.ID})
}

// ListStores returns every store.
//
// @Summary  List stores
// @Tags     stores
// @Produce  json
// @Success  200 {array} response.StoreResponse
// @Router   /stores [get]
func (h *StoreHandler) ListStores(c *gin.Context) {
	stores, err := h.usecase.List(c.Request.Context())
	if err != nil {
		log.Printf("[store][handler] list failed err=%v", err)
		appErr := mapStoreError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromStores(stores))
}

// GetStore returns a store by id.
//
// @Summary  Get store
// @Tags     stores
// @Produce  json
// @Param    store_id path string true "store id"
// @Success  200 {object} response.StoreResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /stores/{store_id} [get]
func (h *StoreHandler) GetStore(c *gin.Context) {
	storeID := c.Param("store_id")

	store, err := h.usecase.GetByID(c.Request.Context(), storeID)
	if err != nil {
		log.Printf("[store][handler] get failed store_id=%s err=%v", storeID, err)
		appErr := mapStoreError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromStore(store))
}

func mapStoreError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidStoreID), errors.Is(err, usecase.ErrInvalidStoreName), errors.Is(err, usecase.ErrInvalidStoreFeeRate):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrStoreNotFound):
		return pkg.NewDomainErrorSimple("STORE_NOT_FOUND", "Store not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
