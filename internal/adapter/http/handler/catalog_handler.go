package handler

import (
	"ride-escrow-network/internal/adapter/http/dto"
	"ride-escrow-network/internal/core/domain"
	"ride-escrow-network/internal/core/ports"
	"ride-escrow-network/pkg/apperror"
	"ride-escrow-network/pkg/response"

	"github.com/gin-gonic/gin"
)

// CatalogHandler handles catalog reference data.
type CatalogHandler struct {
	svc ports.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(svc ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// AddService handles POST /api/v1/catalog/services.
func (h *CatalogHandler) AddService(c *gin.Context) {
	signer, ok := signerOf(c)
	if !ok {
		return
	}
	var req dto.AddServiceRequest
	if !bindJSON(c, &req) {
		return
	}
	h.created(c)(h.svc.AddService(c.Request.Context(), ports.AddServiceRequest{
		Signer:  signer,
		Country: req.Country,
		Name:    req.Name,
	}))
}

// AddPassengerType handles POST /api/v1/catalog/passenger-types.
func (h *CatalogHandler) AddPassengerType(c *gin.Context) {
	signer, ok := signerOf(c)
	if !ok {
		return
	}
	var req dto.AddPassengerTypeRequest
	if !bindJSON(c, &req) {
		return
	}
	h.created(c)(h.svc.AddPassengerType(c.Request.Context(), ports.AddPassengerTypeRequest{
		Signer: signer,
		Name:   req.Name,
	}))
}

// AddVehicle handles POST /api/v1/catalog/vehicles.
func (h *CatalogHandler) AddVehicle(c *gin.Context) {
	signer, ok := signerOf(c)
	if !ok {
		return
	}
	var req dto.AddVehicleRequest
	if !bindJSON(c, &req) {
		return
	}
	h.created(c)(h.svc.AddVehicle(c.Request.Context(), ports.AddVehicleRequest{
		Signer:        signer,
		Brand:         req.Brand,
		Model:         req.Model,
		NumberOfSeats: req.NumberOfSeats,
	}))
}

func (h *CatalogHandler) created(c *gin.Context) func(*domain.CatalogEntry, error) {
	return func(entry *domain.CatalogEntry, err error) {
		if err != nil {
			response.Error(c, err)
			return
		}
		response.Created(c, entry)
	}
}

func entryParams(c *gin.Context) (domain.CatalogKind, uint64, bool) {
	kind, err := domain.ParseCatalogKind(c.Param("kind"))
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return "", 0, false
	}
	id, ok := uintParam(c, "id")
	return kind, id, ok
}

// ApproveEntry handles POST /api/v1/catalog/:kind/:id/approve.
func (h *CatalogHandler) ApproveEntry(c *gin.Context) {
	signer, ok := signerOf(c)
	if !ok {
		return
	}
	kind, id, ok := entryParams(c)
	if !ok {
		return
	}
	entry, err := h.svc.ApproveEntry(c.Request.Context(), ports.ApproveEntryRequest{Signer: signer, Kind: kind, ID: id})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, entry)
}

// GetEntry handles GET /api/v1/catalog/:kind/:id.
func (h *CatalogHandler) GetEntry(c *gin.Context) {
	kind, id, ok := entryParams(c)
	if !ok {
		return
	}
	entry, err := h.svc.GetEntry(c.Request.Context(), kind, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, entry)
}
