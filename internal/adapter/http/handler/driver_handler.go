package handler

import (
	"ride-escrow-network/internal/adapter/http/dto"
	"ride-escrow-network/internal/core/domain"
	"ride-escrow-network/internal/core/ports"
	"ride-escrow-network/pkg/response"

	"github.com/gin-gonic/gin"
)

// DriverHandler handles driver presence endpoints.
type DriverHandler struct {
	svc ports.DriverService
}

// NewDriverHandler creates a new DriverHandler.
func NewDriverHandler(svc ports.DriverService) *DriverHandler {
	return &DriverHandler{svc: svc}
}

// StartWork handles POST /api/v1/drivers.
func (h *DriverHandler) StartWork(c *gin.Context) {
	signer, ok := signerOf(c)
	if !ok {
		return
	}
	var req dto.StartWorkRequest
	if !bindJSON(c, &req) {
		return
	}

	var locAuthority domain.Pubkey
	if req.LocationUpdateAuthority != "" {
		locAuthority = mustPubkey(req.LocationUpdateAuthority)
	}
	driver, err := h.svc.StartWork(c.Request.Context(), ports.StartWorkRequest{
		Signer:                  signer,
		Country:                 req.Country,
		DriverInfraCount:        req.DriverInfraCount,
		UUID:                    req.UUID,
		PublicKeyPEM:            req.PublicKeyPEM,
		LocationUpdateAuthority: locAuthority,
		OfferedServices:         req.OfferedServices,
		PassengerTypes:          req.PassengerTypes,
		VehicleID:               req.VehicleID,
		NumberOfSeats:           req.NumberOfSeats,
		Location:                req.Location.Domain(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, driver)
}

// GetDriver handles GET /api/v1/drivers/:uuid.
func (h *DriverHandler) GetDriver(c *gin.Context) {
	driver, err := h.svc.GetDriver(c.Request.Context(), c.Param("uuid"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, driver)
}

// UpdateLocation handles PUT /api/v1/drivers/:uuid/location.
func (h *DriverHandler) UpdateLocation(c *gin.Context) {
	signer, ok := signerOf(c)
	if !ok {
		return
	}
	var req dto.UpdateLocationRequest
	if !bindJSON(c, &req) {
		return
	}

	update := ports.UpdateLocationRequest{
		Signer:   signer,
		UUID:     c.Param("uuid"),
		Location: req.Location.Domain(),
	}
	if req.NextLocation != nil {
		next := req.NextLocation.Domain()
		update.NextLocation = &next
	}
	driver, err := h.svc.UpdateLocation(c.Request.Context(), update)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, driver)
}

// EndWork handles DELETE /api/v1/drivers/:uuid.
func (h *DriverHandler) EndWork(c *gin.Context) {
	signer, ok := signerOf(c)
	if !ok {
		return
	}
	uuid := c.Param("uuid")
	if err := h.svc.EndWork(c.Request.Context(), ports.EndWorkRequest{Signer: signer, UUID: uuid}); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"uuid": uuid, "ended": true})
}
