package handler

import (
	"context"

	"ride-escrow-network/internal/adapter/http/dto"
	"ride-escrow-network/internal/core/domain"
	"ride-escrow-network/internal/core/ports"
	"ride-escrow-network/pkg/apperror"
	"ride-escrow-network/pkg/response"

	"github.com/gin-gonic/gin"
)

// InfraHandler handles the driver-side and customer-side registries.
type InfraHandler struct {
	svc ports.InfraService
}

// NewInfraHandler creates a new InfraHandler.
func NewInfraHandler(svc ports.InfraService) *InfraHandler {
	return &InfraHandler{svc: svc}
}

func companyDetails(r dto.CompanyRequest) ports.CompanyDetails {
	return ports.CompanyDetails{
		CompanyName:      r.CompanyName,
		EntityRegistryID: r.EntityRegistryID,
		Website:          r.Website,
	}
}

// InitInfra handles POST /api/v1/countries/:code/infras/:side.
func (h *InfraHandler) InitInfra(c *gin.Context) {
	signer, ok := signerOf(c)
	if !ok {
		return
	}
	code, ok := countryParam(c)
	if !ok {
		return
	}
	side, err := domain.ParseInfraSide(c.Param("side"))
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	var req dto.InitInfraRequest
	if !bindJSON(c, &req) {
		return
	}

	infra, err := h.svc.InitInfra(c.Request.Context(), ports.InitInfraRequest{
		Signer:        signer,
		Side:          side,
		Country:       code,
		Count:         req.Count,
		Company:       companyDetails(req.CompanyRequest),
		FeeBasisPoint: req.FeeBasisPoint,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, infra)
}

// GetInfra handles GET /api/v1/countries/:code/infras/:side/:count.
func (h *InfraHandler) GetInfra(c *gin.Context) {
	ref, ok := infraRefParam(c)
	if !ok {
		return
	}
	infra, err := h.svc.GetInfra(c.Request.Context(), ref)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, infra)
}

// UpdateCompany handles PUT .../:count/company. It appends a version.
func (h *InfraHandler) UpdateCompany(c *gin.Context) {
	signer, ok := signerOf(c)
	if !ok {
		return
	}
	ref, ok := infraRefParam(c)
	if !ok {
		return
	}
	var req dto.CompanyRequest
	if !bindJSON(c, &req) {
		return
	}

	info, err := h.svc.UpdateInfraCompany(c.Request.Context(), ports.UpdateCompanyRequest{
		Signer:  signer,
		Ref:     ref,
		Company: companyDetails(req),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, info)
}

// GetCompany handles GET .../:count/company/:version.
func (h *InfraHandler) GetCompany(c *gin.Context) {
	ref, ok := infraRefParam(c)
	if !ok {
		return
	}
	version, ok := uintParam(c, "version")
	if !ok {
		return
	}
	info, err := h.svc.GetCompanyInfo(c.Request.Context(), ref, version)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, info)
}

// UpdateBasisPoint handles PUT .../:count/basis-point.
func (h *InfraHandler) UpdateBasisPoint(c *gin.Context) {
	signer, ok := signerOf(c)
	if !ok {
		return
	}
	ref, ok := infraRefParam(c)
	if !ok {
		return
	}
	var req dto.BasisPointRequest
	if !bindJSON(c, &req) {
		return
	}

	infra, err := h.svc.UpdateInfraBasisPoint(c.Request.Context(), ports.InfraBasisPointRequest{
		Signer:        signer,
		Ref:           ref,
		FeeBasisPoint: req.FeeBasisPoint,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, infra)
}

// UpdateAuthority handles POST .../:count/authority.
func (h *InfraHandler) UpdateAuthority(c *gin.Context) {
	signer, ok := signerOf(c)
	if !ok {
		return
	}
	ref, ok := infraRefParam(c)
	if !ok {
		return
	}
	var req dto.AuthorityRequest
	if !bindJSON(c, &req) {
		return
	}

	infra, err := h.svc.UpdateInfraAuthority(c.Request.Context(), ref, ports.AuthorityTransferRequest{
		Signer:       signer,
		NewAuthority: mustPubkey(req.NewAuthority),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, infra)
}

// Approve handles POST .../:count/approve.
func (h *InfraHandler) Approve(c *gin.Context) { h.gate(c, h.svc.ApproveInfra) }

// Freeze handles POST .../:count/freeze.
func (h *InfraHandler) Freeze(c *gin.Context) { h.gate(c, h.svc.FreezeInfra) }

// Unfreeze handles POST .../:count/unfreeze.
func (h *InfraHandler) Unfreeze(c *gin.Context) { h.gate(c, h.svc.UnfreezeInfra) }

type gateFunc func(ctx context.Context, req ports.InfraGateRequest) (*domain.Infra, error)

func (h *InfraHandler) gate(c *gin.Context, fn gateFunc) {
	signer, ok := signerOf(c)
	if !ok {
		return
	}
	ref, ok := infraRefParam(c)
	if !ok {
		return
	}
	infra, err := fn(c.Request.Context(), ports.InfraGateRequest{Signer: signer, Ref: ref})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, infra)
}
