package handler

import (
	"ride-escrow-network/internal/adapter/http/dto"
	"ride-escrow-network/internal/core/domain"
	"ride-escrow-network/internal/core/ports"
	"ride-escrow-network/pkg/response"

	"github.com/gin-gonic/gin"
)

// ConfigHandler handles global and country configuration endpoints.
type ConfigHandler struct {
	svc ports.ConfigService
}

// NewConfigHandler creates a new ConfigHandler.
func NewConfigHandler(svc ports.ConfigService) *ConfigHandler {
	return &ConfigHandler{svc: svc}
}

// InitOrUpdateGlobal handles POST /api/v1/global.
func (h *ConfigHandler) InitOrUpdateGlobal(c *gin.Context) {
	signer, ok := signerOf(c)
	if !ok {
		return
	}
	var req dto.GlobalRequest
	if !bindJSON(c, &req) {
		return
	}

	g, err := h.svc.InitOrUpdateGlobal(c.Request.Context(), ports.GlobalRequest{
		Signer:                signer,
		PlatformFeeBasisPoint: req.PlatformFeeBasisPoint,
		NewEntryFeeCent:       req.NewEntryFeeCent,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, g)
}

// ChangeGlobalAuthority handles POST /api/v1/global/authority.
func (h *ConfigHandler) ChangeGlobalAuthority(c *gin.Context) {
	signer, ok := signerOf(c)
	if !ok {
		return
	}
	var req dto.AuthorityRequest
	if !bindJSON(c, &req) {
		return
	}

	g, err := h.svc.ChangeGlobalAuthority(c.Request.Context(), ports.AuthorityTransferRequest{
		Signer:       signer,
		NewAuthority: mustPubkey(req.NewAuthority),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, g)
}

// GetGlobal handles GET /api/v1/global.
func (h *ConfigHandler) GetGlobal(c *gin.Context) {
	g, err := h.svc.GetGlobal(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, g)
}

// InitOrUpdateCountry handles PUT /api/v1/countries/:code.
func (h *ConfigHandler) InitOrUpdateCountry(c *gin.Context) {
	signer, ok := signerOf(c)
	if !ok {
		return
	}
	code, ok := countryParam(c)
	if !ok {
		return
	}
	var req dto.CountryRequest
	if !bindJSON(c, &req) {
		return
	}

	country, err := h.svc.InitOrUpdateCountry(c.Request.Context(), ports.CountryRequest{
		Signer: signer,
		Code:   code,
		Params: req.Patch(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, country)
}

// UpdateCountryAuthority handles POST /api/v1/countries/:code/authority.
func (h *ConfigHandler) UpdateCountryAuthority(c *gin.Context) {
	signer, ok := signerOf(c)
	if !ok {
		return
	}
	code, ok := countryParam(c)
	if !ok {
		return
	}
	var req dto.AuthorityRequest
	if !bindJSON(c, &req) {
		return
	}

	country, err := h.svc.UpdateCountryAuthority(c.Request.Context(), code, ports.AuthorityTransferRequest{
		Signer:       signer,
		NewAuthority: mustPubkey(req.NewAuthority),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, country)
}

// GetCountry handles GET /api/v1/countries/:code.
func (h *ConfigHandler) GetCountry(c *gin.Context) {
	code, ok := countryParam(c)
	if !ok {
		return
	}
	country, err := h.svc.GetCountry(c.Request.Context(), code)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, country)
}

// mustPubkey normalizes a key the binding layer already validated.
func mustPubkey(s string) domain.Pubkey {
	p, _ := domain.ParsePubkey(s)
	return p
}
