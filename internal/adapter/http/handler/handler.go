package handler

import (
	"errors"
	"net/http"
	"strconv"

	"ride-escrow-network/internal/adapter/http/dto"
	"ride-escrow-network/internal/adapter/http/middleware"
	"ride-escrow-network/internal/core/domain"
	"ride-escrow-network/internal/core/ports"
	"ride-escrow-network/pkg/apperror"
	"ride-escrow-network/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// signerOf returns the authenticated signer or writes SEC_001.
func signerOf(c *gin.Context) (domain.Pubkey, bool) {
	signer, ok := middleware.Signer(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidSigner())
		return "", false
	}
	return signer, true
}

// bindJSON decodes and validates the body into req, then sanitizes it.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			response.Error(c, apperror.ErrPayloadTooLarge(maxErr.Limit))
			return false
		}
		response.Error(c, apperror.Validation(err.Error()))
		return false
	}
	dto.SanitizeStruct(req)
	return true
}

func uintParam(c *gin.Context, name string) (uint64, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		response.Error(c, apperror.Validation(name+" must be a non-negative integer"))
		return 0, false
	}
	return v, true
}

func countryParam(c *gin.Context) (string, bool) {
	code := c.Param("code")
	if err := domain.ValidateCountryCode(code); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return "", false
	}
	return code, true
}

// infraRefParam reads /countries/:code/infras/:side/:count.
func infraRefParam(c *gin.Context) (ports.InfraRef, bool) {
	code, ok := countryParam(c)
	if !ok {
		return ports.InfraRef{}, false
	}
	side, err := domain.ParseInfraSide(c.Param("side"))
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return ports.InfraRef{}, false
	}
	count, ok := uintParam(c, "count")
	if !ok {
		return ports.InfraRef{}, false
	}
	return ports.InfraRef{Side: side, Country: code, Count: count}, true
}

// jobRefParam reads /jobs/:code/:infra/:job.
func jobRefParam(c *gin.Context) (ports.JobRef, bool) {
	code, ok := countryParam(c)
	if !ok {
		return ports.JobRef{}, false
	}
	infra, ok := uintParam(c, "infra")
	if !ok {
		return ports.JobRef{}, false
	}
	job, ok := uintParam(c, "job")
	if !ok {
		return ports.JobRef{}, false
	}
	return ports.JobRef{Country: code, DriverInfraCount: infra, JobCount: job}, true
}

func addressParam(c *gin.Context) (domain.Address, bool) {
	raw := c.Param("address")
	if _, err := uuid.Parse(raw); err != nil {
		response.Error(c, apperror.Validation("account address must be a uuid"))
		return "", false
	}
	return domain.Address(raw), true
}
