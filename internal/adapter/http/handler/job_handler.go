package handler

import (
	"context"

	"ride-escrow-network/internal/adapter/http/dto"
	"ride-escrow-network/internal/core/domain"
	"ride-escrow-network/internal/core/ports"
	"ride-escrow-network/pkg/response"

	"github.com/gin-gonic/gin"
)

// JobHandler handles the ride-job lifecycle endpoints.
type JobHandler struct {
	svc ports.JobService
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(svc ports.JobService) *JobHandler {
	return &JobHandler{svc: svc}
}

// RequestJob handles POST /api/v1/jobs.
func (h *JobHandler) RequestJob(c *gin.Context) {
	signer, ok := signerOf(c)
	if !ok {
		return
	}
	var req dto.RequestJobRequest
	if !bindJSON(c, &req) {
		return
	}

	job, err := h.svc.RequestJob(c.Request.Context(), ports.RequestJobRequest{
		Signer:             signer,
		Country:            req.Country,
		CustomerInfraCount: req.CustomerInfraCount,
		DriverInfraCount:   req.DriverInfraCount,
		DriverUUID:         req.DriverUUID,
		JobCount:           req.JobCount,
		TotalFeeCent:       req.TotalFeeCent,
		EncryptedPayload:   req.EncryptedPayload,
		EncryptedKey:       req.EncryptedKey,
		Reference:          req.Reference,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, job)
}

// GetJob handles GET /api/v1/jobs/:code/:infra/:job.
func (h *JobHandler) GetJob(c *gin.Context) {
	ref, ok := jobRefParam(c)
	if !ok {
		return
	}
	job, err := h.svc.GetJob(c.Request.Context(), ref)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, job)
}

// AcceptJob handles POST .../accept.
func (h *JobHandler) AcceptJob(c *gin.Context) {
	signer, ok := signerOf(c)
	if !ok {
		return
	}
	ref, ok := jobRefParam(c)
	if !ok {
		return
	}
	var req dto.AcceptJobRequest
	if !bindJSON(c, &req) {
		return
	}

	job, err := h.svc.AcceptJob(c.Request.Context(), ports.AcceptJobRequest{
		Signer:      signer,
		Ref:         ref,
		Destination: req.Destination.Domain(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, job)
}

// MarkArrived handles POST .../arrive.
func (h *JobHandler) MarkArrived(c *gin.Context) { h.action(c, h.svc.MarkArrived) }

// StartRide handles POST .../start.
func (h *JobHandler) StartRide(c *gin.Context) { h.action(c, h.svc.StartRide) }

func (h *JobHandler) action(c *gin.Context, fn func(context.Context, ports.JobActionRequest) (*domain.Job, error)) {
	signer, ok := signerOf(c)
	if !ok {
		return
	}
	ref, ok := jobRefParam(c)
	if !ok {
		return
	}
	job, err := fn(c.Request.Context(), ports.JobActionRequest{Signer: signer, Ref: ref})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, job)
}

// CompleteJob handles POST .../complete.
func (h *JobHandler) CompleteJob(c *gin.Context) {
	signer, ok := signerOf(c)
	if !ok {
		return
	}
	ref, ok := jobRefParam(c)
	if !ok {
		return
	}
	settlement, err := h.svc.CompleteJob(c.Request.Context(), ports.JobActionRequest{Signer: signer, Ref: ref})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, settlement)
}

// CancelJob handles POST .../cancel.
func (h *JobHandler) CancelJob(c *gin.Context) {
	signer, ok := signerOf(c)
	if !ok {
		return
	}
	ref, ok := jobRefParam(c)
	if !ok {
		return
	}
	var req dto.CancelJobRequest
	if !bindJSON(c, &req) {
		return
	}

	settlement, err := h.svc.CancelJob(c.Request.Context(), ports.CancelJobRequest{
		Signer: signer,
		Ref:    ref,
		By:     domain.Party(req.By),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, settlement)
}

// RaiseDispute handles POST .../dispute.
func (h *JobHandler) RaiseDispute(c *gin.Context) {
	signer, ok := signerOf(c)
	if !ok {
		return
	}
	ref, ok := jobRefParam(c)
	if !ok {
		return
	}
	var req dto.DisputeRequest
	if !bindJSON(c, &req) {
		return
	}

	job, err := h.svc.RaiseDispute(c.Request.Context(), ports.DisputeRequest{
		Signer: signer,
		Ref:    ref,
		By:     domain.Party(req.By),
		Reason: req.Reason,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, job)
}

// ResolveDispute handles POST .../resolve.
func (h *JobHandler) ResolveDispute(c *gin.Context) {
	signer, ok := signerOf(c)
	if !ok {
		return
	}
	ref, ok := jobRefParam(c)
	if !ok {
		return
	}
	if err := h.svc.ResolveDispute(c.Request.Context(), ports.JobActionRequest{Signer: signer, Ref: ref}); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"resolved": true})
}
