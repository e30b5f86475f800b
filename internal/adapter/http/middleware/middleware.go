package middleware

import (
	"bytes"
	"encoding/hex"
	"errors"
	"io"
	"math"
	"net/http"
	"strconv"
	"time"

	"ride-escrow-network/internal/core/domain"
	"ride-escrow-network/internal/core/ports"
	"ride-escrow-network/pkg/apperror"
	"ride-escrow-network/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// Header names for signed requests
	HeaderSigner    = "X-Signer"
	HeaderSignature = "X-Signature"
	HeaderTimestamp = "X-Timestamp"
	HeaderNonce     = "X-Nonce"
	HeaderRequestID = "X-Request-ID"

	// Context keys
	CtxSigner    = "signer"
	CtxRequestID = response.RequestIDKey
)

// AuthOptions bounds replay of signed requests.
type AuthOptions struct {
	TimestampDrift time.Duration
	NonceTTL       time.Duration
	Now            func() time.Time // defaults to time.Now
}

// SignatureAuth verifies Ed25519-signed requests and stores the signer in
// the context. Pipeline: parse signer -> check timestamp -> check nonce ->
// verify signature.
func SignatureAuth(sigSvc ports.SignatureService, nonceStore ports.NonceStore, opts AuthOptions, log zerolog.Logger) gin.HandlerFunc {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return func(c *gin.Context) {
		signerHex := c.GetHeader(HeaderSigner)
		signatureHex := c.GetHeader(HeaderSignature)
		timestampStr := c.GetHeader(HeaderTimestamp)
		nonce := c.GetHeader(HeaderNonce)

		if signerHex == "" || signatureHex == "" || timestampStr == "" || nonce == "" {
			abort(c, apperror.ErrInvalidSigner())
			return
		}
		signer, err := domain.ParsePubkey(signerHex)
		if err != nil {
			abort(c, apperror.ErrInvalidSigner())
			return
		}
		signature, err := hex.DecodeString(signatureHex)
		if err != nil {
			abort(c, apperror.ErrInvalidSignature())
			return
		}

		// Step 1: Timestamp check
		timestamp, err := strconv.ParseInt(timestampStr, 10, 64)
		if err != nil {
			abort(c, apperror.ErrTimestampExpired())
			return
		}
		if math.Abs(float64(now().Unix()-timestamp)) > opts.TimestampDrift.Seconds() {
			abort(c, apperror.ErrTimestampExpired())
			return
		}

		// Step 2: Nonce check
		isNew, err := nonceStore.CheckAndSet(c.Request.Context(), string(signer), nonce, opts.NonceTTL)
		if err != nil {
			log.Warn().Err(err).Msg("nonce store error, allowing request")
		} else if !isNew {
			abort(c, apperror.ErrNonceUsed())
			return
		}

		// Step 3: Signature verification
		var body []byte
		if c.Request.Body != nil {
			body, err = io.ReadAll(c.Request.Body)
			if err != nil {
				abort(c, bodyError(err))
				return
			}
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		canonical := sigSvc.BuildCanonicalString(c.Request.Method, c.Request.URL.Path, timestamp, nonce, body)
		if !sigSvc.Verify(signer, []byte(canonical), signature) {
			abort(c, apperror.ErrInvalidSignature())
			return
		}

		c.Set(CtxSigner, signer)
		c.Next()
	}
}

// Signer returns the authenticated signer of the request.
func Signer(c *gin.Context) (domain.Pubkey, bool) {
	v, ok := c.Get(CtxSigner)
	if !ok {
		return "", false
	}
	signer, ok := v.(domain.Pubkey)
	return signer, ok
}

func bodyError(err error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return apperror.ErrPayloadTooLarge(maxErr.Limit)
	}
	return apperror.Validation("cannot read request body")
}

func abort(c *gin.Context, err error) {
	response.Error(c, err)
	c.Abort()
}

// RequestID tags every request with an id, reusing a caller-supplied one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}
		c.Set(CtxRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// RequestLogger creates a middleware that logs every HTTP request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest {
			event = log.Warn()
		}

		if signer, ok := Signer(c); ok {
			event = event.Str("signer", string(signer))
		}
		if cause := c.Errors.Last(); cause != nil {
			event = event.AnErr("cause", cause.Err)
		}
		event.
			Str("request_id", c.GetString(CtxRequestID)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Msg("http request")
	}
}

// HTTPRecorder receives one observation per served request.
type HTTPRecorder interface {
	RecordHTTPRequest(method, route, status string, start time.Time)
}

// Metrics records request counts and latency by route template.
func Metrics(rec HTTPRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		rec.RecordHTTPRequest(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), start)
	}
}

// Recovery creates a panic recovery middleware.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("path", c.Request.URL.Path).Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error_code": apperror.CodeInternal,
					"message":    "Internal server error",
				})
			}
		}()
		c.Next()
	}
}
