package service

import (
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"ride-escrow-network/internal/core/domain"
)

// Ed25519SignatureService implements ports.SignatureService.
type Ed25519SignatureService struct{}

// NewEd25519SignatureService creates a new Ed25519 signature service.
func NewEd25519SignatureService() *Ed25519SignatureService {
	return &Ed25519SignatureService{}
}

// Verify checks signature over message against the signer's public key.
func (s *Ed25519SignatureService) Verify(signer domain.Pubkey, message []byte, signature []byte) bool {
	key := signer.Bytes()
	if key == nil || len(signature) != ed25519.SignatureSize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(key), message, signature)
}

// BuildCanonicalString constructs the canonical payload for signing.
// Format: METHOD\nPATH\nTIMESTAMP\nNONCE\nhex(SHA256(BODY))
func (s *Ed25519SignatureService) BuildCanonicalString(method, path string, timestamp int64, nonce string, body []byte) string {
	sum := sha256.Sum256(body)
	return fmt.Sprintf("%s\n%s\n%d\n%s\n%s", method, path, timestamp, nonce, hex.EncodeToString(sum[:]))
}
