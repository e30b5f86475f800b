package domain

import "time"

// IdempotencyRecord remembers which job a signer's request reference created.
type IdempotencyRecord struct {
	Versioned
	Signer    Pubkey    `json:"signer"`
	Reference string    `json:"reference"`
	Job       Address   `json:"job"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *IdempotencyRecord) Kind() Kind { return KindIdempotency }
func (r *IdempotencyRecord) Address() Address { return IdempotencyAddress(r.Signer, r.Reference) }

// BuildIdempotencyKey constructs the cache key for a signer's reference.
func BuildIdempotencyKey(signer Pubkey, reference string) string {
	return string(signer) + ":" + reference
}
