package domain

// Record is a typed value stored under a deterministic address. Writes are
// full replacements checked against the version that was read.
type Record interface {
	Kind() Kind
	Address() Address
	Version() int64
	SetVersion(v int64)
}

// Versioned carries the store version of a record. Zero means never stored.
type Versioned struct {
	Rev int64 `json:"version"`
}

func (v *Versioned) Version() int64 { return v.Rev }

func (v *Versioned) SetVersion(rev int64) { v.Rev = rev }
