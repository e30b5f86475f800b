package domain

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/google/uuid"
)

// Kind names a record type. It is the first seed of every address.
type Kind string

const (
	KindGlobal        Kind = "global"
	KindCountry       Kind = "country"
	KindDriverInfra   Kind = "driver_infra"
	KindCustomerInfra Kind = "customer_infra"
	KindCompanyInfo   Kind = "company_info"
	KindDriver        Kind = "driver"
	KindJob           Kind = "job"
	KindService       Kind = "service"
	KindPassengerType Kind = "passenger_type"
	KindVehicle       Kind = "vehicle"
	KindIdempotency   Kind = "idempotency"
	KindWallet        Kind = "wallet"
	KindEscrow        Kind = "escrow"
	KindTreasury      Kind = "treasury"
)

// Address identifies a record or token account. It is a pure function of a
// kind and its seeds.
type Address string

func (a Address) String() string { return string(a) }

// addressNamespace domain-separates our name-based UUIDs from any others.
var addressNamespace = uuid.MustParse("0b6f4f3c-8d2e-5a51-9c1e-7f2d9a4e6b30")

// Seed is one component of an address derivation.
type Seed []byte

func StringSeed(s string) Seed { return Seed(s) }

// CountSeed encodes a counter as 8 little-endian bytes.
func CountSeed(n uint64) Seed {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, n)
	return b
}

func AddressSeed(a Address) Seed { return Seed(a) }

// Derive computes the address for kind and seeds. Every part is length
// prefixed, so ("ab","c") and ("a","bc") never share an address.
func Derive(kind Kind, seeds ...Seed) Address {
	buf := make([]byte, 0, 64)
	buf = appendPart(buf, []byte(kind))
	for _, s := range seeds {
		buf = appendPart(buf, s)
	}
	return Address(uuid.NewSHA1(addressNamespace, buf).String())
}

func appendPart(buf, part []byte) []byte {
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(part)))
	return append(buf, part...)
}

func GlobalAddress() Address {
	return Derive(KindGlobal)
}

func CountryAddress(code string) Address {
	return Derive(KindCountry, StringSeed(code))
}

func InfraAddress(side InfraSide, code string, count uint64) Address {
	return Derive(side.Kind(), StringSeed(code), CountSeed(count))
}

func CompanyInfoAddress(infra Address, version uint64) Address {
	return Derive(KindCompanyInfo, AddressSeed(infra), CountSeed(version))
}

func DriverAddress(driverUUID string) Address {
	return Derive(KindDriver, StringSeed(driverUUID))
}

func JobAddress(driverInfra Address, jobCount uint64) Address {
	return Derive(KindJob, AddressSeed(driverInfra), CountSeed(jobCount))
}

func CatalogAddress(kind CatalogKind, id uint64) Address {
	return Derive(kind.RecordKind(), CountSeed(id))
}

func IdempotencyAddress(signer Pubkey, reference string) Address {
	return Derive(KindIdempotency, StringSeed(string(signer)), StringSeed(reference))
}

// WalletAddress is the token account owned directly by a principal.
func WalletAddress(p Pubkey) Address {
	return Derive(KindWallet, StringSeed(string(p)))
}

// EscrowAddress is the token account holding value locked against owner.
func EscrowAddress(owner Address) Address {
	return Derive(KindEscrow, AddressSeed(owner))
}

// TreasuryAddress is the fee account of the platform ("global") or of a country.
func TreasuryAddress(scope string) Address {
	return Derive(KindTreasury, StringSeed(scope))
}

// PlatformTreasury is the global fee account.
func PlatformTreasury() Address {
	return TreasuryAddress("global")
}

// Pubkey is a principal identity: the hex encoding of an Ed25519 public key.
type Pubkey string

const pubkeySize = 32

var ErrInvalidPubkey = errors.New("public key must be 64 hex characters")

// ParsePubkey normalizes and validates a hex public key.
func ParsePubkey(s string) (Pubkey, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	b, err := hex.DecodeString(s)
	if err != nil || len(b) != pubkeySize {
		return "", ErrInvalidPubkey
	}
	return Pubkey(s), nil
}

// Bytes returns the raw key. It returns nil for a malformed key.
func (p Pubkey) Bytes() []byte {
	b, err := hex.DecodeString(string(p))
	if err != nil || len(b) != pubkeySize {
		return nil
	}
	return b
}
