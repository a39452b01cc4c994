package booking

import (
	"path"
	"strings"

	"github.com/google/uuid"
)

type KeyPrefix string

const (
	DocumentPrefix KeyPrefix = "documents"
	PhotoPrefix    KeyPrefix = "luggage"
)

const (
	defaultDocumentExt = "bin"
	defaultPhotoExt    = "jpg"

	bookingCodePrefix = "BK"
	bookingCodeLength = 10
)

// ParseAddonTokens splits a comma separated list, trimming each token and dropping blanks.
func ParseAddonTokens(raw string) []string {
	parts := strings.Split(raw, ",")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// NewBookingCode derives "BK" plus ten upper-case hex digits from a random UUID.
func NewBookingCode(id uuid.UUID) string {
	hex := strings.ReplaceAll(id.String(), "-", "")
	return bookingCodePrefix + strings.ToUpper(hex[:bookingCodeLength])
}

// CalculateAmount is unit price times booked hours; a nil unit price means no add-on resolved.
func CalculateAmount(unitPrice *Money, d Duration) Money {
	if unitPrice == nil {
		return ZeroMoney()
	}
	return unitPrice.Mul(d.Hours())
}

// StorageKey builds {prefix}/{customerID}/{token}.{ext}, keeping the original extension.
func StorageKey(prefix KeyPrefix, customerID, token uuid.UUID, filename string) string {
	return string(prefix) + "/" + customerID.String() + "/" + token.String() + "." + extension(prefix, filename)
}

func extension(prefix KeyPrefix, filename string) string {
	ext := strings.TrimPrefix(path.Ext(filename), ".")
	if ext == "" || !isAlnum(ext) {
		if prefix == DocumentPrefix {
			return defaultDocumentExt
		}
		return defaultPhotoExt
	}
	return ext
}

func isAlnum(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}
