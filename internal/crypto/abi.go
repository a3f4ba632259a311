package crypto

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"strings"
)

// ErrMalformedABI is returned for clear values that are not a whole number
// of 32-byte words.
var ErrMalformedABI = errors.New("malformed abi encoded clear values")

const abiWord = 32

// EncodeClearValues packs values as consecutive 32-byte big-endian words,
// hex encoded with a 0x prefix.
func EncodeClearValues(values []uint64) string {
	buf := make([]byte, abiWord*len(values))
	for i, v := range values {
		binary.BigEndian.PutUint64(buf[(i+1)*abiWord-8:(i+1)*abiWord], v)
	}
	return "0x" + hex.EncodeToString(buf)
}

// DecodeClearValues reverses [EncodeClearValues]. Words that do not fit in
// 64 bits are rejected.
func DecodeClearValues(encoded string) ([]uint64, error) {
	raw, err := hex.DecodeString(strings.TrimPrefix(strings.ToLower(encoded), "0x"))
	if err != nil || len(raw)%abiWord != 0 {
		return nil, ErrMalformedABI
	}

	values := make([]uint64, 0, len(raw)/abiWord)
	for off := 0; off < len(raw); off += abiWord {
		word := raw[off : off+abiWord]
		for _, b := range word[:abiWord-8] {
			if b != 0 {
				return nil, ErrMalformedABI
			}
		}
		values = append(values, binary.BigEndian.Uint64(word[abiWord-8:]))
	}
	return values, nil
}
