// Package entropy mints the one cryptographically strong value this engine
// ever needs at runtime: a 64-bit seed for obf-seedgen. It is not a
// general-purpose random source — no pooling, key rotation, or sharding —
// just a single AES-CTR-DRBG block (NIST SP 800-90A's AES-CTR
// construction), keyed fresh from crypto/rand on every call.
package entropy

import (
	"crypto/aes"
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

// Seed64 returns a cryptographically strong 64-bit seed suitable for
// OBF_SEED. A random key and counter are drawn from crypto/rand, the
// counter is advanced by one block, and the first 8 bytes of the
// resulting AES-CTR keystream block become the seed.
func Seed64() (uint64, error) {
	var key [32]byte
	if _, err := rand.Read(key[:]); err != nil {
		return 0, fmt.Errorf("entropy: reading key material: %w", err)
	}

	var v [16]byte
	if _, err := rand.Read(v[:]); err != nil {
		return 0, fmt.Errorf("entropy: reading counter material: %w", err)
	}

	block, err := aes.NewCipher(key[:])
	if err != nil {
		return 0, fmt.Errorf("entropy: constructing AES cipher: %w", err)
	}

	incV(&v)
	var out [16]byte
	block.Encrypt(out[:], v[:])

	return binary.LittleEndian.Uint64(out[:8]), nil
}

// incV increments the 16-byte CTR-mode counter as a big-endian integer,
// the same block-counter discipline the AES-CTR-DRBG construction uses.
func incV(v *[16]byte) {
	for i := len(v) - 1; i >= 0; i-- {
		v[i]++
		if v[i] != 0 {
			break
		}
	}
}
