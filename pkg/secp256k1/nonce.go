package secp256k1

import (
	"crypto/hmac"
	"crypto/sha256"
	"math/big"
)

// nonceRFC6979 deterministically derives a signing nonce in [1, N-1] from
// the 32-byte secret key serialization and the 32-byte message digest per
// RFC 6979 with HMAC-SHA256. The iteration parameter extends the stream for
// the astronomically rare case where the first nonce yields an invalid
// signature; signing starts at 0 and increments.
//
// Nonce reuse across two different messages under the same key leaks the
// key, which is exactly what the deterministic derivation rules out.
func nonceRFC6979(secretKey, digest []byte, iteration uint32) *big.Int {
	// Section 3.2b-g: initialize K and V from the key material
	// int2octets(x) || bits2octets(h1).
	seed := make([]byte, 0, len(secretKey)+len(digest))
	seed = append(seed, secretKey...)
	seed = append(seed, digest...)

	v := make([]byte, sha256.Size)
	for i := range v {
		v[i] = 0x01
	}
	k := make([]byte, sha256.Size)

	mac := hmac.New(sha256.New, k)
	mac.Write(v)
	mac.Write([]byte{0x00})
	mac.Write(seed)
	k = mac.Sum(nil)

	mac = hmac.New(sha256.New, k)
	mac.Write(v)
	v = mac.Sum(nil)

	mac.Reset()
	mac.Write(v)
	mac.Write([]byte{0x01})
	mac.Write(seed)
	k = mac.Sum(nil)

	mac = hmac.New(sha256.New, k)
	mac.Write(v)
	v = mac.Sum(nil)

	// Section 3.2h: draw candidates until one is in [1, N-1], then keep
	// drawing past it for the requested iteration count.
	var generated uint32
	for {
		mac.Reset()
		mac.Write(v)
		v = mac.Sum(nil)

		candidate := new(big.Int).SetBytes(v)
		if candidate.Sign() > 0 && candidate.Cmp(N) < 0 {
			generated++
			if generated > iteration {
				return candidate
			}
		}

		mac.Reset()
		mac.Write(v)
		mac.Write([]byte{0x00})
		k = mac.Sum(nil)

		mac = hmac.New(sha256.New, k)
		mac.Write(v)
		v = mac.Sum(nil)
	}
}
