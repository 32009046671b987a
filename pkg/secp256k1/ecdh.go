package secp256k1

// SharedSecret derives a Diffie-Hellman shared secret from a local secret
// key and a remote public key: the 32-byte big-endian x coordinate of
// d·Q (RFC 5903 returns only x). Both sides of an exchange compute the same
// point since a·(b·G) = b·(a·G).
//
// It is recommended to hash the result before using it as a symmetric key.
func SharedSecret(sk *SecretKey, remote *PublicKey) ([]byte, error) {
	if !sk.valid() {
		return nil, makeError(ErrInvalidSecretKey,
			"secret key does not satisfy its range invariant")
	}
	if !remote.IsValid() || remote.IsIdentity() {
		return nil, makeError(ErrInvalidPublicKey,
			"key agreement requires an on-curve, non-identity remote key")
	}

	// d < N and Q has order N, so d·Q cannot be the identity.
	shared := ScalarMult(remote.p, sk.d)
	x, _ := shared.Coords()

	buf := make([]byte, 32)
	x.FillBytes(buf)
	return buf, nil
}
