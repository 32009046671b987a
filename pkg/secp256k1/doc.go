// Package secp256k1 implements elliptic curve cryptography over the
// secp256k1 curve (https://www.secg.org/sec2-v2.pdf): affine and Jacobian
// point arithmetic, secret/public key management, ECDSA signing and
// verification with mandatory low-S canonicalization, and the binary
// serialization formats for keys, points, and signatures.
//
// # Quick Start
//
//	import "github.com/curvekit/secp256k1/pkg/secp256k1"
//
//	// Generate a key pair
//	sk, err := secp256k1.NewSecretKey()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	pub, _ := sk.PubKey()
//
//	// Sign and verify a message
//	sig, err := secp256k1.Sign(sk, []byte("hello"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ok, err := secp256k1.Verify(pub, []byte("hello"), sig)
//
// # Malleability
//
// Every signature produced by Sign carries an S component that is at most
// half the group order. Verify rejects the mathematically equivalent high-S
// twin with ErrMalleableSignature before performing any curve work, so
// callers never need to normalize signatures themselves. The transform that
// deliberately produces the high-S twin lives in the sigtest sub package and
// is never reachable from production signing or verification paths.
//
// # Determinism
//
// Signing nonces are derived deterministically per RFC 6979, so signing the
// same message with the same key always yields the same signature, and
// Sign(k, m) is observably identical to SignDigest(k, HashMessage(m)).
package secp256k1
