package secp256k1

// ErrorKind identifies a kind of error. It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrInvalidScalar is returned when a secret key or signature component
	// is zero or not less than the group order.
	ErrInvalidScalar = ErrorKind("ErrInvalidScalar")

	// ErrInvalidSecretKey is returned when an operation is attempted with a
	// secret key that does not satisfy its range invariant.
	ErrInvalidSecretKey = ErrorKind("ErrInvalidSecretKey")

	// ErrInvalidPublicKey is returned when a public key fails on-curve
	// validation or is otherwise unusable for the requested operation.
	ErrInvalidPublicKey = ErrorKind("ErrInvalidPublicKey")

	// ErrInvalidLength is returned when a serialized key, point, or
	// signature does not have one of the accepted byte lengths.
	ErrInvalidLength = ErrorKind("ErrInvalidLength")

	// ErrInvalidPrefix is returned when a serialized point of a recognized
	// length carries an unexpected leading tag byte.
	ErrInvalidPrefix = ErrorKind("ErrInvalidPrefix")

	// ErrPointNotOnCurve is returned when a deserialized point does not
	// satisfy the curve equation.
	ErrPointNotOnCurve = ErrorKind("ErrPointNotOnCurve")

	// ErrInvalidRecoveryBit is returned when a serialized signature carries
	// a recovery indicator other than 0 or 1.
	ErrInvalidRecoveryBit = ErrorKind("ErrInvalidRecoveryBit")

	// ErrMalleableSignature is returned when a signature with a high-S
	// component is presented to verification. Such signatures are never
	// accepted, even if otherwise mathematically valid.
	ErrMalleableSignature = ErrorKind("ErrMalleableSignature")

	// ErrZeroSigner is returned when verification is attempted against the
	// all-zero account identifier.
	ErrZeroSigner = ErrorKind("ErrZeroSigner")

	// ErrArithmeticDomain is returned when a modular arithmetic helper is
	// called with an input outside its domain, such as inverting zero.
	ErrArithmeticDomain = ErrorKind("ErrArithmeticDomain")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to secp256k1 key, point, or signature
// handling. It has full support for errors.Is and errors.As, so the caller
// can ascertain the specific reason for the error by checking the underlying
// error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
