package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/curvekit/secp256k1/internal/batch"
	"github.com/curvekit/secp256k1/internal/hexutil"
	"github.com/curvekit/secp256k1/pkg/secp256k1"
)

func main() {
	var (
		generate  = flag.Bool("generate", false, "Generate a new key pair")
		secretHex = flag.String("secret", "", "Secret key in hex format (32 bytes)")
		message   = flag.String("message", "", "Message to sign or verify")
		signMsg   = flag.Bool("sign", false, "Sign the message with the secret key")
		verifyMsg = flag.Bool("verify", false, "Verify a signature against a public key")
		sigHex    = flag.String("signature", "", "Signature in hex format (65 bytes, v||r||s)")
		pubHex    = flag.String("public-key", "", "Public key in hex format (compressed or uncompressed)")
		batchFile = flag.String("verify-batch", "", "Path to a signature records file (JSON or CSV) to verify in bulk")
		format    = flag.String("format", "json", "Batch file format (json or csv)")
	)
	flag.Parse()

	switch {
	case *generate:
		runGenerate()
	case *signMsg:
		runSign(*secretHex, *message)
	case *verifyMsg:
		runVerify(*pubHex, *message, *sigHex)
	case *batchFile != "":
		runVerifyBatch(*batchFile, *format)
	case *secretHex != "":
		runDerive(*secretHex)
	default:
		fmt.Fprintf(os.Stderr, "Error: one of --generate, --sign, --verify, --verify-batch, or --secret is required\n")
		flag.Usage()
		os.Exit(1)
	}
}

func runGenerate() {
	sk, err := secp256k1.NewSecretKey()
	if err != nil {
		fatal(fmt.Errorf("failed to generate key: %w", err))
	}
	printKeyPair(sk)
}

func runDerive(secretHex string) {
	sk := parseSecret(secretHex)
	printKeyPair(sk)
}

func runSign(secretHex, message string) {
	if message == "" {
		fatal(fmt.Errorf("--sign requires --message"))
	}
	sk := parseSecret(secretHex)
	sig, err := secp256k1.Sign(sk, []byte(message))
	if err != nil {
		fatal(fmt.Errorf("failed to sign: %w", err))
	}
	compact, err := sig.SerializeCompact()
	if err != nil {
		fatal(fmt.Errorf("failed to encode signature: %w", err))
	}
	fmt.Printf("Signature (v||r||s): %s\n", hexutil.Encode(sig.Serialize()))
	fmt.Printf("Signature (compact): %s\n", hexutil.Encode(compact))
}

func runVerify(pubHex, message, sigHex string) {
	if pubHex == "" || message == "" || sigHex == "" {
		fatal(fmt.Errorf("--verify requires --public-key, --message, and --signature"))
	}
	pubBytes, err := hexutil.Decode(pubHex)
	if err != nil {
		fatal(fmt.Errorf("failed to parse public key: %w", err))
	}
	var pub *secp256k1.PublicKey
	if len(pubBytes) == secp256k1.PubKeyCompressedLen {
		pub, err = secp256k1.ParseCompressedPublicKey(pubBytes)
	} else {
		pub, err = secp256k1.ParsePublicKey(pubBytes)
	}
	if err != nil {
		fatal(fmt.Errorf("invalid public key: %w", err))
	}

	sigBytes, err := hexutil.Decode(sigHex)
	if err != nil {
		fatal(fmt.Errorf("failed to parse signature: %w", err))
	}
	var sig *secp256k1.Signature
	if len(sigBytes) == secp256k1.CompactSignatureLen {
		sig, err = secp256k1.ParseCompactSignature(sigBytes)
	} else {
		sig, err = secp256k1.ParseSignature(sigBytes)
	}
	if err != nil {
		fatal(fmt.Errorf("invalid signature: %w", err))
	}

	ok, err := secp256k1.Verify(pub, []byte(message), sig)
	if err != nil {
		fatal(fmt.Errorf("verification failed: %w", err))
	}
	if !ok {
		fmt.Println("Signature: INVALID")
		os.Exit(1)
	}
	fmt.Println("Signature: valid")
}

func runVerifyBatch(path, format string) {
	var records []*batch.Record
	var err error
	if format == "csv" {
		records, err = batch.ParseCSV(path)
	} else {
		records, err = batch.ParseJSON(path)
	}
	if err != nil {
		fatal(fmt.Errorf("failed to load records: %w", err))
	}

	fmt.Printf("Verifying %d records from %s...\n", len(records), path)

	failures := 0
	for _, result := range batch.VerifyAll(records) {
		switch {
		case result.Err != nil:
			failures++
			fmt.Printf("  record %d: error: %v\n", result.Index, result.Err)
		case !result.OK:
			failures++
			fmt.Printf("  record %d: INVALID\n", result.Index)
		}
	}

	if failures > 0 {
		fmt.Printf("%d of %d records failed verification\n", failures, len(records))
		os.Exit(1)
	}
	fmt.Printf("All %d records verified\n", len(records))
}

func parseSecret(secretHex string) *secp256k1.SecretKey {
	if secretHex == "" {
		fatal(fmt.Errorf("--secret is required"))
	}
	b, err := hexutil.Decode(secretHex)
	if err != nil {
		fatal(fmt.Errorf("failed to parse secret key: %w", err))
	}
	sk, err := secp256k1.SecretKeyFromBytes(b)
	if err != nil {
		fatal(fmt.Errorf("invalid secret key: %w", err))
	}
	return sk
}

func printKeyPair(sk *secp256k1.SecretKey) {
	pub, err := sk.PubKey()
	if err != nil {
		fatal(fmt.Errorf("failed to derive public key: %w", err))
	}
	id, err := pub.AccountID()
	if err != nil {
		fatal(fmt.Errorf("failed to derive account identifier: %w", err))
	}
	fmt.Printf("Secret key:     %s\n", hexutil.Encode(sk.Serialize()))
	fmt.Printf("Public key:     %s\n", hexutil.Encode(pub.SerializeUncompressed()))
	fmt.Printf("Compressed:     %s\n", hexutil.Encode(pub.SerializeCompressed()))
	fmt.Printf("Account ID:     %s\n", id)
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
