// Package batch loads signature records from JSON or CSV files and verifies
// them in bulk. Each record carries a message (or a precomputed digest), a
// serialized signature, and the claimed signer as either a public key or an
// account identifier.
package batch

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/curvekit/secp256k1/internal/hexutil"
	"github.com/curvekit/secp256k1/pkg/secp256k1"
)

// Record is a single signature to verify.
type Record struct {
	// Digest is the 32-byte signing input. When nil, Message is hashed
	// instead.
	Digest  []byte
	Message []byte

	Signature *secp256k1.Signature

	// Exactly one of PublicKey and AccountID identifies the signer.
	PublicKey *secp256k1.PublicKey
	AccountID *secp256k1.AccountID
}

// Result is the verification outcome of one record, by position in the file.
type Result struct {
	Index int
	OK    bool
	Err   error
}

// recordJSON mirrors one entry of a JSON record file.
type recordJSON struct {
	Message   string `json:"message"`
	Digest    string `json:"digest"`
	Signature string `json:"signature"`
	PublicKey string `json:"public_key"`
	AccountID string `json:"account_id"`
}

// ParseJSON loads records from a JSON file holding an array of objects with
// message (or digest), signature, and public_key (or account_id) fields. All
// binary fields are hex encoded, with or without an 0x prefix.
func ParseJSON(path string) ([]*Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	var items []recordJSON
	if err := json.NewDecoder(file).Decode(&items); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	records := make([]*Record, 0, len(items))
	for i, item := range items {
		rec, err := buildRecord(item)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// ParseCSV loads records from a CSV file. The header row names the columns;
// recognized names are message, digest, signature, public_key, and
// account_id.
func ParseCSV(path string) ([]*Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}

	field := func(record []string, name string) string {
		idx, ok := cols[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return record[idx]
	}

	var records []*Record
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		rec, err := buildRecord(recordJSON{
			Message:   field(row, "message"),
			Digest:    field(row, "digest"),
			Signature: field(row, "signature"),
			PublicKey: field(row, "public_key"),
			AccountID: field(row, "account_id"),
		})
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// buildRecord decodes the hex fields of one raw record.
func buildRecord(raw recordJSON) (*Record, error) {
	rec := &Record{}

	switch {
	case raw.Digest != "":
		digest, err := hexutil.Decode(raw.Digest)
		if err != nil {
			return nil, fmt.Errorf("failed to parse digest: %w", err)
		}
		rec.Digest = digest
	case raw.Message != "":
		rec.Message = []byte(raw.Message)
	default:
		return nil, fmt.Errorf("missing message or digest field")
	}

	if raw.Signature == "" {
		return nil, fmt.Errorf("missing signature field")
	}
	sigBytes, err := hexutil.Decode(raw.Signature)
	if err != nil {
		return nil, fmt.Errorf("failed to parse signature: %w", err)
	}
	switch len(sigBytes) {
	case secp256k1.SignatureLen:
		rec.Signature, err = secp256k1.ParseSignature(sigBytes)
	case secp256k1.CompactSignatureLen:
		rec.Signature, err = secp256k1.ParseCompactSignature(sigBytes)
	default:
		err = fmt.Errorf("signature must be %d or %d bytes, got %d",
			secp256k1.SignatureLen, secp256k1.CompactSignatureLen, len(sigBytes))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse signature: %w", err)
	}

	switch {
	case raw.PublicKey != "":
		keyBytes, err := hexutil.Decode(raw.PublicKey)
		if err != nil {
			return nil, fmt.Errorf("failed to parse public key: %w", err)
		}
		var pub *secp256k1.PublicKey
		switch len(keyBytes) {
		case secp256k1.PubKeyCompressedLen:
			pub, err = secp256k1.ParseCompressedPublicKey(keyBytes)
		case secp256k1.PubKeyRawLen:
			pub, err = secp256k1.ParsePublicKeyRaw(keyBytes)
		default:
			pub, err = secp256k1.ParsePublicKey(keyBytes)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse public key: %w", err)
		}
		rec.PublicKey = pub
	case raw.AccountID != "":
		idBytes, err := hexutil.Decode(raw.AccountID)
		if err != nil {
			return nil, fmt.Errorf("failed to parse account id: %w", err)
		}
		if len(idBytes) != secp256k1.AccountIDLen {
			return nil, fmt.Errorf("account id must be %d bytes, got %d",
				secp256k1.AccountIDLen, len(idBytes))
		}
		var id secp256k1.AccountID
		copy(id[:], idBytes)
		rec.AccountID = &id
	default:
		return nil, fmt.Errorf("missing public_key or account_id field")
	}

	return rec, nil
}

// VerifyAll verifies every record and reports per-record outcomes. A
// verification error (malleable signature, invalid key) lands in the result
// rather than aborting the batch.
func VerifyAll(records []*Record) []Result {
	results := make([]Result, len(records))
	for i, rec := range records {
		results[i] = Result{Index: i}

		digest := rec.Digest
		if digest == nil {
			digest = secp256k1.HashMessage(rec.Message)
		}

		var ok bool
		var err error
		if rec.PublicKey != nil {
			ok, err = secp256k1.VerifyDigest(rec.PublicKey, digest, rec.Signature)
		} else {
			ok, err = secp256k1.VerifyDigestWithAccountID(*rec.AccountID, digest, rec.Signature)
		}
		results[i].OK = ok
		results[i].Err = err
	}
	return results
}
