// Package vanity searches for secret keys whose account identifier starts
// with a chosen byte prefix. The search is embarrassingly parallel: workers
// independently generate random keys and test the derived identifier until
// one matches or the context is cancelled.
package vanity

import (
	"bytes"
	"context"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/curvekit/secp256k1/pkg/secp256k1"
)

// Result is a successful vanity search outcome.
type Result struct {
	SecretKey *secp256k1.SecretKey
	PublicKey *secp256k1.PublicKey
	AccountID secp256k1.AccountID

	// Attempts is the total number of keys tested across all workers.
	Attempts int64
}

// Search generates random keys until one derives an account identifier with
// the given prefix. numWorkers of 0 or less auto-detects based on CPU cores.
// The expected number of attempts grows by a factor of 256 per prefix byte,
// so callers should bound the search with a context deadline.
func Search(ctx context.Context, prefix []byte, numWorkers int) (*Result, error) {
	if len(prefix) > secp256k1.AccountIDLen {
		return nil, fmt.Errorf("prefix of %d bytes exceeds the %d-byte identifier",
			len(prefix), secp256k1.AccountIDLen)
	}
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	resultChan := make(chan *Result, 1)
	var attempts int64

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(ctx, prefix, resultChan, &attempts)
		}()
	}

	select {
	case result := <-resultChan:
		cancel()
		wg.Wait()
		result.Attempts = atomic.LoadInt64(&attempts)
		return result, nil
	case <-ctx.Done():
		wg.Wait()
		return nil, ctx.Err()
	}
}

// worker tests random keys until a match is found or the context ends.
func worker(ctx context.Context, prefix []byte, resultChan chan<- *Result, attempts *int64) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		atomic.AddInt64(attempts, 1)

		sk, err := secp256k1.NewSecretKey()
		if err != nil {
			continue
		}
		pub, err := sk.PubKey()
		if err != nil {
			continue
		}
		id, err := pub.AccountID()
		if err != nil {
			continue
		}
		if !bytes.HasPrefix(id[:], prefix) {
			continue
		}

		select {
		case resultChan <- &Result{SecretKey: sk, PublicKey: pub, AccountID: id}:
		case <-ctx.Done():
		}
		return
	}
}
