// Command vanity searches for a key pair whose account identifier starts
// with a chosen hex prefix.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/curvekit/secp256k1/internal/hexutil"
	"github.com/curvekit/secp256k1/internal/vanity"
)

func main() {
	var (
		prefix     = flag.String("prefix", "", "Desired identifier prefix in hex (whole bytes)")
		numWorkers = flag.Int("workers", 0, "Number of parallel workers (0 = auto-detect based on CPU cores)")
		timeout    = flag.Duration("timeout", 0, "Give up after this duration (0 = search forever)")
	)
	flag.Parse()

	if *prefix == "" {
		fmt.Fprintf(os.Stderr, "Error: --prefix is required\n")
		flag.Usage()
		os.Exit(1)
	}
	prefixBytes, err := hexutil.Decode(*prefix)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid prefix: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	fmt.Printf("Searching for identifier prefix %s...\n", hexutil.Encode(prefixBytes))
	start := time.Now()

	result, err := vanity.Search(ctx, prefixBytes, *numWorkers)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\n[+] Found a matching key after %d attempts (%s):\n",
		result.Attempts, time.Since(start).Round(time.Millisecond))
	fmt.Printf("    Secret key: %s\n", hexutil.Encode(result.SecretKey.Serialize()))
	fmt.Printf("    Public key: %s\n", hexutil.Encode(result.PublicKey.SerializeCompressed()))
	fmt.Printf("    Account ID: %s\n", result.AccountID)
}
