// Command portalctl holds operator tasks for the member portal: credential
// generation, schema migration and geography export.
package main

import (
	"log/slog"
	"os"
)

func main() {
	// Command output goes to stdout; logs stay on stderr.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
