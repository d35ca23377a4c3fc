package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/twitter/copyclientnames/cli"
)

// Copies client names between two tagged networks of a Meraki organization.
//	Required flags: (see "-h" for all options)
//		-k, --api_key [dashboard API key]
//		-o, --org_id [organization id]
//	Exit codes:
//		0 done, 1 dashboard failure, 2 usage, 3 log file could not be created

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Main(ctx, filepath.Base(os.Args[0]), os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
