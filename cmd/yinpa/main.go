// Package main is the entry point for the yinpa command line
package main

import (
	"fmt"
	"os"

	"google.golang.org/grpc/status"

	"github.com/yinpa-bot/yinpa/internal/errors"
)

func main() {
	root, opts := newRootCmd()
	err := root.Execute()
	if cerr := opts.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", describeError(err))
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error onto its gRPC status code so scripts can tell
// game-state refusals from infrastructure failures.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	return int(status.Code(errors.ToGRPCError(err)))
}
