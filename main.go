package main

import (
	"fmt"
	"os"

	"github.com/phpx-labs/cargo-php/internal/cli"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Args = cargoArgs(os.Args)
	if err := cli.Execute(version, commit, date); err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err))
		os.Exit(1)
	}
}

// cargoArgs drops the subcommand name cargo passes when the binary runs as
// `cargo php ...`.
func cargoArgs(args []string) []string {
	if len(args) > 1 && args[1] == "php" {
		return append([]string{args[0]}, args[2:]...)
	}
	return args
}
