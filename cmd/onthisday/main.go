package main

import (
	"os"

	_ "golang.org/x/crypto/x509roots/fallback" // TLS roots for the scratch container image

	"github.com/odysseus0/onthisday/internal/cli"
)

func main() {
	os.Exit(run())
}

func run() int {
	err := cli.Execute()
	cli.PrintError(err)
	return cli.ErrorExitCode(err)
}
