// Copyright (c) 2026 Jacktogon
// gotools - terminal and system utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for gotools.
//
// Usage:
//
//	go run . [flags]
//	./gotools [flags]
//
// This launches the gotools CLI. See --help for options.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/jacktogon/gotools/ui/cli"
)

// version is set at build time using -ldflags, e.g.:
// go build -ldflags "-X main.version=1.2.3"
var version = "dev"

// main is the entrypoint for the gotools CLI.
func main() {
	if os.Getenv("GOTOOLS_SHOW_VERSION") == "1" {
		fmt.Fprintf(os.Stderr, "gotools version: %s\n", version)
	}

	if err := cli.Execute(); err != nil {
		log.Printf("gotools CLI error: %v", err)
		os.Exit(1)
	}
}
