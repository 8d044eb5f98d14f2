// Package main provides the entry point for the echo CLI tool.
// It delegates execution to the cmd package so the command can be
// built and exercised from tests without a real process.
package main

import (
	"caseecho/cmd"
)

func main() {
	cmd.Execute()
}
