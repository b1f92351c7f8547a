// Package main is the entry point of the selfprint CLI.
package main

//go:generate go run github.com/vektra/mockery/v3@latest --config .mockery.yaml

import "github.com/mouse-blink/selfprint/cmd"

func main() {
	cmd.Execute()
}
