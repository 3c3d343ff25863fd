// Package main provides the fieldkit CLI.
package main

import "github.com/mesh-intelligence/fieldkit/internal/cli"

func main() {
	cli.Execute()
}
