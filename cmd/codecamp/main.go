// Command codecamp serves the Code Camp REST API and manages its database schema.
//
//	@title			Code Camp API
//	@version		1.0
//	@description	REST API for code camps, their talks and speakers.
//	@BasePath		/api
package main

import (
	"context"
	"fmt"
	"os"

	"codecamp/cmd/codecamp/commands"
)

// Version information - set during build
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)

	if err := commands.Execute(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
