package main

import "github.com/xll-gen/tilerect/cmd"

// main is the entry point of the tilerect CLI.
// It executes the root command which handles argument parsing and subcommand dispatch.
func main() {
	cmd.Execute()
}
