// Command wraptimer is the CLI entry point.
package main

import "github.com/mugendi/wraptimer/cmd"

func main() {
	cmd.Execute()
}
