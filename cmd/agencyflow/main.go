// Command agencyflow is the entrypoint for the planner daemon and CLI.
package main

import "github.com/agencyflow/agencyflow/internal/cli"

func main() {
	cli.Execute()
}
