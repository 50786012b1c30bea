package main

import "curio/cmd/curio-cli/cmd"

func main() {
	cmd.Execute()
}
