package main

import "runsh/cmd/cli/app/cmd"

func main() {
	cmd.Execute()
}
