package main

import "leakjar-cli/cmd"

func main() {
	cmd.Execute()
}
