package main

import "nomo-governance/cmd"

func main() {
	cmd.Execute()
}
