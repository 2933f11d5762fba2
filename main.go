package main

import "cheatvault/cmd"

func main() {
	cmd.Execute()
}
