package main

import "market-sync/cmd"

func main() {
	cmd.Execute()
}
