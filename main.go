package main

import "github.com/ec-protocol/tick-go/cmd"

func main() {
	cmd.Execute()
}
