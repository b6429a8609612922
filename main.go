package main

import "github.com/bodhisathwik/finsaver/cmd"

func main() {
	cmd.Execute()
}
