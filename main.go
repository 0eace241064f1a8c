package main

import "github.com/itsmostafa/treetab/cmd"

func main() {
	cmd.Execute()
}
