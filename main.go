package main

import "github.com/sebastian-j-ibanez/copper/cmd"

func main() {
	cmd.Execute()
}
