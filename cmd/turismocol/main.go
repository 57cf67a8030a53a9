package main

import "github.com/turismocol/turismocol/internal/cli"

func main() {
	cli.Execute()
}
