package main

import "framelink/internal/cli"

func main() {
	cli.Execute()
}
