package main

import "upiscan/internal/cli"

func main() {
	cli.Execute()
}
