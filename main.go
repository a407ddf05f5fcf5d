package main

import "github.com/rohitk523/adk-project/internal/cli"

func main() {
	cli.Main()
}
