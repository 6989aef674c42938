package main

import "github.com/mhollis/diamond-stats/internal/cli"

func main() {
	cli.Execute()
}
