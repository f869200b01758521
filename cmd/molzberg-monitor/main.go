package main

import "github.com/r-ising/molzberg-monitor/internal/cli"

func main() {
	cli.Execute()
}
