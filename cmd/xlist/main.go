package main

import "github.com/ib-77/xlist/internal/cli"

func main() {
	cli.Execute()
}
