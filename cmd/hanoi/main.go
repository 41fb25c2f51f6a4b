package main

import "svw.info/hanoi/internal/cli"

func main() {
	cli.Execute()
}
