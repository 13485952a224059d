package main

import "github.com/clay-k0/QR/internal/cli"

func main() {
	cli.Execute()
}
