package main

import "github.com/example/hotel-reservations/internal/interfaces/cli"

func main() {
	cli.Execute()
}
