package main

import "fracture-density-service/internal/cli"

func main() {
	cli.Execute()
}
