package main

import "github.com/Nelluk/OntarioParks/internal/interfaces/cli"

func main() {
	cli.Execute()
}
