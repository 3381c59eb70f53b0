package main // Entry point package

import "github.com/iliyamo/cine-app/internal/cli"

func main() {
	cli.Execute()
}
