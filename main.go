package main

import (
	"geohash-service/cli"
)

func main() {
	cli.Execute()
}
