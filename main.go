package main

import "github.com/lusion/netserve/cmd"

var (
	version = "local"
)

func init() {
	cmd.Version = version
}

func main() {
	cmd.Execute()
}
