package main

import "github.com/gorgias-oss/gorgias-mcp-server/cmd"

func main() {
	cmd.Execute()
}
