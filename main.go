package main

import "github.com/codewright/retouch-cli/cmd"

func main() {
	cmd.Execute()
}
