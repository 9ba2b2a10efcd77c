package main

import "github.com/CZB666-wdnmd/cec-ssh/cmd"

func main() {
	cmd.Execute()
}
