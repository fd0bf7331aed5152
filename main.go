package main

import "github.com/lazyresident/lazyresident/cmd"

func main() {
	cmd.Execute()
}
