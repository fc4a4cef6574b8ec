package main

import "github.com/kerlenton/system-eye/cmd"

func main() {
	cmd.Execute()
}
