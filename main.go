package main

import "github.com/SHADYEHABOCOR/gLabs/cmd"

func main() {
	cmd.Execute()
}
