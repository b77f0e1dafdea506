package main

import "github.com/Yates-Labs/satirist/cmd"

func main() {
	cmd.Execute()
}
