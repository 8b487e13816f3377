package main

import "github.com/gaurav-prasanna/casepipe/cmd"

func main() {
	cmd.Execute()
}
