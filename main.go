package main

import "github.com/vasilii314/kennel/cmd"

func main() {
	cmd.Execute()
}
