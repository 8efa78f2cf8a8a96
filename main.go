package main

import "github.com/Norgate-AV/compdb/cmd"

func main() {
	cmd.Execute()
}
