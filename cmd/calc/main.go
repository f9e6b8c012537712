package main

import (
	"os"

	"github.com/littlekuo/calc-treewalk/cmd/calc/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
