package main

import (
	"os"

	"github.com/ucloud-forge/uaccount/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
