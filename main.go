package main

import (
	"github.com/daedaleanai/multibuild/cmd"
)

func main() {
	cmd.Execute()
}
