package main

import (
	"github.com/trojanworks/resourcehub/cmd"
)

func main() {
	cmd.Execute()
}
