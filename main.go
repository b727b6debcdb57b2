package main

import (
	"fmt"
	"os"

	"openfund/cmd"
)

func main() {
	if err := cmd.Start(); err != nil {
		fmt.Printf("openfund stopped with an error: %s\n", err)
		os.Exit(1)
	}
}
