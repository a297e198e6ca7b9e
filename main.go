package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"

	"batchreport/cmd"
)

func main() {
	if err := fang.Execute(context.TODO(), cmd.RootCmd); err != nil {
		os.Exit(1)
	}
}
