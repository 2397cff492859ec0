package main

import (
	"context"

	"github.com/dmitrijs2005/launchkeeper/internal/client/cli"
)

func main() {
	cli.Execute(context.Background())
}
