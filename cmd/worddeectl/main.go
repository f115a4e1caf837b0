package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/okian/worddee/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx); err != nil {
		os.Stderr.WriteString("worddeectl: " + err.Error() + "\n")
		stop()
		os.Exit(1)
	}
}
