package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/kovetskiy/optmark/cmd"
	"github.com/reconquest/pkg/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.New().Run(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}
