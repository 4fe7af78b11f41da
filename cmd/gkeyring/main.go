package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/gkeyring/internal/client/cli"
	"github.com/dmitrijs2005/gkeyring/internal/client/keyring"
	"github.com/dmitrijs2005/gkeyring/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	open := func(ctx context.Context, log logging.Logger) (keyring.Store, error) {
		s, err := keyring.NewSecretService(ctx, log)
		if err != nil {
			return nil, err
		}
		return s, nil
	}

	app := cli.NewApp(open, cli.NewTTY(os.Stdin, os.Stderr), os.Stdout, os.Stderr)
	code := app.Run(ctx, os.Args[1:])

	stop()
	os.Exit(code)
}
