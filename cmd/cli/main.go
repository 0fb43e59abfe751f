package main

import (
	"context"
	"log"
	"os"

	"github.com/Kerimcanak/SnapCryptor/internal/buildinfo"
	"github.com/Kerimcanak/SnapCryptor/internal/client/cli"
	"github.com/Kerimcanak/SnapCryptor/internal/client/config"
	"github.com/Kerimcanak/SnapCryptor/internal/flagx"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	args := flagx.Positional(os.Args[1:], config.ValueFlags)

	if len(args) == 0 {
		buildinfo.PrintBuildData(os.Stdout)
	}

	app, err := cli.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	os.Exit(app.Run(ctx, args))
}
