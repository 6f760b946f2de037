package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"hubdash/internal/di"
	"hubdash/internal/structures"
)

func main() {
	flags := &structures.CliFlags{}
	pflag.StringVarP(&flags.ConfigPath, "config", "c", "config/config.yaml", "path to the configuration file")
	pflag.BoolVarP(&flags.DebugMode, "debug", "d", false, "mirror logs to the console")
	pflag.Parse()

	app, cleanup, err := di.InitApp(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "unable to start: %s\n", err)
		os.Exit(1)
	}
	defer cleanup()

	if err = app.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		cleanup()
		os.Exit(1)
	}
}
