package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/jobpilot/internal/buildinfo"
	"github.com/dmitrijs2005/jobpilot/internal/logging"
	"github.com/dmitrijs2005/jobpilot/internal/stubapi"
)

func main() {
	addr := flag.String("addr", ":8000", "listen address")
	prefix := flag.String("prefix", stubapi.DefaultPrefix, "API route prefix")
	level := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	format := flag.String("log-format", "text", "log format (text or json)")
	empty := flag.Bool("empty", false, "start without demo data")
	flag.Parse()

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := stubapi.NewStore()
	if !*empty {
		stubapi.Seed(store)
	}

	srv := stubapi.New(store,
		stubapi.WithPrefix(*prefix),
		stubapi.WithLogger(logging.New(os.Stderr, *level, *format)),
	)

	if err := srv.Run(ctx, *addr); err != nil {
		log.Printf("%v", err)
		stop()
		os.Exit(1)
	}
}
