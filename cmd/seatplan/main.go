// SPDX-License-Identifier: MIT

// Package main prints a seating plan for a rotating networking event.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	seatplancmd "github.com/katalvlaran/seatplan/internal/cmd/seatplan"
)

func main() {
	cfg, err := seatplancmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[SEATPLAN] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := seatplancmd.Run(ctx, cfg); err != nil {
		log.Fatalf("plan: %v", err)
	}
}
