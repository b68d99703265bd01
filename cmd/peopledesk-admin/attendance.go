package main

import (
	"context"
	"flag"
	"os/signal"
	"syscall"

	"github.com/peopledesk/console/internal/poll"
)

func cmdAttendanceToday(ctx *commandContext, args []string) error {
	fs := flag.NewFlagSet("attendance-today", flag.ContinueOnError)
	query := fs.String("query", "", "JMESPath filter for the output")
	if err := fs.Parse(args); err != nil {
		return err
	}
	today, err := ctx.Services.API.TodayAttendance(ctx.Ctx)
	if err != nil {
		return err
	}
	return printResult(today, *query)
}

func cmdAttendanceLive(ctx *commandContext, args []string) error {
	fs := flag.NewFlagSet("attendance-live", flag.ContinueOnError)
	query := fs.String("query", "", "JMESPath filter for the output")
	watch := fs.Bool("watch", false, "keep polling until interrupted")
	interval := fs.Duration("interval", poll.DefaultInterval, "poll interval with -watch")
	if err := fs.Parse(args); err != nil {
		return err
	}

	fetch := func(fetchCtx context.Context) error {
		live, err := ctx.Services.API.LiveStatus(fetchCtx)
		if err != nil {
			return err
		}
		return printResult(live, *query)
	}

	if !*watch {
		return fetch(ctx.Ctx)
	}

	runCtx, stop := signal.NotifyContext(ctx.Ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runner, err := poll.NewRunner(poll.Options{
		Name:     "attendance-live",
		Interval: *interval,
		Fetch:    fetch,
		Logger:   ctx.Logger,
	})
	if err != nil {
		return err
	}
	return runner.Run(runCtx)
}
