// Command peopledesk-admin is the terminal companion to the console: it
// talks to the same HRMS API with the same stored session token.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"text/tabwriter"

	jmespath "github.com/jmespath-community/go-jmespath"

	"github.com/peopledesk/console/internal/bootstrap"
)

type commandFn func(ctx *commandContext, args []string) error

type command struct {
	name        string
	description string
	run         commandFn
}

type commandContext struct {
	Ctx      context.Context
	Logger   *slog.Logger
	Services *bootstrap.Services
}

func main() {
	logger := bootstrap.InitLogger()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	cmdName := os.Args[1]
	cmd, ok := commands()[cmdName]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", cmdName)
		printUsage()
		os.Exit(2)
	}

	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		logger.Error("load config", "error", err)
		os.Exit(1)
	}

	services, err := bootstrap.NewServices(cfg, logger)
	if err != nil {
		logger.Error("wire services", "error", err)
		os.Exit(1)
	}

	cmdCtx := &commandContext{
		Ctx:      context.Background(),
		Logger:   logger,
		Services: services,
	}
	if runErr := cmd.run(cmdCtx, os.Args[2:]); runErr != nil {
		logger.Error("command failed", "command", cmdName, "error", runErr)
		os.Exit(1)
	}
}

func commands() map[string]command {
	cmds := []command{
		{"login", "sign in and store the session token", cmdLogin},
		{"logout", "clear the stored session token", cmdLogout},
		{"whoami", "show the authenticated user", cmdWhoami},
		{"employees", "list employees", cmdEmployees},
		{"departments", "list departments", cmdDepartments},
		{"teams", "list teams with rosters", cmdTeams},
		{"leaves", "list leave requests", cmdLeaves},
		{"payroll", "list payroll records", cmdPayroll},
		{"tasks", "list tasks", cmdTasks},
		{"announcements", "list announcements", cmdAnnouncements},
		{"jobs", "list job postings", cmdJobs},
		{"stats", "show dashboard stats", cmdStats},
		{"attendance-today", "show your own day state", cmdAttendanceToday},
		{"attendance-live", "show live presence, optionally watching", cmdAttendanceLive},
		{"registrations", "review pending registrations", cmdRegistrations},
		{"password-resets", "review pending password resets", cmdPasswordResets},
	}

	m := make(map[string]command, len(cmds))
	for _, c := range cmds {
		m[c.name] = c
	}
	return m
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "usage: peopledesk-admin <command> [flags]")
	fmt.Fprintln(os.Stderr)

	cmds := commands()
	names := make([]string, 0, len(cmds))
	for name := range cmds {
		names = append(names, name)
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(os.Stderr, 0, 4, 2, ' ', 0)
	for _, name := range names {
		fmt.Fprintf(w, "  %s\t%s\n", name, cmds[name].description)
	}
	_ = w.Flush()
}

// printResult writes v as indented JSON, optionally filtered through a
// JMESPath expression first.
func printResult(v any, query string) error {
	if query != "" {
		// JMESPath operates on generic JSON values, so round-trip first.
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		var generic any
		if err := json.Unmarshal(raw, &generic); err != nil {
			return fmt.Errorf("decode result: %w", err)
		}
		v, err = jmespath.Search(query, generic)
		if err != nil {
			return fmt.Errorf("apply query %q: %w", query, err)
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
