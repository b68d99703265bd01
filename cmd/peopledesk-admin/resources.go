package main

import (
	"flag"

	"github.com/peopledesk/console/internal/adapters/hrmsapi"
)

// listFlags are shared by the paginated list commands.
type listFlags struct {
	fs    *flag.FlagSet
	page  *int
	limit *int
	query *string
}

func newListFlags(name string) listFlags {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	return listFlags{
		fs:    fs,
		page:  fs.Int("page", 0, "page number (backend default when 0)"),
		limit: fs.Int("limit", 0, "page size (backend default when 0)"),
		query: fs.String("query", "", "JMESPath filter for the output"),
	}
}

func (f listFlags) params() hrmsapi.ListParams {
	return hrmsapi.ListParams{Page: *f.page, Limit: *f.limit}
}

func cmdEmployees(ctx *commandContext, args []string) error {
	f := newListFlags("employees")
	if err := f.fs.Parse(args); err != nil {
		return err
	}
	page, err := ctx.Services.API.ListEmployees(ctx.Ctx, f.params())
	if err != nil {
		return err
	}
	return printResult(page, *f.query)
}

func cmdDepartments(ctx *commandContext, args []string) error {
	fs := flag.NewFlagSet("departments", flag.ContinueOnError)
	query := fs.String("query", "", "JMESPath filter for the output")
	if err := fs.Parse(args); err != nil {
		return err
	}
	departments, err := ctx.Services.API.ListDepartments(ctx.Ctx)
	if err != nil {
		return err
	}
	return printResult(departments, *query)
}

func cmdTeams(ctx *commandContext, args []string) error {
	fs := flag.NewFlagSet("teams", flag.ContinueOnError)
	query := fs.String("query", "", "JMESPath filter for the output")
	if err := fs.Parse(args); err != nil {
		return err
	}
	teams, err := ctx.Services.API.ListTeams(ctx.Ctx)
	if err != nil {
		return err
	}
	return printResult(teams, *query)
}

func cmdLeaves(ctx *commandContext, args []string) error {
	f := newListFlags("leaves")
	if err := f.fs.Parse(args); err != nil {
		return err
	}
	page, err := ctx.Services.API.ListLeaves(ctx.Ctx, f.params())
	if err != nil {
		return err
	}
	return printResult(page, *f.query)
}

func cmdPayroll(ctx *commandContext, args []string) error {
	f := newListFlags("payroll")
	month := f.fs.String("month", "", "also show the summary for this month (YYYY-MM)")
	if err := f.fs.Parse(args); err != nil {
		return err
	}
	page, err := ctx.Services.API.ListPayroll(ctx.Ctx, f.params())
	if err != nil {
		return err
	}
	if *month != "" {
		summary, serr := ctx.Services.API.MonthlyPayrollSummary(ctx.Ctx, *month)
		if serr != nil {
			return serr
		}
		return printResult(map[string]any{"records": page, "summary": summary}, *f.query)
	}
	return printResult(page, *f.query)
}

func cmdTasks(ctx *commandContext, args []string) error {
	f := newListFlags("tasks")
	if err := f.fs.Parse(args); err != nil {
		return err
	}
	page, err := ctx.Services.API.ListTasks(ctx.Ctx, f.params())
	if err != nil {
		return err
	}
	return printResult(page, *f.query)
}

func cmdAnnouncements(ctx *commandContext, args []string) error {
	fs := flag.NewFlagSet("announcements", flag.ContinueOnError)
	query := fs.String("query", "", "JMESPath filter for the output")
	if err := fs.Parse(args); err != nil {
		return err
	}
	items, err := ctx.Services.API.ListAnnouncements(ctx.Ctx)
	if err != nil {
		return err
	}
	return printResult(items, *query)
}

func cmdJobs(ctx *commandContext, args []string) error {
	f := newListFlags("jobs")
	if err := f.fs.Parse(args); err != nil {
		return err
	}
	page, err := ctx.Services.API.ListJobs(ctx.Ctx, f.params())
	if err != nil {
		return err
	}
	return printResult(page, *f.query)
}

func cmdStats(ctx *commandContext, args []string) error {
	fs := flag.NewFlagSet("stats", flag.ContinueOnError)
	query := fs.String("query", "", "JMESPath filter for the output")
	if err := fs.Parse(args); err != nil {
		return err
	}
	stats, err := ctx.Services.API.DashboardStats(ctx.Ctx)
	if err != nil {
		return err
	}
	return printResult(stats, *query)
}
