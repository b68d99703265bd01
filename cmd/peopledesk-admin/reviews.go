package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/peopledesk/console/internal/domain/auth"
)

func cmdRegistrations(ctx *commandContext, args []string) error {
	fs := flag.NewFlagSet("registrations", flag.ContinueOnError)
	approve := fs.String("approve", "", "approve the registration with this id")
	role := fs.String("role", string(auth.RoleEmployee), "role granted with -approve")
	reject := fs.String("reject", "", "reject the registration with this id")
	query := fs.String("query", "", "JMESPath filter for the output")
	if err := fs.Parse(args); err != nil {
		return err
	}

	switch {
	case *approve != "" && *reject != "":
		return errors.New("-approve and -reject are mutually exclusive")
	case *approve != "":
		granted := auth.Role(*role)
		if !granted.IsValid() {
			return fmt.Errorf("unknown role %q", *role)
		}
		if err := ctx.Services.API.ApproveRegistration(ctx.Ctx, *approve, granted); err != nil {
			return err
		}
		fmt.Printf("approved %s as %s\n", *approve, granted)
		return nil
	case *reject != "":
		if err := ctx.Services.API.RejectRegistration(ctx.Ctx, *reject); err != nil {
			return err
		}
		fmt.Printf("rejected %s\n", *reject)
		return nil
	}

	pending, err := ctx.Services.API.PendingRegistrations(ctx.Ctx)
	if err != nil {
		return err
	}
	return printResult(pending, *query)
}

func cmdPasswordResets(ctx *commandContext, args []string) error {
	fs := flag.NewFlagSet("password-resets", flag.ContinueOnError)
	approve := fs.String("approve", "", "approve the reset with this id")
	newPassword := fs.String("new-password", "", "password issued with -approve")
	reject := fs.String("reject", "", "reject the reset with this id")
	query := fs.String("query", "", "JMESPath filter for the output")
	if err := fs.Parse(args); err != nil {
		return err
	}

	switch {
	case *approve != "" && *reject != "":
		return errors.New("-approve and -reject are mutually exclusive")
	case *approve != "":
		if *newPassword == "" {
			return errors.New("-new-password is required with -approve")
		}
		if err := ctx.Services.API.ApprovePasswordReset(ctx.Ctx, *approve, *newPassword); err != nil {
			return err
		}
		fmt.Printf("approved %s\n", *approve)
		return nil
	case *reject != "":
		if err := ctx.Services.API.RejectPasswordReset(ctx.Ctx, *reject); err != nil {
			return err
		}
		fmt.Printf("rejected %s\n", *reject)
		return nil
	}

	pending, err := ctx.Services.API.PendingPasswordResets(ctx.Ctx)
	if err != nil {
		return err
	}
	return printResult(pending, *query)
}
