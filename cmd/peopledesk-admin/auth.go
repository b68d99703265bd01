package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
)

func cmdLogin(ctx *commandContext, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "account email (required)")
	password := fs.String("password", "", "password (prompted when omitted)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" {
		return errors.New("-email is required")
	}

	pw := *password
	if pw == "" {
		fmt.Fprint(os.Stderr, "password: ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		pw = strings.TrimRight(line, "\r\n")
	}

	user, err := ctx.Services.Sessions.Login(ctx.Ctx, *email, pw)
	if err != nil {
		return err
	}
	fmt.Printf("logged in as %s (%s)\n", user.Name, user.Role)
	return nil
}

func cmdLogout(ctx *commandContext, _ []string) error {
	if err := ctx.Services.Sessions.Logout(); err != nil {
		return err
	}
	fmt.Println("logged out")
	return nil
}

func cmdWhoami(ctx *commandContext, args []string) error {
	fs := flag.NewFlagSet("whoami", flag.ContinueOnError)
	query := fs.String("query", "", "JMESPath filter for the output")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := ctx.Services.API.Me(ctx.Ctx)
	if err != nil {
		return err
	}
	return printResult(user, *query)
}
