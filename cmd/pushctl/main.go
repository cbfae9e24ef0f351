package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - migrate: apply or roll back the database schema
// - token:   issue an operator JWT for the send endpoints

func main() {
	migrateCmd := flag.NewFlagSet("migrate", flag.ExitOnError)
	tokenCmd := flag.NewFlagSet("token", flag.ExitOnError)

	migrateDirection := migrateCmd.String("direction", "up", "Migration direction (up, down)")

	tokenSubject := tokenCmd.String("subject", "", "Operator identity placed in the sub claim")
	tokenTTL := tokenCmd.Duration("ttl", 24*time.Hour, "Token lifetime")
	tokenRole := tokenCmd.String("role", "", "Role to grant (defaults to auth.requiredRole)")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	flags := ctlFlags{
		Migrate: migrateFlags{
			cmd:       migrateCmd,
			direction: migrateDirection,
		},
		Token: tokenFlags{
			cmd:     tokenCmd,
			subject: tokenSubject,
			ttl:     tokenTTL,
			role:    tokenRole,
		},
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type ctlFlags struct {
	Migrate migrateFlags
	Token   tokenFlags
}

type migrateFlags struct {
	cmd       *flag.FlagSet
	direction *string
}

type tokenFlags struct {
	cmd     *flag.FlagSet
	subject *string
	ttl     *time.Duration
	role    *string
}

func runSubcommand(ctx context.Context, flags *ctlFlags) error {
	switch os.Args[1] {
	case "migrate":
		return handleMigrate(ctx, flags)
	case "token":
		return handleToken(flags)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func handleMigrate(ctx context.Context, flags *ctlFlags) error {
	if err := flags.Migrate.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse migrate flags")
	}

	return runMigrate(ctx, *flags.Migrate.direction)
}

func handleToken(flags *ctlFlags) error {
	if err := flags.Token.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse token flags")
	}

	if *flags.Token.subject == "" {
		return errors.New("--subject flag is required for token command")
	}

	return runToken(os.Stdout, *flags.Token.subject, *flags.Token.role, *flags.Token.ttl)
}

func printUsage() {
	fmt.Println("Usage: pushctl <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  migrate     Apply (-direction up) or roll back one step (-direction down) of the schema")
	fmt.Println("  token       Issue an operator token for the notification send endpoints")
	fmt.Println("")
	fmt.Println("Use 'pushctl <command> -h' for more information about a command.")
}
