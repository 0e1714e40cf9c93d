// Command migrate applies or inspects the embedded database migrations.
//
// Usage:
//
//	migrate [--dsn=postgres://...] [--timeout=1m] up|down|status|version
//
// Without --dsn the DATABASE_DSN environment variable is used.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/spf13/pflag"

	"github.com/tcf245/dabia/internal/adapter/postgres"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("migrate: %v", err)
	}
}

func run(args []string, out io.Writer) error {
	fs := pflag.NewFlagSet("migrate", pflag.ContinueOnError)
	dsn := fs.String("dsn", os.Getenv("DATABASE_DSN"), "PostgreSQL connection string")
	timeout := fs.Duration("timeout", time.Minute, "overall timeout")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() != 1 {
		return errors.New("expected exactly one command: up, down, status or version")
	}
	command := fs.Arg(0)
	switch command {
	case "up", "down", "status", "version":
	default:
		return fmt.Errorf("unknown command %q", command)
	}
	if *dsn == "" {
		return errors.New("--dsn or DATABASE_DSN is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	db, err := postgres.OpenSQL(ctx, *dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	provider, err := postgres.NewMigrator(db)
	if err != nil {
		return err
	}

	switch command {
	case "up":
		results, err := provider.Up(ctx)
		printResults(out, results)
		return err
	case "down":
		result, err := provider.Down(ctx)
		if result != nil {
			printResults(out, []*goose.MigrationResult{result})
		}
		return err
	case "status":
		statuses, err := provider.Status(ctx)
		if err != nil {
			return err
		}
		for _, s := range statuses {
			applied := "pending"
			if s.State == goose.StateApplied {
				applied = s.AppliedAt.Format(time.RFC3339)
			}
			fmt.Fprintf(out, "%5d  %-40s  %s\n", s.Source.Version, s.Source.Path, applied)
		}
		return nil
	case "version":
		v, err := provider.GetDBVersion(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "version %d\n", v)
		return nil
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func printResults(out io.Writer, results []*goose.MigrationResult) {
	if len(results) == 0 {
		fmt.Fprintln(out, "no migrations to run")
		return
	}
	for _, r := range results {
		fmt.Fprintf(out, "%-6s %s (%s)\n", r.Direction, r.Source.Path, r.Duration)
	}
}
