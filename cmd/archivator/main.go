// Command archivator archives a directory's files into a single flat
// container file and restores them later.
//
// Usage:
//
//	archivator -a <folder> <archiveFile>   archive folder (skipped when the
//	                                       archive already matches it)
//	archivator -u <archiveFile> <folder>   extract into folder
//	archivator -l <archiveFile>            list records as a YAML manifest
//
// Pass -v for debug logging. Exits 1 on bad usage or a failed operation.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	archivator "github.com/savakotsur/OS-archivator"
)

var errUsage = errors.New("usage")

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, errUsage) {
			printUsage()
		} else {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  archivator -a <folder> <archiveFile>")
	fmt.Fprintln(os.Stderr, "  archivator -u <archiveFile> <folder>")
	fmt.Fprintln(os.Stderr, "  archivator -l <archiveFile>")
	fmt.Fprintln(os.Stderr, "Flags:")
	fmt.Fprintln(os.Stderr, "  -v, --verbose   debug logging")
	fmt.Fprintln(os.Stderr, "      --force     rewrite the archive even if it is up to date")
}

func run(args []string) error {
	flags := pflag.NewFlagSet("archivator", pflag.ContinueOnError)
	flags.SetOutput(os.Stderr)
	archiveMode := flags.BoolP("archive", "a", false, "archive a folder into an archive file")
	extractMode := flags.BoolP("unarchive", "u", false, "extract an archive file into a folder")
	listMode := flags.BoolP("list", "l", false, "list an archive's records")
	verbose := flags.BoolP("verbose", "v", false, "debug logging")
	force := flags.Bool("force", false, "rewrite the archive even if it is up to date")
	if err := flags.Parse(args); err != nil {
		return errUsage
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	opts := []archivator.Option{archivator.WithLogger(logger)}
	if *force {
		opts = append(opts, archivator.WithForce())
	}

	rest := flags.Args()
	switch {
	case *archiveMode && !*extractMode && !*listMode:
		if len(rest) != 2 {
			return errUsage
		}
		res, err := archivator.Archive(rest[0], rest[1], opts...)
		if err != nil {
			return err
		}
		if res.Skipped {
			fmt.Println("Archive already exists and contains identical files. Skipping archiving.")
		} else {
			fmt.Println("Archiving complete.")
		}

	case *extractMode && !*archiveMode && !*listMode:
		if len(rest) != 2 {
			return errUsage
		}
		if _, err := archivator.Unarchive(rest[0], rest[1], opts...); err != nil {
			return err
		}
		fmt.Println("Unarchiving complete.")

	case *listMode && !*archiveMode && !*extractMode:
		if len(rest) != 1 {
			return errUsage
		}
		m, err := archivator.Inspect(rest[0])
		if err != nil {
			return err
		}
		out, err := yaml.Marshal(m)
		if err != nil {
			return fmt.Errorf("render manifest: %w", err)
		}
		os.Stdout.Write(out)

	default:
		return errUsage
	}
	return nil
}
