// Command picture applies a chain of image operators to a picture file.
//
// Usage:
//
//	picture [-config file] [-v] <command>... <input> <output>
//
// Example:
//
//	picture rotate 90 invert in.png out.png
//	picture blur blend other.png third.png in.png out.png
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gogpu/picture"
	"github.com/gogpu/picture/internal/codec"
	"github.com/gogpu/picture/internal/config"
	"github.com/gogpu/picture/internal/pipeline"
)

var errUsage = errors.New("usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stderr)
	stop()

	switch {
	case err == nil:
	case errors.Is(err, errUsage), errors.Is(err, flag.ErrHelp):
		os.Exit(2)
	default:
		slog.New(slog.NewTextHandler(os.Stderr, nil)).Error("picture failed", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("picture", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath = fs.String("config", "", "TOML defaults file")
		verbose    = fs.Bool("v", false, "log every pipeline step")
	)
	fs.Usage = func() { usage(fs, stderr) }
	if err := fs.Parse(args); err != nil {
		return err
	}

	rest := fs.Args()
	if len(rest) < 2 {
		fs.Usage()
		return errUsage
	}
	tokens, input, output := rest[:len(rest)-2], rest[len(rest)-2], rest[len(rest)-1]

	conf, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	level, err := conf.Level()
	if err != nil {
		return err
	}
	if *verbose {
		level = slog.LevelDebug
	}
	picture.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
	defer picture.SetLogger(nil)

	picture.SetWorkers(conf.Workers)
	defer picture.SetWorkers(1)

	cmds, err := pipeline.Parse(tokens)
	if err != nil {
		return err
	}

	src, err := codec.Load(input)
	if err != nil {
		return err
	}
	picture.Logger().Info("loaded", "path", input, "width", src.Width(), "height", src.Height())

	out, err := pipeline.Run(ctx, src, cmds, codec.Load)
	if err != nil {
		return err
	}

	if err := codec.Save(out, output, codec.Options{JPEGQuality: conf.JPEGQuality}); err != nil {
		return err
	}
	picture.Logger().Info("saved", "path", output, "width", out.Width(), "height", out.Height())
	return nil
}

func usage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "usage: picture [flags] <command>... <input> <output>")
	fmt.Fprintln(w, "\ncommands:")
	for _, c := range pipeline.Commands {
		fmt.Fprintf(w, "  %-24s %s\n", c.Usage, c.Description)
	}
	fmt.Fprintln(w, "\nflags:")
	fs.PrintDefaults()
}
