package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/exp/slog"

	"github.com/codepictor/metro/logging"
	"github.com/codepictor/metro/preprocessing"
	"github.com/codepictor/metro/routing"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil && !errors.Is(err, flag.ErrHelp) {
		os.Exit(1)
	}
}

// run validates a network and optionally writes it as a gob snapshot.
// The snapshot holds the network as the router resolved it, so
// duplicate links are already merged by the chosen link policy.
func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("netgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	in := fs.String("in", "", "network JSON file or CSV directory; empty uses the embedded network")
	out := fs.String("out", "", "path of the gob snapshot to write; empty only validates")
	policy := fs.String("link-policy", "reject", "duplicate link policy: reject or last-wins")
	level := fs.String("log-level", "info", "log level")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger, err := logging.New(*level, "text", stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return err
	}
	fail := func(msg string, err error) error {
		logger.Error(msg, slog.Any("error", err))
		return err
	}

	p, err := routing.ParseLinkPolicy(*policy)
	if err != nil {
		return fail("invalid link policy", err)
	}

	logger.Info("loading network", slog.String("in", *in))
	net, err := preprocessing.LoadNetworkFromFile(*in)
	if err != nil {
		return fail("failed to load network", err)
	}
	router, err := routing.NewRouter(net, routing.WithLinkPolicy(p))
	if err != nil {
		return fail("network is invalid", err)
	}
	resolved := router.Network()
	components := router.Graph().Components()

	fmt.Fprintf(stdout, "Network: %s\n", resolved.Name)
	fmt.Fprintf(stdout, "Summary: stations=%d links=%d lines=%d components=%d\n",
		len(resolved.Stations), len(resolved.Links), len(resolved.Lines), len(components))
	if dropped := len(net.Links) - len(resolved.Links); dropped > 0 {
		fmt.Fprintf(stdout, "Merged %d duplicate links (%s)\n", dropped, p)
	}
	if len(components) > 1 {
		for i, c := range components {
			fmt.Fprintf(stdout, "  component %d: %d stations, first %d\n", i+1, len(c), c[0])
		}
	}

	if *out == "" {
		return nil
	}
	if err := preprocessing.SaveNetworkGob(resolved, *out); err != nil {
		return fail("failed to write snapshot", err)
	}
	logger.Info("snapshot written", slog.String("out", *out))
	return nil
}
