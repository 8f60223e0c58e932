package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/exp/slog"

	"github.com/codepictor/metro/config"
	"github.com/codepictor/metro/logging"
	"github.com/codepictor/metro/preprocessing"
	"github.com/codepictor/metro/routing"
	"github.com/codepictor/metro/services"
	"github.com/codepictor/metro/utils"
)

type stringList []string

func (l *stringList) String() string { return strings.Join(*l, ",") }

func (l *stringList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

func main() {
	cfg, _ := config.Load()

	var via stringList
	from := flag.String("from", "", "start station: id, name or name@line")
	to := flag.String("to", "", "finish station: id, name or name@line")
	flag.Var(&via, "via", "waypoint station, repeat to visit several in order")
	network := flag.String("network", cfg.NetworkPath, "network file (.json, .gob) or CSV directory; empty uses the embedded network")
	linkPolicy := flag.String("link-policy", cfg.LinkPolicy, "duplicate link policy: reject or last-wins")
	dotPath := flag.String("dot", "", "write the network with the route highlighted as a Graphviz file")
	asJSON := flag.Bool("json", false, "print the route as JSON")
	logLevel := flag.String("log-level", "warn", "log level")
	flag.Parse()

	logger, err := logging.New(*logLevel, cfg.LogFormat, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	svc, err := newService(*network, *linkPolicy, logger)
	if err != nil {
		logger.Error("could not load network", slog.Any("error", err))
		os.Exit(1)
	}

	if *from == "" && *to == "" {
		if err := runInteractive(svc, os.Stdin, os.Stdout); err != nil {
			logger.Error("interactive session failed", slog.Any("error", err))
			os.Exit(1)
		}
		return
	}
	if *from == "" || *to == "" {
		fmt.Fprintln(os.Stderr, "both -from and -to are required")
		os.Exit(2)
	}

	req, err := utils.ParseRouteRequest(*from, *to, via)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	res, err := svc.CalculateRoute(context.Background(), req)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := printRoute(os.Stdout, svc, res, *asJSON); err != nil {
		logger.Error("could not print route", slog.Any("error", err))
		os.Exit(1)
	}

	if *dotPath != "" {
		if err := writeDOTFile(svc, *dotPath, &res.Route); err != nil {
			logger.Error("could not write DOT file", slog.String("path", *dotPath), slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("DOT file written", slog.String("path", *dotPath))
	}
}

func newService(networkPath, linkPolicy string, logger *slog.Logger) (*services.RoutingService, error) {
	policy, err := routing.ParseLinkPolicy(linkPolicy)
	if err != nil {
		return nil, err
	}
	net, err := preprocessing.LoadNetworkFromFile(networkPath)
	if err != nil {
		return nil, err
	}
	router, err := routing.NewRouter(net, routing.WithLinkPolicy(policy))
	if err != nil {
		return nil, err
	}
	return services.NewRoutingService(router, logger), nil
}

func printRoute(w io.Writer, svc *services.RoutingService, res services.RouteResult, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(svc.PrepareResponse(res))
	}
	_, err := fmt.Fprintln(w, res.Route)
	return err
}

func writeDOTFile(svc *services.RoutingService, path string, route *routing.Route) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := svc.WriteDOT(f, route); err != nil {
		return err
	}
	return f.Close()
}

// runInteractive reads commands from in until "exit" or end of input.
func runInteractive(svc *services.RoutingService, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	prompt := func(label string) (string, bool) {
		fmt.Fprint(out, label)
		if !scanner.Scan() {
			return "", false
		}
		return strings.TrimSpace(scanner.Text()), true
	}

	fmt.Fprintf(out, "=== %s ===\n", svc.Router().Name())
	for {
		fmt.Fprintln(out, "\nChoose an option:")
		fmt.Fprintln(out, "1. Find the shortest route")
		fmt.Fprintln(out, "2. Find a station")
		fmt.Fprintln(out, "3. Exit")
		choice, ok := prompt("Enter your choice (1-3): ")
		if !ok {
			return scanner.Err()
		}

		switch choice {
		case "1":
			from, _ := prompt("From (id, name or name@line): ")
			to, _ := prompt("To (id, name or name@line): ")
			viaLine, _ := prompt("Via, comma separated (empty for none): ")
			var via []string
			for _, v := range strings.Split(viaLine, ",") {
				if v = strings.TrimSpace(v); v != "" {
					via = append(via, v)
				}
			}
			req, err := utils.ParseRouteRequest(from, to, via)
			if err != nil {
				fmt.Fprintln(out, "Error:", err)
				continue
			}
			res, err := svc.CalculateRoute(context.Background(), req)
			if err != nil {
				fmt.Fprintln(out, "Error:", err)
				continue
			}
			if err := printRoute(out, svc, res, false); err != nil {
				return err
			}
		case "2":
			name, _ := prompt("Station name: ")
			found := svc.FindStations(name)
			if len(found) == 0 {
				fmt.Fprintf(out, "No station named %q\n", name)
				continue
			}
			for _, s := range found {
				fmt.Fprintf(out, "  %d  %s (line %d %s)\n", s.ID, s.Name, s.Line, s.LineName)
			}
		case "3", "exit", "quit":
			fmt.Fprintln(out, "Goodbye!")
			return nil
		default:
			fmt.Fprintln(out, "Invalid choice. Please try again.")
		}
	}
}
