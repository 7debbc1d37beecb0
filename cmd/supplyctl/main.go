package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/odyssey-erp/supplyhub/cmd/supplyctl/cli"
	"github.com/odyssey-erp/supplyhub/internal/app"
	"github.com/odyssey-erp/supplyhub/internal/dashboard"
	"github.com/odyssey-erp/supplyhub/internal/dashboard/filterstore"
	"github.com/odyssey-erp/supplyhub/internal/inventory"
	"github.com/odyssey-erp/supplyhub/internal/orders"
	"github.com/odyssey-erp/supplyhub/internal/platform/cache"
	"github.com/odyssey-erp/supplyhub/internal/suppliers"
	"github.com/odyssey-erp/supplyhub/internal/transport"
)

const usage = `usage:
  supplyctl <inventory|orders|suppliers> list [-json] [-q text] [-status s] [-warehouse id] [-supplier id] [-location st] [-performance p]
  supplyctl <inventory|orders|suppliers> show <id>
  supplyctl <inventory|orders|suppliers> update <id> [-f patch.json]
  supplyctl <inventory|orders|suppliers> create [-f record.json]
  supplyctl <inventory|orders|suppliers> draft
  supplyctl <inventory|orders|suppliers> alerts
  supplyctl summary [-json]
  supplyctl jobs trigger alerts:scan [module...]
  supplyctl jobs stats`

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	_ = godotenv.Load()

	cfg, err := app.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		return cli.ExitFailure
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, usage)
		return cli.ExitFailure
	}
	if args[0] == "jobs" {
		return runJobs(ctx, cfg, args[1:])
	}

	api, err := transport.New(cfg.APIBaseURL, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "api client: %v\n", err)
		return cli.ExitFailure
	}
	queryCache, closeCache, err := cache.NewQueryCache(ctx, cfg.CacheDriver, cfg.RedisAddr, cfg.CacheTTL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "query cache: %v\n", err)
		return cli.ExitFailure
	}
	defer func() { _ = closeCache() }()
	session := cli.NewSession(api, queryCache, os.Stderr, logger)

	if args[0] == "summary" {
		fs := flag.NewFlagSet("summary", flag.ContinueOnError)
		asJSON := fs.Bool("json", false, "print JSON")
		if err := fs.Parse(args[1:]); err != nil {
			return cli.ExitFailure
		}
		return session.SummaryCommand(ctx, cli.Output{JSON: *asJSON})
	}

	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		return cli.ExitFailure
	}
	module, command, rest := args[0], args[1], args[2:]
	switch module {
	case inventory.Module:
		return dispatch(ctx, session, session.Inventory, cli.InventoryTable, command, rest)
	case orders.Module:
		return dispatch(ctx, session, session.Orders, cli.OrderTable, command, rest)
	case suppliers.Module:
		return dispatch(ctx, session, session.Suppliers, cli.SupplierTable, command, rest)
	}
	fmt.Fprintf(os.Stderr, "unknown module %q\n%s\n", module, usage)
	return cli.ExitFailure
}

func dispatch[R, In any, F filterstore.Mergeable[F, P], P any](ctx context.Context, session *cli.Session, view *dashboard.View[R, In, F, P], table cli.Table[R], command string, args []string) int {
	fs := flag.NewFlagSet(view.Module()+" "+command, flag.ContinueOnError)
	asJSON := fs.Bool("json", false, "print JSON")
	file := fs.String("f", "-", "JSON input file, - for stdin")
	filters := map[string]*string{}
	if command == "list" {
		for _, name := range []string{"q", "status", "warehouse", "supplier", "location", "performance"} {
			filters[name] = fs.String(name, "", "filter by "+name)
		}
	}
	if err := fs.Parse(args); err != nil {
		return cli.ExitFailure
	}
	out := cli.Output{JSON: *asJSON}

	switch command {
	case "list":
		values := url.Values{}
		fs.Visit(func(f *flag.Flag) {
			if p, ok := filters[f.Name]; ok {
				values.Set(f.Name, *p)
			}
		})
		return cli.ListCommand(ctx, view, values, table, out)
	case "show":
		id, ok := requireID(fs)
		if !ok {
			return cli.ExitFailure
		}
		return cli.ShowCommand(ctx, view, id, out)
	case "update":
		id, ok := requireID(fs)
		if !ok {
			return cli.ExitFailure
		}
		in, closeIn, err := openInput(*file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open input: %v\n", err)
			return cli.ExitFailure
		}
		defer closeIn()
		return cli.UpdateCommand(ctx, view, id, in, out)
	case "create":
		in, closeIn, err := openInput(*file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open input: %v\n", err)
			return cli.ExitFailure
		}
		defer closeIn()
		return cli.CreateCommand(ctx, view, in, out)
	case "draft":
		return cli.DraftCommand(ctx, view, out)
	case "alerts":
		return session.AlertsCommand(ctx, view.Module(), out)
	}
	fmt.Fprintf(os.Stderr, "unknown command %q\n%s\n", command, usage)
	return cli.ExitFailure
}

func requireID(fs *flag.FlagSet) (string, bool) {
	if fs.NArg() != 1 || strings.TrimSpace(fs.Arg(0)) == "" {
		fmt.Fprintln(os.Stderr, "exactly one record id is required")
		return "", false
	}
	return fs.Arg(0), true
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}

func runJobs(ctx context.Context, cfg *app.Config, args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, usage)
		return cli.ExitFailure
	}
	jobsCLI := cli.NewJobsCLI(cfg.RedisAddr)
	defer func() { _ = jobsCLI.Close() }()

	switch args[0] {
	case "trigger":
		if len(args) < 2 {
			fmt.Fprintln(os.Stderr, "jobs trigger: job name required")
			return cli.ExitFailure
		}
		info, err := jobsCLI.Trigger(ctx, args[1], args[2:])
		if err != nil {
			fmt.Fprintf(os.Stderr, "jobs trigger: %v\n", err)
			return cli.ExitFailure
		}
		fmt.Printf("enqueued %s (%s) on %s\n", info.Type, info.ID, info.Queue)
		return cli.ExitOK
	case "stats":
		stats, err := jobsCLI.InspectQueue(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "jobs stats: %v\n", err)
			return cli.ExitFailure
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(stats)
		return cli.ExitOK
	}
	fmt.Fprintf(os.Stderr, "unknown jobs command %q\n", args[0])
	return cli.ExitFailure
}
