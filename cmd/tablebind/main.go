package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/suparena/tablebind"
	"github.com/suparena/tablebind/gologger"
	"github.com/suparena/tablebind/registry"
	"github.com/suparena/tablebind/settings"
	"github.com/suparena/tablebind/storagemodels"
	"github.com/suparena/tablebind/tableservice/ddb"
)

var (
	versionFlag  = flag.Bool("version", false, "Show version information")
	vFlag        = flag.Bool("v", false, "Show version information (short)")
	bindingsFlag = flag.String("bindings", "bindings.yaml", "Path to the binding declarations file")
	nameFlag     = flag.String("name", "", "Name of the binding to invoke")
	listFlag     = flag.Bool("list", false, "List declared bindings and exit")
)

func main() {
	// Parse flags early to catch version flag
	flag.Parse()

	// Handle version flag
	if *versionFlag || *vFlag {
		info := tablebind.GetVersionInfo()
		fmt.Printf("tablebind version %s\n", info.Version)
		fmt.Printf("Git commit: %s\n", info.GitCommit)
		fmt.Printf("Build date: %s\n", info.BuildDate)
		fmt.Printf("Go version: %s\n", info.GoVersion)
		os.Exit(0)
	}

	logger := gologger.NewLogger()

	// .env is optional; real environments configure directly.
	_ = godotenv.Load()

	if err := registry.LoadFile(*bindingsFlag); err != nil {
		logger.Fatal().Err(err).Str("file", *bindingsFlag).Msg("failed to load binding declarations")
	}

	if *listFlag {
		for _, name := range registry.Names() {
			fmt.Println(name)
		}
		os.Exit(0)
	}

	if *nameFlag == "" {
		logger.Fatal().Msg("missing -name: which binding to invoke")
	}
	decl, ok := registry.Get(*nameFlag)
	if !ok {
		logger.Fatal().Str("name", *nameFlag).Msg("binding not declared")
	}

	bctx, err := parseContext(flag.Args())
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid binding context argument")
	}

	client, err := ddb.NewDynamoDBClient(
		os.Getenv("AWS_ACCESS_KEY_ID"),
		os.Getenv("AWS_SECRET_ACCESS_KEY"),
		os.Getenv("AWS_REGION"),
	)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create DynamoDB client")
	}

	binding, err := tablebind.NewBinding(decl, ddb.NewService(client), settings.Env{})
	if err != nil {
		logger.Fatal().Err(err).Str("name", *nameFlag).Msg("failed to construct binding")
	}

	ctx := context.Background()
	switch decl.Direction {
	case tablebind.DirectionWrite:
		input, err := io.ReadAll(os.Stdin)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to read stdin")
		}
		records, err := storagemodels.DecodeRecords(input)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to decode input records")
		}
		if err := binding.Write(ctx, bctx, records...); err != nil {
			logger.Fatal().Err(err).Msg("write failed")
		}
		logger.Info().Int("records", len(records)).Str("table", decl.TableName).Msg("records written")

	case tablebind.DirectionRead:
		out := bufio.NewWriter(os.Stdout)
		found, err := binding.Read(ctx, bctx, out)
		if err != nil {
			logger.Fatal().Err(err).Msg("read failed")
		}
		if !found {
			logger.Warn().Str("name", *nameFlag).Msg("entity not found")
			os.Exit(1)
		}
		fmt.Println()
	}
}

// parseContext turns trailing key=value arguments into the binding context.
func parseContext(args []string) (tablebind.Context, error) {
	bctx := tablebind.Context{}
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("expected key=value, got %q", arg)
		}
		bctx[key] = value
	}
	return bctx, nil
}
