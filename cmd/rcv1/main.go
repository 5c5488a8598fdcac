// Command rcv1 fetches the RCV1-v2 dataset into a local cache and reports on
// the assembled matrices.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hupe1980/rcv1go"
	"github.com/hupe1980/rcv1go/objcache"
)

var (
	dataHome   string
	baseURL    string
	cacheKind  string
	noDownload bool
	doShuffle  bool
	seed       int64
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "rcv1",
	Short: "Fetch and inspect the RCV1-v2 text categorization dataset",
	Long: `Downloads the RCV1-v2 vector and topic files, assembles them into
aligned sparse matrices, and caches the result so later runs skip the
network.`,
	SilenceUsage: true,
}

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download and cache the dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := load(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("fetched %d documents, %d features, %d topics\n",
			ds.Data.Rows, ds.Data.Cols, ds.Target.Cols)
		return nil
	},
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print shapes and density of the cached dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := load(cmd.Context())
		if err != nil {
			return err
		}

		dataDensity := float64(ds.Data.NNZ()) / (float64(ds.Data.Rows) * float64(ds.Data.Cols))
		targetDensity := float64(ds.Target.NNZ()) / (float64(ds.Target.Rows) * float64(ds.Target.Cols))

		fmt.Printf("data:    %d x %d, %d nonzeros (%.2f%%)\n",
			ds.Data.Rows, ds.Data.Cols, ds.Data.NNZ(), 100*dataDensity)
		fmt.Printf("target:  %d x %d, %d nonzeros (%.2f%%)\n",
			ds.Target.Rows, ds.Target.Cols, ds.Target.NNZ(), 100*targetDensity)
		fmt.Printf("topics:  %v ...\n", ds.TargetNames[:min(5, len(ds.TargetNames))])
		fmt.Printf("samples: %v ...\n", ds.SampleID[:min(5, len(ds.SampleID))])
		return nil
	},
}

func load(ctx context.Context) (*rcv1go.Dataset, error) {
	opts := []rcv1go.Option{
		rcv1go.WithBaseURL(baseURL),
		rcv1go.WithDownloadIfMissing(!noDownload),
	}

	if dataHome != "" {
		opts = append(opts, rcv1go.WithDataHome(dataHome))
	}
	if cacheKind == "sqlite" {
		dir := dataHome
		if dir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, err
			}
			dir = filepath.Join(home, "rcv1go_data")
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
		store, err := objcache.NewSQLite(filepath.Join(dir, "rcv1.db"))
		if err != nil {
			return nil, err
		}
		opts = append(opts, rcv1go.WithCacheStore(store))
	}

	if doShuffle {
		opts = append(opts, rcv1go.WithShuffle(), rcv1go.WithRandomSeed(seed))
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	opts = append(opts, rcv1go.WithLogger(rcv1go.NewTextLogger(level)))

	return rcv1go.Fetch(ctx, opts...)
}

func main() {
	rootCmd.PersistentFlags().StringVar(&dataHome, "data-home", "", "cache root directory (default $RCV1GO_DATA or ~/rcv1go_data)")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", rcv1go.DefaultBaseURL, "base URL of the published archives")
	rootCmd.PersistentFlags().StringVar(&cacheKind, "cache", "dir", "cache backend: dir or sqlite")
	rootCmd.PersistentFlags().BoolVar(&noDownload, "no-download", false, "fail instead of downloading when artifacts are missing")
	rootCmd.PersistentFlags().BoolVar(&doShuffle, "shuffle", false, "shuffle documents with a shared permutation")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "shuffle seed")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(fetchCmd, infoCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
