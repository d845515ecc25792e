// Command single is the single-threaded CLI front-end of spec §6:
//
//	single <URL> <OUT_DIR>
//
// It runs the same coordinator as cmd/crawler with a fixed thread count
// of 1 and no worker pool beyond what that implies.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/harborcrawl/crawler/internal/crawler"
	"github.com/harborcrawl/crawler/internal/platform/filestore"
	"github.com/harborcrawl/crawler/internal/platform/httpclient"
	"github.com/harborcrawl/crawler/internal/platform/logging"
)

func main() {
	root := &cobra.Command{
		Use:           "single <URL> <OUT_DIR>",
		Short:         "Crawl starting from URL, single-threaded, writing fetched pages under OUT_DIR",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runE,
	}

	if err := root.Execute(); err != nil {
		logging.Fatal("%v", err)
	}
}

func runE(cmd *cobra.Command, args []string) error {
	seedURL, outDir := args[0], args[1]

	persister, err := filestore.New(outDir)
	if err != nil {
		return err
	}

	coord := crawler.NewCoordinator(crawler.Config{
		Fetcher:    httpclient.New(httpclient.Config{}),
		Persister:  persister,
		NumWorkers: 1,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logging.Info("received interrupt, stopping after the current round")
		cancel()
	}()

	return coord.Start(ctx, seedURL)
}
