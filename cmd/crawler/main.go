// Command crawler is the multi-threaded CLI front-end of spec §6:
//
//	crawler <URL> <OUT_DIR> <NUM_THREADS>
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/harborcrawl/crawler/internal/crawler"
	"github.com/harborcrawl/crawler/internal/platform/filestore"
	"github.com/harborcrawl/crawler/internal/platform/httpclient"
	"github.com/harborcrawl/crawler/internal/platform/logging"
)

var errNumThreads = errors.New("NUM_THREADS must be a positive integer")

func main() {
	root := &cobra.Command{
		Use:           "crawler <URL> <OUT_DIR> <NUM_THREADS>",
		Short:         "Crawl starting from URL, writing fetched pages under OUT_DIR",
		Args:          cobra.ExactArgs(3),
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

	threads, err := strconv.Atoi(args[2])
	if err != nil || threads <= 0 {
		return errNumThreads
	}

	persister, err := filestore.New(outDir)
	if err != nil {
		return err
	}

	coord := crawler.NewCoordinator(crawler.Config{
		Fetcher:    httpclient.New(httpclient.Config{}),
		Persister:  persister,
		NumWorkers: threads,
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
