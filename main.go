package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/harrisonrobin/linka/pkg/config"
	"github.com/harrisonrobin/linka/pkg/linker"
	"github.com/harrisonrobin/linka/pkg/notion"
)

// runTimeout bounds one whole batch; the store's client defaults govern
// individual requests.
const runTimeout = 10 * time.Minute

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Sugar()

	cfg, err := config.FromEnv()
	if err != nil {
		if errors.Is(err, config.ErrMissingEnv) {
			log.Errorw("startup aborted", "error", err)
		} else {
			log.Errorw("invalid configuration", "error", err)
		}
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	client := notion.NewClient(ctx, cfg.APIKey)
	summary := linker.New(client, cfg, log).Run(ctx)

	log.Infow("run complete",
		"discovered", summary.Discovered,
		"linked", summary.Linked,
		"unmatched", summary.Unmatched,
		"skipped", summary.Skipped,
		"failed", summary.Failed)
}
