package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/ppiankov/wikibase/internal/dump"
	"github.com/ppiankov/wikibase/internal/model"
	"github.com/ppiankov/wikibase/internal/pipeline"
	"github.com/ppiankov/wikibase/internal/worker"
	"github.com/spf13/cobra"
)

var (
	idsFile     string
	getProject  string
	getNoCache  bool
	getTimeout  time.Duration
	concurrency int
)

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get <dump-file> [entity-id...]",
	Short: "Look up entity documents in a dump by id",
	Long: `Get scans a dump file for the requested entity ids and prints their
documents as JSON, one per line. Resolved documents are cached, keyed
by dump date, so repeated lookups against the same dump are fast.

Ids can be given as arguments or read from a file (one per line,
'#' starts a comment).

Example:
  wikibase get dump.json.gz Q42
  wikibase get dump.json.gz Q42 P31 Q64
  wikibase get dump.json.gz --ids-file ids.txt`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGet,
}

func init() {
	rootCmd.AddCommand(getCmd)

	getCmd.Flags().StringVar(&idsFile, "ids-file", "", "file with entity ids, one per line")
	getCmd.Flags().StringVar(&getProject, "project", "wikidatawiki", "project name of the dump")
	getCmd.Flags().BoolVar(&getNoCache, "no-cache", false, "disable the entity cache")
	getCmd.Flags().DurationVar(&getTimeout, "timeout", 10*time.Minute, "overall lookup timeout")
	getCmd.Flags().IntVar(&concurrency, "concurrency", 4, "concurrent lookups")
}

func runGet(cmd *cobra.Command, args []string) error {
	dumpPath := args[0]
	ids := args[1:]

	if idsFile != "" {
		fileIDs, err := worker.ReadEntityIDsFromFile(idsFile)
		if err != nil {
			return fmt.Errorf("read ids: %w", err)
		}
		ids = append(ids, fileIDs...)
	}
	if len(ids) == 0 {
		return fmt.Errorf("no entity ids given (pass them as arguments or via --ids-file)")
	}

	ctx, cancel := context.WithTimeout(context.Background(), getTimeout)
	defer cancel()

	cfg := model.DefaultConfig()
	cfg.Dump.Project = getProject
	cfg.Cache.Enabled = !getNoCache
	cfg.Output.Verbose = verbose

	file := dump.NewLocalFile(dumpPath, cfg.Dump.Project)
	if !file.IsAvailable() {
		return fmt.Errorf("dump file not available: %s", dumpPath)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Dump: %s\n", file)
		fmt.Fprintf(os.Stderr, "Looking up %d entities\n", len(ids))
		fmt.Fprintln(os.Stderr)
	}

	p := pipeline.NewPipeline(cfg, file)
	processor := worker.NewBatchProcessor(p, concurrency)

	results := processor.ProcessIDs(ctx, ids)

	failed := 0
	for _, res := range results {
		if res.Error != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", res.ID, res.Error)
			continue
		}
		data, err := json.Marshal(res.Document)
		if err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", res.ID, err)
			continue
		}
		fmt.Println(string(data))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d lookups failed", failed, len(results))
	}
	return nil
}
