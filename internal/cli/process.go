package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ppiankov/wikibase/internal/dump"
	"github.com/ppiankov/wikibase/internal/model"
	"github.com/ppiankov/wikibase/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	outJSON     string
	outMD       string
	project     string
	workers     int
	rateLimit   float64
	rateBurst   int
	noCache     bool
	noFooter    bool
	procTimeout time.Duration
)

// processCmd represents the process command
var processCmd = &cobra.Command{
	Use:   "process <dump-file>",
	Short: "Process a full entity dump and generate a usage report",
	Long: `Process streams every entity document out of a dump file to:
- Count items, properties, statements, and site links
- Aggregate property usage across main snaks, qualifiers, and references
- Measure label coverage per language
- Generate JSON and Markdown reports

The dump content type and date are inferred from the file name; bzip2
and gzip dumps are decompressed on the fly.

Example:
  wikibase process wikidata-20260801-all.json.gz
  wikibase process dump.json.gz --json report.json --md report.md
  wikibase process dump.json.gz --workers 8 --rate 5000`,
	Args: cobra.ExactArgs(1),
	RunE: runProcess,
}

func init() {
	rootCmd.AddCommand(processCmd)

	// Output flags
	processCmd.Flags().StringVar(&outJSON, "json", "report.json", "output JSON path")
	processCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	processCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")

	// Processing flags
	processCmd.Flags().StringVar(&project, "project", "wikidatawiki", "project name recorded in reports")
	processCmd.Flags().IntVar(&workers, "workers", 0, "concurrent entity workers (default: number of CPUs)")
	processCmd.Flags().Float64Var(&rateLimit, "rate", 0, "max entities per second per kind (0 = unlimited)")
	processCmd.Flags().IntVar(&rateBurst, "burst", 100, "rate limiter burst size")
	processCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the entity cache")
	processCmd.Flags().DurationVar(&procTimeout, "timeout", 0, "overall processing timeout (0 = none)")
}

func runProcess(cmd *cobra.Command, args []string) error {
	dumpPath := args[0]

	ctx := context.Background()
	if procTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, procTimeout)
		defer cancel()
	}

	// Build configuration from flags
	cfg := model.DefaultConfig()
	cfg.Dump.Project = project
	cfg.Cache.Enabled = !noCache
	cfg.Limits.EntitiesPerSecond = rateLimit
	cfg.Limits.Burst = rateBurst
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter
	if workers > 0 {
		cfg.Concurrency.Workers = workers
	}

	file := dump.NewLocalFile(dumpPath, cfg.Dump.Project)
	if !file.IsAvailable() {
		return fmt.Errorf("dump file not available: %s", dumpPath)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Processing: %s\n", file)
		fmt.Fprintf(os.Stderr, "Content type: %s\n", file.ContentType())
		fmt.Fprintf(os.Stderr, "Workers: %d\n", cfg.Concurrency.Workers)
		fmt.Fprintln(os.Stderr)
	}

	p := pipeline.NewPipeline(cfg, file)
	processor := pipeline.NewUsageProcessor()

	stats, err := p.ProcessDump(ctx, processor)
	if err != nil {
		return fmt.Errorf("process failed: %w", err)
	}

	report := processor.Report(cfg.Dump.Project, file.DateStamp())

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Decoded %d entities\n", stats.Entities())
		fmt.Fprintf(os.Stderr, "✓ Aggregated %d properties\n", len(report.Usage))
		fmt.Fprintln(os.Stderr)
	}

	// Render outputs
	renderer := pipeline.NewRenderer(cfg.Output.IncludeFooter)
	if outJSON != "" {
		if err := renderer.RenderJSON(report, outJSON); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", outJSON)
		}
	}
	if outMD != "" {
		if err := renderer.RenderMarkdown(report, outMD); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote Markdown: %s\n", outMD)
		}
	}

	renderer.RenderSummary(report, stats)
	return nil
}
