package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vocab-forge/vocabforge/internal/gen"
	"github.com/vocab-forge/vocabforge/internal/models"
	"github.com/vocab-forge/vocabforge/internal/scheduler"
)

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Enrich all pending items in the active context",
	Long: `Run the enrichment pipeline over the active (app, language) context.

Pending items are processed strictly one at a time, in stable catalog
order. A failed generation marks the item with an error indicator and
moves on; errored items are only retried after an explicit
'vocabforge reset'. Interrupting with Ctrl-C stops after the item in
flight.`,
	RunE: runProcess,
}

var (
	processApp  string
	processLang string
)

func init() {
	processCmd.Flags().StringVar(&processApp, "app", "", "App (default: active context)")
	processCmd.Flags().StringVar(&processLang, "lang", "", "Language code (default: active context)")
}

func runProcess(cmd *cobra.Command, args []string) error {
	start := time.Now()

	e, err := openEnv()
	if err != nil {
		return trackCLIError("process", err)
	}
	defer e.close()

	if _, err := e.session(); err != nil {
		return trackCLIError("process", err)
	}

	dataset, err := e.resolveContext(processApp, processLang)
	if err != nil {
		return trackCLIError("process", err)
	}

	generator, err := gen.NewGenerator(e.cfg.Gen)
	if err != nil {
		return trackCLIError("process", err)
	}

	sched := scheduler.New(e.store, generator)
	sched.OnProgress = func(item models.VocabItem) {
		fmt.Printf("  %s %4d  %s\n", statusGlyph(item.Status), item.IntID, item.Term)
		if item.Status == models.StatusError {
			telemetryClient.TrackGenerationFailed(generator.Name())
		}
	}

	fmt.Printf("Processing %s / %s with %s...\n", dataset.AppName, dataset.LangCode, generator.Name())

	result, err := sched.Run(cmd.Context(), dataset.AppName, dataset.LangCode)

	durationMs := time.Since(start).Milliseconds()
	telemetryClient.TrackProcessRunCompleted(result.Processed, result.Completed, result.Errored, durationMs)

	if err != nil {
		fmt.Printf("\nStopped after %d items (%d completed, %d errors).\n",
			result.Processed, result.Completed, result.Errored)
		return trackCLIError("process", err)
	}

	if result.Processed == 0 {
		fmt.Println("Nothing pending; context is idle.")
		return nil
	}

	fmt.Printf("\nDone: %d items processed, %d completed, %d errors.\n",
		result.Processed, result.Completed, result.Errored)
	if result.Errored > 0 {
		fmt.Println("Use 'vocabforge reset <id>' to requeue failed items.")
	}
	return nil
}
