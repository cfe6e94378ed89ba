package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vocab-forge/vocabforge/internal/gen"
	"github.com/vocab-forge/vocabforge/internal/models"
	"github.com/vocab-forge/vocabforge/internal/permission"
	"github.com/vocab-forge/vocabforge/internal/scheduler"
)

var generateCmd = &cobra.Command{
	Use:   "generate <id>",
	Short: "Regenerate content for a single item",
	Long: `Re-run generation for one item regardless of its status, outside the
pipeline's context filter. By default regenerates the linguistic data;
--image and --audio generate media instead.

Generation output lands in common-scope fields, so the command requires
the common scope for the item's app.`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

var (
	generateImage bool
	generateAudio bool
	generateVoice string
	generateStyle string
)

func init() {
	generateCmd.Flags().BoolVar(&generateImage, "image", false, "Generate an illustrative image")
	generateCmd.Flags().BoolVar(&generateAudio, "audio", false, "Generate pronunciation audio")
	generateCmd.Flags().StringVar(&generateVoice, "voice", "", "Voice for audio generation")
	generateCmd.Flags().StringVar(&generateStyle, "style", "", "Delivery style for audio generation")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	id := args[0]

	e, err := openEnv()
	if err != nil {
		return trackCLIError("generate", err)
	}
	defer e.close()

	user, err := e.session()
	if err != nil {
		return trackCLIError("generate", err)
	}

	item, err := e.store.Get(id)
	if err != nil {
		return trackCLIError("generate", err)
	}

	if !permission.CanEditCommon(user, item.AppName) {
		return trackCLIError("generate", fmt.Errorf("permission denied: no common scope for app %q", item.AppName))
	}

	generator, err := gen.NewGenerator(e.cfg.Gen)
	if err != nil {
		return trackCLIError("generate", err)
	}

	switch {
	case generateImage:
		return trackCLIError("generate", regenerateImage(cmd, e, generator, item))
	case generateAudio:
		return trackCLIError("generate", regenerateAudio(cmd, e, generator, item))
	default:
		sched := scheduler.New(e.store, generator)
		updated, err := sched.Regenerate(cmd.Context(), id)
		if err != nil {
			telemetryClient.TrackGenerationFailed(generator.Name())
			return trackCLIError("generate", fmt.Errorf("regenerate %q: %w", item.Term, err))
		}
		fmt.Printf("Regenerated %q (%s)\n", updated.Term, updated.Status)
		return nil
	}
}

// regenerateImage fetches a new image and patches it onto the item's
// latest state, leaving unrelated concurrent field changes intact.
func regenerateImage(cmd *cobra.Command, e *env, generator gen.Generator, item *models.VocabItem) error {
	imageURL, err := generator.GenerateImage(cmd.Context(), item.Term)
	if err != nil {
		telemetryClient.TrackGenerationFailed(generator.Name())
		return fmt.Errorf("generate image for %q: %w", item.Term, err)
	}

	if _, err := e.store.Update(cmd.Context(), item.ID, func(it *models.VocabItem) {
		it.ImageURL = imageURL
	}); err != nil {
		return err
	}
	fmt.Printf("Generated image for %q\n", item.Term)
	return nil
}

// regenerateAudio synthesizes pronunciation audio for the term.
func regenerateAudio(cmd *cobra.Command, e *env, generator gen.Generator, item *models.VocabItem) error {
	voice := generateVoice
	if voice == "" {
		voice = e.cfg.Gen.Voice
	}
	style := generateStyle
	if style == "" {
		style = e.cfg.Gen.Style
	}

	audioURL, err := generator.GenerateAudio(cmd.Context(), item.Term, voice, style)
	if err != nil {
		telemetryClient.TrackGenerationFailed(generator.Name())
		return fmt.Errorf("generate audio for %q: %w", item.Term, err)
	}

	if _, err := e.store.Update(cmd.Context(), item.ID, func(it *models.VocabItem) {
		it.AudioURL = audioURL
	}); err != nil {
		return err
	}
	fmt.Printf("Generated audio for %q\n", item.Term)
	return nil
}
