package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

func newTranscodeCommand(ctx *commandContext) *cobra.Command {
	var outDir, stem string

	cmd := &cobra.Command{
		Use:   "transcode <input>",
		Short: "Encode a video into the HLS ladder without the server",
		Long: "Encode a video into every rendition of the default ladder and write the master\n" +
			"playlist under <out>/hls. The input file is consumed: it is removed once\n" +
			"ingestion finishes, whether it succeeds or fails.",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{ingestOnlyAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ingestConfig()
			if err != nil {
				return err
			}

			input, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolve input: %w", err)
			}

			coordinator, err := newIngestCoordinator(cfg, nil)
			if err != nil {
				return err
			}
			result, err := coordinator.Ingest(cmd.Context(), input, outDir, stem)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory")
	_ = cmd.MarkFlagRequired("out")
	cmd.Flags().StringVar(&stem, "stem", "stream", "Base name of rendition playlists and segments")
	return cmd
}
