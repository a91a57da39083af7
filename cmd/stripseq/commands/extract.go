package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/stripseq/stripseq/extract"
)

func extractCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extract <image>",
		Short: "Print the text recognized in a single image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			normalized, format, err := extract.Normalize(data)
			if err != nil {
				return err
			}

			in := extract.Input{
				ID:     filepath.Base(args[0]),
				Image:  normalized,
				Format: extract.ImageFormatPNG,
			}
			extract.WithLanguages(cfg.Languages...)(&in)
			if cfg.DPI > 0 {
				extract.WithDPI(cfg.DPI)(&in)
			}

			res, err := extract.DefaultEngine().Extract(cmd.Context(), in)
			if err != nil {
				return fmt.Errorf("extract %s (%s): %w", args[0], format, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Text)
			return nil
		},
	}
}
