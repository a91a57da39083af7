package commands

import (
	"github.com/spf13/cobra"

	"github.com/stripseq/stripseq/config"
)

var (
	cfgPath string
	cfg     config.Config

	lexiconPath string
	languages   []string
	dpi         int
)

func Execute() error {
	root := &cobra.Command{
		Use:          "stripseq",
		Short:        "Reconstruct the reading order of comic strip images from their text",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path := cfgPath
			if path == "" {
				var err error
				if path, err = config.Path(); err != nil {
					return err
				}
			}
			var err error
			if cfg, err = config.Load(path); err != nil {
				return err
			}
			// Flags override the file.
			if lexiconPath != "" {
				cfg.Lexicon = lexiconPath
			}
			if len(languages) > 0 {
				cfg.Languages = languages
			}
			if dpi > 0 {
				cfg.DPI = dpi
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default $STRIPSEQ_CONFIG or the user config dir)")
	root.PersistentFlags().StringVar(&lexiconPath, "lexicon", "", "word-vector SQLite database")
	root.PersistentFlags().StringSliceVar(&languages, "langs", nil, "OCR language hints (e.g. eng,fra)")
	root.PersistentFlags().IntVar(&dpi, "dpi", 0, "assumed image resolution")

	root.AddCommand(orderCmd(), extractCmd(), lexiconCmd())
	return root.Execute()
}
