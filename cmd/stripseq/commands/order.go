package commands

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/stripseq/stripseq/engine"
	"github.com/stripseq/stripseq/extract"
	"github.com/stripseq/stripseq/lexicon"
	"github.com/stripseq/stripseq/oracle/wmd"
	"github.com/stripseq/stripseq/order"
	"github.com/stripseq/stripseq/present"
	"github.com/stripseq/stripseq/strip"
)

func orderCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "order <image>...",
		Short: "Extract text from the images and write them as an ordered HTML strip",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := engine.RegisterLexiconFunctions(nil); err != nil {
				return err
			}
			db, err := engine.Open(cfg.Lexicon)
			if err != nil {
				return fmt.Errorf("open lexicon %s: %w", cfg.Lexicon, err)
			}
			defer db.Close()

			lex, err := lexicon.NewSQLite(db)
			if err != nil {
				return err
			}

			uploads := make([]strip.Upload, len(args))
			for i, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				uploads[i] = strip.Upload{Name: filepath.Base(path), Data: data}
			}

			pipeline := &strip.Pipeline{
				Engine:    extract.DefaultEngine(),
				Oracle:    wmd.New(lex),
				Languages: cfg.Languages,
				DPI:       cfg.DPI,
			}

			panels, err := pipeline.Extract(cmd.Context(), uploads)
			if err != nil {
				return err
			}
			result, err := pipeline.Order(panels)
			if errors.Is(err, order.ErrNoSelectableCandidate) {
				// An unorderable batch (e.g. no vocabulary overlap) still
				// renders, in upload order.
				log.Printf("warning: %v; keeping upload order", err)
				result = strip.Unordered(panels)
			} else if err != nil {
				return err
			}

			if output == "" {
				output = cfg.Output
			}
			return writePage(output, result)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output HTML file (default from config)")
	return cmd
}

func writePage(path string, result *strip.Strip) error {
	page := present.Page{Title: cfg.Title, RunID: result.RunID}
	for _, panel := range result.Panels {
		page.Panels = append(page.Panels, present.Panel{
			Name:  panel.Segment.Name(),
			Image: panel.Image,
			Lines: panel.Segment.Lines(),
		})
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := present.Render(f, page); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	log.Printf("wrote %d panels to %s", len(page.Panels), path)
	return nil
}
