package commands

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/stripseq/stripseq/engine"
	"github.com/stripseq/stripseq/lexicon"
)

func lexiconCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lexicon",
		Short: "Manage the word-vector lexicon",
	}
	cmd.AddCommand(lexiconImportCmd(), lexiconNearestCmd())
	return cmd
}

func lexiconImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <vectors file>",
		Short: "Import word vectors in the word2vec/GloVe text format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			db, err := engine.Open(cfg.Lexicon)
			if err != nil {
				return fmt.Errorf("open lexicon %s: %w", cfg.Lexicon, err)
			}
			defer db.Close()

			n, err := lexicon.Load(cmd.Context(), db, f)
			if err != nil {
				return err
			}
			log.Printf("imported %d words into %s", n, cfg.Lexicon)
			return nil
		},
	}
}

func lexiconNearestCmd() *cobra.Command {
	var k int

	cmd := &cobra.Command{
		Use:   "nearest <word>",
		Short: "Show the vocabulary words closest to the given word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := engine.RegisterLexiconFunctions(nil); err != nil {
				return err
			}
			db, err := engine.Open(cfg.Lexicon)
			if err != nil {
				return fmt.Errorf("open lexicon %s: %w", cfg.Lexicon, err)
			}
			defer db.Close()

			matches, err := lexicon.Nearest(cmd.Context(), db, args[0], k)
			if err != nil {
				return err
			}
			for _, m := range matches {
				fmt.Fprintf(cmd.OutOrStdout(), "%-24s %.4f\n", m.Word, m.Similarity)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&k, "count", "k", 10, "number of matches to show")
	return cmd
}
