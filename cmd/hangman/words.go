package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Show the loaded word list",
	Long: `Load the word list the same way play and serve do and print it.

Lines that are empty or contain anything other than the letters A-Z
are skipped. If no usable word is left, the built-in list is used.

Examples:
  hangman words
  hangman words --words ./animals.txt`,
	Args: cobra.NoArgs,
	Run:  runWords,
}

func runWords(cmd *cobra.Command, _ []string) {
	cfg := mustLoadConfig(cmd)
	bank := loadWords(cfg, newLogger(io.Discard, cfg, "hangman"))

	source := cfg.Words.File
	if bank.IsFallback() {
		source = "built-in list"
	}
	fmt.Printf("Words - %s (%d)\n", source, bank.Len())
	fmt.Println()

	for _, w := range bank.Words() {
		fmt.Printf("  %s\n", w)
	}
}
