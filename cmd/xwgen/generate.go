package main

import (
	"bufio"
	"fmt"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tamberg/xwgen"
	"github.com/tamberg/xwgen/pkg/dictionary"
)

var (
	wordsFile         string
	excludedFile      string
	size              int
	seed              uint64
	minWordLength     int
	maxWordLength     int
	ordering          string
	maxBacktracks     int
	maxRestarts       int
	candidateCap      int
	verbose           bool
	profile           bool
	profileFile       string
	memoryProfileFile string
)

func init() {
	genCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one filled crossword grid",
		Long: `Load an admissible word list and fill a size x size grid.

Examples:
  xwgen generate --words words.txt --size 5 --seed 1
  xwgen generate --words words.txt --size 4 --ordering random`,
		RunE: runGenerate,
	}

	genCmd.Flags().StringVar(&wordsFile, "words", "", "File to load admissible words from, one per line (required)")
	genCmd.Flags().StringVar(&excludedFile, "excluded", "", "File of words to exclude, one per line")
	genCmd.Flags().IntVar(&size, "size", 5, "Grid dimension N, 3..7")
	genCmd.Flags().Uint64Var(&seed, "seed", 1, "Deterministic randomness seed")
	genCmd.Flags().IntVar(&minWordLength, "min-length", 0, "Shortest word length to index (0 = unbounded)")
	genCmd.Flags().IntVar(&maxWordLength, "max-length", 0, "Longest word length to index (0 = unbounded)")
	genCmd.Flags().StringVar(&ordering, "ordering", "heuristic", "Candidate ordering: heuristic or random")
	genCmd.Flags().IntVar(&maxBacktracks, "max-backtracks", 0, "Per-attempt backtrack budget (0 = default)")
	genCmd.Flags().IntVar(&maxRestarts, "max-restarts", 0, "Independent attempts before giving up (0 = default)")
	genCmd.Flags().IntVar(&candidateCap, "candidate-cap", 0, "Per-slot candidate truncation (0 = default)")
	genCmd.Flags().BoolVar(&verbose, "verbose", false, "Log attempt-level search progress")

	genCmd.Flags().BoolVar(&profile, "profile", false, "Profile the generator")
	genCmd.Flags().StringVar(&profileFile, "profile-file", "cpu.pprof", "File to write the CPU profile to")
	genCmd.Flags().StringVar(&memoryProfileFile, "memory-profile-file", "mem.pprof", "File to write the heap profile to")

	rootCmd.AddCommand(genCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if wordsFile == "" {
		return fmt.Errorf("--words is required")
	}

	var orderingValue xwgen.Ordering
	switch strings.ToLower(ordering) {
	case "heuristic", "":
		orderingValue = xwgen.Heuristic
	case "random":
		orderingValue = xwgen.Random
	default:
		return fmt.Errorf("unrecognized --ordering %q, want heuristic or random", ordering)
	}

	words, err := loadWordsFile(wordsFile)
	if err != nil {
		return fmt.Errorf("loading words: %w", err)
	}
	var excluded []string
	if excludedFile != "" {
		excluded, err = loadWordsFile(excludedFile)
		if err != nil {
			return fmt.Errorf("loading excluded words: %w", err)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Loaded %d candidate words (%d excluded)\n", len(words), len(excluded))

	dict, err := dictionary.Build(words, dictionary.BuildOptions{
		MinWordLength: minWordLength,
		MaxWordLength: maxWordLength,
		ExcludedWords: excluded,
	})
	if err != nil {
		return fmt.Errorf("building dictionary: %w", err)
	}

	if profile {
		f, err := os.Create(profileFile)
		if err != nil {
			return fmt.Errorf("creating CPU profile file: %w", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("starting CPU profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	var logger *zap.SugaredLogger
	if verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("building logger: %w", err)
		}
		defer l.Sync()
		logger = l.Sugar()
	}

	start := time.Now()
	puzzle, err := xwgen.Generate(xwgen.Config{
		Size:          size,
		Dictionary:    dict,
		Seed:          seed,
		MaxBacktracks: maxBacktracks,
		MaxRestarts:   maxRestarts,
		CandidateCap:  candidateCap,
		Ordering:      orderingValue,
		Logger:        logger,
	})
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Solved in %s\n", time.Since(start))
	fmt.Fprintln(cmd.OutOrStdout(), puzzle.Grid.Repr())

	for _, e := range puzzle.Entries.Across {
		fmt.Fprintf(cmd.OutOrStdout(), "%d Across: %s\n", e.Number, strings.ToUpper(e.Word))
	}
	for _, e := range puzzle.Entries.Down {
		fmt.Fprintf(cmd.OutOrStdout(), "%d Down: %s\n", e.Number, strings.ToUpper(e.Word))
	}

	if profile {
		mf, err := os.Create(memoryProfileFile)
		if err != nil {
			return fmt.Errorf("creating heap profile file: %w", err)
		}
		defer mf.Close()
		if err := pprof.WriteHeapProfile(mf); err != nil {
			return fmt.Errorf("writing heap profile: %w", err)
		}
	}

	return nil
}

func loadWordsFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		words = append(words, word)
	}
	return words, scanner.Err()
}
