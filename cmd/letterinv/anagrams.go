package main

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tien-han/LetterInventory/anagram"
)

type anagramOptions struct {
	mainDict string
	added    []string
	include  []string
	exclude  []string
	limit    int
}

func newAnagramsCmd() *cobra.Command {
	opts := &anagramOptions{}

	cmd := &cobra.Command{
		Use:   "anagrams PHRASE...",
		Short: "List anagrams of a phrase from the built-in dictionaries",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, err := opts.dictionary(cmd.Flags().Changed("added"))
			if err != nil {
				return err
			}
			return runAnagrams(cmd, strings.Join(args, " "), dict, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.mainDict, "dict", "d", "", "main dictionary by name (default: the first one)")
	cmd.Flags().StringSliceVarP(&opts.added, "added", "a", nil, "added dictionaries to use (default: those enabled by default)")
	cmd.Flags().StringArrayVarP(&opts.include, "include", "i", nil, "phrase every anagram must contain (repeatable)")
	cmd.Flags().StringSliceVarP(&opts.exclude, "exclude", "x", nil, "words to leave out")
	cmd.Flags().IntVarP(&opts.limit, "limit", "n", 50, "stop after this many anagrams, 0 for all")

	return cmd
}

func findDictionary(dicts []*anagram.Dictionary, name string) (*anagram.Dictionary, bool) {
	for _, d := range dicts {
		if strings.EqualFold(d.Name, name) {
			return d, true
		}
	}
	return nil, false
}

func dictionaryNames(dicts []*anagram.Dictionary) string {
	names := make([]string, len(dicts))
	for i, d := range dicts {
		names[i] = d.Name
	}
	return strings.Join(names, ", ")
}

// dictionary merges the chosen main dictionary with the added ones. When
// addedChanged is false the added dictionaries keep their default flags.
func (opts *anagramOptions) dictionary(addedChanged bool) (*anagram.Dictionary, error) {
	mainDicts, addedDicts, err := anagram.ReadDictionaries()
	if err != nil {
		return nil, fmt.Errorf("load dictionaries: %w", err)
	}

	mainDict := mainDicts[0]
	if opts.mainDict != "" {
		var ok bool
		if mainDict, ok = findDictionary(mainDicts, opts.mainDict); !ok {
			return nil, fmt.Errorf("unknown dictionary %q (have %s)", opts.mainDict, dictionaryNames(mainDicts))
		}
	}

	dicts := []*anagram.Dictionary{mainDict}
	if addedChanged {
		for _, name := range opts.added {
			d, ok := findDictionary(addedDicts, name)
			if !ok {
				return nil, fmt.Errorf("unknown added dictionary %q (have %s)", name, dictionaryNames(addedDicts))
			}
			dicts = append(dicts, d)
		}
	} else {
		for _, d := range addedDicts {
			if d.Enabled {
				dicts = append(dicts, d)
			}
		}
	}

	return anagram.MergeDictionaries(opts.exclude, dicts...), nil
}

func runAnagrams(cmd *cobra.Command, input string, dict *anagram.Dictionary, opts *anagramOptions) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	slog.Debug("finding anagrams", "input", input, "dicts", dict.Name, "words", len(dict.Words))

	normalized := anagram.Normalize(input)
	found := 0
	for result := range anagram.FindAnagrams(ctx, input, slices.Clone(opts.include), dict) {
		if anagram.Normalize(result) == normalized {
			continue
		}
		fmt.Fprintln(cmd.OutOrStdout(), result)
		found++
		if opts.limit > 0 && found >= opts.limit {
			cancel()
			break
		}
	}

	if err := cmd.Context().Err(); err != nil {
		return err
	}
	slog.Info("anagram search done", "input", input, "found", found)
	return nil
}
