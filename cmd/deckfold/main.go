// Package main provides the CLI entry point for deckfold.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/deckfold/deckfold"
)

var (
	outputPath   string
	outputFormat string
	slideSpec    string
	pretty       bool
	showNotes    bool
	showSections bool
	showMeta     bool
	showInfo     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "deckfold [input.pptx]",
		Short: "Extract text, tables and structure from PowerPoint files",
		Long: `deckfold extracts the document model of a PowerPoint presentation:
slide text, tables, placeholders, speaker notes, sections and metadata.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "Output format: text, markdown, json")
	rootCmd.Flags().StringVar(&slideSpec, "slides", "", "Slides to extract, e.g. \"1,3,5-7\" (default: all)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().BoolVar(&showNotes, "notes", false, "Print speaker notes instead of slide text")
	rootCmd.Flags().BoolVar(&showSections, "sections", false, "Print the section list instead of slide text")
	rootCmd.Flags().BoolVar(&showMeta, "metadata", false, "Print presentation metadata as JSON")
	rootCmd.Flags().BoolVar(&showInfo, "info", false, "Print an archive census as JSON")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	slides, err := parseSlides(slideSpec)
	if err != nil {
		return err
	}

	extractor := deckfold.Open(inputPath)
	if len(slides) > 0 {
		extractor = extractor.Slides(slides...)
	}

	switch {
	case showInfo:
		return runInfo(inputPath)
	case showMeta:
		return runMetadata(inputPath)
	case showSections:
		return runSections(inputPath)
	case showNotes:
		return runNotes(inputPath, slides)
	}

	var out string
	var diags []deckfold.Diagnostic
	switch outputFormat {
	case "text":
		out, diags, err = extractor.Text()
	case "markdown":
		out, diags, err = extractor.Markdown()
	case "json":
		var deck interface{}
		deck, diags, err = extractor.Deck()
		if err == nil {
			var data []byte
			data, err = marshal(deck)
			out = string(data)
		}
	default:
		return fmt.Errorf("invalid format: %s (must be text, markdown, or json)", outputFormat)
	}
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	for _, d := range diags {
		fmt.Fprintln(os.Stderr, "warning:", d.String())
	}
	return write(out)
}

func runInfo(inputPath string) error {
	info, err := deckfold.Open(inputPath).ArchiveInfo()
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}
	data, err := marshal(info)
	if err != nil {
		return err
	}
	return write(string(data))
}

func runMetadata(inputPath string) error {
	meta, err := deckfold.Open(inputPath).Metadata()
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}
	data, err := marshal(meta)
	if err != nil {
		return err
	}
	return write(string(data))
}

func runSections(inputPath string) error {
	membership, err := deckfold.Open(inputPath).SectionSlides()
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}
	data, err := marshal(membership)
	if err != nil {
		return err
	}
	return write(string(data))
}

func runNotes(inputPath string, slides []int) error {
	extractor := deckfold.Open(inputPath)
	if len(slides) == 0 {
		count, err := extractor.SlideCount()
		if err != nil {
			return fmt.Errorf("extraction failed: %w", err)
		}
		for n := 1; n <= count; n++ {
			slides = append(slides, n)
		}
	}

	var sb strings.Builder
	for _, n := range slides {
		notes, err := deckfold.Open(inputPath).Notes(n)
		if err != nil {
			return fmt.Errorf("extraction failed: %w", err)
		}
		if notes == "" {
			continue
		}
		fmt.Fprintf(&sb, "--- Slide %d ---\n%s\n", n, notes)
	}
	return write(sb.String())
}

func marshal(v interface{}) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

func write(out string) error {
	if outputPath != "" {
		if err := os.WriteFile(outputPath, []byte(out), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Println(out)
	return nil
}

// parseSlides expands a selection like "1,3,5-7" into slide numbers.
func parseSlides(spec string) ([]int, error) {
	if spec == "" {
		return nil, nil
	}
	var slides []int
	for _, piece := range strings.Split(spec, ",") {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}
		if lo, hi, ok := strings.Cut(piece, "-"); ok {
			start, err1 := strconv.Atoi(strings.TrimSpace(lo))
			end, err2 := strconv.Atoi(strings.TrimSpace(hi))
			if err1 != nil || err2 != nil || start > end {
				return nil, fmt.Errorf("invalid slide range: %s", piece)
			}
			for n := start; n <= end; n++ {
				slides = append(slides, n)
			}
			continue
		}
		n, err := strconv.Atoi(piece)
		if err != nil {
			return nil, fmt.Errorf("invalid slide number: %s", piece)
		}
		slides = append(slides, n)
	}
	return slides, nil
}
