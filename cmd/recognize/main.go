// Command recognize extracts and resolves temporal expressions from
// text given on the command line or piped through stdin.
//
//	recognize --culture es-es "cada lunes a las 9"
//	echo "from 3pm to 5pm on monday" | recognize --json
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rubio41/Recognizers-Text/datetime"
	"github.com/rubio41/Recognizers-Text/datetime/english"
	"github.com/rubio41/Recognizers-Text/datetime/spanish"
)

type options struct {
	culture   string
	reference string
	asJSON    bool
}

type entity struct {
	Text       string            `json:"text"`
	Start      int               `json:"start"`
	End        int               `json:"end"`
	Type       string            `json:"type"`
	Timex      string            `json:"timex,omitempty"`
	Resolution map[string]string `json:"resolution,omitempty"`
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	opts := &options{}
	root := &cobra.Command{
		Use:          "recognize [text...]",
		Short:        "Recognize temporal expressions in natural-language text",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts, logger)
		},
	}
	root.Flags().StringVarP(&opts.culture, "culture", "c", english.Culture, "culture code (en-us, es-es)")
	root.Flags().StringVarP(&opts.reference, "reference", "r", "", "reference instant, RFC 3339 (default: now)")
	root.Flags().BoolVar(&opts.asJSON, "json", false, "emit entities as JSON")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string, opts *options, logger *slog.Logger) error {
	registry, err := buildRegistry()
	if err != nil {
		return err
	}

	reference := time.Now()
	if opts.reference != "" {
		reference, err = time.Parse(time.RFC3339, opts.reference)
		if err != nil {
			return fmt.Errorf("bad --reference %q: %w", opts.reference, err)
		}
	}

	components, ok := registry.Lookup(opts.culture)
	if !ok {
		return fmt.Errorf("unknown culture %q (have %s)",
			opts.culture, strings.Join(registry.Cultures(), ", "))
	}

	texts := args
	if len(texts) == 0 {
		scanner := bufio.NewScanner(cmd.InOrStdin())
		for scanner.Scan() {
			texts = append(texts, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	for _, text := range texts {
		if strings.TrimSpace(text) == "" {
			continue
		}
		results := components.Recognize(text, reference)
		logger.Debug("recognized", "culture", opts.culture, "entities", len(results))
		if opts.asJSON {
			if err := json.NewEncoder(out).Encode(toEntities(results)); err != nil {
				return err
			}
			continue
		}
		printPretty(out, text, results)
	}
	return nil
}

func buildRegistry() (*datetime.Registry, error) {
	registry := &datetime.Registry{}
	en, err := english.NewComponents()
	if err != nil {
		return nil, err
	}
	if err := registry.Register(english.Culture, en); err != nil {
		return nil, err
	}
	es, err := spanish.NewComponents()
	if err != nil {
		return nil, err
	}
	if err := registry.Register(spanish.Culture, es); err != nil {
		return nil, err
	}
	return registry, nil
}

func toEntities(results []datetime.ParseResult) []entity {
	entities := make([]entity, 0, len(results))
	for _, pr := range results {
		ent := entity{
			Text:  pr.Text,
			Start: pr.Start,
			End:   pr.End(),
			Type:  pr.Type,
			Timex: pr.Timex,
		}
		if pr.Value != nil {
			ent.Resolution = pr.Value.FutureResolution
		}
		entities = append(entities, ent)
	}
	return entities
}

var (
	spanColor = color.New(color.FgYellow, color.Bold)
	typeColor = color.New(color.FgCyan)
)

// printPretty echoes the input with matched spans highlighted, then one
// detail line per entity.
func printPretty(out io.Writer, text string, results []datetime.ParseResult) {
	var sb strings.Builder
	last := 0
	for _, pr := range results {
		if pr.Start < last {
			continue
		}
		sb.WriteString(text[last:pr.Start])
		sb.WriteString(spanColor.Sprint(text[pr.Start:pr.End()]))
		last = pr.End()
	}
	sb.WriteString(text[last:])
	fmt.Fprintln(out, sb.String())

	for _, pr := range results {
		fmt.Fprintf(out, "  %s %s", typeColor.Sprint(pr.Type), pr.Text)
		if pr.Timex != "" {
			fmt.Fprintf(out, "  timex=%s", pr.Timex)
		}
		if pr.Value != nil && len(pr.Value.FutureResolution) > 0 {
			fmt.Fprintf(out, "  %v", pr.Value.FutureResolution)
		}
		fmt.Fprintln(out)
	}
}
