// Command dosectl drives one adaptive HEXACO session end-to-end on the
// command line, for manual exercise of the engine outside a test.
//
// Scenario:
//   - Load the embedded reference item bank and the default configuration
//     (or a config file override via -config).
//   - Start a session, then feed it a deterministic scripted response
//     sequence (or read responses interactively with -interactive).
//   - Print each presented item and the running per-trait estimates, then
//     the final snapshot once every trait stops.
//
// Expectation: a readable trace of item presentation order, stopping
// reasons, and final theta/SE per trait.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/adaptivesurvey/dose"
	"github.com/adaptivesurvey/dose/engineconfig"
	"github.com/adaptivesurvey/dose/itembank"
	"github.com/adaptivesurvey/dose/session"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML engineconfig file (optional)")
	interactive := flag.Bool("interactive", false, "prompt for each response on stdin instead of using the scripted sequence")
	verbose := flag.Bool("verbose", false, "enable debug-level logging")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := run(*configPath, *interactive); err != nil {
		log.Error().Err(err).Msg("dosectl failed")
		os.Exit(1)
	}
}

func run(configPath string, interactive bool) error {
	bank, err := itembank.ReferenceBank()
	if err != nil {
		return fmt.Errorf("load reference bank: %w", err)
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	eng := dose.NewEngine(bank, cfg)

	id, item, err := eng.StartSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	fmt.Printf("session %s started, first item %d, trait=%s\n", id, item.Number, item.Trait)

	reader := bufio.NewReader(os.Stdin)
	current := item
	for {
		raw, err := nextResponse(reader, current, interactive)
		if err != nil {
			return err
		}

		res, err := eng.Respond(id, raw)
		if err != nil {
			return fmt.Errorf("respond: %w", err)
		}
		printEstimates(res.Estimates)

		if res.Action == session.ActionComplete {
			fmt.Println("session complete")

			return nil
		}
		current = *res.NextItem
		fmt.Printf("next item %d, trait=%s\n", current.Number, current.Trait)
	}
}

func loadConfig(path string) (*engineconfig.Config, error) {
	if path == "" {
		return engineconfig.New()
	}

	return engineconfig.LoadFile(path)
}

// scriptedResponses is the default non-interactive drive sequence: a
// steady midpoint-leaning respondent, long enough to exhaust every trait's
// item cap even under the strictest stopping threshold.
var scriptedResponses = []int{4, 5, 3, 4, 6, 3, 4, 5, 3, 4, 6, 3, 4, 5, 3, 4, 6, 3, 4, 5, 3, 4, 6, 3}

func nextResponse(reader *bufio.Reader, item session.CurrentItem, interactive bool) (int, error) {
	if !interactive {
		if len(scriptedResponses) == 0 {
			return 0, fmt.Errorf("dosectl: scripted responses exhausted before session completed")
		}
		raw := scriptedResponses[0]
		scriptedResponses = scriptedResponses[1:]

		return raw, nil
	}

	fmt.Printf("item %d (trait %s), response 1-7: ", item.Number, item.Trait)
	line, err := reader.ReadString('\n')
	if err != nil {
		return 0, fmt.Errorf("read response: %w", err)
	}

	var raw int
	if _, err := fmt.Sscanf(line, "%d", &raw); err != nil {
		return 0, fmt.Errorf("parse response %q: %w", line, err)
	}

	return raw, nil
}

func printEstimates(estimates []session.TraitEstimate) {
	for _, e := range estimates {
		fmt.Printf("  %s: theta=%.3f se=%.3f items=%d done=%v reason=%s\n",
			e.Trait, e.Theta, e.SE, e.ItemsCount, e.Done, e.StoppingReason)
	}
}
