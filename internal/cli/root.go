package cli

import (
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/odysseus0/onthisday/internal/config"
	"github.com/odysseus0/onthisday/internal/feed"
	"github.com/odysseus0/onthisday/internal/model"
)

const version = "0.1.0"

// Execute loads the configuration and runs the root command with the
// process arguments.
func Execute() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	return NewRootCmd(cfg).Execute()
}

func NewRootCmd(cfg config.Config) *cobra.Command {
	var oldest bool
	var newest bool
	var eventType string
	var output string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "onthisday",
		Short: "Fetch a historical event from Wikipedia's 'On this day' feed",
		Long: "A command-line tool that fetches a historical event for the current date\n" +
			"from the official Wikipedia API. You can choose to get the oldest, newest,\n" +
			"or a random event.",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, cfg, rootOptions{
				oldest:    oldest,
				newest:    newest,
				eventType: eventType,
				output:    output,
			})
		},
	}

	cmd.Flags().BoolVarP(&oldest, "oldest", "o", false, "Display the oldest event for today")
	cmd.Flags().BoolVarP(&newest, "newest", "n", false, "Display the newest event for today")
	cmd.Flags().StringVarP(&eventType, "event-type", "t", string(model.CategoryAll), "Filter by event type: all, selected, births, deaths, holidays, events")
	cmd.Flags().StringVar(&output, "output", string(model.OutputText), "Output format: text, json")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}

type rootOptions struct {
	oldest    bool
	newest    bool
	eventType string
	output    string
}

func runRoot(cmd *cobra.Command, cfg config.Config, opts rootOptions) error {
	if opts.oldest && opts.newest {
		return fmt.Errorf("%w: --oldest and --newest are mutually exclusive", feed.ErrInvalidInput)
	}
	category, err := model.ParseCategory(opts.eventType)
	if err != nil {
		return fmt.Errorf("%w: %v", feed.ErrInvalidInput, err)
	}
	outFmt, err := model.ParseOutputFormat(opts.output)
	if err != nil {
		return fmt.Errorf("%w: %v", feed.ErrInvalidInput, err)
	}

	sel := feed.SelectRandom
	switch {
	case opts.oldest:
		sel = feed.SelectOldest
	case opts.newest:
		sel = feed.SelectNewest
	}

	now := time.Now().UTC()
	month, day := int(now.Month()), now.Day()

	out := cmd.OutOrStdout()
	if outFmt == model.OutputText {
		fmt.Fprintf(out, "Fetching event(s) of type '%s' for today (%02d/%02d)...\n", category, month, day)
	}

	client := feed.NewClient(cfg)
	body, err := client.Fetch(cmd.Context(), category, month, day)
	if err != nil {
		var statusErr *feed.StatusError
		if errors.As(err, &statusErr) {
			log.WithFields(log.Fields{
				"status": statusErr.Code,
			}).Error("Failed to fetch data from Wikipedia API")
			return nil
		}
		return fmt.Errorf("fetch events: %w", err)
	}

	resp, err := feed.DecodeResponse(body)
	if err != nil {
		return err
	}

	events := feed.FlattenEvents(resp, category)
	if len(events) == 0 {
		return writeNoEvents(out, outFmt, month, day)
	}

	event, ok := feed.Pick(events, sel)
	if !ok {
		// Happens when e.g. --oldest is combined with year-less holidays.
		log.Warn("Could not select an event from the available data.")
		if outFmt == model.OutputJSON {
			return writeJSON(out, eventDocument{Month: month, Day: day})
		}
		return nil
	}

	return writeEvent(out, outFmt, month, day, event)
}
