package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"quickcal/config"
	"quickcal/internal/calendar"
	"quickcal/internal/parser"
	"quickcal/internal/quickadd"
	"quickcal/internal/quickadd/usecase"
	"quickcal/pkg/datetext"
	"quickcal/pkg/log"
	"quickcal/pkg/reminder"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		reminderFlag string
		calendarFlag string
		testOnly     bool
		debug        bool
	)

	cmd := &cobra.Command{
		Use:   `quickcal "event description"`,
		Short: "Add calendar events from natural language",
		Long: `quickcal turns a free-form phrase into a calendar event.

Examples:
  quickcal "dentist appointment on Friday at 10am"
  quickcal "team meeting tomorrow at 2pm" --reminder=15m
  quickcal "kids birthday may 18th" --test`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprintln(os.Stderr, "Error: an event description is required")
				_ = cmd.Usage()
				return fmt.Errorf("missing event description")
			}
			return run(strings.Join(args, " "), reminderFlag, calendarFlag, testOnly, debug)
		},
	}

	cmd.Flags().StringVar(&reminderFlag, "reminder", "", "reminder offset before the event, e.g. 15m, 1h, 2d")
	cmd.Flags().StringVar(&calendarFlag, "calendar", "", "target calendar, overriding the configured one")
	cmd.Flags().BoolVarP(&testOnly, "test", "t", false, "extract and preview only, do not create the event")
	cmd.Flags().BoolVar(&debug, "debug", false, "emit parse diagnostics to the error stream")

	return cmd
}

func run(text, reminderFlag, calendarFlag string, testOnly, debug bool) error {
	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config:", err)
		return err
	}
	applyCalendarOverride(cfg, calendarFlag)

	// 2. Logger
	level := cfg.Logger.Level
	if debug {
		level = "debug"
	}
	logger := log.Init(log.ZapConfig{
		Level:        level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// 3. Reminder flag
	var rem *reminder.Offset
	if reminderFlag != "" {
		off, remErr := reminder.Parse(reminderFlag)
		if remErr != nil {
			fmt.Fprintln(os.Stderr, remErr)
			return remErr
		}
		rem = &off
	}

	// 4. Extraction engine
	engine := parser.NewEngine(datetext.New())

	// 5. Calendar backend (skipped entirely for previews)
	var cal calendar.Service
	if !testOnly {
		cal, err = newBackend(ctx, cfg)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return err
		}
	}

	// 6. Run
	uc := usecase.New(logger, engine, cal)
	out, err := uc.Create(ctx, quickadd.CreateInput{
		RawText:  text,
		Reminder: rem,
		DryRun:   testOnly,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	fmt.Println(out.Summary)
	return nil
}

// applyCalendarOverride points whichever backend is active at the named
// calendar instead of the configured one.
func applyCalendarOverride(cfg *config.Config, name string) {
	if name == "" {
		return
	}
	cfg.Calendar.Name = name
	cfg.GoogleCalendar.CalendarID = name
}

func newBackend(ctx context.Context, cfg *config.Config) (calendar.Service, error) {
	switch cfg.Calendar.Backend {
	case "google":
		return calendar.NewGoogleFromCredentialsFile(ctx,
			cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.CalendarID)
	case "applescript", "":
		return calendar.NewAppleScript(cfg.Calendar.Name), nil
	default:
		return nil, fmt.Errorf("unknown calendar backend %q", cfg.Calendar.Backend)
	}
}
