package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/wanderplan/wanderplan-go/client"
	"github.com/wanderplan/wanderplan-go/identity"
	"github.com/wanderplan/wanderplan-go/internal/config"
	"github.com/wanderplan/wanderplan-go/store"
	"github.com/wanderplan/wanderplan-go/view"
)

var serviceURL string
var userIDFlag string
var debug bool

const opTimeout = 60 * time.Second

func dbg(v interface{}) {
	if !debug {
		return
	}
	log.Debug().Interface("data", v).Msg("debug output")
}

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wanderplan",
		Short: "WanderPlan CLI for generating and managing trip itineraries",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.InitLogger()
			if debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
				os.Setenv("WANDERPLAN_DEBUG", "true")
				log.Debug().Msg("debug logging enabled")
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
		},
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	rootCmd.PersistentFlags().StringVar(&serviceURL, "service-url", cfg.ServiceURL, "Base URL of the itinerary service")
	rootCmd.PersistentFlags().StringVar(&userIDFlag, "user-id", "", "Traveler identity (defaults to the locally stored one)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable verbose debug output")

	rootCmd.AddCommand(newPlanCmd())
	rootCmd.AddCommand(newTripsCmd())
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newDeleteCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newHealthCmd())
	rootCmd.AddCommand(newWaitHealthyCmd())
	rootCmd.AddCommand(newWhoamiCmd())
	rootCmd.AddCommand(newSetUserCmd())

	return rootCmd
}

// newStore wires a store to the configured service and resolved identity.
func newStore() *store.Store {
	cfg, _ := config.Load()
	ids := identity.NewFileProvider(cfg.UserIDFile)
	return store.New(client.New(serviceURL), ids.Resolve(userIDFlag))
}

func newPlanCmd() *cobra.Command {
	var destination, startDate string
	var duration, travelers int
	var budget float64
	var vegetarian bool

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate a new trip itinerary",
		RunE: func(cmd *cobra.Command, args []string) error {
			st := newStore()

			log.Debug().
				Str("destination", destination).
				Str("start_date", startDate).
				Int("duration", duration).
				Float64("budget", budget).
				Str("service_url", serviceURL).
				Msg("generating itinerary")

			ctx, cancel := context.WithTimeout(cmd.Context(), opTimeout)
			defer cancel()

			start := time.Now()
			it, err := st.Generate(ctx, store.FormData{
				Destination:  destination,
				StartDate:    startDate,
				Duration:     duration,
				Budget:       budget,
				IsVegetarian: vegetarian,
				Travelers:    travelers,
			})
			elapsed := time.Since(start)

			if err != nil {
				log.Error().Err(err).Str("destination", destination).Dur("elapsed", elapsed).Msg("plan failed")
				return err
			}

			dbg(it)
			if it.Persisted() {
				fmt.Printf("Itinerary created: %s (%s, %s)\n", it.ID, it.Destination, view.DateRange(it.StartDate, it.EndDate))
			} else {
				fmt.Printf("Itinerary generated (not saved): %s, %s\n", it.Destination, view.DateRange(it.StartDate, it.EndDate))
			}
			printSections(view.Normalize(it))
			return nil
		},
	}

	cmd.Flags().StringVar(&destination, "destination", "", "Trip destination (required)")
	cmd.Flags().StringVar(&startDate, "start-date", "", "First day, YYYY-MM-DD (required)")
	cmd.Flags().IntVar(&duration, "duration", 0, "Trip length in days (required)")
	cmd.Flags().Float64Var(&budget, "budget", 0, "Total trip budget (required)")
	cmd.Flags().BoolVar(&vegetarian, "vegetarian", false, "Prefer vegetarian dining")
	cmd.Flags().IntVar(&travelers, "travelers", 1, "Number of travelers")
	_ = cmd.MarkFlagRequired("destination")
	_ = cmd.MarkFlagRequired("start-date")
	_ = cmd.MarkFlagRequired("duration")
	_ = cmd.MarkFlagRequired("budget")

	return cmd
}

func newTripsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trips",
		Short: "List saved itineraries",
		RunE: func(cmd *cobra.Command, args []string) error {
			st := newStore()
			ctx, cancel := context.WithTimeout(cmd.Context(), opTimeout)
			defer cancel()

			if err := st.Refresh(ctx); err != nil {
				return err
			}
			list := st.Itineraries()
			if len(list) == 0 {
				fmt.Println("No saved itineraries")
				return nil
			}
			for _, it := range list {
				budget := ""
				if it.MaxBudget != nil {
					budget = fmt.Sprintf("  budget %.0f", *it.MaxBudget)
				}
				fmt.Printf("%s  %s  %s%s\n", it.ID, it.Destination, view.DateRange(it.StartDate, it.EndDate), budget)
			}
			return nil
		},
	}
}

func newShowCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <itinerary-id>",
		Short: "Fetch one itinerary and render its day-by-day sections",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st := newStore()
			ctx, cancel := context.WithTimeout(cmd.Context(), opTimeout)
			defer cancel()

			it, err := st.GetOne(ctx, args[0])
			if err != nil {
				return err
			}
			dbg(it)

			if asJSON {
				b, _ := json.MarshalIndent(it, "", "  ")
				fmt.Println(string(b))
				return nil
			}

			fmt.Printf("%s - %s\n", it.Destination, view.DateRange(it.StartDate, it.EndDate))
			if it.TripSummary != "" {
				fmt.Println(it.TripSummary)
			}
			printSections(view.Normalize(it))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the raw itinerary as JSON")
	return cmd
}

// printSections renders the normalized day sections. Generated and persisted
// shapes are rendered independently when both are present.
func printSections(sections view.Sections) {
	if sections.Empty() {
		fmt.Println("No detailed itinerary available")
		return
	}
	for _, plan := range sections.Plans {
		fmt.Printf("\nDay %d", plan.Day)
		if plan.Theme != "" {
			fmt.Printf(" - %s", plan.Theme)
		}
		if plan.Date != "" {
			fmt.Printf(" (%s", plan.Date)
			if plan.DayName != "" {
				fmt.Printf(", %s", plan.DayName)
			}
			fmt.Print(")")
		}
		fmt.Println()
		for i, a := range plan.Activities {
			fmt.Printf("  %s", view.ActivityTitle(a, i))
			if a.Time != "" {
				fmt.Printf(" [%s]", a.Time)
			}
			if a.EstimatedCost != "" {
				fmt.Printf(" %s", a.EstimatedCost)
			}
			fmt.Println()
		}
		for _, m := range plan.Meals {
			fmt.Printf("  %s: %s (%s)\n", m.MealType, m.Restaurant, m.Cuisine)
		}
	}
	for _, group := range sections.Groups {
		fmt.Printf("\nDay %d\n", group.Day)
		for i, item := range group.Entries {
			fmt.Printf("  %s", view.ItemTitle(item, i))
			if item.StartTime != "" {
				fmt.Printf(" [%s]", item.StartTime)
			}
			if item.Location != "" {
				fmt.Printf(" @ %s", item.Location)
			}
			fmt.Println()
		}
	}
}

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <itinerary-id>",
		Short: "Delete a saved itinerary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st := newStore()
			ctx, cancel := context.WithTimeout(cmd.Context(), opTimeout)
			defer cancel()

			if err := st.Delete(ctx, args[0]); err != nil {
				return err
			}
			fmt.Printf("Itinerary %s deleted\n", args[0])
			return nil
		},
	}
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show trip count, upcoming trips, and aggregate budget",
		RunE: func(cmd *cobra.Command, args []string) error {
			st := newStore()
			ctx, cancel := context.WithTimeout(cmd.Context(), opTimeout)
			defer cancel()

			if err := st.Refresh(ctx); err != nil {
				return err
			}
			sum := st.Summary(time.Now())
			fmt.Printf("Trips: %d\nUpcoming: %d\nTotal budget: %.0f\n", sum.Trips, sum.Upcoming, sum.TotalBudget)
			return nil
		},
	}
}

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Probe the itinerary service health endpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := client.New(serviceURL)
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			payload, err := c.Health(ctx)
			if err != nil {
				return err
			}
			b, _ := json.MarshalIndent(payload, "", "  ")
			fmt.Println(string(b))
			return nil
		},
	}
}

func newWaitHealthyCmd() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "wait-healthy",
		Short: "Poll the health endpoint with exponential backoff until the service answers",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := client.New(serviceURL)
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			probe := func() error {
				probeCtx, probeCancel := context.WithTimeout(ctx, 5*time.Second)
				defer probeCancel()
				_, err := c.Health(probeCtx)
				if err != nil {
					log.Debug().Err(err).Msg("service not healthy yet")
				}
				return err
			}

			if err := backoff.Retry(probe, backoff.WithContext(backoff.NewExponentialBackOff(), ctx)); err != nil {
				return fmt.Errorf("service did not become healthy within %s: %w", timeout, err)
			}
			fmt.Println("OK")
			return nil
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "How long to keep polling")
	return cmd
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Print the traveler identity used for service calls",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _ := config.Load()
			ids := identity.NewFileProvider(cfg.UserIDFile)
			fmt.Println(ids.Resolve(userIDFlag))
			return nil
		},
	}
}

func newSetUserCmd() *cobra.Command {
	var id string
	var fresh bool

	cmd := &cobra.Command{
		Use:   "set-user",
		Short: "Store the traveler identity locally",
		RunE: func(cmd *cobra.Command, args []string) error {
			if fresh {
				id = identity.NewUserID()
			}
			if id == "" {
				return fmt.Errorf("--id or --new is required")
			}
			cfg, _ := config.Load()
			ids := identity.NewFileProvider(cfg.UserIDFile)
			if err := ids.Set(id); err != nil {
				return err
			}
			fmt.Printf("Traveler identity set: %s\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Identity value to store")
	cmd.Flags().BoolVar(&fresh, "new", false, "Generate and store a fresh identity")
	return cmd
}
