package main

import (
	"battle/communication"
	"battle/communication/console"
	"battle/communication/scripted"
	"battle/engine"
	"battle/experiments"
	"battle/game"
	"battle/gamemaster"
	"battle/meta"
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	logLevel      string
	playerOne     string
	playerTwo     string
	armiesFile    string
	battles       int
	workers       int
	seed          uint64
	formationName string
	outDir        string
)

func main() {
	rootCmd := &cobra.Command{
		Use:               "battle",
		Short:             "Turn-based battles between two armies",
		Long:              `Two players field armies of soldiers, archers and cavalry within a budget
and fight them unit against unit, either in stack or in queue formation.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setupLogging,
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		battleCommand(game.Stack, "Gladiatorial combat: survivors fight again straight away"),
		battleCommand(game.Queue, "Fairer combat: survivors rejoin at the rear"),
		simulateCommand(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func setupLogging(cmd *cobra.Command, args []string) error {
	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	return nil
}

func battleCommand(formation game.Formation, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   formation.String(),
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBattle(cmd, formation)
		},
	}
	cmd.Flags().StringVar(&playerOne, "p1", "1", "Name of the first player")
	cmd.Flags().StringVar(&playerTwo, "p2", "2", "Name of the second player")
	cmd.Flags().StringVarP(&armiesFile, "armies", "a", "", "YAML file with the players' armies instead of prompting")
	return cmd
}

func runBattle(cmd *cobra.Command, formation game.Formation) error {
	var comm communication.Communicator
	if armiesFile != "" {
		c, err := scripted.Load(armiesFile)
		if err != nil {
			return err
		}
		// without explicit names the file's first two players fight
		players := c.Players()
		if !cmd.Flags().Changed("p1") && len(players) > 0 {
			playerOne = players[0]
		}
		if !cmd.Flags().Changed("p2") && len(players) > 1 {
			playerTwo = players[1]
		}
		comm = c
	} else {
		comm = console.NewCommunicator(cmd.InOrStdin(), cmd.OutOrStdout())
	}

	gm := gamemaster.NewGameMaster(comm, gamemaster.WithEngineOptions(engine.WithMetrics()))
	outcome, report, err := gm.BattleInFormation(formation, playerOne, playerTwo)
	if err != nil {
		return err
	}

	printReport(cmd.OutOrStdout(), outcome, report)
	return nil
}

func simulateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Fight many battles between randomly composed armies",
		Args:  cobra.NoArgs,
		RunE:  runSimulation,
	}
	cmd.Flags().IntVarP(&battles, "battles", "n", meta.BATTLES, "Number of battles")
	cmd.Flags().IntVarP(&workers, "workers", "w", meta.WORKERS, "Number of battles fought concurrently")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "Base seed for the random armies")
	cmd.Flags().StringVarP(&formationName, "formation", "f", "stack", "Formation of both armies (stack or queue)")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Directory to store battle records in")
	return cmd
}

func runSimulation(cmd *cobra.Command, args []string) error {
	formation, err := game.ParseFormation(formationName)
	if err != nil {
		return err
	}

	options := []experiments.Option{}
	if outDir != "" {
		options = append(options, experiments.WithOutput(outDir))
	}

	config := experiments.Config{
		Battles:   battles,
		Workers:   workers,
		Seed:      seed,
		Formation: formation,
	}
	result, err := experiments.Run(cmd.Context(), config, options...)
	printSummary(cmd.OutOrStdout(), result)
	return err
}
