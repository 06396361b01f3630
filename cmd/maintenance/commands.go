package main

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"renovation_estimator/internal/adapter/persistence/repository"
	"renovation_estimator/internal/domain/estimating"
	"renovation_estimator/internal/infrastructure/config"
	"renovation_estimator/internal/infrastructure/database"
	"renovation_estimator/internal/infrastructure/logger"
	"renovation_estimator/internal/usecase"

	"github.com/spf13/cobra"
)

var repairTimeout time.Duration

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "maintenance",
		Short:         "Offline jobs over the renovation project store",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	repairCmd := &cobra.Command{
		Use:   "repair-custom-work-names",
		Short: "Name every unnamed custom work item in storage and print the report",
		Args:  cobra.NoArgs,
		RunE:  runRepairCustomWorkNames,
	}
	repairCmd.Flags().DurationVar(&repairTimeout, "timeout", 10*time.Minute, "abort the scan after this long")

	validateCmd := &cobra.Command{
		Use:   "validate-taxonomy [file]",
		Short: "Parse a taxonomy document and print what it allows",
		Args:  cobra.ExactArgs(1),
		RunE:  runValidateTaxonomy,
	}

	rootCmd.AddCommand(repairCmd, validateCmd)
	return rootCmd
}

func runRepairCustomWorkNames(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer log.Sync()

	ctx, cancel := context.WithTimeout(cmd.Context(), repairTimeout)
	defer cancel()

	ddb, err := database.ConnectDynamoDB(ctx)
	if err != nil {
		return fmt.Errorf("connect dynamodb: %w", err)
	}
	uc := usecase.NewMaintenanceUseCase(repository.NewProjectDynamoRepository(ddb), log)

	report, runErr := uc.RepairCustomWorkNames(ctx)
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return err
	}
	return runErr
}

func runValidateTaxonomy(cmd *cobra.Command, args []string) error {
	t, err := estimating.LoadTaxonomyFile(args[0])
	if err != nil {
		return err
	}
	table := t.Table()
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "taxonomy %s: %d categories\n", t.Version(), len(keys))
	for _, k := range keys {
		fmt.Fprintf(out, "  %s: %d types\n", k, len(table[k]))
	}
	return nil
}
