package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"nomo-governance/core/config"
	"nomo-governance/core/database"
	"nomo-governance/core/logger"
	"nomo-governance/core/network"
	"nomo-governance/feature/plan"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// planCmd represents the plan command
var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Compute the governance commands for a network",
	Long: `Reads the live state of a network and prints the ordered commands the
timelock must execute: access control grants, ownership acceptance, then
price-feed configuration. Nothing is submitted on chain.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		startTime := time.Now()

		networkName, _ := cmd.Flags().GetString("network")
		jsonOutput, _ := cmd.Flags().GetBool("json")
		payloadFile, _ := cmd.Flags().GetString("payload")
		upload, _ := cmd.Flags().GetBool("upload")
		record, _ := cmd.Flags().GetBool("record")
		skipApplied, _ := cmd.Flags().GetBool("skip-applied")

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logg.Sync()

		if networkName == "" {
			networkName = cfg.Chain.Network
		}
		n, err := network.Parse(networkName)
		if err != nil {
			return err
		}

		svc, err := newPlanService(cfg, logg, skipApplied, upload)
		if err != nil {
			return err
		}

		if record {
			db, err := database.Connect(cfg.Database)
			if err != nil {
				return fmt.Errorf("database connection required for --record: %w", err)
			}
			store := plan.NewGormStore(db)
			if migrated, err := store.EnsureSchema(); err != nil {
				return err
			} else if migrated {
				logg.Info("Plan history table migrated")
			}
			svc.WithStore(store)
		}

		result, proposal, err := svc.Payload(ctx, n)
		if err != nil {
			return err
		}

		if jsonOutput {
			data, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal plan: %w", err)
			}
			fmt.Println(string(data))
		} else {
			fmt.Printf("\n=== Governance Plan: %s ===\n", result.Network)
			for i, c := range result.Commands {
				fmt.Printf("%3d. %s\n", i+1, c)
			}
			fmt.Printf("\nAccess Control: %d\n", result.Summary.AccessControl)
			fmt.Printf("Ownership: %d\n", result.Summary.Ownership)
			fmt.Printf("Price Feeds: %d\n", result.Summary.PriceFeeds)
			fmt.Printf("Total: %d\n", result.Summary.Total)
			fmt.Printf("Execution Time: %s\n", time.Since(startTime).String())
		}

		if payloadFile != "" {
			data, err := json.MarshalIndent(proposal, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal proposal: %w", err)
			}
			if err := os.WriteFile(payloadFile, data, 0644); err != nil {
				return fmt.Errorf("failed to save payload file: %w", err)
			}
			logg.Info("Proposal payload saved", zap.String("file", payloadFile), zap.Int("calls", proposal.Len()))
		}

		if upload {
			if _, err := svc.Upload(ctx, n, proposal); err != nil {
				return err
			}
		}

		if record {
			if _, err := svc.Save(ctx, result, proposal); err != nil {
				return err
			}
		}

		logg.Info("Plan completed",
			zap.String("network", n.String()),
			zap.Int("total", result.Summary.Total),
			zap.Duration("execution_time", time.Since(startTime)),
		)
		return nil
	},
}

func init() {
	planCmd.Flags().String("network", "", "Network to plan (defaults to CHAIN_NETWORK)")
	planCmd.Flags().Bool("json", false, "Print the plan as JSON")
	planCmd.Flags().String("payload", "", "Write the timelock proposal to this file")
	planCmd.Flags().Bool("upload", false, "Upload the timelock proposal to object storage")
	planCmd.Flags().Bool("record", false, "Store the plan in the history database")
	planCmd.Flags().Bool("skip-applied", false, "Drop price-feed commands already reflected on chain")
	RootCmd.AddCommand(planCmd)
}
