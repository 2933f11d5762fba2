package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"cheatvault/feature/integrity"

	"github.com/spf13/cobra"
)

var integrityRomID int
var integrityJSON bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks on the cheat library",
	Long:  `Compares cheat files against database rows and verifies the database schema. Outputs metrics by default or a detailed JSON report with --json.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		startTime := time.Now()
		rt, err := connectServices()
		if err != nil {
			return err
		}

		var reports []integrity.CheatsReport
		if integrityRomID != 0 {
			report, err := rt.integrity.CheckCheats(integrityRomID)
			if err != nil {
				return fmt.Errorf("integrity check failed: %w", err)
			}
			reports = append(reports, *report)
		} else {
			reports, err = rt.integrity.CheckAllCheats()
			if err != nil {
				return fmt.Errorf("integrity check failed: %w", err)
			}
		}

		schema, err := rt.integrity.CheckSchema()
		if err != nil {
			return fmt.Errorf("schema check failed: %w", err)
		}

		var (
			inSync      int
			fileMissing int
			drifted     int
		)
		var issues []integrity.CheatsReport
		for _, r := range reports {
			if r.InSync {
				inSync++
				continue
			}
			if !r.FileExists {
				fileMissing++
			}
			drifted++
			issues = append(issues, r)
		}

		if integrityJSON {
			filename := fmt.Sprintf("integrity_cheats_%d.json", time.Now().Unix())
			data, err := json.MarshalIndent(issues, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			if err := os.WriteFile(filename, data, 0644); err != nil {
				return fmt.Errorf("failed to save JSON file: %w", err)
			}
			fmt.Printf("Detailed JSON saved to: %s (%d roms with issues)\n", filename, len(issues))
		}

		fmt.Println("\n=== Cheat Integrity Metrics ===")
		fmt.Printf("Roms Checked: %d\n", len(reports))
		fmt.Printf("In Sync: %d\n", inSync)
		fmt.Printf("Drifted: %d\n", drifted)
		fmt.Printf("Missing Cheat File: %d\n", fileMissing)
		if schema.OK {
			fmt.Println("Schema: OK")
		} else {
			fmt.Printf("Schema: %d missing column(s)\n", len(schema.MissingColumns))
			for table, cols := range schema.MissingColumns {
				fmt.Printf("  %s: %v\n", table, cols)
			}
		}
		fmt.Printf("Execution Time: %s\n", time.Since(startTime).String())
		return nil
	},
}

func init() {
	integrityCmd.Flags().IntVar(&integrityRomID, "rom", 0, "check a single rom by id")
	integrityCmd.Flags().BoolVar(&integrityJSON, "json", false, "save a detailed JSON report of roms with issues")
	RootCmd.AddCommand(integrityCmd)
}
