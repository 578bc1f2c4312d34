/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gnplants/internal/iodb"
	"github.com/gnames/gnplants/internal/ioschema"
	"github.com/gnames/gnplants/pkg/db"
	"github.com/spf13/cobra"
)

// getCreateCmd returns the create command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getCreateCmd() *cobra.Command {
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create plants database schema",
		Long: `Create the schema of the plants SQLite database.

This command:
  1. Opens the plants database (plants_db.path in config)
  2. Checks for existing tables and prompts for confirmation
  3. Drops existing tables if confirmed
  4. Creates tables for plants, aliases, regions and VASCAN ranges

Use --force to skip confirmation and drop existing tables.

Examples:
  gnplants create
  gnplants create --force
  gnplants create -f`,
		RunE: func(cmd *cobra.Command, args []string) error {
			forceFlag(cmd)
			err := runCreate(context.Background(), os.Stdin)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	createCmd.Flags().BoolP("force", "f",
		false, "drop existing tables without confirmation")

	return createCmd
}

func runCreate(ctx context.Context, in io.Reader) error {
	op := iodb.NewPlantsOperator(cfg)
	if err := op.Connect(ctx); err != nil {
		return err
	}
	defer op.Close()

	gn.Info("Opened plants database <em>%s</em>", cfg.PlantsDBPath())

	hasTables, err := op.HasTables(ctx)
	if err != nil {
		return err
	}

	if hasTables {
		if !cfg.Force {
			gn.Warn("\nWarning: Database contains existing tables.")
			gn.Warn("Creating schema will drop ALL existing tables and data.")
			fmt.Print("\nDo you want to continue? (yes/no): ")
			if !confirm(in) {
				gn.Info("Aborted. No changes made.")
				return nil
			}
		}
		if err = dropTables(ctx, op); err != nil {
			return err
		}
	}

	gn.Info("Creating schema...")
	if err = ioschema.NewManager(op).Create(ctx); err != nil {
		return err
	}

	gn.Info("\nDatabase schema creation complete!")
	gn.Info("\nNext steps:")
	gn.Info("  - Run 'gnplants import usda' to import USDA checklists")
	gn.Info("  - Run 'gnplants import vascan' to import VASCAN ranges")
	return nil
}

func dropTables(ctx context.Context, op db.Operator) error {
	gn.Info("Dropping all existing tables...")
	if err := op.DropAllTables(ctx); err != nil {
		return err
	}
	gn.Info("All tables dropped")
	return nil
}

// confirm reads an answer from the user, only "yes" or "y" are accepted.
func confirm(in io.Reader) bool {
	response, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && response == "" {
		gn.Warn("Failed to read user input")
		return false
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "yes" || response == "y"
}
