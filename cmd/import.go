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
	"context"

	"github.com/gnames/gn"
	"github.com/gnames/gnplants/internal/iodb"
	"github.com/gnames/gnplants/internal/ioschema"
	"github.com/gnames/gnplants/internal/iousda"
	"github.com/gnames/gnplants/internal/iovascan"
	"github.com/gnames/gnplants/pkg/config"
	"github.com/gnames/gnplants/pkg/db"
	"github.com/spf13/cobra"
)

// getImportCmd returns the import command with usda and vascan
// subcommands.
func getImportCmd() *cobra.Command {
	importCmd := &cobra.Command{
		Use:   "import",
		Short: "Import plant ranges into the plants database",
		Long: `Import plant ranges into the plants database.

Sources:
  usda    USDA PLANTS state checklists (CSV files)
  vascan  VASCAN distributions of Gallformers hosts

The schema of the plants database is created if it is missing.`,
	}
	importCmd.AddCommand(getImportUSDACmd(), getImportVASCANCmd())
	return importCmd
}

func getImportUSDACmd() *cobra.Command {
	usdaCmd := &cobra.Command{
		Use:   "usda",
		Short: "Import USDA PLANTS state checklists",
		Long: `Import USDA PLANTS state checklists.

Every CSV file of the USDA directory (usda.data_dir in config) is a
checklist of one region, the file name is the region code from
regions.yaml, for example NC.csv or QC.csv.

Names are parsed, orthographic variants and names with other
nomenclatural annotations are skipped. A checklist that fails does not
stop the import.

Examples:
  gnplants import usda
  gnplants import usda --regions NC,VA
  gnplants import usda -d ~/usda -e windows-1252`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runImportUSDA(cmd)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	usdaCmd.Flags().StringSliceP("regions", "r", nil,
		"region codes to import (empty = all)")
	usdaCmd.Flags().StringP("usda-dir", "d", "",
		"directory with USDA checklists")
	usdaCmd.Flags().StringP("encoding", "e", "",
		"encoding of checklists (utf-8 or windows-1252)")
	return usdaCmd
}

func runImportUSDA(cmd *cobra.Command) error {
	ctx := context.Background()

	var importOpts []config.Option
	if cmd.Flags().Changed("regions") {
		regions, _ := cmd.Flags().GetStringSlice("regions")
		importOpts = append(importOpts, config.OptImportRegions(regions))
	}
	if cmd.Flags().Changed("usda-dir") {
		dir, _ := cmd.Flags().GetString("usda-dir")
		importOpts = append(importOpts, config.OptUSDADataDir(dir))
	}
	if cmd.Flags().Changed("encoding") {
		enc, _ := cmd.Flags().GetString("encoding")
		importOpts = append(importOpts, config.OptUSDAEncoding(enc))
	}
	cfg.Update(importOpts)

	op, err := openPlantsDB(ctx)
	if err != nil {
		return err
	}
	defer op.Close()

	return iousda.New(cfg, op).Import(ctx)
}

func getImportVASCANCmd() *cobra.Command {
	vascanCmd := &cobra.Command{
		Use:   "vascan",
		Short: "Import VASCAN distributions of Gallformers hosts",
		Long: `Import VASCAN distributions of Gallformers hosts.

Every host plant of the Gallformers database is searched in VASCAN.
Only taxa with the same name as the host are accepted, excluded and
doubtful occurrences are dropped. Ranges are saved to the plants
database, use 'gnplants export vascan' to send them to Gallformers.

Examples:
  gnplants import vascan
  gnplants import vascan --rps 2 -j 4`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runImportVASCAN(cmd)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	vascanCmd.Flags().Int("rps", 0, "maximum VASCAN requests per second")
	return vascanCmd
}

func runImportVASCAN(cmd *cobra.Command) error {
	ctx := context.Background()

	if cmd.Flags().Changed("rps") {
		rps, _ := cmd.Flags().GetInt("rps")
		cfg.Update([]config.Option{config.OptVASCANRequestsPerSecond(rps)})
	}

	plants, err := openPlantsDB(ctx)
	if err != nil {
		return err
	}
	defer plants.Close()

	gf, err := openGallformersDB(ctx)
	if err != nil {
		return err
	}
	defer gf.Close()

	return iovascan.New(cfg, plants, gf).Import(ctx)
}

// openPlantsDB connects to the plants database and makes sure its schema
// exists.
func openPlantsDB(ctx context.Context) (db.Operator, error) {
	op := iodb.NewPlantsOperator(cfg)
	if err := op.Connect(ctx); err != nil {
		return nil, err
	}
	if err := ioschema.NewManager(op).Create(ctx); err != nil {
		op.Close()
		return nil, err
	}
	return op, nil
}

// openGallformersDB connects to the Gallformers database.
func openGallformersDB(ctx context.Context) (db.Operator, error) {
	op, err := iodb.NewGallformersOperator(cfg)
	if err != nil {
		return nil, err
	}
	if err = op.Connect(ctx); err != nil {
		return nil, err
	}
	gn.Info("Connected to Gallformers database (<em>%s</em>)", op.Driver())
	return op, nil
}
