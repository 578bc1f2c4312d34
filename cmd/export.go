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
	"github.com/gnames/gnplants/internal/ioexport"
	"github.com/gnames/gnplants/pkg/config"
	"github.com/gnames/gnplants/pkg/db"
	"github.com/gnames/gnplants/pkg/lifecycle"
	"github.com/spf13/cobra"
)

// getExportCmd returns the export command with usda and vascan
// subcommands.
func getExportCmd() *cobra.Command {
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export plant ranges to the Gallformers database",
		Long: `Export plant ranges to the Gallformers database.

Regions become Gallformers places linked to their country, and places
are added to ranges of host species. All changes of one export run in
a single transaction.`,
	}
	exportCmd.AddCommand(getExportUSDACmd(), getExportVASCANCmd())
	return exportCmd
}

func getExportUSDACmd() *cobra.Command {
	usdaCmd := &cobra.Command{
		Use:   "usda",
		Short: "Export USDA ranges of matched hosts",
		Long: `Export USDA ranges of matched hosts.

Gallformers hosts are matched to USDA plants by genus, specific epithet,
subspecies or variety and the hybrid flag. Regions of matched plants are
added to ranges of hosts.

Examples:
  gnplants export usda
  gnplants export usda --report matches.xlsx`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("report") {
				path, _ := cmd.Flags().GetString("report")
				cfg.Update([]config.Option{config.OptExportReportPath(path)})
			}
			err := runExport(ioexport.NewUSDA)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	usdaCmd.Flags().StringP("report", "r", "",
		"save matched, unmatched and skipped names to an XLSX file")
	return usdaCmd
}

func getExportVASCANCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vascan",
		Short: "Export imported VASCAN ranges",
		Long: `Export imported VASCAN ranges.

Localities of VASCAN distributions are resolved with regions.yaml by
their ISO 3166-2 location ID or by locality code.

Examples:
  gnplants export vascan`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runExport(ioexport.NewVASCAN)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}
}

type newExporter func(*config.Config, db.Operator, db.Operator) lifecycle.Exporter

func runExport(newExp newExporter) error {
	ctx := context.Background()

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

	return newExp(cfg, plants, gf).Export(ctx)
}
