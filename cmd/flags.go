package cmd

import (
	"github.com/gnames/gnplants/pkg/config"
	"github.com/spf13/cobra"
)

// funcFlag converts a changed CLI flag into a config option.
type funcFlag func(cmd *cobra.Command)

func jobsFlag(cmd *cobra.Command) {
	if !cmd.Flags().Changed("jobs") {
		return
	}
	n, _ := cmd.Flags().GetInt("jobs")
	opts = append(opts, config.OptJobsNumber(n))
}

func plantsDBFlag(cmd *cobra.Command) {
	if !cmd.Flags().Changed("plants-db") {
		return
	}
	s, _ := cmd.Flags().GetString("plants-db")
	opts = append(opts, config.OptPlantsDBPath(s))
}

func gfDriverFlag(cmd *cobra.Command) {
	if !cmd.Flags().Changed("gf-driver") {
		return
	}
	s, _ := cmd.Flags().GetString("gf-driver")
	opts = append(opts, config.OptGallformersDriver(s))
}

func gfPathFlag(cmd *cobra.Command) {
	if !cmd.Flags().Changed("gf-path") {
		return
	}
	s, _ := cmd.Flags().GetString("gf-path")
	opts = append(opts, config.OptGallformersPath(s))
}

func forceFlag(cmd *cobra.Command) {
	if !cmd.Flags().Changed("force") {
		return
	}
	b, _ := cmd.Flags().GetBool("force")
	cfg.Update([]config.Option{config.OptForce(b)})
}
