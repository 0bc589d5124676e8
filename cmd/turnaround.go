package cmd

import (
	"github.com/spf13/cobra"
)

var turnaroundCmd = &cobra.Command{
	Use:   "turnaround",
	Short: "Report the turnaround times optimization would use",
	RunE:  runTurnaround,
}

func init() {
	rootCmd.AddCommand(turnaroundCmd)
}

func runTurnaround(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	report, err := svc.Turnaround(tripsPath)
	if err != nil {
		return err
	}
	return writeJSON(report)
}
