package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	outPath string
	csvPath string
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Assign every trip to a vehicle rotation",
	RunE:  runOptimize,
}

func init() {
	optimizeCmd.Flags().StringVarP(&outPath, "out", "o", "rotations.json", `rotation document to write ("-" for stdout)`)
	optimizeCmd.Flags().StringVar(&csvPath, "csv", "", "also write a roster CSV to this path")
	rootCmd.AddCommand(optimizeCmd)
}

func runOptimize(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, err := newService()
	if err != nil {
		return err
	}
	svc.StartMetrics(ctx)
	return svc.Optimize(tripsPath, outPath, csvPath)
}
