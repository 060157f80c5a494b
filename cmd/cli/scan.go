package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"Grocery-Tracker/domain"

	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan <image>",
	Short: "Scan a receipt photo and add its groceries to the inventory",
	Args:  cobra.ExactArgs(1),
	RunE:  runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	image, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read image: %w", err)
	}

	services, err := loadServices(ctx)
	if err != nil {
		return err
	}

	bar := newProgressBar("Reading receipt")
	wait := newSpinner("Asking the model for the grocery list...")

	var once sync.Once
	progress := func(p float64) {
		_ = bar.Set(int(p * 100))
		if p >= 1 {
			once.Do(func() {
				_ = bar.Finish()
				wait.Start()
			})
		}
	}

	res, err := services.Receipt.ScanReceipt(ctx, domain.ScanReceiptRequest{
		FileName: filepath.Base(args[0]),
		Image:    image,
	}, progress)
	wait.Stop()
	if err != nil {
		return err
	}

	if len(res.Items) == 0 {
		printWarning("No groceries found on the receipt")
		return nil
	}

	printSuccess("Added %d items (scan %s)", len(res.Items), res.ScanID)
	for _, item := range res.Items {
		expires := "-"
		if item.ExpiresOn != nil {
			expires = item.ExpiresOn.Format("2006-01-02")
		}
		statusColor(item.Status).Printf("  %-30s expires %s\n", item.Name, expires)
	}
	return nil
}
