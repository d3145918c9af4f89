package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"upiscan/internal/service"
)

func imageCmd(a *app) *cobra.Command {
	var opts scanOptions

	c := &cobra.Command{
		Use:   "image <file>",
		Short: "Decode a QR code from an image file and scan it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.bind(cmd)

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening image: %w", err)
			}
			defer func() { _ = f.Close() }()

			info, err := f.Stat()
			if err != nil {
				return fmt.Errorf("reading image: %w", err)
			}

			svc, err := a.newService(&opts)
			if err != nil {
				return err
			}

			result, err := svc.ScanImage(cmd.Context(), service.ImageScanInput{File: f, Size: info.Size()})
			if err != nil {
				return err
			}

			return printScanResult(cmd.OutOrStdout(), cmd.ErrOrStderr(), result, a.cfg.Scan.ClipboardLabel, opts.jsonOut)
		},
	}

	addScanFlags(c, &opts)
	return c
}
