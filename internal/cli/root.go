package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"upiscan/internal/clipboard"
	"upiscan/internal/config"
	"upiscan/internal/decoder/zxing"
	"upiscan/internal/dialer"
	"upiscan/internal/domain"
	"upiscan/internal/port"
	"upiscan/internal/service"
)

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, userMessage(err, rootVerbose(cmd)))
		stop()
		os.Exit(1)
	}
}

// app carries what every subcommand needs once flags are parsed.
type app struct {
	cfg     *config.Config
	verbose bool
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "upiscan",
		Short:         "upiscan extracts UPI payee addresses from scanned QR codes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			a.cfg = cfg

			// The CLI prints results on stdout; component logs only with --verbose or log.level=debug.
			if !a.verbose && !cfg.Log.Verbose() {
				log.SetOutput(io.Discard)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log every scan and adapter call to stderr")

	cmd.AddCommand(
		extractCmd(a),
		classifyCmd(),
		inspectCmd(a),
		imageCmd(a),
		batchCmd(a),
		versionCmd(),
	)
	return cmd
}

// scanOptions are the post-scan action flags shared by extract and image.
type scanOptions struct {
	copy    bool
	dial    bool
	dialSet bool
	jsonOut bool
}

func addScanFlags(c *cobra.Command, opts *scanOptions) {
	c.Flags().BoolVar(&opts.copy, "copy", true, "copy the payee address with the configured clipboard provider")
	c.Flags().BoolVar(&opts.dial, "dial", true, "hand the USSD dial URI to the configured dialer (defaults to UPISCAN_SCAN_DIAL_ENABLED)")
	c.Flags().BoolVar(&opts.jsonOut, "json", false, "print the scan result as JSON")
}

// bind records which flags were given explicitly.
func (o *scanOptions) bind(c *cobra.Command) {
	o.dialSet = c.Flags().Changed("dial")
}

// newService wires the scan service from config, with CLI flag overrides applied.
func (a *app) newService(opts *scanOptions) (service.ScanService, error) {
	scanCfg := a.cfg.Scan
	if opts != nil && opts.dialSet {
		scanCfg.DialEnabled = opts.dial
	}
	if scanCfg.DialEnabled && scanCfg.USSDCode == "" {
		return nil, fmt.Errorf("scan.ussd_code is required when dialing is enabled")
	}

	var clip port.ClipboardSink
	if opts != nil && opts.copy {
		c, err := clipboard.New(&a.cfg.Clipboard)
		if err != nil {
			return nil, err
		}
		clip = c
	}

	dial, err := dialer.New(&a.cfg.Dialer)
	if err != nil {
		return nil, err
	}

	return service.NewScanService(zxing.NewQRDecoder(true), clip, dial, &scanCfg), nil
}

func rootVerbose(cmd *cobra.Command) bool {
	v, _ := cmd.PersistentFlags().GetBool("verbose")
	return v
}

// userMessage renders err the way the scanner app reports it.
func userMessage(err error, verbose bool) string {
	if verbose {
		return "Error: " + err.Error()
	}
	switch {
	case errors.Is(err, domain.ErrInvalidQR):
		return "Invalid QR"
	case errors.Is(err, domain.ErrNoQRCode):
		return "No QR code found"
	default:
		return "Error: " + err.Error()
	}
}
