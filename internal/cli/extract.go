package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"upiscan/internal/domain"
	"upiscan/internal/upi"
)

func extractCmd(a *app) *cobra.Command {
	var opts scanOptions

	c := &cobra.Command{
		Use:   "extract [payload|-]",
		Short: "Extract the payee address from decoded QR text",
		Long: "Extract the payee address from decoded QR text, copy it to the clipboard and hand\n" +
			"the USSD dial URI to the dialer. Reads the payload from stdin when it is omitted or \"-\".",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.bind(cmd)

			payload, err := readPayload(cmd, args)
			if err != nil {
				return err
			}

			svc, err := a.newService(&opts)
			if err != nil {
				return err
			}

			result, err := svc.Scan(cmd.Context(), payload)
			if err != nil {
				return err
			}

			return printScanResult(cmd.OutOrStdout(), cmd.ErrOrStderr(), result, a.cfg.Scan.ClipboardLabel, opts.jsonOut)
		},
	}

	addScanFlags(c, &opts)
	return c
}

func classifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify [payload|-]",
		Short: "Print whether a payload is an EMV, URL or unknown payload",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := readPayload(cmd, args)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), upi.Classify(payload))
			return err
		},
	}
}

func inspectCmd(a *app) *cobra.Command {
	var jsonOut bool

	c := &cobra.Command{
		Use:   "inspect [payload|-]",
		Short: "List the TLV fields of an EMV payload",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := readPayload(cmd, args)
			if err != nil {
				return err
			}

			svc, err := a.newService(nil)
			if err != nil {
				return err
			}

			inspection, err := svc.Inspect(cmd.Context(), payload)
			if err != nil {
				return err
			}

			if jsonOut {
				return writeJSON(cmd.OutOrStdout(), inspection)
			}
			return printInspection(cmd.OutOrStdout(), inspection)
		},
	}

	c.Flags().BoolVar(&jsonOut, "json", false, "print the fields as JSON")
	return c
}

// readPayload returns the single positional argument, or all of stdin when
// the argument is missing or "-". Trailing line breaks from stdin are dropped.
func readPayload(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		return args[0], nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

func printScanResult(w, status io.Writer, result *domain.ScanResult, label string, jsonOut bool) error {
	if jsonOut {
		return writeJSON(w, result)
	}

	if _, err := fmt.Fprintln(w, result.PayeeAddress); err != nil {
		return err
	}
	if result.Copied {
		fmt.Fprintf(status, "%s copied to clipboard\n", label)
	}
	switch {
	case result.Dialed:
		fmt.Fprintf(status, "Dialing %s\n", result.DialURI)
	case result.DialError != "":
		fmt.Fprintf(status, "Failed to call USSD (%s)\n", result.DialURI)
	}
	return nil
}

func printInspection(w io.Writer, inspection *domain.Inspection) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TAG\tLEN\tVALUE")
	for _, f := range inspection.Fields {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", f.Tag, f.Length, f.Value)
		if f.Tag == "26" {
			for _, sub := range inspection.MerchantAccount {
				fmt.Fprintf(tw, "  %s\t%d\t%s\n", sub.Tag, sub.Length, sub.Value)
			}
		}
	}
	return tw.Flush()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
