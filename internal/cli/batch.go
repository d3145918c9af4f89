package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"upiscan/internal/domain"
	"upiscan/internal/report"
)

// maxLineBytes bounds a single payload line.
const maxLineBytes = 1 << 20

func batchCmd(a *app) *cobra.Command {
	var format string
	var out string

	c := &cobra.Command{
		Use:   "batch <file|->",
		Short: "Extract payee addresses from a file with one payload per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reportFormat, err := domain.ParseReportFormat(format)
			if err != nil {
				return fmt.Errorf("%w %q (expected json|csv|xlsx)", err, format)
			}

			payloads, err := readPayloadLines(cmd, args[0])
			if err != nil {
				return err
			}

			svc, err := a.newService(nil)
			if err != nil {
				return err
			}

			items, err := svc.ExtractBatch(cmd.Context(), payloads)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("creating report: %w", err)
				}
				defer func() { _ = f.Close() }()
				w = f
			}

			if err := report.Write(w, reportFormat, items); err != nil {
				return fmt.Errorf("writing report: %w", err)
			}

			found := 0
			for i := range items {
				if items[i].OK() {
					found++
				}
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "%d of %d payloads yielded a payee address\n", found, len(items))
			return nil
		},
	}

	c.Flags().StringVarP(&format, "format", "f", "json", "Report format: json|csv|xlsx")
	c.Flags().StringVarP(&out, "out", "o", "", "Write the report to this file instead of stdout")
	return c
}

// readPayloadLines reads one payload per non-blank line from path, or from
// stdin when path is "-".
func readPayloadLines(cmd *cobra.Command, path string) ([]string, error) {
	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening payload file: %w", err)
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	var payloads []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		payloads = append(payloads, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading payloads: %w", err)
	}
	return payloads, nil
}
