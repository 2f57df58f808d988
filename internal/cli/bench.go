package cli

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/lalaz-foundation/wire/internal/bench"
)

var benchCmd = &cobra.Command{
	Use:   "bench URL",
	Short: "Issue repeated requests and report latency percentiles",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, endpoint, err := buildClient(cmd, args[0])
		if err != nil {
			return err
		}

		opts, err := buildOptions(cmd)
		if err != nil {
			return err
		}

		requests, _ := cmd.Flags().GetInt("requests")
		concurrency, _ := cmd.Flags().GetInt("concurrency")
		method, _ := cmd.Flags().GetString("method")

		runner := bench.NewRunner(client, bench.Config{
			Requests:    requests,
			Concurrency: concurrency,
			Method:      method,
			Endpoint:    endpoint,
			Options:     opts,
		})

		summary, err := runner.Run(context.Background())
		if err != nil {
			return err
		}

		printSummary(cmd, summary)
		return nil
	},
}

func printSummary(cmd *cobra.Command, summary *bench.Summary) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Requests: %d  Failures: %d\n", summary.Requests, summary.Failures)

	codes := make([]int, 0, len(summary.Statuses))
	for code := range summary.Statuses {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	for _, code := range codes {
		fmt.Fprintf(out, "  %d: %d\n", code, summary.Statuses[code])
	}

	fmt.Fprintf(out, "Latency:\n")
	fmt.Fprintf(out, "  min:  %s\n", formatLatency(summary.Min))
	fmt.Fprintf(out, "  mean: %s\n", formatLatency(summary.Mean))
	fmt.Fprintf(out, "  p50:  %s\n", formatLatency(summary.P50))
	fmt.Fprintf(out, "  p90:  %s\n", formatLatency(summary.P90))
	fmt.Fprintf(out, "  p99:  %s\n", formatLatency(summary.P99))
	fmt.Fprintf(out, "  max:  %s\n", formatLatency(summary.Max))
}

func formatLatency(d time.Duration) string {
	return fmt.Sprintf("%.2fms", float64(d)/float64(time.Millisecond))
}

func init() {
	addRequestFlags(benchCmd, true)
	benchCmd.Flags().IntP("requests", "n", 10, "Total number of requests to issue")
	benchCmd.Flags().IntP("concurrency", "c", 1, "Number of concurrent workers")
	benchCmd.Flags().StringP("method", "X", "GET", "HTTP method to benchmark")
}
