package obscheck

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/profolio/profolio/internal/tools/common"
	"github.com/profolio/profolio/internal/tools/loadgen"
	"github.com/profolio/profolio/internal/tools/ui"
)

type options struct {
	baseURL  string
	duration time.Duration
	rps      int
	ci       bool
}

func NewRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{Use: "obscheck", Short: "Validate the observability surface end to end"}
	cmd.PersistentFlags().StringVar(&opts.baseURL, "base-url", "http://localhost:8080", "API base URL")
	cmd.PersistentFlags().DurationVar(&opts.duration, "duration", 10*time.Second, "probe traffic duration")
	cmd.PersistentFlags().IntVar(&opts.rps, "rps", 10, "probe traffic rate")
	cmd.PersistentFlags().BoolVar(&opts.ci, "ci", false, "non-interactive machine-readable output")
	cmd.AddCommand(newRunCommand(opts))
	return cmd
}

func newRunCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Drive traffic and verify liveness, readiness and error mix",
		RunE: func(cmd *cobra.Command, args []string) error {
			details, err := run(opts, "obscheck run", func(ctx context.Context) ([]string, error) {
				return check(ctx, opts)
			})
			if opts.ci {
				common.PrintCIResult(err == nil, "obscheck run", details, err)
			}
			if err != nil {
				os.Exit(5)
			}
			return nil
		},
	}
}

func run(opts *options, title string, fn func(context.Context) ([]string, error)) ([]string, error) {
	if opts.ci {
		return fn(context.Background())
	}
	return ui.Run(title, fn)
}

func check(ctx context.Context, opts *options) ([]string, error) {
	client := &http.Client{Timeout: 5 * time.Second}
	details := make([]string, 0, 6)

	if err := probe(ctx, client, opts.baseURL+"/health/live"); err != nil {
		return nil, fmt.Errorf("liveness: %w", err)
	}
	details = append(details, "liveness: ok")

	checks, err := readiness(ctx, client, opts.baseURL+"/health/ready")
	if err != nil {
		return details, fmt.Errorf("readiness: %w", err)
	}
	details = append(details, "readiness: ok ("+strings.Join(checks, ", ")+")")

	// A short mixed burst exercises the success and failure paths that the
	// dashboards chart.
	res, err := loadgen.Run(ctx, loadgen.Config{
		BaseURL:  opts.baseURL,
		Profile:  "mixed",
		Duration: opts.duration,
		RPS:      opts.rps,
	})
	if err != nil {
		return details, err
	}
	details = append(details,
		fmt.Sprintf("probe traffic: total=%d failures=%d", res.TotalRequests, res.Failures),
		fmt.Sprintf("status mix: 2xx=%d 4xx=%d 5xx=%d", res.Status2xx, res.Status4xx, res.Status5xx),
	)
	if res.TotalRequests == 0 {
		return details, fmt.Errorf("no probe requests completed")
	}
	if res.Status5xx > 0 {
		return details, fmt.Errorf("probe traffic hit %d server errors", res.Status5xx)
	}
	return details, nil
}

func probe(ctx context.Context, client *http.Client, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}

func readiness(ctx context.Context, client *http.Client, url string) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	var body struct {
		Status string `json:"status"`
		Checks []struct {
			Name string `json:"name"`
		} `json:"checks"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("decode readiness body: %w", err)
	}
	names := make([]string, 0, len(body.Checks))
	for _, c := range body.Checks {
		names = append(names, c.Name)
	}
	return names, nil
}
