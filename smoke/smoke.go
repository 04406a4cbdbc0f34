// Package smoke boots the server in-process and checks that the liveness
// probe answers 200.
package smoke

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/GHutch55/demo-app/config"
	"github.com/GHutch55/demo-app/server"
)

// HealthPath is the liveness probe the runner requests.
const HealthPath = "/healthz"

// ErrUnhealthy is returned when the health endpoint answers with a status
// other than 200.
var ErrUnhealthy = errors.New("health check returned non-200 status")

// Run starts a server for cfg, requests HealthPath once and writes a verdict
// line to out. The server is closed before Run returns.
func Run(ctx context.Context, cfg config.Config, out io.Writer, opts ...server.Option) error {
	opts = append([]server.Option{server.WithOutput(out)}, opts...)
	srv := server.New(cfg, opts...)
	if err := srv.Start(); err != nil {
		fmt.Fprintf(out, "Test error: %v\n", err)
		return err
	}
	defer srv.Close()

	return Verify(ctx, srv.Port(), out)
}

// Verify performs the single health request against 127.0.0.1:port.
func Verify(ctx context.Context, port int, out io.Writer) error {
	status, err := check(ctx, port)
	if err != nil {
		fmt.Fprintf(out, "Test error: %v\n", err)
		return err
	}
	if status != http.StatusOK {
		fmt.Fprintf(out, "Health check failed: status %d\n", status)
		return fmt.Errorf("%w: %d", ErrUnhealthy, status)
	}

	fmt.Fprintln(out, "Health check passed")
	return nil
}

func check(ctx context.Context, port int) (int, error) {
	url := fmt.Sprintf("http://127.0.0.1:%d%s", port, HealthPath)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("GET %s: %w", url, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode, nil
}
