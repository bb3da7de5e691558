// SPDX-License-Identifier: MPL-2.0

package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-resty/resty/v2"

	"sonar-runner-cli/internal/config"
	"sonar-runner-cli/internal/props"
)

const (
	// HostURLKey holds the analysis server base URL.
	HostURLKey = "sonar.host.url"
	// WorkDirKey holds the work directory, absolute or relative to sonar.projectDir.
	WorkDirKey = "sonar.working.directory"

	// DefaultHostURL is used when sonar.host.url is not set.
	DefaultHostURL = "http://localhost:9000"
	// DefaultWorkDir is used when sonar.working.directory is not set.
	DefaultWorkDir = ".sonar"
	// DefaultTimeout bounds server calls when Options.ServerTimeout is zero.
	DefaultTimeout = 30 * time.Second

	// SnapshotFile is the name of the properties snapshot written to the work directory.
	SnapshotFile = "sonar-runner.properties"

	serverVersionPath = "/api/server/version"
)

// ErrServerStatus is wrapped when the server answers with a non-2xx status.
var ErrServerStatus = errors.New("unexpected server response")

type (
	// Runner executes an analysis with the resolved configuration.
	Runner interface {
		// ServerURL returns the analysis server base URL.
		ServerURL() string
		// WorkDir returns the absolute work directory.
		WorkDir() (string, error)
		// Execute runs the analysis.
		Execute(ctx context.Context) error
	}

	// Factory builds a Runner from the resolved configuration.
	Factory func(p props.Properties, opts Options) (Runner, error)

	// Options carry launcher-side settings that are not part of the
	// configuration mapping.
	Options struct {
		// Logger receives progress lines. Nil discards them.
		Logger *log.Logger
		// ServerTimeout bounds each HTTP call. Zero means DefaultTimeout.
		ServerTimeout time.Duration
	}

	// Default is the built-in Runner.
	Default struct {
		properties props.Properties
		logger     *log.Logger
		client     *resty.Client
		getwd      func() (string, error)
	}
)

// NewDefault is a Factory returning the built-in Runner.
func NewDefault(p props.Properties, opts Options) (Runner, error) {
	return New(p, opts)
}

// New returns a Default runner for p. The mapping is copied.
func New(p props.Properties, opts Options) (*Default, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	timeout := opts.ServerTimeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	r := &Default{
		properties: p.Clone(),
		logger:     logger,
		getwd:      os.Getwd,
	}
	r.client = resty.New().
		SetBaseURL(r.ServerURL()).
		SetTimeout(timeout)
	return r, nil
}

// ServerURL returns sonar.host.url without trailing slashes, or DefaultHostURL.
func (r *Default) ServerURL() string {
	url := strings.TrimRight(strings.TrimSpace(r.properties.Value(HostURLKey)), "/")
	if url == "" {
		return DefaultHostURL
	}
	return url
}

// WorkDir returns sonar.working.directory made absolute. Relative values are
// resolved against sonar.projectDir, or the current directory when unset.
func (r *Default) WorkDir() (string, error) {
	dir := r.properties.Value(WorkDirKey)
	if dir == "" {
		dir = DefaultWorkDir
	}

	if !filepath.IsAbs(dir) {
		base := r.properties.Value(config.ProjectDirKey)
		if base == "" {
			wd, err := r.getwd()
			if err != nil {
				return "", fmt.Errorf("failed to determine current directory: %w", err)
			}
			base = wd
		}
		dir = filepath.Join(base, dir)
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve work directory %s: %w", dir, err)
	}
	return abs, nil
}

// Execute checks the server version, then writes the configuration snapshot
// to the work directory.
func (r *Default) Execute(ctx context.Context) error {
	version, err := r.serverVersion(ctx)
	if err != nil {
		return err
	}
	r.logger.Info("Server version: " + version)

	dir, err := r.WorkDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create work directory: %w", err)
	}

	path := filepath.Join(dir, SnapshotFile)
	if err := props.WriteFile(path, r.properties); err != nil {
		return err
	}
	r.logger.Debug("Wrote analysis properties", "path", path, "count", len(r.properties))
	return nil
}

func (r *Default) serverVersion(ctx context.Context) (string, error) {
	resp, err := r.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get(serverVersionPath)
	if err != nil {
		return "", fmt.Errorf("failed to reach server %s: %w", r.ServerURL(), err)
	}
	if !resp.IsSuccess() {
		return "", fmt.Errorf("%w: GET %s returned %s", ErrServerStatus, serverVersionPath, resp.Status())
	}
	return strings.TrimSpace(resp.String()), nil
}
