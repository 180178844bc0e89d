package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
)

// Download streams the body of a GET request to dest, overwriting any
// existing file.
func Download(ctx context.Context, urlStr, dest string, opts *Options) error {
	if opts == nil {
		opts = DefaultOptions()
	}

	resp, err := get(ctx, urlStr, opts)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return &Error{
			URL:     urlStr,
			Message: fmt.Sprintf("HTTP status %d", resp.StatusCode),
		}
	}

	out, err := os.Create(dest)
	if err != nil {
		return &Error{
			URL:     urlStr,
			Message: fmt.Sprintf("failed to create %s", dest),
			Cause:   err,
		}
	}

	if _, err := io.Copy(out, resp.Body); err != nil {
		_ = out.Close()
		return &Error{
			URL:     urlStr,
			Message: "failed to stream response to file",
			Cause:   err,
		}
	}

	if err := out.Close(); err != nil {
		return &Error{
			URL:     urlStr,
			Message: fmt.Sprintf("failed to close %s", dest),
			Cause:   err,
		}
	}

	return nil
}
