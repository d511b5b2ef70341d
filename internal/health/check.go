package health

import (
	"fmt"
	"io/fs"
)

// MakeIsHealthy returns a health check function verifying the
// assets served contain the root index document.
func MakeIsHealthy(assets fs.FS, logger Logger) func() error {
	return func() (err error) {
		err = isHealthy(assets)
		if err != nil {
			logger.Warn("unhealthy: " + err.Error())
		}
		return err
	}
}

func isHealthy(assets fs.FS) (err error) {
	info, err := fs.Stat(assets, "index.html")
	if err != nil {
		return fmt.Errorf("checking index document: %w", err)
	} else if info.IsDir() {
		return fmt.Errorf("%w: index.html", ErrIndexIsDirectory)
	}
	return nil
}
