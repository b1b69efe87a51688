package shared

import (
	"io"

	"github.com/golang/glog"
)

// CloseQuietly closes `c`, logging eventual errors
func CloseQuietly(c io.Closer) {
	if err := c.Close(); err != nil {
		glog.Errorf("Error closing %v: %v", c, err)
	}
}
