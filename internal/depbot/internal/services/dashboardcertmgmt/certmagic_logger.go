package dashboardcertmgmt

import (
	"bytes"

	"github.com/golang/glog"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newCertMagicLogger builds the zap logger handed to certmagic. certmagic only
// logs through zap, so the logger forwards everything to the glog stream the
// rest of the fleet manager writes to.
func newCertMagicLogger() *zap.Logger {
	encoderConfig := zap.NewProductionEncoderConfig()
	// glog prefixes its own timestamp
	encoderConfig.TimeKey = ""
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		glogSyncer{},
		zapcore.InfoLevel,
	)
	return zap.New(core).Named("certmagic")
}

type glogSyncer struct{}

func (glogSyncer) Write(entry []byte) (int, error) {
	glog.Info(string(bytes.TrimSpace(entry)))
	return len(entry), nil
}

func (glogSyncer) Sync() error {
	glog.Flush()
	return nil
}
