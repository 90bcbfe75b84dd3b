package log

import (
	"fmt"
	"time"

	"github.com/ker0olos/sift/config/modules"
	"github.com/ker0olos/sift/utils"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const timeLayout = "2006/01/02 15:04:05.000"

// NewZapLogger builds a logger from cfg and installs it as the global zap logger.
func NewZapLogger(cfg *modules.LogConfig) (*zap.SugaredLogger, error) {
	level, err := zapcore.ParseLevel(string(cfg.Level))
	if err != nil {
		return nil, err
	}

	encodingMap := map[modules.LogFormat]string{
		modules.LogFormatText: "console",
		modules.LogFormatJson: "json",
	}
	encoderMap := map[modules.LogFormat]zapcore.EncoderConfig{
		modules.LogFormatText: zap.NewDevelopmentEncoderConfig(),
		modules.LogFormatJson: zap.NewProductionEncoderConfig(),
	}
	zapConfig := zap.Config{
		Level:             zap.NewAtomicLevelAt(level),
		Development:       false,
		DisableCaller:     true,
		DisableStacktrace: true,
		Encoding:          encodingMap[cfg.Format],
		EncoderConfig:     encoderMap[cfg.Format],
	}
	zapConfig.EncoderConfig.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.Format(timeLayout))
	}
	if cfg.Format == modules.LogFormatText {
		zapConfig.EncoderConfig.EncodeName = func(loggerName string, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(fmt.Sprintf("%-8s", "["+loggerName+"]"))
		}
		if cfg.Colored {
			zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}
		zapConfig.EncoderConfig.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(utils.Colorize(t.Format(timeLayout), utils.ColorDarkGray, cfg.Colored))
		}
	}

	if cfg.File == "" {
		zapConfig.OutputPaths = []string{"stdout"}
	} else {
		zapConfig.OutputPaths = []string{cfg.File}
	}

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, err
	}

	zap.ReplaceGlobals(logger)

	return logger.Sugar(), nil
}
