// Package zappretty provides a colorized zapcore.Encoder for logs read by
// people at a terminal. Entry metadata is rendered as a colored header and
// fields are rendered by zap's JSON encoder.
package zappretty

import (
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"go.uber.org/zap"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

const timeFormat = "2006-01-02 15:04:05 MST"

var (
	bufPool    = buffer.NewPool()
	levelColor = map[zapcore.Level]color.Attribute{
		zapcore.DebugLevel:  color.FgBlue,
		zapcore.InfoLevel:   color.FgGreen,
		zapcore.WarnLevel:   color.FgYellow,
		zapcore.ErrorLevel:  color.FgRed,
		zapcore.DPanicLevel: color.FgRed,
		zapcore.PanicLevel:  color.FgRed,
		zapcore.FatalLevel:  color.FgRed,
	}
)

// Register makes the encoder available to zap.Config under the name "cli".
func Register(cfg zapcore.EncoderConfig) error {
	return zap.RegisterEncoder("cli", func(_ zapcore.EncoderConfig) (zapcore.Encoder, error) {
		return NewCLIEncoder(cfg), nil
	})
}

// NewLogger returns a logger writing colorized entries at or above level to w.
func NewLogger(w io.Writer, level zapcore.LevelEnabler) *zap.Logger {
	core := zapcore.NewCore(
		NewCLIEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(zapcore.AddSync(w)),
		level,
	)

	return zap.New(core)
}

type cliEncoder struct {
	// fields and context only; every entry key is blank
	zapcore.Encoder

	cfg zapcore.EncoderConfig
}

func NewCLIEncoder(cfg zapcore.EncoderConfig) zapcore.Encoder {
	if cfg.SkipLineEnding {
		cfg.LineEnding = ""
	} else if cfg.LineEnding == "" {
		cfg.LineEnding = zapcore.DefaultLineEnding
	}

	fields := zapcore.NewJSONEncoder(zapcore.EncoderConfig{
		EncodeTime:          cfg.EncodeTime,
		EncodeDuration:      cfg.EncodeDuration,
		NewReflectedEncoder: cfg.NewReflectedEncoder,
		SkipLineEnding:      true,
	})

	return &cliEncoder{
		Encoder: fields,
		cfg:     cfg,
	}
}

func (enc *cliEncoder) Clone() zapcore.Encoder {
	return &cliEncoder{
		Encoder: enc.Encoder.Clone(),
		cfg:     enc.cfg,
	}
}

func (enc *cliEncoder) EncodeEntry(entry zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	encoded, err := enc.Encoder.EncodeEntry(zapcore.Entry{}, fields)
	if err != nil {
		return nil, err
	}
	defer encoded.Free()

	buf := bufPool.Get()

	if enc.cfg.TimeKey != "" {
		encodeTimestamp(buf, entry.Time)
	}

	if enc.cfg.LevelKey != "" && enc.cfg.EncodeLevel != nil {
		encodeLevel(buf, entry.Level)
	}

	if entry.LoggerName != "" && enc.cfg.NameKey != "" {
		encodeLoggerName(buf, entry.LoggerName)
	}

	if entry.Caller.Defined && enc.cfg.CallerKey != "" {
		encodeCaller(buf, entry.Caller)
	}

	if enc.cfg.MessageKey != "" {
		encodeMessage(buf, entry.Message)
	}

	// An entry with no fields and no context encodes as "{}".
	if object := strings.TrimRight(encoded.String(), "\n"); object != "{}" {
		buf.AppendString(color.New(color.FgHiBlack).Sprint(object))
		buf.AppendByte(' ')
	}

	if entry.Stack != "" && enc.cfg.StacktraceKey != "" {
		buf.AppendByte('\n')
		buf.AppendString(color.New(color.FgHiBlack).Sprint(entry.Stack))
	}

	buf.AppendString(enc.cfg.LineEnding)

	return buf, nil
}

func encodeTimestamp(buf *buffer.Buffer, timestamp time.Time) {
	buf.WriteString(color.New(color.FgWhite).Sprintf("[%s]", timestamp.Format(timeFormat)))
	buf.WriteString(" ")
}

func encodeLevel(buf *buffer.Buffer, level zapcore.Level) {
	if level == zapcore.InfoLevel || level == zapcore.WarnLevel {
		buf.WriteString(color.New(levelColor[level]).Sprint(level.CapitalString() + " "))
	} else {
		buf.WriteString(color.New(levelColor[level]).Sprint(level.CapitalString()))
	}
	buf.WriteString(" ")
}

func encodeLoggerName(buf *buffer.Buffer, logger string) {
	buf.WriteString(color.New(color.FgHiBlack).Sprint(logger))
	buf.WriteString(" ")
}

func encodeCaller(buf *buffer.Buffer, caller zapcore.EntryCaller) {
	buf.WriteString(color.New(color.FgHiBlack).Sprintf("(%s)", caller.TrimmedPath()))
	buf.WriteString(" ")
}

func encodeMessage(buf *buffer.Buffer, message string) {
	buf.WriteString(color.New(color.FgHiWhite).Sprint(message))
	buf.WriteString(" ")
}
