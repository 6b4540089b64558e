package zappretty

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	gofuzz "github.com/google/gofuzz"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	epoch  = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)
	header = fmt.Sprintf("\x1b[37m[%s]\x1b[0m \x1b[32mINFO \x1b[0m \x1b[90mmain\x1b[0m \x1b[90m(foo.go:42)\x1b[0m \x1b[97mhello world\x1b[0m ", epoch.Format(timeFormat))
	entry  = zapcore.Entry{
		Level:      zapcore.InfoLevel,
		Time:       epoch,
		LoggerName: "main",
		Message:    "hello world",
		Caller: zapcore.EntryCaller{
			Defined:  true,
			File:     "foo.go",
			Line:     42,
			Function: "foo.Bar",
		},
		Stack: "foo",
	}
	testcases = []struct {
		name   string
		fields []zapcore.Field
		want   string
	}{
		{
			name: "info with caller",
			want: header + "\n",
		},
		{
			name:   "info with fields",
			fields: []zapcore.Field{zap.String("element", "b"), zap.Int("index", 1)},
			want:   header + "\x1b[90m{\"element\":\"b\",\"index\":1}\x1b[0m \n",
		},
	}
)

func testEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		MessageKey:     "msg",
		LevelKey:       "level",
		NameKey:        "name",
		TimeKey:        "ts",
		CallerKey:      "caller",
		FunctionKey:    "func",
		LineEnding:     "\n",
		EncodeTime:     zapcore.EpochTimeEncoder,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}

func TestMain(m *testing.M) {
	color.NoColor = false
	goleak.VerifyTestMain(m)
}

func TestPrettyOutput(t *testing.T) {
	for _, tc := range testcases {
		encoder := NewCLIEncoder(testEncoderConfig())

		t.Run(tc.name, func(t *testing.T) {
			out, err := encoder.EncodeEntry(entry, tc.fields)
			require.NoError(t, err)
			assert.Equal(t, tc.want, out.String(), "Unexpected output")
		})
	}
}

func TestContextFields(t *testing.T) {
	encoder := NewCLIEncoder(testEncoderConfig())
	encoder.AddString("list", "colors")

	clone := encoder.Clone()
	clone.AddInt("length", 3)

	out, err := encoder.EncodeEntry(entry, nil)
	require.NoError(t, err)
	assert.Equal(t, header+"\x1b[90m{\"list\":\"colors\"}\x1b[0m \n", out.String())

	out, err = clone.EncodeEntry(entry, nil)
	require.NoError(t, err)
	assert.Equal(t, header+"\x1b[90m{\"list\":\"colors\",\"length\":3}\x1b[0m \n", out.String())
}

func TestStacktrace(t *testing.T) {
	cfg := testEncoderConfig()
	cfg.StacktraceKey = "stacktrace"

	out, err := NewCLIEncoder(cfg).EncodeEntry(entry, nil)
	require.NoError(t, err)
	assert.Equal(t, header+"\n\x1b[90mfoo\x1b[0m\n", out.String())
}

func TestSkipLineEnding(t *testing.T) {
	cfg := testEncoderConfig()
	cfg.SkipLineEnding = true

	out, err := NewCLIEncoder(cfg).EncodeEntry(entry, nil)
	require.NoError(t, err)
	assert.Equal(t, header, out.String())
}

func TestRegister(t *testing.T) {
	require.NoError(t, Register(testEncoderConfig()))

	cfg := zap.NewDevelopmentConfig()
	cfg.Encoding = "cli"
	cfg.OutputPaths = []string{}
	cfg.ErrorOutputPaths = []string{}

	logger, err := cfg.Build()
	require.NoError(t, err)
	assert.NotNil(t, logger)
}

func TestNewLoggerLevel(t *testing.T) {
	var buf bytes.Buffer

	logger := NewLogger(&buf, zapcore.InfoLevel)
	logger.Debug("hidden")
	logger.Info("shown", zap.String("k", "v"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "shown")
	assert.Contains(t, lines[0], `{"k":"v"}`)
}

func TestFuzzLog(t *testing.T) {
	defer goleak.VerifyNone(t)

	var buf bytes.Buffer

	logger := NewLogger(&buf, zapcore.DebugLevel).Named("zappretty")
	defer logger.Sync()

	corpus := make([]string, 0)

	f := gofuzz.New()

	for i := 0; i < 1000; i++ {
		var s string

		f.Fuzz(&s)
		corpus = append(corpus, s)
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		for i := 0; i < 1000; i++ {
			logger.Info(corpus[i], zap.Int("i", i))
		}
	}()

	for i := 0; i < 1000; i++ {
		logger.Debug(corpus[i], zap.String("s", corpus[i]))
	}

	wg.Wait()

	assert.NotZero(t, buf.Len())
}
