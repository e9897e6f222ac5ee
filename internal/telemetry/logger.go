package telemetry

import (
	"bytes"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a zap.Logger wrapped with a colored console encoder and an
// in-memory sink, so a cell or a container can log capacity growth and
// cut outcomes without forcing every caller to plumb an *os.File
// through the kernel.
type Logger struct {
	log *zap.Logger
	buf *bytes.Buffer
}

// New builds a Logger that writes to an internal buffer at debug
// level and above. Lines survive until Reset is called.
func New() *Logger {
	buf := &bytes.Buffer{}

	cfg := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    colorLevelEncoder,
		EncodeTime:     shortTimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	core := zapcore.NewTee(
		zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.Lock(zapcore.AddSync(buf)), zap.DebugLevel),
	)

	return &Logger{
		log: zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)),
		buf: buf,
	}
}

// Nop returns a Logger that discards everything. Kernel types default
// to this so library use never requires wiring a logger.
func Nop() *Logger {
	return &Logger{log: zap.NewNop(), buf: &bytes.Buffer{}}
}

func shortTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("[15:04:05.000]"))
}

func colorLevelEncoder(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	var code string
	switch level {
	case zapcore.DebugLevel:
		code = "\033[36m"
	case zapcore.InfoLevel:
		code = "\033[32m"
	case zapcore.WarnLevel:
		code = "\033[33m"
	case zapcore.ErrorLevel, zapcore.FatalLevel:
		code = "\033[31m"
	default:
		code = "\033[0m"
	}
	enc.AppendString(code + level.String() + "\033[0m")
}

func (l *Logger) Debug(msg string, fields ...zap.Field) { l.log.Debug(msg, fields...) }
func (l *Logger) Info(msg string, fields ...zap.Field)  { l.log.Info(msg, fields...) }
func (l *Logger) Warn(msg string, fields ...zap.Field)  { l.log.Warn(msg, fields...) }
func (l *Logger) Error(msg string, fields ...zap.Field) { l.log.Error(msg, fields...) }

// Fatal logs at fatal level and exits the process, the terminal
// behavior a capacity-exceeded diagnostic in a CLI driver requires.
func (l *Logger) Fatal(msg string, fields ...zap.Field) { l.log.Fatal(msg, fields...) }

// Lines returns the buffered log output, one entry per rendered line,
// with ANSI color codes intact.
func (l *Logger) Lines() []string {
	raw := l.buf.String()
	if raw == "" {
		return nil
	}
	lines := strings.Split(strings.TrimRight(raw, "\n"), "\n")
	return lines
}

// Reset clears the buffered log output.
func (l *Logger) Reset() {
	l.buf.Reset()
}

var ansiPattern = regexp.MustCompile(`\033\[(\d+)m`)

var ansiColor = map[string]string{
	"31": "red",
	"32": "green",
	"33": "yellow",
	"34": "blue",
	"36": "cyan",
}

// HTML renders the buffered log lines as a <pre> block with ANSI
// colors translated to inline spans, for embedding in the HTML report.
func (l *Logger) HTML() string {
	input := l.buf.String()
	var out strings.Builder
	out.WriteString("<pre>")

	var lastIndex int
	var open bool
	for _, m := range ansiPattern.FindAllStringSubmatchIndex(input, -1) {
		start, end := m[0], m[1]
		code := input[m[2]:m[3]]

		if start > lastIndex {
			out.WriteString(input[lastIndex:start])
		}

		if color, ok := ansiColor[code]; ok {
			if open {
				out.WriteString("</span>")
			}
			out.WriteString(`<span style="color: ` + color + `;">`)
			open = true
		} else if code == "0" && open {
			out.WriteString("</span>")
			open = false
		}

		lastIndex = end
	}
	if lastIndex < len(input) {
		out.WriteString(input[lastIndex:])
	}
	if open {
		out.WriteString("</span>")
	}
	out.WriteString("</pre>")
	return out.String()
}
