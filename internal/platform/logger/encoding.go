package logger

import (
	"strings"

	"github.com/nulzo/prism-registry/internal/cli"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

var pool = buffer.NewPool()

// coloredConsoleEncoder highlights the JSON field blob zap's console encoder appends.
type coloredConsoleEncoder struct {
	zapcore.Encoder
}

func NewColoredConsoleEncoder(cfg zapcore.EncoderConfig) zapcore.Encoder {
	return &coloredConsoleEncoder{
		Encoder: zapcore.NewConsoleEncoder(cfg),
	}
}

func (c *coloredConsoleEncoder) Clone() zapcore.Encoder {
	return &coloredConsoleEncoder{
		Encoder: c.Encoder.Clone(),
	}
}

func (c *coloredConsoleEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	buf, err := c.Encoder.EncodeEntry(ent, fields)
	if err != nil {
		return nil, err
	}

	line := buf.String()

	// the console encoder separates the fields blob with a tab
	splitIdx := strings.Index(line, "\t{")
	if splitIdx == -1 {
		return buf, nil
	}

	out := pool.Get()
	out.AppendString(line[:splitIdx+1])
	out.AppendString(cli.HighlightJSON(line[splitIdx+1:]))
	buf.Free()

	return out, nil
}
