package console_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clipcrypt/internal/console"
	"clipcrypt/internal/domain"
)

func TestScannerSource_Lines(t *testing.T) {
	src := console.NewScannerSource(strings.NewReader("first\r\nsecond\n\nlast"))
	ctx := context.Background()

	for _, want := range []string{"first", "second", "", "last"} {
		got, err := src.ReadLine(ctx, "> ")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := src.ReadLine(ctx, "> ")
	require.ErrorIs(t, err, io.EOF)
	_, err = src.ReadLine(ctx, "> ")
	require.ErrorIs(t, err, io.EOF)
}

func TestScannerSource_Cancelled(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	src := console.NewScannerSource(pr)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := src.ReadLine(ctx, "")
	require.ErrorIs(t, err, domain.ErrInterrupted)
}

func TestScannerSource_ReadError(t *testing.T) {
	boom := errors.New("boom")
	pr, pw := io.Pipe()
	go func() {
		_, _ = pw.Write([]byte("ok\n"))
		_ = pw.CloseWithError(boom)
	}()

	src := console.NewScannerSource(pr)
	line, err := src.ReadLine(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "ok", line)

	_, err = src.ReadLine(context.Background(), "")
	require.ErrorIs(t, err, boom)
}

func TestScannerSource_LongLineIsSkipped(t *testing.T) {
	long := strings.Repeat("a", 1<<20+1)
	src := console.NewScannerSource(strings.NewReader("before\n" + long + "\r\nafter\n"))
	ctx := context.Background()

	line, err := src.ReadLine(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "before", line)

	_, err = src.ReadLine(ctx, "")
	require.ErrorIs(t, err, console.ErrLineTooLong)

	line, err = src.ReadLine(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "after", line)

	_, err = src.ReadLine(ctx, "")
	require.ErrorIs(t, err, io.EOF)
}

func TestScannerSource_LineAtLimit(t *testing.T) {
	full := strings.Repeat("b", 1<<20)
	src := console.NewScannerSource(strings.NewReader(full + "\n"))

	line, err := src.ReadLine(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, line, 1<<20)
}

func TestScannerSource_CloseStopsReader(t *testing.T) {
	src := console.NewScannerSource(strings.NewReader("a\nb\nc\nd\n"))
	require.NoError(t, src.Close())
	require.NoError(t, src.Close())

	// lines may still arrive until the reader notices, then input ends
	delivered := 0
	for {
		_, err := src.ReadLine(context.Background(), "")
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		delivered++
		require.LessOrEqual(t, delivered, 4)
	}
}

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := console.NewPrinter(&buf, true)

	p.Info("key %d", 1)
	p.Result("enc-QUJD")
	p.Problem(errors.New("bad frame"), "check the paste")
	p.Problem(errors.New("quiet"), "")

	assert.Equal(t, "key 1\nenc-QUJD\n\nerror: bad frame\ncheck the paste\nerror: quiet\n", buf.String())
}
