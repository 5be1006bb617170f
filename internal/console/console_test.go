package console

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLine(t *testing.T) {
	var out bytes.Buffer
	r := NewReader(strings.NewReader("plane\nspade\n"), &out)

	line, err := r.ReadLine(context.Background(), "Guess 1: ")
	require.NoError(t, err)
	assert.Equal(t, "plane", line)

	line, err = r.ReadLine(context.Background(), "Guess 2: ")
	require.NoError(t, err)
	assert.Equal(t, "spade", line)

	_, err = r.ReadLine(context.Background(), "Guess 3: ")
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, "Guess 1: Guess 2: Guess 3: ", out.String())
}

func TestReadLine_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewReader(strings.NewReader("plane\n"), io.Discard).ReadLine(ctx, "> ")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReadLine_CancelWhileBlocked(t *testing.T) {
	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })
	r := NewReader(pr, io.Discard)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := r.ReadLine(ctx, "Guess 1: ")
		done <- err
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("ReadLine did not return after cancel")
	}
}

func TestReadLine_LineAfterCancelledCallIsKept(t *testing.T) {
	pr, pw := io.Pipe()
	r := NewReader(pr, io.Discard)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := r.ReadLine(ctx, "> ")
	require.ErrorIs(t, err, context.DeadlineExceeded)

	go func() {
		_, _ = io.WriteString(pw, "plane\n")
		_ = pw.Close()
	}()
	got, err := r.ReadLine(context.Background(), "> ")
	require.NoError(t, err)
	assert.Equal(t, "plane", got)

	_, err = r.ReadLine(context.Background(), "> ")
	assert.ErrorIs(t, err, io.EOF)
}

func TestConfirm(t *testing.T) {
	var out bytes.Buffer
	r := NewReader(strings.NewReader("maybe\n\nY\n n \n"), &out)

	ok, err := r.Confirm(context.Background(), "Continue?")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 3, strings.Count(out.String(), "Continue? (y/n) "))

	ok, err = r.Confirm(context.Background(), "Save?")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = r.Confirm(context.Background(), "Again?")
	assert.ErrorIs(t, err, io.EOF)
}
