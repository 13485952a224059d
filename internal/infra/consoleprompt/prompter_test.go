package consoleprompt

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	"github.com/clay-k0/QR/internal/domain"
)

func TestChoose_AcceptsCaseInsensitive(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("Y\n"), &out)

	got, err := p.Choose(context.Background(), "Create? (y/n) ", []string{"y", "n"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "y" {
		t.Fatalf("expected normalized y, got %q", got)
	}
	if !strings.Contains(out.String(), "Create? (y/n) ") {
		t.Fatalf("expected question in output, got %q", out.String())
	}
}

func TestChoose_RepromptsOnInvalid(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("maybe\n\n3\n2\n"), &out)

	got, err := p.Choose(context.Background(), "Format? ", []string{"1", "2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "2" {
		t.Fatalf("expected 2, got %q", got)
	}
	if n := strings.Count(out.String(), "Format? "); n != 4 {
		t.Fatalf("expected 4 prompts, got %d in %q", n, out.String())
	}
	if n := strings.Count(out.String(), invalidChoiceMsg); n != 3 {
		t.Fatalf("expected 3 invalid notices, got %d", n)
	}
}

func TestChoose_TrimsWhitespace(t *testing.T) {
	p := New(strings.NewReader("  yes \r\n"), &bytes.Buffer{})
	got, err := p.Choose(context.Background(), "? ", []string{"yes", "no"})
	if err != nil || got != "yes" {
		t.Fatalf("expected yes, got %q, %v", got, err)
	}
}

func TestChoose_LastLineWithoutNewline(t *testing.T) {
	p := New(strings.NewReader("n"), &bytes.Buffer{})
	got, err := p.Choose(context.Background(), "? ", []string{"y", "n"})
	if err != nil || got != "n" {
		t.Fatalf("expected n, got %q, %v", got, err)
	}
}

func TestChoose_EOFIsInputClosed(t *testing.T) {
	p := New(strings.NewReader("maybe\n"), &bytes.Buffer{})
	_, err := p.Choose(context.Background(), "? ", []string{"y", "n"})
	if !domain.IsKind(err, domain.KindInputClosed) {
		t.Fatalf("expected input closed, got %v", err)
	}
	if !errors.Is(err, domain.ErrInputClosed) {
		t.Fatalf("expected ErrInputClosed in chain")
	}
}

func TestChoose_ReadErrorIsIO(t *testing.T) {
	p := New(iotest.ErrReader(errors.New("boom")), &bytes.Buffer{})
	_, err := p.Choose(context.Background(), "? ", []string{"y"})
	if !domain.IsKind(err, domain.KindIO) {
		t.Fatalf("expected io error, got %v", err)
	}
}

func TestChoose_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := New(strings.NewReader("y\n"), &bytes.Buffer{})
	if _, err := p.Choose(ctx, "? ", []string{"y"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestChoose_CancelWhileWaitingForInput(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	p := New(pr, &bytes.Buffer{})

	done := make(chan error, 1)
	go func() {
		_, err := p.Choose(ctx, "Create? (y/n) ", []string{"y", "n"})
		done <- err
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("Choose did not return after cancellation")
	}

	go func() { _, _ = pw.Write([]byte("n\n")) }()
	got, err := p.Choose(context.Background(), "Again? (y/n) ", []string{"y", "n"})
	if err != nil || got != "n" {
		t.Fatalf("expected the in-flight read to serve the next prompt, got %q, %v", got, err)
	}
}

func TestChoose_SharedReaderAcrossPrompts(t *testing.T) {
	p := New(strings.NewReader("y\n1\n"), &bytes.Buffer{})

	first, err := p.Choose(context.Background(), "? ", []string{"y", "n"})
	if err != nil || first != "y" {
		t.Fatalf("first prompt: %q, %v", first, err)
	}
	second, err := p.Choose(context.Background(), "? ", []string{"1", "2"})
	if err != nil || second != "1" {
		t.Fatalf("second prompt: %q, %v", second, err)
	}
}
