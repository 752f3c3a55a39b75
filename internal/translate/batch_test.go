package translate

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestBatchDisabledIdentity(t *testing.T) {
	tr := &Translator{log: zerolog.Nop(), enabled: false}
	in := []string{"a", "b", "c"}
	out, fails := tr.Batch(context.Background(), in)
	assert.Zero(t, fails)
	// kontrakt: identyczność, bez kopii
	assert.Same(t, &in[0], &out[0])
	assert.Equal(t, in, out)
}

func TestBatchPreservesLengthAndOrder(t *testing.T) {
	// pierwszy element kończy się ostatni — kolejność wyników musi zostać
	tr := testTranslator(func(_ context.Context, s string) (string, error) {
		if s == "a" {
			time.Sleep(50 * time.Millisecond)
		}
		return strings.ToUpper(s), nil
	})
	in := []string{"a", "b", "c", "d", "e"}
	out, fails := tr.Batch(context.Background(), in)
	assert.Zero(t, fails)
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, out)
}

func TestBatchEmpty(t *testing.T) {
	tr := testTranslator(upper)
	out, fails := tr.Batch(context.Background(), nil)
	assert.Zero(t, fails)
	assert.Empty(t, out)
}

func TestBatchFailureIsolated(t *testing.T) {
	tr := testTranslator(func(_ context.Context, s string) (string, error) {
		if s == "bad" {
			return "", errors.New("boom")
		}
		return strings.ToUpper(s), nil
	})
	out, fails := tr.Batch(context.Background(), []string{"ok", "bad", "also ok"})
	assert.Equal(t, []string{"OK", "bad", "ALSO OK"}, out)
	assert.Equal(t, 1, fails)
}

func TestBatchWorkerPanicFallsBack(t *testing.T) {
	tr := testTranslator(func(_ context.Context, s string) (string, error) {
		if s == "kaboom" {
			panic("worker died")
		}
		return strings.ToUpper(s), nil
	})
	out, fails := tr.Batch(context.Background(), []string{"x", "kaboom", "y"})
	assert.Equal(t, []string{"X", "kaboom", "Y"}, out)
	assert.Equal(t, 1, fails)
}

func TestBatchManyItemsBoundedPool(t *testing.T) {
	tr := testTranslator(upper)
	tr.workers = 3
	in := make([]string, 100)
	for i := range in {
		in[i] = strings.Repeat("x", i%7+1)
	}
	out, fails := tr.Batch(context.Background(), in)
	assert.Zero(t, fails)
	assert.Len(t, out, 100)
	for i := range in {
		assert.Equal(t, strings.ToUpper(in[i]), out[i])
	}
}
