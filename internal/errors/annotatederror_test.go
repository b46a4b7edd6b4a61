package errors_test

import (
	"log/slog"
	"slices"
	"testing"

	"github.com/myrjola/sustainscore/internal/errors"
	"github.com/stretchr/testify/require"
)

func TestAnnotatedError(t *testing.T) {
	err := errors.New("test error", slog.String("id", "123"))
	require.Equal(t, "test error", err.Error())

	// Assert that wrapping sentinel errors work as expected.
	sentinel := errors.NewSentinel("test error")
	require.NotErrorIs(t, err, errors.NewSentinel("test error"))
	wrapped := errors.Wrap(sentinel, "load tables", slog.String("path", "tables.yaml"))
	require.ErrorIs(t, wrapped, sentinel)
	require.Equal(t, "load tables: test error", wrapped.Error())

	require.NoError(t, errors.Wrap(nil, "nothing to wrap"))
}

func TestSlogError(t *testing.T) {
	inner := errors.New("invalid factor", slog.String("mode", "Ferry"))
	outer := errors.Wrap(inner, "parse tables", slog.String("path", "tables.yaml"))

	attr := errors.SlogError(outer)
	require.Equal(t, "error", attr.Key)
	group := attr.Value.Group()

	// Annotations from every level of the chain are included.
	require.Contains(t, group, slog.String("mode", "Ferry"))
	require.Contains(t, group, slog.String("path", "tables.yaml"))
	require.Contains(t, group, slog.String("msg", "parse tables: invalid factor"))

	// Assert there's a valid source pointing to the root cause.
	sourceIdx := slices.IndexFunc(group, func(attr slog.Attr) bool {
		return attr.Key == "source"
	})
	require.NotEqual(t, -1, sourceIdx)
	require.Contains(t, group[sourceIdx].Value.String(), "annotatederror_test.go")
}

func TestSlogError_plainError(t *testing.T) {
	attr := errors.SlogError(errors.NewSentinel("plain"))
	group := attr.Value.Group()
	require.Len(t, group, 1)
	require.Equal(t, "plain", group[0].Value.String())
}

func TestJoin(t *testing.T) {
	first := errors.NewSentinel("first")
	second := errors.NewSentinel("second")
	joined := errors.Join(errors.Wrap(first, "step one"), errors.Wrap(second, "step two"))
	require.ErrorIs(t, joined, first)
	require.ErrorIs(t, joined, second)
}
