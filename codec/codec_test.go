package codec_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	validkit "github.com/reoring/validkit"
	"github.com/reoring/validkit/codec"
	"github.com/reoring/validkit/dsl"
)

func TestDuration(t *testing.T) {
	s := dsl.Str().Custom(codec.Duration())
	for in, want := range map[string]time.Duration{
		"90s":   90 * time.Second,
		"1h30m": 90 * time.Minute,
		"7d":    7 * 24 * time.Hour,
	} {
		out, err := validkit.Validate(in, s)
		require.NoError(t, err, in)
		require.Equal(t, want, out, in)
	}

	_, err := validkit.Validate("soon", s)
	require.Error(t, err)
	iss, _ := validkit.AsIssues(err)
	require.Equal(t, validkit.CodeCustom, iss[0].Code)
	require.Equal(t, `invalid duration "soon"`, iss[0].Message)
}

func TestTimeRFC3339(t *testing.T) {
	s := dsl.Str().Custom(codec.TimeRFC3339())
	out, err := validkit.Validate("2024-05-01T10:00:00+09:00", s)
	require.NoError(t, err)
	require.True(t, out.(time.Time).Equal(time.Date(2024, 5, 1, 1, 0, 0, 0, time.UTC)))

	require.False(t, validkit.Is("yesterday", s))
}

func TestFormatRFC3339_Canonical(t *testing.T) {
	s := dsl.Str().Custom(codec.TimeRFC3339()).Custom(codec.FormatRFC3339())
	out, err := validkit.Validate("2024-05-01T10:00:00.500+09:00", s)
	require.NoError(t, err)
	require.Equal(t, "2024-05-01T01:00:00.5Z", out)
}

func TestStringTransforms(t *testing.T) {
	s := dsl.Str().Custom(codec.TrimSpace()).Custom(codec.Lower()).Custom(codec.NonEmpty())
	out, err := validkit.Validate("  MiXeD ", s)
	require.NoError(t, err)
	require.Equal(t, "mixed", out)

	_, err = validkit.Validate("   ", s)
	require.ErrorIs(t, err, codec.ErrEmpty)

	require.False(t, validkit.Is([]any{}, dsl.List(dsl.Int()).Custom(codec.NonEmpty())))
}
