package validkit_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	validkit "github.com/reoring/validkit"
)

func TestIssues_ErrorSummary(t *testing.T) {
	iss := validkit.Issues{
		{Path: "a", Message: "m1"},
		{Path: "", Message: "root problem"},
		{Path: "c", Message: "m3"},
		{Path: "d", Message: "m4"},
	}
	require.Equal(t, "a: m1; root problem; c: m3; ... (total 4)", iss.Error())
	require.Equal(t, "", validkit.Issues{}.Error())
}

func TestIssues_Helpers(t *testing.T) {
	iss := validkit.AppendIssues(nil, validkit.Issue{Path: "x"}, validkit.Issue{Path: "y"})
	require.True(t, iss.Has("y"))
	require.False(t, iss.Has("z"))
	first, ok := iss.First()
	require.True(t, ok)
	require.Equal(t, "x", first.Path)

	_, ok = validkit.Issues{}.First()
	require.False(t, ok)
}

func TestAsIssues_ThroughWrapping(t *testing.T) {
	base := validkit.Issues{{Path: "p", Code: validkit.CodeRequired}}
	wrapped := fmt.Errorf("loading config: %w", base)

	got, ok := validkit.AsIssues(wrapped)
	require.True(t, ok)
	require.Equal(t, base, got)

	_, ok = validkit.AsIssues(errors.New("plain"))
	require.False(t, ok)
	_, ok = validkit.AsIssues(nil)
	require.False(t, ok)
}

func TestIssue_String(t *testing.T) {
	it := validkit.Issue{Path: "a", Message: "bad", Value: map[string]any{"b": 1, "a": 2}}
	s := it.String()
	require.True(t, strings.HasPrefix(s, "a: bad (value: "), s)
	require.Less(t, strings.Index(s, "a:2"), strings.Index(s, "b:1"), s)

	root := validkit.Issue{Message: "bad", Value: 3}
	require.Equal(t, "bad (value: 3)", root.String())
}
