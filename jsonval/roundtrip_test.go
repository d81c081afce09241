// File: jsonval/roundtrip_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package jsonval

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoundTrip_ObjectWithMixedTypes(t *testing.T) {
	orig := Object().
		Set("name", String("reactor")).
		Set("workers", Number(4)).
		Set("edge_triggered", Bool(true)).
		Set("tags", Array(String("io"), String("epoll"))).
		Set("meta", Null())

	text := Marshal(orig)
	parsed, err := Parse(text)
	require.NoError(t, err)
	require.True(t, Equal(orig, parsed), "round-trip mismatch: %s", text)
}

func TestParse_EscapesAndUnicode(t *testing.T) {
	v, err := Parse(`"line1\nline2\té"`)
	require.NoError(t, err)
	require.Equal(t, "line1\nline2\té", v.String())
}

func TestParse_NestedArrayAndObject(t *testing.T) {
	v, err := Parse(`{"a":[1,2,{"b":false}],"c":null}`)
	require.NoError(t, err)
	arr, ok := v.Get("a")
	require.True(t, ok)
	require.Equal(t, KindArray, arr.Kind())
	require.Len(t, arr.Array(), 3)
}

func TestParse_RejectsTrailingData(t *testing.T) {
	_, err := Parse(`{"a":1} garbage`)
	require.Error(t, err)
}

func TestParse_RejectsMalformed(t *testing.T) {
	_, err := Parse(`{"a":}`)
	require.Error(t, err)
}
