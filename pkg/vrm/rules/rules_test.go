package rules

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vrmerrors "github.com/provide-io/vrmsort/pkg/vrm/errors"
	"github.com/provide-io/vrmsort/pkg/vrm/meta"
)

func native(t *testing.T, s string) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(s), &m))
	return m
}

func TestDerive(t *testing.T) {
	natives := []map[string]any{
		native(t, `{"allowedUserName":"Everyone","commercialUssageName":"Allow","title":"A","licenseName":""}`),
		native(t, `{"allowedUserName":"Everyone","commercialUssageName":"Disallow","otherPermissionUrl":"x"}`),
		native(t, `{"commercialUsage":"personalNonProfit","allowRedistribution":false,"licenseUrl":null}`),
		native(t, `{"commercialUssageName":"Allow","modification":{"b":1,"a":2}}`),
		native(t, `{"modification":{"a":2,"b":1}}`),
	}

	pool := Derive(natives, meta.LicenseKeys())

	assert.Equal(t, map[string]any{
		"allowedUserName":      "Everyone",
		"commercialUssageName": []any{"Allow", "Disallow"},
		"commercialUsage":      "personalNonProfit",
		"allowRedistribution":  false,
		"modification":         `{"a":2,"b":1}`,
	}, pool.Target)
}

func TestDeriveEmptyCorpus(t *testing.T) {
	pool := Derive(nil, meta.LicenseKeys())
	assert.Empty(t, pool.Target)
	assert.NotNil(t, pool.Target)
}

func TestScaffold(t *testing.T) {
	rec := Scaffold(Pool{Target: map[string]any{"allowedUserName": "Everyone"}})

	require.Len(t, rec.MapData.Sorted, 3)
	for i, dir := range []string{"folder-1", "folder-2", "DoNotUse"} {
		assert.Equal(t, dir, rec.MapData.Sorted[i].Directory)
		assert.Empty(t, rec.MapData.Sorted[i].Target)
	}
	assert.Equal(t, "Everyone", rec.MapData.Unsort.Target["allowedUserName"])

	// a fresh scaffold classifies everything into the fallback
	rs := FromRecord(rec)
	require.True(t, rs.HasFallback())
	assert.Equal(t, FallbackDestination, rs.Fallback.Destination)
	assert.Len(t, rs.Rules, 2)
}

func TestFromRecordFallbackSelection(t *testing.T) {
	rec := &Record{MapData: MapData{Sorted: []Entry{
		{Directory: "DoNotUse", Target: map[string]any{"commercialUsage": "corporation"}},
		{Directory: "keep", Target: map[string]any{"allowedUserName": "Everyone"}},
		{Directory: "DoNotUse", Target: map[string]any{}},
		{Directory: "DoNotUse", Target: nil},
		{Directory: "empty", Target: map[string]any{}},
	}}}

	rs := FromRecord(rec)

	require.NotNil(t, rs.Fallback)
	assert.Empty(t, rs.Fallback.Conditions)

	dirs := make([]string, len(rs.Rules))
	for i, r := range rs.Rules {
		dirs[i] = r.Destination
	}
	assert.Equal(t, []string{"DoNotUse", "keep", "DoNotUse", "empty"}, dirs)
	assert.Len(t, rs.Warnings, 3)
}

func TestFromRecordWithoutFallback(t *testing.T) {
	rs := FromRecord(&Record{MapData: MapData{Sorted: []Entry{
		{Directory: "a", Target: map[string]any{"k": "v"}},
	}}})
	assert.False(t, rs.HasFallback())
	assert.Empty(t, rs.Warnings)
	assert.False(t, (*RuleSet)(nil).HasFallback())
}

func TestParseRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "not json", doc: `{"mapdata":`},
		{name: "missing mapdata", doc: `{}`},
		{name: "missing sorted", doc: `{"mapdata":{"unsort":{"target":{}}}}`},
		{name: "missing unsort", doc: `{"mapdata":{"sorted":[]}}`},
		{name: "sorted not a list", doc: `{"mapdata":{"unsort":{"target":{}},"sorted":{}}}`},
		{name: "entry without directory", doc: `{"mapdata":{"unsort":{"target":{}},"sorted":[{"target":{}}]}}`},
		{name: "empty directory", doc: `{"mapdata":{"unsort":{"target":{}},"sorted":[{"directory":"","target":{}}]}}`},
		{name: "target not an object", doc: `{"mapdata":{"unsort":{"target":{}},"sorted":[{"directory":"a","target":"x"}]}}`},
		{name: "null condition", doc: `{"mapdata":{"unsort":{"target":{}},"sorted":[{"directory":"a","target":{"k":null}}]}}`},
		{name: "object condition", doc: `{"mapdata":{"unsort":{"target":{}},"sorted":[{"directory":"a","target":{"k":{"x":1}}}]}}`},
		{name: "empty list condition", doc: `{"mapdata":{"unsort":{"target":{}},"sorted":[{"directory":"a","target":{"k":[]}}]}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestParseAcceptsConditions(t *testing.T) {
	rec, err := Parse([]byte(`{"mapdata":{"unsort":{"target":{"x":[{"a":1}]}},"sorted":[
		{"directory":"a","target":{"commercialUsage":"Disallow","allowRedistribution":true}},
		{"directory":"b","target":{"allowedUserName":["Everyone","ExplicitlyLicensedPerson"]}},
		{"directory":"DoNotUse","target":{}}
	]}}`))
	require.NoError(t, err)
	require.Len(t, rec.MapData.Sorted, 3)
	assert.Equal(t, []any{"Everyone", "ExplicitlyLicensedPerson"}, rec.MapData.Sorted[1].Target["allowedUserName"])
}

func TestLoadErrorsAreRuleSetErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"mapdata":{}}`), 0o644))

	for _, path := range []string{bad, filepath.Join(dir, "missing.json")} {
		_, err := Load(path)
		require.Error(t, err)
		assert.ErrorIs(t, err, vrmerrors.ErrInvalidRuleSet)
		var rse *vrmerrors.RuleSetError
		assert.True(t, errors.As(err, &rse))
		assert.False(t, vrmerrors.IsPerFile(err))
	}
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mapdata.json")
	rec := Scaffold(Pool{Target: map[string]any{"licenseUrl": "https://vrm.dev/licenses/1.0/?a=1&b=2"}})
	rec.MapData.Sorted[0].Target["commercialUsage"] = "Disallow"
	require.NoError(t, Save(path, rec))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "a=1&b=2")

	rs, err := Load(path)
	require.NoError(t, err)
	require.Len(t, rs.Rules, 2)
	assert.Equal(t, "folder-1", rs.Rules[0].Destination)
	assert.Equal(t, "Disallow", rs.Rules[0].Conditions["commercialUsage"])
	assert.True(t, rs.HasFallback())
}
