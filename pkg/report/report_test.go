package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/provide-io/vrmsort/pkg/messages"
	"github.com/provide-io/vrmsort/pkg/vrm/meta"
)

func sample() meta.UnifiedMetadata {
	md := meta.UnifiedMetadata{
		FileName:   "alicia.vrm",
		VRMVersion: "0.x",
		ModelName:  "Alicia, \"Solid\"",
		Author:     "ドワンゴ",
	}
	// every other field stays unknown
	md.Contact, md.ReferenceURL, md.CommercialUsage, md.Redistribution = meta.Sentinel, meta.Sentinel, meta.Sentinel, meta.Sentinel
	md.CreditNotation, md.Modification, md.AvatarPermission, md.SexualExpression = meta.Sentinel, meta.Sentinel, meta.Sentinel, meta.Sentinel
	md.ViolenceExpression, md.License, md.OtherPermissionURL, md.OtherLicenseURL = meta.Sentinel, meta.Sentinel, meta.Sentinel, meta.Sentinel
	return md
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, messages.Default(), []meta.UnifiedMetadata{sample()}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1+len(meta.Fields))
	assert.Equal(t, "=== License Information for alicia.vrm (VRM 0.x) ===", lines[0])
	assert.Equal(t, "File Name           : alicia.vrm", lines[1])
	assert.Equal(t, "Other License URL   : --", lines[len(lines)-1])
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, messages.Default(), []meta.UnifiedMetadata{sample(), sample()}))

	raw := buf.Bytes()
	require.True(t, bytes.HasPrefix(raw, []byte{0xEF, 0xBB, 0xBF}), "missing BOM")
	assert.Equal(t, 3, bytes.Count(raw, []byte("\r\n")))
	assert.True(t, bytes.HasSuffix(raw, []byte("\r\n")))

	rows, err := csv.NewReader(bytes.NewReader(raw[3:])).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "File Name", rows[0][0])
	assert.Equal(t, "Other License URL", rows[0][len(rows[0])-1])
	assert.Equal(t, sample().Values(), rows[1])
}

func TestWriteCSVHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, messages.Default(), nil))
	rows, err := csv.NewReader(bytes.NewReader(buf.Bytes()[3:])).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, []RawFile{{Filename: "a.vrm", Metadata: json.RawMessage(`{"asset": {"generator": "<x>"}}`)}}))

	assert.JSONEq(t, `{"files":[{"filename":"a.vrm","metadata":{"asset":{"generator":"<x>"}}}]}`, buf.String())
	assert.Contains(t, buf.String(), "<x>")

	buf.Reset()
	require.NoError(t, WriteJSON(&buf, nil))
	assert.JSONEq(t, `{"files":[]}`, buf.String())
}
