// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"codello.dev/emvtlv"
)

func testRecords(t *testing.T) []emvtlv.Record {
	t.Helper()
	pan, err := emvtlv.Encode([]byte{0x5A}, []byte{0x41, 0x11, 0x11, 0x11})
	require.NoError(t, err)
	private, err := emvtlv.Encode([]byte{0xDF, 0x81, 0x01}, nil)
	require.NoError(t, err)
	return []emvtlv.Record{pan, private}
}

func TestNew(t *testing.T) {
	for _, name := range Names() {
		f, err := New(name)
		require.NoError(t, err)
		assert.NotNil(t, f)
	}
	_, err := New("xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
	assert.Equal(t, []string{"json", "msgpack", "text"}, Names())
}

func TestNewEntry(t *testing.T) {
	records := testRecords(t)
	assert.Equal(t, Entry{
		Tag:         "5A",
		Name:        "Application Primary Account Number (PAN)",
		Class:       "Application",
		Constructed: false,
		Number:      26,
		Length:      4,
		LengthField: "04",
		Value:       "41111111",
	}, NewEntry(records[0]))
	assert.Equal(t, Entry{
		Tag:         "DF8101",
		Class:       "Private",
		Number:      129,
		Length:      0,
		LengthField: "00",
		Value:       "",
	}, NewEntry(records[1]))
}

func TestText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Text{}.Format(&buf, testRecords(t)))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "5A      4  41111111  Application Primary Account Number (PAN)", lines[0])
	assert.Equal(t, "DF8101  0", strings.TrimRight(lines[1], " "))
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON{}.Format(&buf, testRecords(t)))

	var got []Entry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, Entries(testRecords(t)), got)
	assert.Contains(t, buf.String(), `"length_field": "04"`)
	assert.NotContains(t, buf.String()[strings.Index(buf.String(), "DF8101"):], `"name"`)
}

func TestJSON_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON{}.Format(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestMsgPack(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, MsgPack{}.Format(&buf, testRecords(t)))

	var got []Entry
	require.NoError(t, msgpack.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, Entries(testRecords(t)), got)
}
