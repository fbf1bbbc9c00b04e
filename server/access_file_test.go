package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAccessFile(t *testing.T) {
	store := &accessFile{
		path: filepath.Join(t.TempDir(), "access.json"),
	}
	// A record that was never written reads back as unauthenticated
	raw, err := store.load()
	require.NoError(t, err)
	require.Empty(t, raw)
	const record = `{"access_token":"xoxp-1234","scope":["incoming-webhook"],` +
		`"team_name":"Control","team_id":"T0001",` +
		`"incoming_webhook":{"url":"https://hooks.slack.com/services/abc"}}`
	require.NoError(t, store.save(record))
	raw, err = store.load()
	require.NoError(t, err)
	require.Equal(t, record, raw)
	// Each save rewrites the record in full
	require.NoError(t, store.save("{}"))
	raw, err = store.load()
	require.NoError(t, err)
	require.Equal(t, "{}", raw)
}
