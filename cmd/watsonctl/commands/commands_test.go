// Copyright Watson Go Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	goodIntent = `{"intent":"greeting","confidence":0.93,"source":"capture"}`
	badIntent  = `{"intent":"greeting"}`
)

// run executes watsonctl with args and returns stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestKinds(t *testing.T) {
	out, err := run(t, "", "kinds")
	require.NoError(t, err)
	assert.Contains(t, out, "assistant.MessageResponse\n")
	assert.Contains(t, out, "discovery.QueryAggregation\n")
}

func TestKinds_Keys(t *testing.T) {
	out, err := run(t, "", "kinds", "--keys")
	require.NoError(t, err)
	assert.Contains(t, out, "assistant.RuntimeIntent: intent, confidence\n")
}

func TestCheck_NullPayload(t *testing.T) {
	out, err := run(t, "null", "check", "--kind", "assistant.MessageResponse", "-")
	require.Error(t, err)
	assert.Contains(t, out, "decode failed")
	assert.Contains(t, out, "type mismatch")
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.json", goodIntent)
	bad := writeFile(t, dir, "bad.json", badIntent)

	out, err := run(t, "", "check", "--kind", "assistant.RuntimeIntent", good)
	require.NoError(t, err)
	assert.Contains(t, out, "good.json (assistant.RuntimeIntent): ok")

	out, err = run(t, "", "check", "--kind", "assistant.RuntimeIntent", good, bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 payload(s) failed")
	assert.Contains(t, out, "decode failed")
	assert.Contains(t, out, "confidence")
}

func TestCheck_Stdin(t *testing.T) {
	out, err := run(t, `{"type":"future_unknown_kind","matching_results":5}`, "check", "--kind", "discovery.QueryAggregation", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "ok")
}

func TestCheck_Errors(t *testing.T) {
	_, err := run(t, "", "check", "--kind", "assistant.Nope", "-")
	assert.Error(t, err)

	_, err = run(t, "", "check", "x.json")
	assert.Error(t, err, "--kind is required")

	_, err = run(t, "", "--log-level", "loud", "kinds")
	assert.Error(t, err)
}

func TestFixtures_Lifecycle(t *testing.T) {
	dir := t.TempDir()
	storeDir := filepath.Join(dir, "store")
	good := writeFile(t, dir, "good.json", goodIntent)
	bad := writeFile(t, dir, "bad.json", badIntent)
	store := []string{"--store", "filesystem", "--store-param", "base_dir=" + storeDir}

	out, err := run(t, "", append(store, "fixtures", "add", "--kind", "assistant.RuntimeIntent", good)...)
	require.NoError(t, err)
	goodID := strings.TrimSpace(out)
	assert.True(t, strings.HasPrefix(goodID, "fx_"), goodID)

	out, err = run(t, "", append(store, "fixtures", "list")...)
	require.NoError(t, err)
	assert.Contains(t, out, goodID)
	assert.Contains(t, out, "good.json")

	out, err = run(t, "", append(store, "fixtures", "verify")...)
	require.NoError(t, err)
	assert.Contains(t, out, "ok")

	out, err = run(t, "", append(store, "fixtures", "add", "--kind", "assistant.RuntimeIntent", "--name", "broken", bad)...)
	require.NoError(t, err)
	badID := strings.TrimSpace(out)

	_, err = run(t, "", append(store, "fixtures", "verify")...)
	assert.Error(t, err)

	_, err = run(t, "", append(store, "fixtures", "rm", badID)...)
	require.NoError(t, err)

	_, err = run(t, "", append(store, "fixtures", "verify", "--kind", "assistant.RuntimeIntent")...)
	require.NoError(t, err)

	_, err = run(t, "", append(store, "fixtures", "rm", badID)...)
	assert.Error(t, err)
}

func TestFixtures_UnknownStore(t *testing.T) {
	_, err := run(t, "", "--store", "tape", "fixtures", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown fixture store "tape"`)
}

func TestFixtures_AddRejectsUnknownKind(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "x.json", goodIntent)
	_, err := run(t, "", "--store", "memory", "fixtures", "add", "--kind", "assistant.Nope", path)
	assert.Error(t, err)
}
