package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append(args, "--currencies", "../../config/currencies.yml"))
	err := cmd.Execute()
	return out.String(), err
}

func TestFilterCommand(t *testing.T) {
	out, err := run(t, "", "filter", `{"class":"sneakers"}`)
	require.NoError(t, err)
	assert.NotEmpty(t, strings.TrimSpace(out))

	out2, err := run(t, `{"class":"sneakers"}`, "filter", "-")
	require.NoError(t, err)
	assert.Equal(t, out, out2)

	_, err = run(t, "", "filter", "--defaults", `{"gender":"men"}`)
	assert.Error(t, err)
}

func TestRangeCommand(t *testing.T) {
	out, err := run(t, "", "range", "0", "0")
	require.NoError(t, err)
	assert.Equal(t, "\n", out)

	out, err = run(t, "", "range", "100.4", "200.2")
	require.NoError(t, err)
	assert.Contains(t, out, "100")
	assert.Contains(t, out, "201")

	_, err = run(t, "", "range", "x", "1")
	assert.Error(t, err)
}

func TestPriceOptionsCommand(t *testing.T) {
	out, err := run(t, "", "price-options", "--currency", "SGD")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 7)

	_, err = run(t, "", "price-options", "--currency", "XXX")
	assert.Error(t, err)
}

const listsJSON = `[
 {"id":1,"size":"9","local_price":100,"product":{"id":10},
  "currency":{"id":1,"code":"SGD","symbol":"S$","locale":"en-SG","rate":1,"min_list_price":30,"max_decimals":2,"precision":0.01}},
 {"id":2,"size":"10","local_price":40,"product":{"id":11},
  "currency":{"id":1,"code":"SGD","symbol":"S$","locale":"en-SG","rate":1,"min_list_price":30,"max_decimals":2,"precision":0.01}}
]`

func TestBulkPreviewCommand(t *testing.T) {
	out, err := run(t, listsJSON, "bulk-preview", "-", "--option", "increaseByValue", "--value", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "ID")
	assert.Equal(t, 3, len(strings.Split(strings.TrimSpace(out), "\n")))

	out, err = run(t, listsJSON, "bulk-preview", "-", "--option", "decreaseByValue", "--value", "20")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 lists")
	assert.Contains(t, out, "below minimum")

	out, err = run(t, listsJSON, "bulk-preview", "-", "--option", "decreaseByValue", "--value", "20", "--ids", "1")
	require.NoError(t, err)
	assert.Equal(t, 2, len(strings.Split(strings.TrimSpace(out), "\n")))

	_, err = run(t, listsJSON, "bulk-preview", "-", "--option", "halve")
	assert.Error(t, err)
}
