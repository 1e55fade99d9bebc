package cmd

import (
	"bytes"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"
	"gotest.tools/v3/assert"

	"github.com/vasilii314/kennel/api"
	"github.com/vasilii314/kennel/dog"
	"github.com/vasilii314/kennel/post"
	"github.com/vasilii314/kennel/store"
)

func TestPrintDogs(t *testing.T) {
	var buf bytes.Buffer
	printDogs(&buf, dog.Dog{Name: "Bob", PK: 0, Kind: dog.Terrier}, dog.Dog{Name: "Snoopy", PK: 2, Kind: dog.Dalmatian})
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, len(lines), 3)
	assert.DeepEqual(t, strings.Fields(lines[0]), []string{"PK", "NAME", "KIND"})
	assert.DeepEqual(t, strings.Fields(lines[2]), []string{"2", "Snoopy", "dalmatian"})
}

func TestPrintPosts(t *testing.T) {
	var buf bytes.Buffer
	now := time.Unix(1700000060, 0)
	printPosts(&buf, now, post.Timestamp{ID: 2, Timestamp: 1700000000})
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, len(lines), 2)
	assert.Assert(t, strings.HasPrefix(lines[1], "2"))
	assert.Assert(t, strings.Contains(lines[1], "About a minute ago"))
}

func TestDogsGetCommand(t *testing.T) {
	logger := zaptest.NewLogger(t)
	a := api.New("localhost", 0,
		store.NewInMemoryDogStore(logger, store.SeedDogs()...),
		store.NewInMemoryPostStore(logger, store.SeedPosts()),
		logger)
	srv := httptest.NewServer(a.Router)
	defer srv.Close()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"dogs", "get", "4", "--server", srv.URL})
	assert.NilError(t, rootCmd.Execute())
	assert.Assert(t, strings.Contains(out.String(), "Pongo"))

	out.Reset()
	rootCmd.SetArgs([]string{"dogs", "get", "40", "--server", srv.URL})
	err := rootCmd.Execute()
	assert.ErrorContains(t, err, "Dog with pk 40 not found.")
}
