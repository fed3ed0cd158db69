package service

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"writing-dashboard/config"
	"writing-dashboard/pkg/db"
	"writing-dashboard/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openDuckDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := db.Open(context.Background(), config.NewDefaultDuckDBConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadCSVWithoutTopic(t *testing.T) {
	path := writeFixture(t, "texts.csv", "label,processed_text\n1,nasa moon rocket\n0,senator election vote\n")

	ds, err := NewDatasetLoader(openDuckDB(t)).Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, model.KindUntopicked, ds.Kind)
	require.Len(t, ds.Records, 2)
	assert.Equal(t, model.Record{Index: 0, Label: 1, Text: "nasa moon rocket", Category: model.CategoryAI}, ds.Records[0])
	assert.Equal(t, model.Record{Index: 1, Label: 0, Text: "senator election vote", Category: model.CategoryHuman}, ds.Records[1])
}

func TestLoadCSVWithTopic(t *testing.T) {
	path := writeFixture(t, "texts.csv", "label,processed_text,topic\n1,hello world,Technology\n0,goodbye,Politics\n")

	ds, err := NewDatasetLoader(openDuckDB(t)).Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, model.KindTopicked, ds.Kind)
	require.Len(t, ds.Records, 2)
	assert.Equal(t, "Technology", ds.Records[0].Topic)
	assert.Equal(t, "Politics", ds.Records[1].Topic)
}

func TestLoadJSONLines(t *testing.T) {
	path := writeFixture(t, "texts.jsonl",
		`{"label": 0, "processed_text": "i hope so"}`+"\n"+
			`{"label": 1, "processed_text": null}`+"\n")

	ds, err := NewDatasetLoader(openDuckDB(t)).Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, ds.Records, 2)
	assert.Equal(t, "i hope so", ds.Records[0].Text)
	assert.Equal(t, "", ds.Records[1].Text)
	assert.Equal(t, model.CategoryAI, ds.Records[1].Category)
}

func TestLoadParquetWithTokenList(t *testing.T) {
	conn := openDuckDB(t)
	path := filepath.Join(t.TempDir(), "texts.parquet")
	_, err := conn.Exec(fmt.Sprintf(
		"COPY (SELECT 1 AS label, ['work', 'hard'] AS processed_text) TO '%s' (FORMAT parquet)", path))
	require.NoError(t, err)

	ds, err := NewDatasetLoader(conn).Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, model.KindUntopicked, ds.Kind)
	require.Len(t, ds.Records, 1)
	assert.Equal(t, model.Record{Index: 0, Label: 1, Text: "work hard", Category: model.CategoryAI}, ds.Records[0])
}

func TestLoadTSV(t *testing.T) {
	path := writeFixture(t, "texts.tsv", "label\tprocessed_text\ttopic\n0\tsenator election vote\tPolitics\n1\tnasa moon\tSpace Exploration\n")

	ds, err := NewDatasetLoader(openDuckDB(t)).Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, model.KindTopicked, ds.Kind)
	require.Len(t, ds.Records, 2)
	assert.Equal(t, "senator election vote", ds.Records[0].Text)
	assert.Equal(t, "Space Exploration", ds.Records[1].Topic)
	assert.Equal(t, model.CategoryAI, ds.Records[1].Category)
}

func TestLoadMissingColumn(t *testing.T) {
	path := writeFixture(t, "texts.csv", "label,text\n1,hello\n")

	_, err := NewDatasetLoader(openDuckDB(t)).Load(context.Background(), path)
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestLoadUnsupportedFormat(t *testing.T) {
	_, err := NewDatasetLoader(openDuckDB(t)).Load(context.Background(), "texts.pkl")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := NewDatasetLoader(openDuckDB(t)).Load(context.Background(), filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestToText(t *testing.T) {
	s, err := toText([]any{"work", "hard"})
	require.NoError(t, err)
	assert.Equal(t, "work hard", s)

	s, err = toText(nil)
	require.NoError(t, err)
	assert.Empty(t, s)
}

func TestToRecordRejectsNullLabel(t *testing.T) {
	_, err := toRecord(3, nil, "text", nil)
	assert.Error(t, err)

	_, err = toRecord(3, "not a number", "text", nil)
	assert.Error(t, err)
}
