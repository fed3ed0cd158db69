package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryFor(t *testing.T) {
	cases := []struct {
		label int
		want  Category
	}{
		{label: 1, want: CategoryAI},
		{label: 0, want: CategoryHuman},
		{label: 2, want: CategoryHuman},
		{label: -1, want: CategoryHuman},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, CategoryFor(c.label), "label %d", c.label)
	}
}

func TestWordCloudDataURI(t *testing.T) {
	w := WordCloud{PNGBase64: "iVBORw0KGgo="}
	assert.Equal(t, "data:image/png;base64,iVBORw0KGgo=", w.DataURI())
}

func TestDatasetKind(t *testing.T) {
	assert.Equal(t, KindTopicked, NewTopickedDataset(nil).Kind)
	assert.Equal(t, KindUntopicked, NewUntopickedDataset(nil).Kind)
	assert.Equal(t, "topicked", KindTopicked.String())
}
