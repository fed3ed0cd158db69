package dashboard

import (
	"testing"

	"writing-dashboard/config"
	"writing-dashboard/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSummary() model.TopicSummary {
	return model.TopicSummary{
		Rows: []model.TopicCategoryCount{
			{Topic: "Education", Category: model.CategoryAI, Count: 2, Percentage: 40, PercentageLabel: "40.0%"},
			{Topic: "Education", Category: model.CategoryHuman, Count: 2, Percentage: 40, PercentageLabel: "40.0%"},
			{Topic: "Politics", Category: model.CategoryHuman, Count: 1, Percentage: 20, PercentageLabel: "20.0%"},
		},
		Total:         5,
		ColorMidpoint: 9.0 / 5.0,
	}
}

func TestTopicBarFigure(t *testing.T) {
	fig := TopicBarFigure(sampleSummary(), config.NewDefaultAnalysisConfig().Colors)

	require.Len(t, fig.Data, 2)
	assert.Equal(t, "group", fig.Layout.BarMode)

	ai, human := fig.Data[0], fig.Data[1]
	assert.Equal(t, "AI", ai.Name)
	assert.Equal(t, "#E8998D", ai.Marker.Color)
	assert.Equal(t, []string{"Education"}, ai.X)
	assert.Equal(t, []int{2}, ai.Y)

	assert.Equal(t, "Human", human.Name)
	assert.Equal(t, "#70A494", human.Marker.Color)
	assert.Equal(t, []string{"Education", "Politics"}, human.X)
	assert.Equal(t, []int{2, 1}, human.Y)
}

func TestTopicTreemapFigure(t *testing.T) {
	fig := TopicTreemapFigure(sampleSummary())
	require.Len(t, fig.Data, 1)
	tr := fig.Data[0]

	assert.Equal(t, []string{
		"All Topics",
		"All Topics/AI",
		"All Topics/AI/Education",
		"All Topics/Human",
		"All Topics/Human/Education",
		"All Topics/Human/Politics",
	}, tr.IDs)
	assert.Equal(t, []string{"", "All Topics", "All Topics/AI", "All Topics", "All Topics/Human", "All Topics/Human"}, tr.Parents)
	assert.Equal(t, []int{5, 2, 2, 3, 2, 1}, tr.Values)
	assert.Equal(t, []string{"", "", "40.0%", "", "40.0%", "20.0%"}, tr.Text)
	assert.InDeltaSlice(t, []float64{100, 40, 40, 60, 40, 20}, tr.CustomData, 1e-9)

	require.NotNil(t, tr.Marker.CMid)
	assert.InDelta(t, 1.8, *tr.Marker.CMid, 1e-9)
	// 根节点颜色等于加权中点
	assert.InDelta(t, 1.8, tr.Marker.Colors[0], 1e-9)
	assert.InDelta(t, 5.0/3.0, tr.Marker.Colors[3], 1e-9)
	assert.InDelta(t, 1.0, tr.Marker.Colors[5], 1e-9)
}

func TestWordDiffFigure(t *testing.T) {
	fig := WordDiffFigure([]model.WordFrequencyRow{
		{Word: "Research", AIFreq: 3, HumanFreq: 1, FreqDiff: -2},
		{Word: "Fact", AIFreq: 1, HumanFreq: 1, FreqDiff: 0},
		{Word: "Hope", AIFreq: 0, HumanFreq: 2, FreqDiff: 2},
	})
	require.Len(t, fig.Data, 2)

	human, ai := fig.Data[0], fig.Data[1]
	assert.Equal(t, "More Common in Human Essays", human.Name)
	assert.Equal(t, "red", human.Marker.Color)
	assert.Equal(t, []int{2}, human.X)
	assert.Equal(t, []string{"Hope"}, human.Y)

	assert.Equal(t, "More Common in AI Essays", ai.Name)
	assert.Equal(t, "blue", ai.Marker.Color)
	assert.Equal(t, []int{-2}, ai.X)
	assert.Equal(t, []string{"Research"}, ai.Y)
	assert.Equal(t, "h", ai.Orientation)
}
