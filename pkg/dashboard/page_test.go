package dashboard

import (
	"strings"
	"testing"

	"writing-dashboard/config"
	"writing-dashboard/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleData() *model.DashboardData {
	return &model.DashboardData{
		Records: 5,
		Summary: sampleSummary(),
		WordFrequencies: []model.WordFrequencyRow{
			{Word: "Hope", HumanFreq: 2, FreqDiff: 2},
		},
		WordClouds: []model.WordCloud{
			{Topic: "Education", PNGBase64: "iVBORw0KGgo="},
		},
	}
}

func TestRenderPage(t *testing.T) {
	cfg := config.NewDefaultGlobalConfig()
	out, err := RenderPage(sampleData(), cfg)
	require.NoError(t, err)
	html := string(out)

	assert.Contains(t, html, "AI vs. Human Writing Analysis")
	assert.Contains(t, html, `<script src="https://cdn.plot.ly/plotly-2.35.2.min.js"></script>`)
	assert.Contains(t, html, `src="data:image/png;base64,iVBORw0KGgo="`)
	assert.NotContains(t, html, "ZgotmplZ")
	assert.Contains(t, html, "Word Clouds by Topic")
	assert.Contains(t, html, `"barmode":"group"`)
	assert.Contains(t, html, `"type":"treemap"`)
	assert.Contains(t, html, "More Common in Human Essays")
	assert.Equal(t, 1, strings.Count(html, `class="cloud"`))
}

func TestRenderPageWithoutClouds(t *testing.T) {
	data := sampleData()
	data.WordClouds = nil

	out, err := RenderPage(data, config.NewDefaultGlobalConfig())
	require.NoError(t, err)
	assert.NotContains(t, string(out), "Word Clouds by Topic")
}

func TestRenderPageEscapesScriptContent(t *testing.T) {
	data := sampleData()
	data.WordFrequencies[0].Word = "</script><b>"

	out, err := RenderPage(data, config.NewDefaultGlobalConfig())
	require.NoError(t, err)
	assert.NotContains(t, string(out), "</script><b>")
}
