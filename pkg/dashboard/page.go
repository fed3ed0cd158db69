package dashboard

import (
	"bytes"
	"html/template"

	"writing-dashboard/config"
	"writing-dashboard/pkg/model"

	json "github.com/goccy/go-json"
	"github.com/pkg/errors"
)

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>AI vs. Human Writing Analysis</title>
<script src="{{.PlotlyURL}}"></script>
<style>
body { font-family: Arial, sans-serif; padding: 20px; background-color: #f8f9fa; margin: 0; }
h1 { text-align: center; color: #333; font-size: 32px; }
h3 { text-align: center; color: #444; }
h4 { text-align: center; color: #555; }
p.note { text-align: center; color: #555; font-size: 14px; max-width: 800px; margin: auto; }
.panel { margin-bottom: 40px; }
.gallery { text-align: center; }
.cloud { display: inline-block; padding: 20px; }
.cloud img { width: 45%; display: block; margin: auto; }
</style>
</head>
<body>
<h1>AI vs. Human Writing Analysis</h1>

<div class="panel">
  <h3>What Do Humans Write About vs. What They Use AI For?</h3>
  <p class="note">This visualization was based on the categorization of AI and Human essays and the analysis of their topic distribution to see if there are any differences in trends.</p>
  <div id="topic-bar"></div>
</div>

<div class="panel">
  <h3>What Do Humans Write About vs. What They Use AI For?</h3>
  <p class="note">This is a treemap visualization of the same data above.</p>
  <div id="topic-treemap"></div>
</div>

{{if .Clouds}}
<h3>Word Clouds by Topic</h3>
<div class="gallery">
{{range .Clouds}}
  <div class="cloud">
    <h4>{{.Topic}}</h4>
    <img src="{{.Src}}" alt="{{.Topic}} word cloud">
  </div>
{{end}}
</div>
{{end}}

<div class="panel" style="margin-top: 40px;">
  <h3>Word Usage Difference Between AI and Human Essays</h3>
  <p class="note">For this visualization, I chose words that I thought were meaningful in the context of AI-written and human-written work in my experience.</p>
  <div id="word-diff"></div>
</div>

<script>
var figures = {{.Figures}};
Plotly.newPlot("topic-bar", figures.bar.data, figures.bar.layout);
Plotly.newPlot("topic-treemap", figures.treemap.data, figures.treemap.layout);
Plotly.newPlot("word-diff", figures.wordDiff.data, figures.wordDiff.layout);
</script>
</body>
</html>
`

var page = template.Must(template.New("dashboard").Parse(pageTemplate))

// FigureSet 页面上的三张 plotly 图
type FigureSet struct {
	Bar      Figure `json:"bar"`
	Treemap  Figure `json:"treemap"`
	WordDiff Figure `json:"wordDiff"`
}

type cloudView struct {
	Topic string
	Src   template.URL
}

type pageView struct {
	PlotlyURL string
	Figures   template.JS
	Clouds    []cloudView
}

// BuildFigures 由统计结果生成图表
func BuildFigures(data *model.DashboardData, analysis *config.AnalysisConfig) FigureSet {
	return FigureSet{
		Bar:      TopicBarFigure(data.Summary, analysis.Colors),
		Treemap:  TopicTreemapFigure(data.Summary),
		WordDiff: WordDiffFigure(data.WordFrequencies),
	}
}

// RenderPage 渲染完整的仪表盘页面
func RenderPage(data *model.DashboardData, cfg *config.GlobalConfig) ([]byte, error) {
	figures, err := json.Marshal(BuildFigures(data, cfg.AnalysisConfig))
	if err != nil {
		return nil, errors.Wrap(err, "序列化图表失败")
	}

	view := pageView{
		PlotlyURL: cfg.ServerConfig.PlotlyURL,
		Figures:   template.JS(figures),
		Clouds:    make([]cloudView, 0, len(data.WordClouds)),
	}
	for _, c := range data.WordClouds {
		// data URI 需要显式标记为安全，否则会被模板替换
		view.Clouds = append(view.Clouds, cloudView{Topic: c.Topic, Src: template.URL(c.DataURI())})
	}

	var buf bytes.Buffer
	if err := page.Execute(&buf, view); err != nil {
		return nil, errors.Wrap(err, "渲染页面失败")
	}
	return buf.Bytes(), nil
}
