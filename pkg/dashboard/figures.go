package dashboard

import (
	"writing-dashboard/config"
	"writing-dashboard/pkg/model"
)

const (
	pageBackground = "#f8f9fa"
	fontColor      = "#333"
	rootLabel      = "All Topics"
)

// rdBu 与 plotly express 的 RdBu 发散色阶一致，低值为红，高值为蓝
var rdBu = [][2]any{
	{0.0, "rgb(103,0,31)"},
	{0.1, "rgb(178,24,43)"},
	{0.2, "rgb(214,96,77)"},
	{0.3, "rgb(244,165,130)"},
	{0.4, "rgb(253,219,199)"},
	{0.5, "rgb(247,247,247)"},
	{0.6, "rgb(209,229,240)"},
	{0.7, "rgb(146,197,222)"},
	{0.8, "rgb(67,147,195)"},
	{0.9, "rgb(33,102,172)"},
	{1.0, "rgb(5,48,97)"},
}

// Figure 对应 plotly.js 的 {data, layout}
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

type Trace struct {
	Type          string    `json:"type"`
	Name          string    `json:"name,omitempty"`
	X             any       `json:"x,omitempty"`
	Y             any       `json:"y,omitempty"`
	Orientation   string    `json:"orientation,omitempty"`
	Marker        *Marker   `json:"marker,omitempty"`
	IDs           []string  `json:"ids,omitempty"`
	Labels        []string  `json:"labels,omitempty"`
	Parents       []string  `json:"parents,omitempty"`
	Values        []int     `json:"values,omitempty"`
	Text          []string  `json:"text,omitempty"`
	TextInfo      string    `json:"textinfo,omitempty"`
	BranchValues  string    `json:"branchvalues,omitempty"`
	CustomData    []float64 `json:"customdata,omitempty"`
	HoverTemplate string    `json:"hovertemplate,omitempty"`
}

type Marker struct {
	Color      string    `json:"color,omitempty"`
	Colors     []float64 `json:"colors,omitempty"`
	ColorScale any       `json:"colorscale,omitempty"`
	CMid       *float64  `json:"cmid,omitempty"`
	ShowScale  bool      `json:"showscale,omitempty"`
	ColorBar   *ColorBar `json:"colorbar,omitempty"`
}

type ColorBar struct {
	Title *Title `json:"title,omitempty"`
}

type Title struct {
	Text string  `json:"text,omitempty"`
	X    float64 `json:"x,omitempty"`
}

type Font struct {
	Color string `json:"color,omitempty"`
}

type Axis struct {
	Title *Title `json:"title,omitempty"`
}

type Layout struct {
	Title        *Title `json:"title,omitempty"`
	BarMode      string `json:"barmode,omitempty"`
	PaperBGColor string `json:"paper_bgcolor,omitempty"`
	PlotBGColor  string `json:"plot_bgcolor,omitempty"`
	Font         *Font  `json:"font,omitempty"`
	XAxis        *Axis  `json:"xaxis,omitempty"`
	YAxis        *Axis  `json:"yaxis,omitempty"`
}

// TopicBarFigure 按主题分组、每个类别一条柱状序列
func TopicBarFigure(summary model.TopicSummary, colors config.ColorConfig) Figure {
	byCategory := map[model.Category]*Trace{}
	var order []model.Category
	for _, row := range summary.Rows {
		trace, ok := byCategory[row.Category]
		if !ok {
			trace = &Trace{
				Type:   "bar",
				Name:   string(row.Category),
				X:      []string{},
				Y:      []int{},
				Marker: &Marker{Color: categoryColor(row.Category, colors)},
			}
			byCategory[row.Category] = trace
			order = append(order, row.Category)
		}
		trace.X = append(trace.X.([]string), row.Topic)
		trace.Y = append(trace.Y.([]int), row.Count)
	}

	fig := Figure{
		Data: make([]Trace, 0, len(order)),
		Layout: Layout{
			BarMode:      "group",
			PaperBGColor: pageBackground,
			PlotBGColor:  pageBackground,
			Font:         &Font{Color: fontColor},
			XAxis:        &Axis{Title: &Title{Text: "topic"}},
			YAxis:        &Axis{Title: &Title{Text: "Count"}},
		},
	}
	for _, c := range order {
		fig.Data = append(fig.Data, *byCategory[c])
	}
	return fig
}

// TopicTreemapFigure 层级为 All Topics -> Category -> topic，颜色为数量，父节点颜色取子节点按数量加权的均值
func TopicTreemapFigure(summary model.TopicSummary) Figure {
	trace := Trace{
		Type:          "treemap",
		BranchValues:  "total",
		TextInfo:      "label+text",
		HoverTemplate: "%{label}<br>Count=%{value}<br>Percentage=%{customdata:.2f}<extra></extra>",
	}
	type node struct {
		id, label, parent string
		count             int
		pct               float64
		sqSum             float64
		text              string
	}
	nodes := []*node{{id: rootLabel, label: rootLabel}}
	index := map[string]*node{rootLabel: nodes[0]}

	for _, row := range summary.Rows {
		catID := rootLabel + "/" + string(row.Category)
		cat, ok := index[catID]
		if !ok {
			cat = &node{id: catID, label: string(row.Category), parent: rootLabel}
			index[catID] = cat
			nodes = append(nodes, cat)
		}
		nodes = append(nodes, &node{
			id:     catID + "/" + row.Topic,
			label:  row.Topic,
			parent: catID,
			count:  row.Count,
			pct:    row.Percentage,
			sqSum:  float64(row.Count) * float64(row.Count),
			text:   row.PercentageLabel,
		})
		for _, n := range []*node{cat, nodes[0]} {
			n.count += row.Count
			n.pct += row.Percentage
			n.sqSum += float64(row.Count) * float64(row.Count)
		}
	}

	colors := make([]float64, 0, len(nodes))
	for _, n := range nodes {
		trace.IDs = append(trace.IDs, n.id)
		trace.Labels = append(trace.Labels, n.label)
		trace.Parents = append(trace.Parents, n.parent)
		trace.Values = append(trace.Values, n.count)
		trace.Text = append(trace.Text, n.text)
		trace.CustomData = append(trace.CustomData, n.pct)
		var c float64
		if n.count > 0 {
			c = n.sqSum / float64(n.count)
		}
		colors = append(colors, c)
	}
	mid := summary.ColorMidpoint
	trace.Marker = &Marker{
		Colors:     colors,
		ColorScale: rdBu,
		CMid:       &mid,
		ShowScale:  true,
		ColorBar:   &ColorBar{Title: &Title{Text: "Count"}},
	}

	return Figure{
		Data: []Trace{trace},
		Layout: Layout{
			Title:        &Title{X: 0.5},
			PaperBGColor: pageBackground,
			Font:         &Font{Color: fontColor},
		},
	}
}

// WordDiffFigure 水平发散柱状图，差值为 0 的词不画
func WordDiffFigure(rows []model.WordFrequencyRow) Figure {
	human := Trace{
		Type: "bar", Name: "More Common in Human Essays", Orientation: "h",
		X: []int{}, Y: []string{}, Marker: &Marker{Color: "red"},
	}
	ai := Trace{
		Type: "bar", Name: "More Common in AI Essays", Orientation: "h",
		X: []int{}, Y: []string{}, Marker: &Marker{Color: "blue"},
	}
	for _, row := range rows {
		switch {
		case row.FreqDiff > 0:
			human.X = append(human.X.([]int), row.FreqDiff)
			human.Y = append(human.Y.([]string), row.Word)
		case row.FreqDiff < 0:
			ai.X = append(ai.X.([]int), row.FreqDiff)
			ai.Y = append(ai.Y.([]string), row.Word)
		}
	}
	return Figure{
		Data: []Trace{human, ai},
		Layout: Layout{
			Title:        &Title{X: 0.5},
			PaperBGColor: "white",
			PlotBGColor:  "#E5ECF6",
			Font:         &Font{Color: fontColor},
		},
	}
}

func categoryColor(c model.Category, colors config.ColorConfig) string {
	if c == model.CategoryAI {
		return colors.AI
	}
	return colors.Human
}
