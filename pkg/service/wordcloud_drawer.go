package service

import (
	"bytes"
	"image/color"
	"math"
	"strconv"
	"strings"

	"writing-dashboard/config"
	"writing-dashboard/pkg/model"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/pkg/errors"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	minFontSize  = 10.0
	spiralStep   = 0.1 // 弧度
	spiralGrowth = 1.0 // 每弧度半径增长的像素
	wordPadding  = 2.0
)

// viridis 色板
var defaultPalette = []string{
	"#440154", "#482878", "#3e4989", "#31688e", "#26828e",
	"#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725",
}

// GGDrawer 用 gg 绘制水平排布的词云，从画布中心沿螺旋线寻找空位
type GGDrawer struct {
	width, height int
	background    color.Color
	palette       []color.Color
	font          *truetype.Font
	maxFontSize   float64
}

func NewGGDrawer(cfg *config.WordCloudConfig) (*GGDrawer, error) {
	bg, err := parseHexColor(cfg.Background)
	if err != nil {
		return nil, err
	}
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, errors.Wrap(err, "加载字体失败")
	}
	palette := make([]color.Color, 0, len(defaultPalette))
	for _, hex := range defaultPalette {
		c, err := parseHexColor(hex)
		if err != nil {
			return nil, err
		}
		palette = append(palette, c)
	}
	return &GGDrawer{
		width:       cfg.Width,
		height:      cfg.Height,
		background:  bg,
		palette:     palette,
		font:        f,
		maxFontSize: math.Max(minFontSize, float64(cfg.Height)/5),
	}, nil
}

type box struct {
	x, y, w, h float64
}

func (b box) intersects(o box) bool {
	return b.x < o.x+o.w && o.x < b.x+b.w && b.y < o.y+o.h && o.y < b.y+b.h
}

// Draw words 需按次数降序排列；没有词时返回空白画布
func (d *GGDrawer) Draw(words []model.WordWeight) ([]byte, error) {
	dc := gg.NewContext(d.width, d.height)
	dc.SetColor(d.background)
	dc.Clear()

	if len(words) > 0 && words[0].Count > 0 {
		maxCount := float64(words[0].Count)
		placed := make([]box, 0, len(words))
		for i, w := range words {
			size := minFontSize + (d.maxFontSize-minFontSize)*float64(w.Count)/maxCount
			// 放不下时缩小字号重试
			for ; size >= minFontSize; size *= 0.8 {
				dc.SetFontFace(truetype.NewFace(d.font, &truetype.Options{Size: size}))
				tw, th := dc.MeasureString(w.Text)
				b, ok := d.place(tw, th, placed)
				if !ok {
					continue
				}
				dc.SetColor(d.palette[i%len(d.palette)])
				dc.DrawStringAnchored(w.Text, b.x+b.w/2, b.y+b.h/2, 0.5, 0.5)
				placed = append(placed, b)
				break
			}
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(err, "PNG 编码失败")
	}
	return buf.Bytes(), nil
}

func (d *GGDrawer) place(w, h float64, placed []box) (box, bool) {
	width, height := float64(d.width), float64(d.height)
	cx, cy := width/2, height/2
	aspect := width / height
	maxR := math.Hypot(cx, cy)
	for theta := 0.0; spiralGrowth*theta <= maxR; theta += spiralStep {
		r := spiralGrowth * theta
		b := box{
			x: cx + r*math.Cos(theta)*aspect - w/2 - wordPadding,
			y: cy + r*math.Sin(theta) - h/2 - wordPadding,
			w: w + 2*wordPadding,
			h: h + 2*wordPadding,
		}
		if b.x < 0 || b.y < 0 || b.x+b.w > width || b.y+b.h > height {
			continue
		}
		free := true
		for _, p := range placed {
			if b.intersects(p) {
				free = false
				break
			}
		}
		if free {
			return b, true
		}
	}
	return box{}, false
}

// parseHexColor 支持 #rgb 和 #rrggbb
func parseHexColor(s string) (color.Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return nil, errors.Errorf("无效的颜色值: %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, errors.Wrapf(err, "无效的颜色值: %q", s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
