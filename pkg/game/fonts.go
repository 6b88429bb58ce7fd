package game

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// FontCache 按字号缓存内置 Go 字体的文本外观
type FontCache struct {
	regular *text.GoTextFaceSource
	bold    *text.GoTextFaceSource
	faces   map[string]*text.GoTextFace
}

// NewFontCache 解析内置字体
func NewFontCache() (*FontCache, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to create regular font source: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to create bold font source: %w", err)
	}
	return &FontCache{
		regular: regular,
		bold:    bold,
		faces:   make(map[string]*text.GoTextFace),
	}, nil
}

// Regular 返回指定字号的常规字体
func (fc *FontCache) Regular(size float64) *text.GoTextFace {
	return fc.face("regular", fc.regular, size)
}

// Bold 返回指定字号的粗体
func (fc *FontCache) Bold(size float64) *text.GoTextFace {
	return fc.face("bold", fc.bold, size)
}

func (fc *FontCache) face(kind string, src *text.GoTextFaceSource, size float64) *text.GoTextFace {
	key := fmt.Sprintf("%s:%.1f", kind, size)
	if f, ok := fc.faces[key]; ok {
		return f
	}
	f := &text.GoTextFace{
		Source:    src,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	fc.faces[key] = f
	return f
}
