package assets

import (
	"bytes"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	HUDFont   *text.GoTextFace
	LabelFont *text.GoTextFace
)

func init() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	HUDFont = &text.GoTextFace{
		Source: fontSource,
		Size:   16,
	}
	LabelFont = &text.GoTextFace{
		Source: fontSource,
		Size:   11,
	}
}
