package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// NoticeData is a short on-screen message that fades out.
type NoticeData struct {
	Text  string
	Alpha float32
	Fade  *gween.Tween
}

var Notice = donburi.NewComponentType[NoticeData]()
