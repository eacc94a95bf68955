package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Speed float64 // pixels/second
}

var Player = donburi.NewComponentType[PlayerData]()
