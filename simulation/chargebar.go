package simulation

import (
	"github.com/automoto/chargebots/components"
	"github.com/yohamta/donburi"
)

// UpdateChargeBars refreshes every bar's level and moves it above its owner.
func UpdateChargeBars(w donburi.World) {
	c := MustSettings(w).Config
	components.ChargeBar.Each(w, func(e *donburi.Entry) {
		bar := components.ChargeBar.Get(e)
		bar.Update(components.Object.Get(e).Object, c.ChargeBar.Levels, c.ChargeBar.Offset)
	})
}

// SyncObjects re-registers moved rectangles with the resolv space.
func SyncObjects(w donburi.World) {
	for e := range components.Object.Iter(w) {
		components.Object.Get(e).Update()
	}
}
