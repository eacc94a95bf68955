package simulation

import (
	"github.com/automoto/chargebots/archetypes"
	"github.com/automoto/chargebots/components"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// SpawnNotice shows text that fades out over the configured notice duration.
func SpawnNotice(w donburi.World, text string) *donburi.Entry {
	c := MustSettings(w).Config
	notice := archetypes.Notice.Spawn(w)
	components.Notice.SetValue(notice, components.NoticeData{
		Text:  text,
		Alpha: 1,
		Fade:  gween.New(1, 0, float32(c.Notice.Duration), ease.InQuad),
	})
	return notice
}

// UpdateNotices advances every fade and removes notices that have finished.
func UpdateNotices(w donburi.World) {
	spf := float32(MustSettings(w).Config.World.SPF())

	var done []donburi.Entity
	components.Notice.Each(w, func(e *donburi.Entry) {
		n := components.Notice.Get(e)
		alpha, finished := n.Fade.Update(spf)
		n.Alpha = alpha
		if finished {
			done = append(done, e.Entity())
		}
	})
	for _, entity := range done {
		w.Remove(entity)
	}
}
