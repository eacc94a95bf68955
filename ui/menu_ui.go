package ui

import (
	"bytes"
	"image/color"
	"log"

	"github.com/automoto/chargebots/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// MenuUI lists the rulesets. Clicking one, or pressing Enter on the selected
// one, calls OnStart.
type MenuUI struct {
	UI *ebitenui.UI

	OnStart func(id config.RulesetID)
	OnQuit  func()

	Selected int

	rulesetButtons []*widget.Button

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewMenuUI(selected config.RulesetID, onStart func(id config.RulesetID), onQuit func()) *MenuUI {
	mui := &MenuUI{
		OnStart: onStart,
		OnQuit:  onQuit,
	}
	for i, id := range config.Rulesets {
		if id == selected {
			mui.Selected = i
		}
	}
	mui.loadFonts()
	mui.buildUI()
	mui.refreshLabels()
	return mui
}

func (mui *MenuUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	mui.titleFace = &text.GoTextFace{Source: fontSource, Size: 28}
	mui.normalFace = &text.GoTextFace{Source: fontSource, Size: 16}
	mui.smallFace = &text.GoTextFace{Source: fontSource, Size: 12}
}

func (mui *MenuUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("CHARGEBOTS", &mui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	))

	for i, id := range config.Rulesets {
		contentContainer.AddChild(mui.buildRulesetButton(i, id))
	}

	contentContainer.AddChild(newButton("Quit", &mui.normalFace, func() {
		if mui.OnQuit != nil {
			mui.OnQuit()
		}
	}))

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Arrows move, Enter starts. In game: Esc returns here, F1 debug", &mui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{160, 160, 180, 255},
		}),
	))

	rootContainer.AddChild(contentContainer)

	mui.UI = &ebitenui.UI{Container: rootContainer}
}

func (mui *MenuUI) buildRulesetButton(index int, id config.RulesetID) *widget.Button {
	btn := newButton(id.Title(), &mui.normalFace, func() {
		mui.Selected = index
		mui.Start()
	})
	mui.rulesetButtons = append(mui.rulesetButtons, btn)
	return btn
}

func newButton(label string, face *text.Face, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(240, 32)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		}),
		widget.ButtonOpts.Text(label, face, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{200, 255, 255, 255},
			Pressed: color.RGBA{150, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

// Move shifts the keyboard selection by delta, wrapping around.
func (mui *MenuUI) Move(delta int) {
	n := len(config.Rulesets)
	mui.Selected = ((mui.Selected+delta)%n + n) % n
	mui.refreshLabels()
}

// Start launches the selected ruleset.
func (mui *MenuUI) Start() {
	if mui.OnStart != nil {
		mui.OnStart(config.Rulesets[mui.Selected])
	}
}

func (mui *MenuUI) refreshLabels() {
	for i, btn := range mui.rulesetButtons {
		textWidget := btn.Text()
		if textWidget == nil {
			continue
		}
		label := config.Rulesets[i].Title()
		if i == mui.Selected {
			label = "> " + label + " <"
		}
		textWidget.Label = label
	}
}

func (mui *MenuUI) Update() {
	mui.UI.Update()
}
