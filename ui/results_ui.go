package ui

import (
	"bytes"
	"fmt"
	"image/color"

	cfg "github.com/akshatshahh/team-30/config"
	"github.com/akshatshahh/team-30/storage"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// maxHistoryRows is how many previous runs the results panel lists.
const maxHistoryRows = 5

// ResultsUI is the end-of-run panel shown under the game over / win overlay.
type ResultsUI struct {
	UI *ebitenui.UI

	OnRetry func()
	OnQuit  func()

	headerLabel  *widget.Label
	summaryLabel *widget.Label
	historyRows  [maxHistoryRows]*widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewResultsUI builds the panel. Call Show to fill it in.
func NewResultsUI(onRetry, onQuit func()) *ResultsUI {
	rui := &ResultsUI{
		OnRetry: onRetry,
		OnQuit:  onQuit,
	}

	rui.loadFonts()
	rui.buildUI()

	return rui
}

func (rui *ResultsUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	rui.titleFace = &text.GoTextFace{Source: fontSource, Size: 20}
	rui.normalFace = &text.GoTextFace{Source: fontSource, Size: 14}
	rui.smallFace = &text.GoTextFace{Source: fontSource, Size: 11}
}

func (rui *ResultsUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.Insets{Top: 8, Bottom: 8, Left: 12, Right: 12}
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 230})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(4),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)

	rui.headerLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &rui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	panel.AddChild(rui.headerLabel)

	rui.summaryLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &rui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 255, 255},
		}),
	)
	panel.AddChild(rui.summaryLabel)

	for i := range rui.historyRows {
		rui.historyRows[i] = widget.NewLabel(
			widget.LabelOpts.Text("", &rui.smallFace, &widget.LabelColor{
				Idle: color.RGBA{180, 180, 180, 255},
			}),
		)
		panel.AddChild(rui.historyRows[i])
	}

	panel.AddChild(rui.buildButtonsContainer())
	rootContainer.AddChild(panel)

	rui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (rui *ResultsUI) buildButtonsContainer() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	retryButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(100, 28)),
		widget.ButtonOpts.Image(retryButtonImage()),
		widget.ButtonOpts.Text("Retry", &rui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{200, 255, 200, 255},
			Pressed: color.RGBA{150, 200, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if rui.OnRetry != nil {
				rui.OnRetry()
			}
		}),
	)
	container.AddChild(retryButton)

	quitButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(80, 28)),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text("Quit", &rui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 200, 200, 255},
			Pressed: color.RGBA{200, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if rui.OnQuit != nil {
				rui.OnQuit()
			}
		}),
	)
	container.AddChild(quitButton)

	return container
}

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

func retryButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{40, 100, 40, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{60, 140, 60, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{30, 80, 30, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 50, 40, 255}),
	}
}

// Show fills the panel from the finished run and the level's history,
// newest first.
func (rui *ResultsUI) Show(run storage.RunRecord, history []storage.RunRecord) {
	rui.headerLabel.Label = ResultHeader(run)
	rui.summaryLabel.Label = RunSummary(run)
	for i, row := range rui.historyRows {
		row.Label = ""
		if i < len(history) {
			row.Label = HistoryLine(history[i])
		}
	}
}

// ResultHeader is the panel title for a finished run.
func ResultHeader(run storage.RunRecord) string {
	if run.Outcome == storage.OutcomeWin {
		return cfg.Win.Text
	}
	return cfg.GameOver.Title
}

// RunSummary is the one-line stats line for a finished run.
func RunSummary(run storage.RunRecord) string {
	return fmt.Sprintf("%.2fs as %s  |  kills %d  shots %d  flights %d",
		run.Duration, run.Shape, run.Kills, run.Shots, run.Flights)
}

// HistoryLine formats one previous run.
func HistoryLine(run storage.RunRecord) string {
	line := fmt.Sprintf("%s  %-9s %7.2fs  %s", run.CreatedAt.Format("01-02 15:04"), run.Outcome, run.Duration, run.Shape)
	if run.Reason != "" {
		line += "  (" + run.Reason + ")"
	}
	return line
}

// Update calls the UI's Update method
func (rui *ResultsUI) Update() {
	rui.UI.Update()
}
