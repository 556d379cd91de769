package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"

	"Drawall/internal/board"
)

// App is the drawing window: toolbar on top, log panel on the right.
type App struct {
	app    fyne.App
	window fyne.Window
	Board  *BoardWidget
	Log    *LogPanel
}

func NewApp(title string, size fyne.Size, opts board.Options) (*App, error) {
	myApp := app.New()
	myWindow := myApp.NewWindow(title)
	myWindow.Resize(size)

	b, err := NewBoardWidget(opts, size)
	if err != nil {
		return nil, err
	}
	panel := NewLogPanel(logLines)
	panel.Attach(b.Board())

	content := container.NewBorder(NewToolbar(b), nil, nil, panel.Object(), b)
	myWindow.SetContent(content)
	return &App{app: myApp, window: myWindow, Board: b, Log: panel}, nil
}

// Run shows the window and blocks until it is closed.
func (a *App) Run() {
	a.window.ShowAndRun()
}
