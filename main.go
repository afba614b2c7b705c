package main

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/yt-grab/internal/config"
	"github.com/ytget/yt-grab/internal/download"
	"github.com/ytget/yt-grab/internal/model"
	"github.com/ytget/yt-grab/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID = "com.ytget.yt-grab"

	WindowWidth  = 640
	WindowHeight = 560
)

func main() {
	log.Printf("yt-grab v%s starting...", version)

	myApp := app.NewWithID(AppID)
	myWindow := myApp.NewWindow(model.AppTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	opts := settings.Options()
	if err := opts.Validate(); err != nil {
		log.Printf("invalid stored settings, using defaults: %v", err)
		opts = config.DefaultOptions()
	}

	downloadSvc := download.NewService(opts)
	defer downloadSvc.Close()

	// Create and setup UI
	ui.NewDownloaderUI(myWindow, myApp, downloadSvc, settings)

	// Show and run
	myWindow.ShowAndRun()
}
