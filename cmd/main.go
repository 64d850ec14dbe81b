package main

import (
	"fmt"
	"os"

	"github.com/yungbote/studypass-backend/internal/app"
)

func main() {
	a, err := app.New()
	if err != nil {
		fmt.Printf("Failed to init app: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	a.Log.Info("Starting server...", "addr", a.Cfg.ListenAddr)
	if err := a.Run(""); err != nil {
		a.Log.Error("Server exited", "error", err)
		a.Close()
		os.Exit(1)
	}
}
