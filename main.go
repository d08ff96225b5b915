// Chessframe - a two-player chess board built with Ebitengine
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hailam/chessframe/internal/session"
	"github.com/hailam/chessframe/internal/storage"
	"github.com/hailam/chessframe/internal/ui"
)

var (
	assetDir = flag.String("assets", "", "directory holding the piece images (default: last used, or "+storage.DefaultAssetDir+")")
	startFEN = flag.String("fen", "", "start from this FEN position")
	sound    = flag.String("sound", "", "turn sound effects on or off and remember the choice (on|off)")
	check    = flag.Bool("check", false, "report which piece assets are present and exit")
)

func main() {
	flag.Parse()

	store, err := storage.NewStorage()
	if err != nil {
		log.Printf("Warning: Failed to initialize storage: %v", err)
	}

	prefs := loadPreferences(store)
	if err := applyFlags(prefs, *assetDir, *sound); err != nil {
		log.Fatalf("Invalid flags: %v", err)
	}

	layout := ui.DefaultLayout()

	if *check {
		ok := printAssetReport(os.Stdout, prefs.AssetDir, layout.SquareSize)
		closeStorage(store)
		if !ok {
			os.Exit(1)
		}
		return
	}

	sess, err := session.New(*startFEN)
	if err != nil {
		log.Fatalf("Invalid start position: %v", err)
	}

	renderer := ui.NewRenderer(layout, ui.NewDirLoader(prefs.AssetDir, layout.SquareSize))
	if err := renderer.InitializeWindow(ui.EbitenWindow{}); err != nil {
		log.Fatalf("Failed to initialize window: %v", err)
	}

	if store != nil {
		if n, err := store.RecordLaunch(); err == nil {
			log.Printf("Launch #%d, assets from %s", n, prefs.AssetDir)
		}
		if err := store.SavePreferences(prefs); err != nil {
			log.Printf("Warning: Failed to save preferences: %v", err)
		}
	}

	game := ui.NewGame(renderer, sess, ui.NewAudioManager(prefs.SoundEnabled, prefs.Volume))
	if store != nil {
		game.SetStorage(store, prefs)
	}

	runErr := ebiten.RunGame(game)
	if err := game.Close(); err != nil {
		log.Printf("Warning: shutdown: %v", err)
	}
	if runErr != nil {
		log.Fatal(runErr)
	}
}

// applyFlags merges the command line into the saved preferences. Empty
// values leave the preference unchanged.
func applyFlags(prefs *storage.UIPreferences, assets, sound string) error {
	if assets != "" {
		dir, err := storage.ResolveAssetDir(assets)
		if err != nil {
			return fmt.Errorf("asset directory %q: %w", assets, err)
		}
		prefs.AssetDir = dir
	}

	switch sound {
	case "":
	case "on":
		prefs.SoundEnabled = true
	case "off":
		prefs.SoundEnabled = false
	default:
		return fmt.Errorf("-sound must be on or off, got %q", sound)
	}
	return nil
}

// loadPreferences loads user preferences from storage.
func loadPreferences(store *storage.Storage) *storage.UIPreferences {
	if store == nil {
		return storage.DefaultPreferences()
	}
	prefs, err := store.LoadPreferences()
	if err != nil {
		log.Printf("Warning: Failed to load preferences: %v", err)
		return storage.DefaultPreferences()
	}
	return prefs
}

func closeStorage(store *storage.Storage) {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		log.Printf("Warning: Failed to close storage: %v", err)
	}
}

// printAssetReport writes one line per piece asset and reports whether
// all of them load.
func printAssetReport(w io.Writer, dir string, size int) bool {
	okMark := color.New(color.FgGreen).SprintFunc()
	badMark := color.New(color.FgRed, color.Bold).SprintFunc()

	fmt.Fprintf(w, "Assets in %s\n", dir)
	all := true
	for _, st := range ui.CheckAssets(os.DirFS(dir), size) {
		if st.OK() {
			fmt.Fprintf(w, "  %s %-9s %s\n", okMark("ok"), st.Key, st.File)
			continue
		}
		all = false
		fmt.Fprintf(w, "  %s %-9s %v\n", badMark("!!"), st.Key, st.Err)
	}
	return all
}
