package ui

import (
	"errors"
	"image"
	"image/color"
	"strconv"
	"testing"

	"github.com/hailam/chessframe/internal/board"
)

func TestInitializeWindow(t *testing.T) {
	loader := &fakeLoader{}
	r := NewRenderer(DefaultLayout(), loader)
	if r.State() != StateUninitialized {
		t.Fatalf("new renderer state = %v", r.State())
	}

	win := &fakeWindow{}
	if err := r.InitializeWindow(win); err != nil {
		t.Fatalf("InitializeWindow: %v", err)
	}

	if win.width != 1280 || win.height != 800 {
		t.Errorf("window size = %dx%d, want 1280x800", win.width, win.height)
	}
	if win.tps != 60 {
		t.Errorf("tps = %d, want 60", win.tps)
	}
	if win.title == "" {
		t.Error("window title not set")
	}
	if want := image.Rect(30, 600, 230, 650); r.TextBox() != want {
		t.Errorf("TextBox() = %v, want %v", r.TextBox(), want)
	}
	if r.State() != StateReady {
		t.Errorf("state = %v, want Ready", r.State())
	}
	if r.Cache().Len() != 12 || len(loader.loaded) != 12 {
		t.Errorf("cached %d textures, loaded %d, want 12", r.Cache().Len(), len(loader.loaded))
	}

	if err := r.InitializeWindow(win); !errors.Is(err, ErrAlreadyInitialized) {
		t.Errorf("second InitializeWindow = %v, want ErrAlreadyInitialized", err)
	}
	if err := r.LoadTextures(); !errors.Is(err, ErrAlreadyInitialized) {
		t.Errorf("second LoadTextures = %v, want ErrAlreadyInitialized", err)
	}
	if win.calls != 1 {
		t.Errorf("window configured %d times, want 1", win.calls)
	}
}

func TestLoadTexturesMissingAsset(t *testing.T) {
	loader := &fakeLoader{missing: map[string]bool{"w_bishop": true}}
	r := NewRenderer(DefaultLayout(), loader)

	err := r.InitializeWindow(&fakeWindow{})
	if !errors.Is(err, ErrAssetMissing) {
		t.Fatalf("InitializeWindow = %v, want ErrAssetMissing", err)
	}
	if r.State() != StateUninitialized {
		t.Errorf("state = %v, want Uninitialized", r.State())
	}
	if r.Cache().Len() != 0 {
		t.Errorf("cache holds %d textures after failed load", r.Cache().Len())
	}
	if len(loader.unloaded) != len(loader.loaded) {
		t.Errorf("loaded %d but released %d", len(loader.loaded), len(loader.unloaded))
	}
}

func TestLoadUnload(t *testing.T) {
	loader := &fakeLoader{}
	r := NewRenderer(DefaultLayout(), loader)
	if err := r.LoadTextures(); err != nil {
		t.Fatalf("LoadTextures: %v", err)
	}

	before, err := r.GetPieceTexture("w_king")
	if err != nil {
		t.Fatalf("GetPieceTexture before unload: %v", err)
	}

	if err := r.UnloadTextures(); err != nil {
		t.Fatalf("UnloadTextures: %v", err)
	}
	if r.Cache().Len() != 0 {
		t.Errorf("cache holds %d textures after unload", r.Cache().Len())
	}
	if len(loader.unloaded) != 12 {
		t.Errorf("released %d textures, want 12", len(loader.unloaded))
	}
	if r.State() != StateReleased {
		t.Errorf("state = %v, want Released", r.State())
	}

	for _, key := range board.TextureKeys() {
		tex, err := r.GetPieceTexture(key)
		if !errors.Is(err, ErrTextureMissing) {
			t.Errorf("GetPieceTexture(%s) after unload = %v, want ErrTextureMissing", key, err)
		}
		if tex != nil && tex == before {
			t.Errorf("GetPieceTexture(%s) returned a released texture", key)
		}
	}

	if err := r.UnloadTextures(); !errors.Is(err, ErrNotReady) {
		t.Errorf("second UnloadTextures = %v, want ErrNotReady", err)
	}

	var snap board.Snapshot
	rec := &recorder{}
	if err := r.UpdateWindow(rec, snap, board.White, true); !errors.Is(err, ErrNotReady) {
		t.Errorf("UpdateWindow after unload = %v, want ErrNotReady", err)
	}
	if err := r.UpdateTextBox(rec, "e2e4"); !errors.Is(err, ErrNotReady) {
		t.Errorf("UpdateTextBox after unload = %v, want ErrNotReady", err)
	}
	if len(rec.ops) != 0 {
		t.Errorf("released renderer issued %d draw calls", len(rec.ops))
	}
}

func TestDrawBeforeInit(t *testing.T) {
	r := NewRenderer(DefaultLayout(), &fakeLoader{})
	snap := board.StartSnapshot()
	if err := r.UpdateWindow(&recorder{}, snap, board.White, true); !errors.Is(err, ErrNotReady) {
		t.Errorf("UpdateWindow before init = %v, want ErrNotReady", err)
	}
	if err := r.UnloadTextures(); !errors.Is(err, ErrNotReady) {
		t.Errorf("UnloadTextures before init = %v, want ErrNotReady", err)
	}
}

func TestBuildString(t *testing.T) {
	r := NewRenderer(DefaultLayout(), &fakeLoader{})

	for _, c := range []board.Color{board.Black, board.White} {
		for _, k := range board.Kinds {
			p := board.NewPiece(k, c)
			want := map[board.Color]string{board.Black: "b_", board.White: "w_"}[c] + k.Name()
			if got := r.BuildString(p); got != want {
				t.Errorf("BuildString(%v %v) = %q, want %q", c, k, got, want)
			}
		}
	}

	if got := r.BuildString(board.NewPiece(board.Rook, board.NoColor)); got != "rook" {
		t.Errorf("no color: %q, want %q", got, "rook")
	}
	if got := r.BuildString(board.NewPiece(board.Passant, board.White)); got != "w_" {
		t.Errorf("passant: %q, want %q", got, "w_")
	}
	if got := r.BuildString(board.NoPiece); got != "b_" {
		t.Errorf("empty: %q, want %q", got, "b_")
	}
}

func TestSquareColors(t *testing.T) {
	r, _ := newReadyRenderer(t)
	theme := r.Theme()
	rec := &recorder{}
	r.DrawBoard(rec)

	fills := rec.filter("fill")
	if len(fills) != 65 {
		t.Fatalf("DrawBoard issued %d fills, want frame + 64 squares", len(fills))
	}

	frame := fills[0]
	if frame.x != 30 || frame.y != 30 || frame.w != 540 || frame.h != 540 || frame.color != theme.Frame {
		t.Errorf("frame = %+v", frame)
	}

	for i, sq := range fills[1:] {
		row, col := i/8, i%8
		want := theme.LightSquare
		if (row+col)%2 == 1 {
			want = theme.DarkSquare
		}
		if sq.color != want {
			t.Errorf("square (%d,%d) color = %v, want %v", row, col, sq.color, want)
		}
		if theme.SquareColor(row, col) != want {
			t.Errorf("SquareColor(%d,%d) = %v, want %v", row, col, theme.SquareColor(row, col), want)
		}
		if sq.x != float64(60+col*60) || sq.y != float64(60+row*60) || sq.w != 60 || sq.h != 60 {
			t.Errorf("square (%d,%d) rect = (%v,%v,%v,%v)", row, col, sq.x, sq.y, sq.w, sq.h)
		}
	}

	if theme.LightSquare != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("color1 = %v, want white", theme.LightSquare)
	}
}

func TestBoardLabels(t *testing.T) {
	r, _ := newReadyRenderer(t)
	rec := &recorder{}
	r.DrawBoard(rec)

	texts := rec.filter("text")
	if len(texts) != 32 {
		t.Fatalf("got %d labels, want 32", len(texts))
	}

	// Rank numbers: left then right for each row, 8 first
	for row := 0; row < 8; row++ {
		left, right := texts[row*2], texts[row*2+1]
		want := strconv.Itoa(8 - row)
		y := float64(60 + row*60 + 30 - 10)
		if left.text != want || left.x != 35 || left.y != y {
			t.Errorf("left rank label row %d = %+v", row, left)
		}
		if right.text != want || right.x != 555 || right.y != y {
			t.Errorf("right rank label row %d = %+v", row, right)
		}
	}

	// File letters: top then bottom for each column
	for col := 0; col < 8; col++ {
		top, bottom := texts[16+col*2], texts[16+col*2+1]
		want := string(rune('A' + col))
		x := float64(60 + col*60 + 30 - 5)
		if top.text != want || top.x != x || top.y != 35 {
			t.Errorf("top file label col %d = %+v", col, top)
		}
		if bottom.text != want || bottom.x != x || bottom.y != 550 {
			t.Errorf("bottom file label col %d = %+v", col, bottom)
		}
	}
}

func TestPiecePosition(t *testing.T) {
	l := DefaultLayout()
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			x, y := l.PiecePosition(row, col)
			if x != float64(col*60+30+30) || y != float64(row*60+30+30) {
				t.Errorf("PiecePosition(%d,%d) = (%v,%v)", row, col, x, y)
			}
		}
	}
}

func TestUpdatePiecesSingleKing(t *testing.T) {
	r, _ := newReadyRenderer(t)

	var snap board.Snapshot
	snap[0][4] = board.NewPiece(board.King, board.White)

	rec := &recorder{}
	if err := r.UpdatePieces(rec, snap); err != nil {
		t.Fatalf("UpdatePieces: %v", err)
	}

	draws := rec.filter("texture")
	if len(draws) != 1 {
		t.Fatalf("got %d texture draws, want 1", len(draws))
	}
	d := draws[0]
	if d.tex.(*fakeTexture).key != "w_king" {
		t.Errorf("drew %q, want w_king", d.tex.(*fakeTexture).key)
	}
	if d.x != 300 || d.y != 60 {
		t.Errorf("drew at (%v,%v), want (300,60)", d.x, d.y)
	}
}

func TestUpdateWindowZeroSnapshot(t *testing.T) {
	r, _ := newReadyRenderer(t)

	rec := &recorder{}
	if err := r.UpdateWindow(rec, board.Snapshot{}, board.White, true); err != nil {
		t.Fatalf("UpdateWindow: %v", err)
	}
	if got := len(rec.filter("texture")); got != 0 {
		t.Errorf("empty board drew %d textures", got)
	}
	if got := len(rec.filter("fill")); got != 66 {
		t.Errorf("got %d fills, want frame, 64 squares and the input box", got)
	}
}

func TestUpdatePiecesSkipsPassant(t *testing.T) {
	r, _ := newReadyRenderer(t)

	snap, err := board.ParsePlacement("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	if err != nil {
		t.Fatal(err)
	}

	rec := &recorder{}
	if err := r.UpdatePieces(rec, snap); err != nil {
		t.Fatalf("UpdatePieces: %v", err)
	}
	if got := len(rec.filter("texture")); got != 32 {
		t.Errorf("got %d texture draws, want 32", got)
	}
}

func TestUpdatePiecesMissingTexture(t *testing.T) {
	r, _ := newReadyRenderer(t)

	var snap board.Snapshot
	snap[3][3] = board.NewPiece(board.Queen, board.NoColor)

	err := r.UpdatePieces(&recorder{}, snap)
	if !errors.Is(err, ErrTextureMissing) {
		t.Errorf("UpdatePieces = %v, want ErrTextureMissing", err)
	}

	err = r.UpdateWindow(&recorder{}, snap, board.White, true)
	if !errors.Is(err, ErrTextureMissing) {
		t.Errorf("UpdateWindow = %v, want ErrTextureMissing", err)
	}
}

func TestUpdateWindow(t *testing.T) {
	r, _ := newReadyRenderer(t)
	snap := board.StartSnapshot()

	t.Run("WhiteCurrent", func(t *testing.T) {
		rec := &recorder{}
		if err := r.UpdateWindow(rec, snap, board.White, true); err != nil {
			t.Fatalf("UpdateWindow: %v", err)
		}

		if rec.ops[0].kind != "clear" || rec.ops[0].color != r.Theme().Background {
			t.Errorf("first op = %+v, want clear to background", rec.ops[0])
		}
		if !rec.hasText("WHITE'S TURN") || rec.hasText("BLACK'S TURN") {
			t.Errorf("turn text wrong: %q", rec.texts())
		}
		if !rec.hasText("Current situation!") {
			t.Error("missing current situation text")
		}
		if !rec.hasText("Click on the box and write your move in a1a2 form.") {
			t.Error("missing instructions")
		}
		if got := len(rec.filter("texture")); got != 32 {
			t.Errorf("drew %d pieces, want 32", got)
		}

		strokes := rec.filter("stroke")
		if len(strokes) != 1 {
			t.Fatalf("got %d strokes, want 1", len(strokes))
		}
		if s := strokes[0]; s.x != 30 || s.y != 600 || s.w != 200 || s.h != 50 || s.thickness != 2 {
			t.Errorf("input box border = %+v", s)
		}
	})

	t.Run("BlackHistory", func(t *testing.T) {
		rec := &recorder{}
		if err := r.UpdateWindow(rec, snap, board.Black, false); err != nil {
			t.Fatalf("UpdateWindow: %v", err)
		}
		if !rec.hasText("BLACK'S TURN") || rec.hasText("WHITE'S TURN") {
			t.Errorf("turn text wrong: %q", rec.texts())
		}
		if rec.hasText("Current situation!") {
			t.Error("current situation text shown for a rolled back position")
		}
	})

	t.Run("TextCount", func(t *testing.T) {
		current, past := &recorder{}, &recorder{}
		r.UpdateWindow(current, snap, board.White, true)
		r.UpdateWindow(past, snap, board.White, false)
		// 32 labels + 4 fixed strings, plus one when current
		if len(current.texts()) != 37 || len(past.texts()) != 36 {
			t.Errorf("text counts = %d, %d, want 37, 36", len(current.texts()), len(past.texts()))
		}
	})
}

func TestUpdateTextBox(t *testing.T) {
	r, _ := newReadyRenderer(t)
	rec := &recorder{}
	if err := r.UpdateTextBox(rec, "e2e4"); err != nil {
		t.Fatalf("UpdateTextBox: %v", err)
	}
	texts := rec.filter("text")
	if len(texts) != 1 {
		t.Fatalf("got %d texts, want 1", len(texts))
	}
	if op := texts[0]; op.text != "e2e4" || op.x != 35 || op.y != 615 || op.size != 20 {
		t.Errorf("text op = %+v", op)
	}
}
