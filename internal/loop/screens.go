package loop

import (
	"fmt"
	"io"
	"strings"

	"github.com/tmolnar/rockfall/internal/draw"
	"github.com/tmolnar/rockfall/internal/game"
)

// drawMenuScreen renders the title screen with the volume sliders.
func drawMenuScreen(w io.Writer, canvas *draw.Canvas, snap game.Snapshot) {
	centerX := canvas.TerminalWidth() / 2
	centerY := canvas.TerminalHeight() / 2

	title := "R O C K F A L L"
	draw.WriteAt(w, centerX-len(title)/2, centerY-6, title)

	writeSlider(w, centerX, centerY-2, "Music Volume", snap.MusicVolume, snap.MenuIndex == game.MenuMusicVolume)
	writeSlider(w, centerX, centerY+1, "SFX Volume", snap.SFXVolume, snap.MenuIndex == game.MenuSFXVolume)

	prompt := "Enter: Start   Q: Quit"
	draw.WriteAt(w, centerX-len(prompt)/2, centerY+5, prompt)

	controls := "A/D or Arrows rotate   W/Up thrust   Space shoot   H hyperspace"
	draw.WriteAt(w, centerX-len(controls)/2, centerY+7, controls)
}

// writeSlider draws one labeled volume bar. The selected slider carries
// angle-bracket markers.
func writeSlider(w io.Writer, centerX, row int, label string, value float64, selected bool) {
	const barWidth = 24
	filled := int(value*barWidth + 0.5)
	if filled > barWidth {
		filled = barWidth
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
	line := fmt.Sprintf("%-13s %s %3d%%", label, bar, int(value*100+0.5))
	if selected {
		line = "> " + line + " <"
	} else {
		line = "  " + line + "  "
	}
	draw.WriteAt(w, centerX-len([]rune(line))/2, row, line)
}

// drawHUD renders the in-game score, wave and lives counters.
func drawHUD(w io.Writer, canvas *draw.Canvas, snap game.Snapshot) {
	draw.WriteAt(w, 2, 1, fmt.Sprintf("Score: %d", snap.Score))

	waveText := fmt.Sprintf("Wave: %d", snap.Wave)
	draw.WriteAt(w, canvas.TerminalWidth()/2-len(waveText)/2, 1, waveText)

	livesText := fmt.Sprintf("Lives: %d", snap.Lives)
	draw.WriteAt(w, canvas.TerminalWidth()-len(livesText)-1, 1, livesText)
}

// drawGameOverScreen renders the terminal screen with the final tally.
func drawGameOverScreen(w io.Writer, canvas *draw.Canvas, snap game.Snapshot) {
	centerX := canvas.TerminalWidth() / 2
	centerY := canvas.TerminalHeight() / 2

	title := "GAME OVER"
	draw.WriteAt(w, centerX-len(title)/2, centerY-2, title)

	tally := fmt.Sprintf("Score: %d   Wave: %d", snap.Score, snap.Wave)
	draw.WriteAt(w, centerX-len(tally)/2, centerY, tally)

	prompt := "Press ENTER to play again   Q to quit"
	draw.WriteAt(w, centerX-len(prompt)/2, centerY+2, prompt)
}
