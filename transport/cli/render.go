package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solo/internal/usecase"
)

const (
	crossColor  = "1"
	circleColor = "4"
	errorColor  = "9"

	rowSeparator = "---+---+---"
)

const helpText = `Commands:
  new     start a new game
  x, o    choose your mark when you begin
  1-9     place your mark, cells are numbered row by row
  undo    take back the last move
  board   show the board
  help    show this help
  quit    leave`

func (that *Server) printHelp() {
	that.println(helpText)
}

func (that *Server) printSnapshot(snapshot usecase.Snapshot) {
	var builder strings.Builder

	if snapshot.Phase == usecase.PhasePlaying || snapshot.Phase == usecase.PhaseFinished {
		builder.WriteString(that.renderBoard(snapshot.State.Board))
		builder.WriteString("\n")
		fmt.Fprintf(&builder, "You play %s, the bot plays %s.\n", snapshot.HumanMark, snapshot.BotMark)
	}

	builder.WriteString(that.output.String(snapshot.Info).Bold().String())

	that.println(builder.String())
}

func (that *Server) printError(err error) {
	message := err.Error()
	if errors.Is(err, apperror.ErrNotYourTurn) {
		message = "Wait for the bot!"
	}

	that.println(that.output.String("error: " + message).Foreground(that.output.Color(errorColor)).String())
}

func (that *Server) renderBoard(board entity.Board) string {
	rows := make([]string, 0, 3)

	for row := range 3 {
		cells := make([]string, 0, 3)
		for col := range 3 {
			position := row*3 + col
			cells = append(cells, " "+that.renderCell(position, board[position])+" ")
		}

		rows = append(rows, strings.Join(cells, "|"))
	}

	return strings.Join(rows, "\n"+rowSeparator+"\n")
}

func (that *Server) renderCell(position int, mark entity.Mark) string {
	switch mark {
	case entity.Cross:
		return that.output.String(string(mark)).Foreground(that.output.Color(crossColor)).Bold().String()
	case entity.Circle:
		return that.output.String(string(mark)).Foreground(that.output.Color(circleColor)).Bold().String()
	default:
		return that.output.String(strconv.Itoa(position + 1)).Faint().String()
	}
}

func (that *Server) println(text string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, err := fmt.Fprintln(that.output, text); err != nil {
		that.logger.Error("failed to write output", "method", "println", "error", err)
	}
}

