package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/parser"
	"github.com/lgbarn/chess-rules-go/internal/render"
)

const consoleHelp = `Type a move in algebraic notation (e4, Nf3, exd5, O-O, e8=Q) or a command:
  !help          this text
  !board         draw the board
  !fen           print the position as FEN
  !moves         list the moves played so far
  !move_count    print the number of moves played
  !legal <sq>    show where the piece on <sq> can go
  !quit          leave the game
`

// Console runs a two-player game over a text stream.
type Console struct {
	game   *engine.GameState
	cfg    *config.Config
	in     *bufio.Scanner
	out    io.Writer
	colour bool
}

// NewConsole creates a console playing game, reading moves from in.
func NewConsole(game *engine.GameState, cfg *config.Config, in io.Reader, out io.Writer, colour bool) *Console {
	return &Console{
		game:   game,
		cfg:    cfg,
		in:     bufio.NewScanner(in),
		out:    out,
		colour: colour,
	}
}

// Run plays until the game ends, the input ends or a player quits.
func (c *Console) Run() error {
	c.drawBoard(nil)
	if c.announceEnd() {
		return nil
	}

	for {
		fmt.Fprintf(c.out, "%s to move: ", c.game.SideToMove())
		if !c.in.Scan() {
			fmt.Fprintln(c.out)
			return c.in.Err()
		}

		line := strings.TrimSpace(c.in.Text())
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, "!"):
			if quit := c.command(line); quit {
				return nil
			}
			continue
		}

		m, err := parser.Play(c.game, line)
		if err != nil {
			fmt.Fprintf(c.out, "%s: %v\n", line, err)
			continue
		}
		if c.cfg.Verbosity > 1 {
			fmt.Fprintf(c.cfg.LogFile, "ply %d: %s\n", c.game.MoveCount(), m)
		}

		c.drawBoard(nil)
		if c.announceEnd() {
			return nil
		}
	}
}

// command runs one '!' command and reports whether the player quit.
func (c *Console) command(line string) bool {
	fields := strings.Fields(line)
	switch fields[0] {
	case "!help":
		fmt.Fprint(c.out, consoleHelp)
	case "!board":
		c.drawBoard(nil)
	case "!fen":
		fmt.Fprintln(c.out, c.game.FEN())
	case "!move_count":
		fmt.Fprintln(c.out, strconv.Itoa(c.game.MoveCount()))
	case "!moves":
		fmt.Fprintln(c.out, c.moveList())
	case "!legal":
		if len(fields) != 2 {
			fmt.Fprintln(c.out, "usage: !legal <square>")
			break
		}
		sq, ok := chess.ParseSquare(fields[1])
		if !ok {
			fmt.Fprintf(c.out, "%s is not a square\n", fields[1])
			break
		}
		dests := c.game.LegalDestinations(sq)
		if len(dests) == 0 {
			fmt.Fprintf(c.out, "no legal moves from %s\n", sq)
			break
		}
		c.drawBoard(dests)
	case "!quit", "!exit":
		return true
	default:
		fmt.Fprintf(c.out, "unknown command %s, try !help\n", fields[0])
	}
	return false
}

// moveList formats the game so far as "1. e4 e5 2. Nf3".
func (c *Console) moveList() string {
	if c.game.MoveCount() == 0 {
		return "(no moves)"
	}

	start := c.game.StartingBoard().ToMove
	number := c.game.FullMoveNumber() - (c.game.MoveCount()+boolToInt(start == chess.Black))/2
	side := start

	var sb strings.Builder
	for ply := 0; ply < c.game.MoveCount(); ply++ {
		text, _ := c.game.Notation(ply)
		switch {
		case side == chess.White:
			if sb.Len() > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%d. %s", number, text)
		case ply == 0:
			fmt.Fprintf(&sb, "%d... %s", number, text)
			number++
		default:
			sb.WriteByte(' ')
			sb.WriteString(text)
			number++
		}
		side = side.Opposite()
	}
	return sb.String()
}

func (c *Console) drawBoard(highlights []chess.Square) {
	opts := render.TextOptionsFrom(c.cfg.Display, c.colour)
	opts.Highlights = highlights
	fmt.Fprint(c.out, render.Text(c.game.Board(), opts))
}

// announceEnd prints the result if the game is over.
func (c *Console) announceEnd() bool {
	switch c.game.EndState() {
	case engine.Checkmate:
		fmt.Fprintf(c.out, "Checkmate! %s wins.\n", c.game.SideToMove().Opposite())
		return true
	case engine.Draw:
		if c.game.HalfMoveClock() >= engine.FiftyMoveLimit {
			fmt.Fprintln(c.out, "Draw by the fifty-move rule.")
		} else {
			fmt.Fprintln(c.out, "Stalemate. The game is drawn.")
		}
		return true
	}
	if c.game.InCheck() {
		fmt.Fprintln(c.out, "Check!")
	}
	return false
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
