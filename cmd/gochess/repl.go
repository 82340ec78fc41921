package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/gochess/internal/chess"
	"github.com/lgbarn/gochess/internal/config"
	"github.com/lgbarn/gochess/internal/output"
	"github.com/lgbarn/gochess/internal/session"
)

const commandHelp = `  e2e4        play a move (append q, r, b or n to choose a promotion)
  moves [sq]  list legal moves, or those of the piece on sq
  undo        take back the last move (against the computer, your last move)
  save [path] save the position
  load [path] load a saved position
  history     show the moves played (history json for a JSON record)
  difficulty  cycle the computer level easy, medium, hard
  board       show the board
  fen         show the position as FEN
  help        show this list
  quit        leave the game
`

// repl reads commands from in and plays them on the session.
type repl struct {
	cfg  *config.Config
	sess *session.Session
	in   *bufio.Scanner
	out  io.Writer

	// reported is set once the result of a finished game is printed.
	reported bool
}

func newREPL(cfg *config.Config, sess *session.Session, in io.Reader) *repl {
	return &repl{
		cfg:  cfg,
		sess: sess,
		in:   bufio.NewScanner(in),
		out:  cfg.OutputFile,
	}
}

// run loops until quit or end of input. The computer moves whenever it is
// its turn, before the next prompt.
func (r *repl) run() error {
	renderBoard(r.out, r.sess.Board())
	for {
		r.reportResult()
		if err := r.aiTurn(); err != nil {
			fmt.Fprintf(r.out, "Error: %v\n", err)
		}

		fmt.Fprintf(r.out, "%s> ", r.sess.Board().ToMove)
		if !r.in.Scan() {
			fmt.Fprintln(r.out)
			return r.in.Err()
		}
		line := strings.TrimSpace(r.in.Text())
		if line == "" {
			continue
		}
		if quit := r.handle(line); quit {
			return nil
		}
	}
}

// handle runs one command line and reports whether to quit.
func (r *repl) handle(line string) bool {
	fields := strings.Fields(line)
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "quit", "exit":
		return true
	case "help":
		fmt.Fprint(r.out, commandHelp)
	case "board":
		renderBoard(r.out, r.sess.Board())
	case "fen":
		fmt.Fprintln(r.out, r.sess.FEN())
	case "moves":
		r.listMoves(args)
	case "undo":
		r.undo()
	case "save":
		r.save(args)
	case "load":
		r.load(args)
	case "history":
		r.history(args)
	case "difficulty":
		r.cycleDifficulty()
	default:
		r.play(line)
	}
	return false
}

func (r *repl) play(text string) {
	if _, err := r.sess.PlayText(text); err != nil {
		fmt.Fprintf(r.out, "Error: %v\n", err)
		return
	}
	renderBoard(r.out, r.sess.Board())
}

// aiTurn lets the computer move if it is its turn.
func (r *repl) aiTurn() error {
	move, played, err := r.sess.AITurn()
	if err != nil || !played {
		return err
	}
	fmt.Fprintf(r.out, "Computer plays %s\n", move)
	if line := r.sess.AI().LastLine(); line.Depth > 0 {
		r.cfg.Logf(2, "search: %s", line)
	}
	renderBoard(r.out, r.sess.Board())
	r.reportResult()
	return nil
}

// reportResult prints the result line once when the game has ended.
func (r *repl) reportResult() {
	status := r.sess.Status()
	if !status.IsOver() {
		r.reported = false
		return
	}
	if r.reported {
		return
	}
	r.reported = true
	fmt.Fprintf(r.out, "Result: %s\n", resultText(status))
}

func (r *repl) listMoves(args []string) {
	var moves []chess.Move
	if len(args) == 0 {
		moves = r.sess.LegalMoves()
	} else {
		sq, err := chess.ParseSquare(args[0])
		if err != nil {
			fmt.Fprintf(r.out, "Error: %v\n", err)
			return
		}
		var ok bool
		if moves, ok = r.sess.Select(sq); !ok {
			fmt.Fprintf(r.out, "No piece of yours on %s\n", sq)
			return
		}
	}
	texts := make([]string, len(moves))
	for i, m := range moves {
		texts[i] = m.String()
	}
	fmt.Fprintln(r.out, strings.Join(texts, " "))
}

func (r *repl) undo() {
	if !r.sess.Undo() {
		fmt.Fprintln(r.out, "Nothing to undo")
		return
	}
	renderBoard(r.out, r.sess.Board())
}

func (r *repl) save(args []string) {
	path := r.cfg.Game.SavePath
	if len(args) > 0 {
		path = args[0]
	}
	if err := r.sess.SaveFile(path); err != nil {
		fmt.Fprintf(r.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(r.out, "Saved to %s\n", path)
}

func (r *repl) load(args []string) {
	path := r.cfg.Game.SavePath
	if len(args) > 0 {
		path = args[0]
	}
	if err := r.sess.LoadFile(path); err != nil {
		fmt.Fprintf(r.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(r.out, "Loaded %s\n", path)
	renderBoard(r.out, r.sess.Board())
}

func (r *repl) history(args []string) {
	var w output.RecordWriter = output.NewTextWriter(r.out)
	if len(args) > 0 && strings.EqualFold(args[0], "json") {
		w = output.NewJSONWriterSingle(r.out)
	}
	if err := w.WriteRecord(r.sess.Record()); err != nil {
		fmt.Fprintf(r.out, "Error: %v\n", err)
		return
	}
	if err := w.Flush(); err != nil {
		fmt.Fprintf(r.out, "Error: %v\n", err)
	}
}

func (r *repl) cycleDifficulty() {
	ai := r.sess.AI()
	next := ai.Difficulty().Next()
	ai.SetDifficulty(next)
	r.cfg.Engine.Difficulty = next
	fmt.Fprintf(r.out, "Difficulty: %s\n", next)
}
