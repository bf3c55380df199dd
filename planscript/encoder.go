package planscript

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/hotyard/yard"
)

// scriptSeparator joins tokens within a persisted move-script file.
const scriptSeparator = ";;"

// waitTokenSeconds is the wait granularity the encoder collapses into
// "101010 k" runs, matching astar's MAX_WAIT_TIME.
const waitTokenSeconds = 10

// Kind distinguishes the two token shapes the Executor replays.
type Kind int

const (
	// Move is a single crane trip: pick from Source, place on Dest.
	Move Kind = iota
	// Wait is WaitSeconds of simulated idle time.
	Wait
	// Raw is an action sentence that encoded to neither shape above
	// (e.g. a non-ten-second wait); passed through verbatim in Literal.
	Raw
)

// Token is one decoded unit of a move script.
type Token struct {
	Kind        Kind
	Source      int
	Dest        int
	WaitSeconds int
	Literal     string
}

// action is the parsed form of one yard.State.LastAction sentence.
type action struct {
	isPick  bool
	isPlace bool
	isWait  bool
	stack   int
	waitS   int
	raw     string
}

// Encode converts a solved path's action trace into the compact move
// script: path[0] is always "Initial state" and is skipped; each
// consecutive (pick s, place d) pair collapses to "s d"; each run of
// ten-second waits collapses to "101010 k"; anything else (a wait of a
// duration other than ten seconds, or a pick not followed by a place)
// passes through as its raw sentence. An empty path encodes to no tokens.
func Encode(path []yard.State) []string {
	if len(path) == 0 {
		return nil
	}
	var actions []action
	for _, st := range path[1:] {
		actions = append(actions, parseAction(st.LastAction))
	}

	var tokens []string
	for i := 0; i < len(actions); i++ {
		a := actions[i]

		if a.isWait && a.waitS == waitTokenSeconds {
			run := 1
			for i+run < len(actions) && actions[i+run].isWait && actions[i+run].waitS == waitTokenSeconds {
				run++
			}
			tokens = append(tokens, fmt.Sprintf("101010 %d", run))
			i += run - 1
			continue
		}

		if a.isPick && i+1 < len(actions) && actions[i+1].isPlace {
			tokens = append(tokens, fmt.Sprintf("%d %d", a.stack, actions[i+1].stack))
			i++
			continue
		}

		tokens = append(tokens, a.raw)
	}
	return tokens
}

// Join renders tokens as a single move-script file body.
func Join(tokens []string) string {
	return strings.Join(tokens, scriptSeparator)
}

// Split parses a persisted move-script file body back into tokens.
func Split(script string) []string {
	if script == "" {
		return nil
	}
	return strings.Split(script, scriptSeparator)
}

// Decode expands encoded tokens back into Token values the Executor can
// replay: "s d" becomes a Move, "101010 k" becomes k separate Wait
// tokens of ten seconds each (the Executor sleeps once per token, so
// expanding here keeps its consume loop uniform), and anything else is
// wrapped as Raw.
func Decode(tokens []string) ([]Token, error) {
	var out []Token
	for _, tok := range tokens {
		fields := strings.Fields(tok)

		if len(fields) == 2 && fields[0] == "101010" {
			k, err := strconv.Atoi(fields[1])
			if err != nil || k <= 0 {
				return nil, fmt.Errorf("%w: %q", ErrMalformedToken, tok)
			}
			for j := 0; j < k; j++ {
				out = append(out, Token{Kind: Wait, WaitSeconds: waitTokenSeconds})
			}
			continue
		}

		if len(fields) == 2 {
			s, errS := strconv.Atoi(fields[0])
			d, errD := strconv.Atoi(fields[1])
			if errS == nil && errD == nil {
				out = append(out, Token{Kind: Move, Source: s, Dest: d})
				continue
			}
		}

		out = append(out, Token{Kind: Raw, Literal: tok})
	}
	return out, nil
}

// parseAction extracts the stack index or wait duration from one
// yard.State.LastAction sentence. "Initial state" and anything
// unrecognized parse as a bare Raw action.
func parseAction(sentence string) action {
	switch {
	case strings.HasPrefix(sentence, "Picked up "):
		if idx := lastStackIndex(sentence); idx >= 0 {
			return action{isPick: true, stack: idx, raw: sentence}
		}
	case strings.HasPrefix(sentence, "Put down "):
		trimmed := strings.TrimSuffix(sentence, " (EXIT)")
		if idx := lastStackIndex(trimmed); idx >= 0 {
			return action{isPlace: true, stack: idx, raw: sentence}
		}
	case strings.HasPrefix(sentence, "Waited for "):
		fields := strings.Fields(sentence)
		if len(fields) >= 3 {
			if secs, err := strconv.Atoi(fields[2]); err == nil {
				return action{isWait: true, waitS: secs, raw: sentence}
			}
		}
	}
	return action{raw: sentence}
}

// lastStackIndex returns the trailing integer in "... stack N", or -1 if
// the sentence doesn't end that way.
func lastStackIndex(sentence string) int {
	fields := strings.Fields(sentence)
	if len(fields) == 0 {
		return -1
	}
	n, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil {
		return -1
	}
	return n
}
