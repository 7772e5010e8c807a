package server

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/gliderlabs/ssh"

	"pixel-avatar/internal/avatar"
	"pixel-avatar/internal/render"
)

// SSHServer serves avatar previews over SSH. The command line selects the
// avatar: `ssh -p 2222 host hair=afro pose=karate`.
type SSHServer struct {
	addr    string
	hostKey string
	size    int
}

// NewSSHServer creates a new SSH server bound to the given address. size is
// the preview width in terminal columns.
func NewSSHServer(addr string, hostKey string, size int) *SSHServer {
	return &SSHServer{
		addr:    addr,
		hostKey: hostKey,
		size:    size,
	}
}

// Start begins listening for SSH connections.
func (s *SSHServer) Start() error {
	server := &ssh.Server{
		Addr:    s.addr,
		Handler: s.handleSession,
	}

	// Set host key
	if err := server.SetOption(ssh.HostKeyFile(s.hostKey)); err != nil {
		return fmt.Errorf("set host key: %w", err)
	}

	log.Printf("SSH server listening on %s", s.addr)
	return server.ListenAndServe()
}

// parseCommand turns the session's command words into a character.
func parseCommand(args []string) (avatar.CharacterConfig, error) {
	cfg, err := avatar.DefaultCharacter.ParseAssignments(args)
	if err != nil {
		return cfg, err
	}
	return cfg.WithDefaults(), nil
}

func (s *SSHServer) handleSession(sess ssh.Session) {
	username := sess.User()
	if username == "" {
		username = "Anonymous"
	}

	cfg, err := parseCommand(sess.Command())
	if err != nil {
		fmt.Fprintf(sess.Stderr(), "Error: %v\n", err)
		if errors.Is(err, avatar.ErrUnknownField) {
			fmt.Fprintln(sess.Stderr(), "Fields: skinTone hairStyle hairColor shirtStyle shirtColor pantsStyle pantsColor shoeColor accessory pose")
		}
		sess.Exit(1)
		return
	}
	if fb := avatar.Resolve(cfg).Fallbacks; len(fb) > 0 {
		log.Printf("Preview for %s uses fallbacks: %s", username, strings.Join(fb, ", "))
	}

	ptyReq, winCh, ok := sess.Pty()
	if !ok {
		// One-shot: print the avatar and exit.
		io.WriteString(sess, render.ANSI(avatar.Compose(cfg, float64(s.size)), render.TransparentPixel()))
		log.Printf("Preview sent: %s", username)
		return
	}

	log.Printf("Editor connected: %s", username)
	defer log.Printf("Editor disconnected: %s", username)

	ed := newEditor(cfg, s.size)
	termW := ptyReq.Window.Width
	termH := ptyReq.Window.Height
	var termMu sync.Mutex

	// Setup terminal
	io.WriteString(sess, render.EnableAltScreen())
	io.WriteString(sess, render.HideCursor())
	defer func() {
		io.WriteString(sess, render.ShowCursor())
		io.WriteString(sess, render.DisableAltScreen())
		fmt.Fprintln(sess, ed.assignments())
	}()

	actionCh := make(chan action, 8)
	quitCh := make(chan struct{})
	redrawCh := make(chan struct{}, 1)

	// Goroutine: read input
	go func() {
		buf := make([]byte, 64)
		for {
			n, err := sess.Read(buf)
			if err != nil {
				close(quitCh)
				return
			}
			for _, a := range parseInput(buf[:n]) {
				if a == actionQuit {
					close(quitCh)
					return
				}
				select {
				case actionCh <- a:
				default:
				}
			}
		}
	}()

	// Goroutine: handle window resizes
	go func() {
		for win := range winCh {
			termMu.Lock()
			termW = win.Width
			termH = win.Height
			termMu.Unlock()
			select {
			case redrawCh <- struct{}{}:
			default:
			}
		}
	}()

	draw := func() {
		termMu.Lock()
		w, h := termW, termH
		termMu.Unlock()
		io.WriteString(sess, ed.view(w, h))
	}

	draw()
	for {
		select {
		case <-quitCh:
			return
		case <-sess.Context().Done():
			return
		case a := <-actionCh:
			ed.apply(a)
			draw()
		case <-redrawCh:
			draw()
		}
	}
}

// parseInput converts raw bytes into editor actions.
// Handles letter keys, arrow key escape sequences, Q, and Ctrl-C.
func parseInput(data []byte) []action {
	var actions []action
	i := 0
	for i < len(data) {
		// Check for escape sequences (arrow keys)
		if i+2 < len(data) && data[i] == 0x1b && data[i+1] == '[' {
			switch data[i+2] {
			case 'C':
				actions = append(actions, actionNextPose)
			case 'D':
				actions = append(actions, actionPrevPose)
			}
			i += 3
			continue
		}

		// Single byte inputs
		r, size := utf8.DecodeRune(data[i:])
		switch r {
		case 'k', 'K':
			actions = append(actions, actionSkin)
		case 'h', 'H':
			actions = append(actions, actionHairStyle)
		case 'c', 'C':
			actions = append(actions, actionHairColor)
		case 's', 'S':
			actions = append(actions, actionShirtStyle)
		case 't', 'T':
			actions = append(actions, actionShirtColor)
		case 'p', 'P':
			actions = append(actions, actionPantsStyle)
		case 'l', 'L':
			actions = append(actions, actionPantsColor)
		case 'f', 'F':
			actions = append(actions, actionShoeColor)
		case 'a', 'A':
			actions = append(actions, actionAccessory)
		case ' ':
			actions = append(actions, actionNextPose)
		case 'r', 'R':
			actions = append(actions, actionReset)
		case 'q', 'Q':
			actions = append(actions, actionQuit)
		case 3: // Ctrl-C
			actions = append(actions, actionQuit)
		}
		i += size
	}
	return actions
}
