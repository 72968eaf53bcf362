// Package web provides a remote debug stream for the emulator: an HTTP
// endpoint that upgrades connections to websockets and fans out the PPU
// pixel buffer together with the CPU observation surface after every
// emulated frame. The GUI consuming the stream lives outside the core.
package web

import (
	"bytes"
	"encoding/binary"
	"net/http"

	"github.com/andybalholm/brotli"
	"github.com/cespare/xxhash"
	"github.com/gorilla/websocket"
	"github.com/mapamarco/naive-gbe/internal/cpu"
	"github.com/mapamarco/naive-gbe/internal/emulator"
	"github.com/mapamarco/naive-gbe/pkg/log"
)

// Message type identifiers, the first byte of every websocket message.
const (
	// MsgFrame carries a brotli compressed pixel buffer.
	MsgFrame = iota + 1
	// MsgStatus carries the CPU state snapshot and the disassembly at
	// PC.
	MsgStatus
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Server fans emulator state out to websocket clients.
type Server struct {
	emu *emulator.Emulator
	log log.Logger

	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte

	// hash of the last published frame, to skip identical frames
	lastFrame uint64
}

// NewServer returns a debug stream server for the given emulator.
func NewServer(emu *emulator.Emulator, l log.Logger) *Server {
	if l == nil {
		l = log.NewNullLogger()
	}
	return &Server{
		emu:        emu,
		log:        l,
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 16),
	}
}

// Run serves the stream on addr until the listener fails. It blocks.
func (s *Server) Run(addr string) error {
	go s.loop()

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handle)

	s.log.Infof("web: serving debug stream on %s", addr)
	return http.ListenAndServe(addr, mux)
}

func (s *Server) loop() {
	for {
		select {
		case c := <-s.register:
			s.clients[c] = true
		case c := <-s.unregister:
			if _, ok := s.clients[c]; ok {
				delete(s.clients, c)
				close(c.send)
			}
		case msg := <-s.broadcast:
			for c := range s.clients {
				select {
				case c.send <- msg:
				default:
					// client too slow, drop it
					delete(s.clients, c)
					close(c.send)
				}
			}
		}
	}
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Errorf("web: upgrade failed: %v", err)
		return
	}

	c := &Client{server: s, conn: conn, send: make(chan []byte, 16)}
	s.register <- c

	go c.readPump()
	go c.writePump()
}

// Publish broadcasts the current frame and CPU status. The frame is
// skipped when its hash matches the previously published one.
func (s *Server) Publish() {
	frame := s.emu.PPU().VideoRAM()
	if hash := xxhash.Sum64(frame); hash != s.lastFrame {
		s.lastFrame = hash

		var buf bytes.Buffer
		buf.WriteByte(MsgFrame)
		bw := brotli.NewWriterLevel(&buf, brotli.DefaultCompression)
		bw.Write(frame)
		bw.Close()

		s.broadcast <- buf.Bytes()
	}

	s.broadcast <- s.status()
}

// status packs the CPU observation surface: the eight registers, SP, PC,
// IME, state, the cycle counter and the disassembly at PC.
func (s *Server) status() []byte {
	c := s.emu.CPU()

	msg := make([]byte, 0, 64)
	msg = append(msg, MsgStatus)
	for r := cpu.RegA; r <= cpu.RegL; r++ {
		msg = append(msg, c.Register8(r))
	}
	msg = binary.LittleEndian.AppendUint16(msg, c.Register16(cpu.RegSP))
	msg = binary.LittleEndian.AppendUint16(msg, c.Register16(cpu.RegPC))
	msg = append(msg, c.IME(), uint8(c.State()))
	msg = binary.LittleEndian.AppendUint64(msg, c.Cycle())
	msg = append(msg, s.emu.Disassembly()...)

	return msg
}
