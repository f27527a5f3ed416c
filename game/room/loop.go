package room

import (
	"encoding/json"
	"log"
	"time"

	"github.com/netpong/netpong/game/engine"
)

// run drives the simulation at the configured tick rate until Stop. The
// loop keeps ticking with only spectators attached; it exits only when the
// room empties.
func (r *Room) run() {
	ticker := time.NewTicker(r.cfg.TickInterval())
	defer ticker.Stop()

	log.Printf("room %s: simulation started at %d Hz", r.id, r.cfg.TickRate)
	for {
		select {
		case <-r.stop:
			log.Printf("room %s: simulation stopped", r.id)
			return
		case <-ticker.C:
			r.step()
		}
	}
}

// step advances the simulation one tick and broadcasts the result. Paddle
// movement comes from the seat owners' current intents; connections without
// a controlling seat never move anything.
func (r *Room) step() {
	r.mu.Lock()

	for _, seat := range []engine.Seat{engine.Seat1, engine.Seat2} {
		var intent engine.Intent
		if c, ok := r.seats[seat]; ok {
			intent = r.intents[c.ID()]
		}
		idx := seat - 1
		r.paddleY[idx] = engine.MovePaddle(r.cfg, r.paddleY[idx], intent)
	}

	next, scorer, scored := engine.Step(r.cfg, r.ball, r.paddleY[0], r.paddleY[1])
	r.ball = next
	if scored {
		r.score[scorer-1]++
		r.ball = engine.Serve(r.cfg, scorer.Opponent(), r.serveVY())
		log.Printf("room %s: seat %s scored (%d-%d)", r.id, scorer, r.score[0], r.score[1])
	}

	snap := r.snapshotLocked()
	conns := make([]Conn, 0, len(r.conns))
	for c := range r.conns {
		conns = append(conns, c)
	}
	r.mu.Unlock()

	payload, err := json.Marshal(snap)
	if err != nil {
		log.Printf("room %s: failed to marshal snapshot: %v", r.id, err)
		return
	}

	// A connection that cannot take the snapshot is treated as disconnected.
	// Detach happens after the send loop so one dead peer never delays the
	// others.
	var failed []Conn
	for _, c := range conns {
		if !c.Send(payload) {
			failed = append(failed, c)
		}
	}
	for _, c := range failed {
		log.Printf("room %s: dropping unresponsive connection %s", r.id, c.ID())
		r.Detach(c)
		c.Close()
	}
}
