// Command pongwatch is a headless terminal client for a NetPong server.
// It connects over WebSocket, prints score and ball position lines as the
// game progresses, and can optionally claim a seat and play a simple
// ball-tracking bot. Useful for smoke-testing a server without a browser.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/netpong/netpong/client"
)

func main() {
	cmd := &cli.Command{
		Name:  "pongwatch",
		Usage: "Watch or play a NetPong room from the terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "url",
				Value: "http://localhost:8080",
				Usage: "Base URL of the NetPong server",
			},
			&cli.StringFlag{
				Name:  "room",
				Value: "default",
				Usage: "Room to join",
			},
			&cli.StringFlag{
				Name:  "player",
				Value: "auto",
				Usage: "Seat to request: 1, 2, or auto",
			},
			&cli.DurationFlag{
				Name:  "interval",
				Value: time.Second,
				Usage: "How often to print the room state",
			},
			&cli.BoolFlag{
				Name:  "bot",
				Usage: "Play the assigned seat with a ball-tracking bot",
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	c, err := client.Dial(cmd.String("url"), cmd.String("room"), cmd.String("player"))
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer c.Close()

	// Seat assignment arrives right after the upgrade.
	deadline := time.After(5 * time.Second)
	for !c.Assigned() {
		select {
		case <-c.Done():
			return fmt.Errorf("connection closed before seat assignment")
		case <-deadline:
			return fmt.Errorf("timed out waiting for seat assignment")
		case <-time.After(10 * time.Millisecond):
		}
	}

	if seat, ok := c.Seat(); ok {
		fmt.Printf("joined room %q as player %d\n", cmd.String("room"), seat)
	} else {
		fmt.Printf("joined room %q as spectator\n", cmd.String("room"))
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	bot := cmd.Bool("bot")
	if bot {
		if _, ok := c.Seat(); !ok {
			return fmt.Errorf("bot mode needs a seat, but the room assigned spectator")
		}
	}

	ticker := time.NewTicker(cmd.Duration("interval"))
	defer ticker.Stop()

	botTicker := time.NewTicker(time.Second / 30)
	defer botTicker.Stop()

	for {
		select {
		case sig := <-stop:
			fmt.Printf("\nreceived %v, disconnecting\n", sig)
			return nil
		case <-c.Done():
			return fmt.Errorf("server closed the connection")
		case <-ticker.C:
			printState(c.State())
		case <-botTicker.C:
			if bot {
				steer(c)
			}
		}
	}
}

// printState writes one line summarizing the current snapshot.
func printState(s client.State) {
	fmt.Printf("score %d-%d  ball (%6.1f, %6.1f)  p1 y=%5.1f  p2 y=%5.1f\n",
		s.Score[1], s.Score[2],
		s.Ball.X, s.Ball.Y,
		s.Players[1].Y, s.Players[2].Y)
}

// steer nudges the assigned paddle toward the ball's vertical position.
func steer(c *client.Client) {
	seat, ok := c.Seat()
	if !ok {
		return
	}

	s := c.State()
	center := s.Players[seat].Y + s.Paddle.H/2
	const deadZone = 6.0

	switch {
	case s.Ball.Y < center-deadZone:
		c.SetIntent(true, false)
	case s.Ball.Y > center+deadZone:
		c.SetIntent(false, true)
	default:
		c.SetIntent(false, false)
	}
}
