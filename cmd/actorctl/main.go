// Command actorctl is a small demonstration harness for the actor package:
// it spawns a tiny supervision tree and prints the termination cascade, to
// show Spawn/SpawnLinked/Send/Receive working end to end outside of tests.
package main

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/markInTheAbyss/actorcore/actor"
	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "actorctl",
		Short: "Demonstrate the actor package's supervision and messaging",
	}
	root.AddCommand(pingCmd())
	root.AddCommand(superviseCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// pingCmd spawns a child that prints each (string, int) tuple it receives,
// then exits once told to stop.
func pingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Spawn a child actor and exchange a few messages with it",
		RunE: func(cmd *cobra.Command, args []string) error {
			var wg sync.WaitGroup
			wg.Add(1)

			actor.Spawn(func(p *actor.Ctx) {
				defer wg.Done()

				child := p.Spawn(func(c *actor.Ctx) {
					for {
						stop := false
						_ = c.Receive(
							actor.On2[string, int](func(tag string, n int) {
								fmt.Printf("child: got %q/%d\n", tag, n)
							}),
							actor.On1If[string](func(s string) bool {
								stop = s == "stop"
								return stop
							}),
						)
						if stop {
							return
						}
					}
				})

				for i := 1; i <= 3; i++ {
					_ = actor.Send(child, "msg", i)
					time.Sleep(10 * time.Millisecond)
				}
				_ = actor.Send(child, "stop")
			})
			wg.Wait()
			return nil
		},
	}
}

// superviseCmd links two actors; one deliberately panics, and the survivor
// prints the LinkTerminated it observes.
func superviseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "supervise",
		Short: "Show a LinkTerminated cascade after a linked peer dies",
		RunE: func(cmd *cobra.Command, args []string) error {
			var wg sync.WaitGroup
			wg.Add(1)

			actor.Spawn(func(p *actor.Ctx) {
				defer wg.Done()

				doomed := p.SpawnLinked(func(c *actor.Ctx) {
					time.Sleep(10 * time.Millisecond)
					panic("deliberate demo failure")
				})

				err := p.Receive()
				var linkErr *actor.LinkTerminatedError
				if asLinkTerminated(err, &linkErr) {
					fmt.Printf("supervisor: observed link death of %s (expected %s)\n",
						linkErr.Who, doomed)
				} else if err != nil {
					fmt.Printf("supervisor: receive ended with %v\n", err)
				}
			})

			wg.Wait()
			return nil
		},
	}
}

func asLinkTerminated(err error, target **actor.LinkTerminatedError) bool {
	e, ok := err.(*actor.LinkTerminatedError)
	if !ok {
		return false
	}
	*target = e
	return true
}
