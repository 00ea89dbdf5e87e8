// Command wordlist generates a candidate password list offline and writes it
// to a file.
//
//	wordlist --first-name Alice --dob 1990 --pet Rex --leet -o alice.txt
//	wordlist --interactive
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
