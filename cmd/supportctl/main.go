// Package main provides an interactive CLI for the support chat server.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"
)

func main() {
	addr := flag.String("addr", "http://localhost:8000", "Support chat server address")
	sessionID := flag.String("session", uuid.NewString(), "Session ID to chat in")
	userID := flag.String("user", "", "User ID sent with each message")
	flag.Parse()

	log.SetFlags(log.Ltime)

	client := NewClient(*addr, *sessionID, *userID)

	fmt.Printf("Session: %s\n", *sessionID)
	fmt.Println("\nType a message and press Enter to send.")
	fmt.Println("Commands: /history, /sessions, /faqs, /quit")
	fmt.Println()

	run(client, os.Stdin, os.Stdout)
}

func run(client *Client, in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		if input == "/quit" {
			fmt.Fprintln(out, "Bye!")
			return
		}

		if err := handleLine(client, input, out); err != nil {
			log.Printf("Error: %v", err)
		}
	}
}

func handleLine(client *Client, input string, out io.Writer) error {
	switch input {
	case "/history":
		history, err := client.History()
		if err != nil {
			return err
		}
		for _, m := range history.Messages {
			marker := ""
			if m.Escalate {
				marker = " [escalated]"
			}
			fmt.Fprintf(out, "%s %-6s %s%s\n", m.CreatedAt.Format("15:04:05"), m.Role, m.Text, marker)
		}
	case "/sessions":
		list, err := client.Sessions()
		if err != nil {
			return err
		}
		for _, s := range list.Sessions {
			fmt.Fprintln(out, s)
		}
	case "/faqs":
		items, err := client.FAQs()
		if err != nil {
			return err
		}
		for _, item := range items {
			fmt.Fprintf(out, "[%s] %s\n", item.ID, item.Question)
		}
	default:
		resp, err := client.Send(input)
		if err != nil {
			return err
		}
		if resp.Escalate {
			fmt.Fprintf(out, "agent [escalated]: %s\n", resp.Reply)
		} else {
			fmt.Fprintf(out, "agent: %s\n", resp.Reply)
		}
	}
	return nil
}
