package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"chathub/internal/client"
	"chathub/pkg/chat"
)

func main() {
	host := flag.String("host", "localhost:5000", "chat server host:port")
	username := flag.String("username", "", "display name (server assigns one if empty)")
	room := flag.String("room", chat.DefaultRoom, "room to join")
	flag.Parse()

	c, err := client.Dial(*host)
	if err != nil {
		log.Fatalf("connect to %s: %v", *host, err)
	}
	defer c.Close()

	if err := c.Join(*username, *room); err != nil {
		log.Fatalf("join: %v", err)
	}

	go func() {
		err := c.Listen(func(env chat.Envelope) {
			if line := client.FormatEvent(env); line != "" {
				fmt.Println(line)
			}
		})
		log.Fatalf("connection closed: %v", err)
	}()

	currentRoom := *room
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "/quit":
			return
		case line == "/leave":
			if err := c.LeaveRoom(currentRoom); err != nil {
				log.Printf("leave: %v", err)
			}
		case strings.HasPrefix(line, "/join "):
			currentRoom = strings.TrimSpace(strings.TrimPrefix(line, "/join "))
			if err := c.Join(*username, currentRoom); err != nil {
				log.Printf("join: %v", err)
			}
		case line == "/typing":
			if err := c.Typing(currentRoom, true); err != nil {
				log.Printf("typing: %v", err)
			}
		case line != "":
			if err := c.SendMessage(line, currentRoom); err != nil {
				log.Printf("send: %v", err)
			}
		}
	}
}
