package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"net"
	"os"
	"time"
)

func main() {
	if err := run(); err != nil {
		log.Printf("remote_smoke: %v", err)
		os.Exit(1)
	}
}

func run() error {
	addr := flag.String("addr", "localhost:80", "server address")
	path := flag.String("path", "/cmd_lock", "command path to request")
	timeout := flag.Duration("timeout", 5*time.Second, "total timeout for the run")
	flag.Parse()

	conn, err := net.DialTimeout("tcp", *addr, *timeout)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer conn.Close()

	if err := conn.SetDeadline(time.Now().Add(*timeout)); err != nil {
		return fmt.Errorf("set deadline: %w", err)
	}

	request := fmt.Sprintf("GET %s HTTP/1.1\r\n\r\n", *path)
	if _, err := io.WriteString(conn, request); err != nil {
		return fmt.Errorf("send request: %w", err)
	}

	body, err := io.ReadAll(conn)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	fmt.Printf("%s", body)
	return nil
}
