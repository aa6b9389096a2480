// Copyright 2026 The respx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package respx

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/gogama/respx/request"
)

var httpServer = httptest.NewUnstartedServer(http.HandlerFunc(serverHandler))
var httpsServer = httptest.NewUnstartedServer(http.HandlerFunc(serverHandler))
var http2Server = httptest.NewUnstartedServer(http.HandlerFunc(serverHandler))
var servers = []*httptest.Server{httpServer, httpsServer, http2Server}

func TestMain(m *testing.M) {
	httpServer.Start()
	httpsServer.StartTLS()
	http2Server.EnableHTTP2 = true
	http2Server.StartTLS()
	code := m.Run()
	httpServer.Close()
	httpsServer.Close()
	http2Server.Close()
	os.Exit(code)
}

func serverName(server *httptest.Server) string {
	switch server {
	case httpServer:
		return "http"
	case httpsServer:
		return "https"
	case http2Server:
		return "http2"
	default:
		panic("unknown server")
	}
}

type bodyChunk struct {
	Pause time.Duration
	Data  []byte
}

type serverInstruction struct {
	HeaderPause time.Duration
	StatusCode  int
	Body        []bodyChunk
}

func (i *serverInstruction) toJSON() []byte {
	b, err := json.Marshal(i)
	if err != nil {
		panic(err)
	}

	return b
}

func (i *serverInstruction) toPlan(ctx context.Context, server *httptest.Server) *request.Plan {
	p, err := request.NewPlanWithContext(ctx, "POST", server.URL+"/instruction", i.toJSON())
	if err != nil {
		panic(err)
	}

	return p
}

func (i *serverInstruction) fromRequest(req *http.Request) error {
	b, err := io.ReadAll(req.Body)
	_ = req.Body.Close()

	if err != nil {
		return err
	}

	return json.Unmarshal(b, i)
}

func serverHandler(w http.ResponseWriter, req *http.Request) {
	// Decode the instructions.
	var i serverInstruction
	err := i.fromRequest(req)
	if err != nil {
		w.WriteHeader(400)
		_, _ = io.WriteString(w, fmt.Sprintf("failed to read request: %s", err.Error()))
		return
	}

	// Validate the instruction.
	if i.StatusCode == 0 {
		w.WriteHeader(400)
		_, _ = io.WriteString(w, fmt.Sprintf("bad StatusCode in instruction: %v", i))
		return
	}

	// Get the Flusher, panicking if it's not available.
	f, ok := w.(http.Flusher)
	if !ok {
		panic("w does not implement Flusher")
	}

	// Determine the content length of the response.
	contentLength := 0
	for _, chunk := range i.Body {
		contentLength += len(chunk.Data)
	}

	// Create the response headers, echoing what the client sent.
	header := w.Header()
	header.Set("Content-Length", strconv.Itoa(contentLength))
	header.Set("X-Proto", req.Proto)
	header.Set(RequestIDHeader, req.Header.Get(RequestIDHeader))

	// Sleep for the duration indicated by the pause field. This is done
	// to allow the client to play with timeouts.
	time.Sleep(i.HeaderPause)

	// Return the HTTP response stipulated by the client.
	w.WriteHeader(i.StatusCode)
	f.Flush()

	// Write the response in chunks, pausing before each chunk.
	for _, chunk := range i.Body {
		if chunk.Pause > 0 {
			time.Sleep(chunk.Pause)
		}
		if _, err = w.Write(chunk.Data); err != nil {
			return
		}
		f.Flush()
	}
}
