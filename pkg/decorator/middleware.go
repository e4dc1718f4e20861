package decorator

import (
	"fmt"
	"io"
)

// Request is the unit of work flowing through a handler chain.
type Request struct {
	Path          string
	User          string
	Authenticated bool
}

// Response is what a handler chain produces.
type Response struct {
	Code int
	Body string
}

// Handler is the component interface for request processing.
type Handler interface {
	Handle(r Request) Response
}

// AppHandler is the core handler at the bottom of every chain. It narrates
// its work to the writer and always succeeds.
type AppHandler struct {
	Out io.Writer
}

func (h AppHandler) Handle(r Request) Response {
	fmt.Fprintf(h.Out, "Processing request for path: %s\n", r.Path)
	fmt.Fprintln(h.Out, "  -> Core logic executed (Database query, Business logic, etc.)")
	fmt.Fprintln(h.Out, "  -> Response generated: 200 OK")
	return Response{Code: 200, Body: "OK"}
}

// logging wraps a handler with before/after log lines.
type logging struct {
	next Handler
	out  io.Writer
}

// Logging wraps h so every request is logged on the way in and out.
func Logging(h Handler, out io.Writer) Handler {
	return logging{next: h, out: out}
}

func (l logging) Handle(r Request) Response {
	fmt.Fprintf(l.out, "[LOG] Incoming request: path=%s user=%s authenticated=%t\n",
		r.Path, r.User, r.Authenticated)
	resp := l.next.Handle(r)
	fmt.Fprintf(l.out, "[LOG] Request finished for: %s\n", r.Path)
	return resp
}

// auth wraps a handler with an authentication check. Unauthenticated
// requests are rejected without reaching the wrapped handler.
type auth struct {
	next Handler
	out  io.Writer
}

// Auth wraps h so only authenticated requests are delegated; everything
// else gets a 401 without touching the chain below.
func Auth(h Handler, out io.Writer) Handler {
	return auth{next: h, out: out}
}

func (a auth) Handle(r Request) Response {
	if !r.Authenticated {
		fmt.Fprintln(a.out, "[AUTH] Authentication FAILED! Request blocked.")
		fmt.Fprintln(a.out, "  -> Response generated: 401 Unauthorized")
		return Response{Code: 401, Body: "Unauthorized"}
	}
	fmt.Fprintln(a.out, "[AUTH] User is authenticated. Proceeding...")
	return a.next.Handle(r)
}
