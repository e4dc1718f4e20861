package decorator

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppHandlerAlwaysSucceeds(t *testing.T) {
	var buf bytes.Buffer
	h := AppHandler{Out: &buf}

	resp := h.Handle(Request{Path: "/home", User: "guest", Authenticated: true})
	assert.Equal(t, 200, resp.Code)
	assert.Contains(t, buf.String(), "Processing request for path: /home")
}

func TestLoggingWrapsDelegation(t *testing.T) {
	var buf bytes.Buffer
	h := Logging(AppHandler{Out: &buf}, &buf)

	resp := h.Handle(Request{Path: "/about", User: "guest", Authenticated: true})
	assert.Equal(t, 200, resp.Code)

	out := buf.String()
	incoming := strings.Index(out, "[LOG] Incoming request")
	core := strings.Index(out, "Processing request for path: /about")
	finished := strings.Index(out, "[LOG] Request finished")
	assert.True(t, incoming >= 0 && core > incoming && finished > core,
		"log lines must bracket the core handler output:\n%s", out)
}

func TestAuthShortCircuits(t *testing.T) {
	tests := []struct {
		name         string
		request      Request
		wantCode     int
		wantCoreRun  bool
		wantContains string
	}{
		{
			name:         "authenticated request delegates",
			request:      Request{Path: "/dashboard", User: "admin", Authenticated: true},
			wantCode:     200,
			wantCoreRun:  true,
			wantContains: "[AUTH] User is authenticated",
		},
		{
			name:         "unauthenticated request blocked",
			request:      Request{Path: "/dashboard", User: "hacker", Authenticated: false},
			wantCode:     401,
			wantCoreRun:  false,
			wantContains: "[AUTH] Authentication FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := Auth(Logging(AppHandler{Out: &buf}, &buf), &buf)

			resp := h.Handle(tt.request)
			assert.Equal(t, tt.wantCode, resp.Code)
			assert.Contains(t, buf.String(), tt.wantContains)

			coreRan := strings.Contains(buf.String(), "Core logic executed")
			assert.Equal(t, tt.wantCoreRun, coreRan)
		})
	}
}
