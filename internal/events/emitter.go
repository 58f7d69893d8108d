package events

import (
	"context"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// Emitter delivers named payloads to the frontend.
type Emitter func(ctx context.Context, name string, payload interface{})

// Nop drops every event. It is the default until the Wails runtime is up.
func Nop(context.Context, string, interface{}) {}

// Runtime forwards events through the Wails runtime. ctx must be the context
// handed to OnStartup.
func Runtime(ctx context.Context, name string, payload interface{}) {
	if ctx == nil {
		return
	}
	runtime.EventsEmit(ctx, name, payload)
}

// Recorder collects emitted events; tests use it in place of Runtime.
type Recorder struct {
	Names    []string
	Payloads []interface{}
}

func (r *Recorder) Emit(_ context.Context, name string, payload interface{}) {
	r.Names = append(r.Names, name)
	r.Payloads = append(r.Payloads, payload)
}

// Notices returns the recorded notices in order.
func (r *Recorder) Notices() []Notice {
	var out []Notice
	for i, name := range r.Names {
		if name != NoticeEvent {
			continue
		}
		if n, ok := r.Payloads[i].(Notice); ok {
			out = append(out, n)
		}
	}
	return out
}
